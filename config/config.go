package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Service     svcConfig
	Redis       redisConfig
	Explanation explanationConfig
}

type svcConfig struct {
	Address         string        `envconfig:"MEMBRANE_ADDRESS" default:"127.0.0.1:8080"`
	LogLevel        string        `envconfig:"MEMBRANE_LOG_LEVEL" default:"info"`
	PresetsFile     string        `envconfig:"MEMBRANE_PRESETS_FILE" default:""`
	CacheTTL        time.Duration `envconfig:"MEMBRANE_CACHE_TTL" default:"10m"`
	RateLimit       int           `envconfig:"MEMBRANE_RATE_LIMIT" default:"60"`
	RateLimitWindow time.Duration `envconfig:"MEMBRANE_RATE_WINDOW" default:"1m"`
}

// An empty Address selects the in-memory cache.
type redisConfig struct {
	Address  string `envconfig:"MEMBRANE_REDIS_ADDR" default:""`
	Password string `envconfig:"MEMBRANE_REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"MEMBRANE_REDIS_DB" default:"0"`
}

type explanationConfig struct {
	APIKey  string        `envconfig:"OPENAI_API_KEY" default:""`
	URL     string        `envconfig:"MEMBRANE_EXPLAIN_URL" default:"https://api.openai.com/v1/chat/completions"`
	Model   string        `envconfig:"MEMBRANE_EXPLAIN_MODEL" default:"gpt-4o-mini"`
	Timeout time.Duration `envconfig:"MEMBRANE_EXPLAIN_TIMEOUT" default:"30s"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
