package cli

import (
	"context"
	"time"

	"go.uber.org/zap"

	"membrane-calculator/config"
	"membrane-calculator/domain"
	"membrane-calculator/repository"
	"membrane-calculator/service"
)

const redisPingTimeout = 2 * time.Second

type app struct {
	savings   *service.SavingsService
	explainer *service.ExplanationService
	close     func()
}

// newApp wires repositories and services from the configuration. A Redis
// server that cannot be reached is replaced by the in-memory cache.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger := zap.S().Named("app")

	presets := domain.DefaultPresets()
	if cfg.Service.PresetsFile != "" {
		filePresets, err := config.LoadPresets(cfg.Service.PresetsFile)
		if err != nil {
			return nil, err
		}
		logger.Infow("loaded presets", "file", cfg.Service.PresetsFile, "count", len(filePresets))
		presets = append(presets, filePresets...)
	}

	var cache repository.CacheRepository = repository.NewMemoryCache()
	closeFn := func() {}
	if cfg.Redis.Address != "" {
		redisCache := repository.NewRedisCache(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Warnw("redis unavailable, using in-memory cache", "address", cfg.Redis.Address, "error", err)
			_ = redisCache.Close()
		} else {
			cache = redisCache
			closeFn = func() { _ = redisCache.Close() }
		}
	}

	return &app{
		savings: service.NewSavingsService(
			repository.NewPresetRepositoryMemory(presets...),
			cache,
			cfg.Service.CacheTTL,
		),
		explainer: service.NewExplanationService(
			cfg.Explanation.APIKey,
			cfg.Explanation.URL,
			cfg.Explanation.Model,
			cfg.Explanation.Timeout,
		),
		close: closeFn,
	}, nil
}
