package service

import "time"

const (
	ProjectionYears = 30     // length of the cumulative savings series
	KilogramsPerTon = 1000.0 // emission factors are given in kg/kWh
	PercentBase     = 100.0

	// Cache
	CacheKeyPrefix  = "membrane:result:"
	DefaultCacheTTL = 10 * time.Minute

	// Explanation
	explanationMaxTokens = 300
)
