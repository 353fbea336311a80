package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized evaluation results. A zero ttl keeps the
// entry until it is evicted.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
