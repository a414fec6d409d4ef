package cache

import (
	"context"
	"time"
)

// Store is a TTL'd key-value store for cached access decisions. Get reports
// a miss (false) for absent or expired keys.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
