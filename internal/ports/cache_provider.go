package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// CacheMetrics exposes the lookup statistics a cache provider keeps for itself
type CacheMetrics interface {
	GetStats() CacheStats
}

// RequestCounter defines the contract for the daily request counters
type RequestCounter interface {
	// Increment adds one to key, setting it to expire at expiresAt when created, and returns the new count
	Increment(ctx context.Context, key string, expiresAt time.Time) (int64, error)
	// Current returns the count stored under key, zero when absent
	Current(ctx context.Context, key string) (int64, error)
}
