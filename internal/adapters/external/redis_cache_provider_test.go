package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sunsip.app/internal/config"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func newTestRedisAdapter(t *testing.T) (*miniredis.Miniredis, *RedisCacheProviderAdapter) {
	t.Helper()

	mockRedis, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return mockRedis, adapter
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	tests := []struct {
		name      string
		config    *config.RedisConfig
		errorType errors.ErrorType
	}{
		{
			name:      "NilConfig",
			config:    nil,
			errorType: errors.ErrorTypeConfiguration,
		},
		{
			name: "UnreachableAddress",
			config: &config.RedisConfig{
				Addr:         "invalid:address:port",
				DialTimeout:  1,
				ReadTimeout:  1,
				WriteTimeout: 1,
			},
			errorType: errors.ErrorTypeExternalAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisCacheProviderAdapter(tt.config)

			assert.Nil(t, adapter)
			var appErr *errors.AppError
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, tt.errorType, appErr.Type)
			}
		})
	}
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "cities:paris", []byte(`[{"city":"Paris"}]`), time.Minute))

		retrieved, err := adapter.Get(ctx, "cities:paris")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"city":"Paris"}]`), retrieved)
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "cities:atlantis")

		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "landmarks:rome:italy", []byte("Colosseum"), time.Minute))

		exists, err := adapter.Exists(ctx, "landmarks:rome:italy")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, adapter.Delete(ctx, "landmarks:rome:italy"))

		exists, err = adapter.Exists(ctx, "landmarks:rome:italy")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl-key", []byte("value"), 100*time.Millisecond))

		mockRedis.FastForward(150 * time.Millisecond)

		_, err := adapter.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "clear-key", []byte("value"), time.Minute))
		require.NoError(t, adapter.Clear(ctx))

		exists, err := adapter.Exists(ctx, "clear-key")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, adapter := newTestRedisAdapter(t)
	ctx := context.Background()

	operations := map[string]func() error{
		"GetEmptyKey":       func() error { _, err := adapter.Get(ctx, ""); return err },
		"SetEmptyKey":       func() error { return adapter.Set(ctx, "", []byte("v"), time.Minute) },
		"SetNilValue":       func() error { return adapter.Set(ctx, "k", nil, time.Minute) },
		"SetZeroTTL":        func() error { return adapter.Set(ctx, "k", []byte("v"), 0) },
		"DeleteEmptyKey":    func() error { return adapter.Delete(ctx, "") },
		"ExistsEmptyKey":    func() error { _, err := adapter.Exists(ctx, ""); return err },
		"IncrementEmptyKey": func() error { _, err := adapter.Increment(ctx, "", time.Now()); return err },
		"CurrentEmptyKey":   func() error { _, err := adapter.Current(ctx, ""); return err },
	}

	for name, operation := range operations {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(operation()))
		})
	}
}

func TestRedisCacheProviderAdapter_RequestCounter(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t)
	ctx := context.Background()
	key := "requests:client-1:2026-10-18"
	expiresAt := time.Now().Add(2 * time.Hour)

	current, err := adapter.Current(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current)

	for want := int64(1); want <= 3; want++ {
		count, err := adapter.Increment(ctx, key, expiresAt)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	current, err = adapter.Current(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(3), current)

	ttl := mockRedis.TTL(key)
	assert.Greater(t, ttl, time.Hour)
	assert.LessOrEqual(t, ttl, 2*time.Hour)

	mockRedis.FastForward(3 * time.Hour)

	current, err = adapter.Current(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current)

	count, err := adapter.Increment(ctx, key, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisCacheProviderAdapter_Metrics(t *testing.T) {
	_, adapter := newTestRedisAdapter(t)
	ctx := context.Background()

	stats := adapter.GetStats()
	assert.Equal(t, int64(0), stats.TotalOps)
	assert.Equal(t, float64(0), stats.HitRatio)

	require.NoError(t, adapter.Set(ctx, "metrics-key", []byte("value"), time.Minute))
	_, err := adapter.Get(ctx, "metrics-key")
	require.NoError(t, err)
	_, err = adapter.Get(ctx, "non-existent")
	assert.Error(t, err)
	_, err = adapter.Get(ctx, "metrics-key")
	require.NoError(t, err)

	stats = adapter.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(3), stats.TotalOps)
	assert.Equal(t, float64(2)/float64(3), stats.HitRatio)
}

func TestRedisCacheProviderAdapter_InterfaceCompliance(t *testing.T) {
	_, adapter := newTestRedisAdapter(t)

	var _ ports.CacheProvider = adapter
	var _ ports.RequestCounter = adapter
	var _ ports.CacheMetrics = adapter
	var _ CacheBackend = adapter
}

func TestRedisCacheProviderAdapter_ContextCancellation(t *testing.T) {
	_, adapter := newTestRedisAdapter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.Get(ctx, "key")
	assert.Error(t, err)
	assert.Error(t, adapter.Set(ctx, "key", []byte("value"), time.Minute))
	_, err = adapter.Increment(ctx, "key", time.Now().Add(time.Hour))
	assert.Error(t, err)
}

func TestRedisCacheProviderAdapter_Ping(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t)

	assert.NoError(t, adapter.Ping(context.Background()))

	mockRedis.Close()
	assert.True(t, errors.IsExternalAPIError(adapter.Ping(context.Background())))
}
