package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

type fakeClock struct {
	mutex sync.Mutex
	now   time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
}

func TestMemoryCacheProvider_Operations(t *testing.T) {
	clock := newClock()
	provider := NewMemoryCacheProviderWithClock(clock.Now)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "cities:paris", []byte("paris"), time.Minute))

		retrieved, err := provider.Get(ctx, "cities:paris")
		require.NoError(t, err)
		assert.Equal(t, []byte("paris"), retrieved)
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		retrieved, err := provider.Get(ctx, "cities:atlantis")

		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "delete-key", []byte("value"), time.Minute))

		exists, err := provider.Exists(ctx, "delete-key")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, provider.Delete(ctx, "delete-key"))

		exists, err = provider.Exists(ctx, "delete-key")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "ttl-key", []byte("value"), time.Minute))

		clock.Advance(2 * time.Minute)

		_, err := provider.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
		exists, err := provider.Exists(ctx, "ttl-key")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("PurgeExpired", func(t *testing.T) {
		require.NoError(t, provider.Clear(ctx))
		require.NoError(t, provider.Set(ctx, "short", []byte("v"), time.Second))
		require.NoError(t, provider.Set(ctx, "long", []byte("v"), time.Hour))

		clock.Advance(time.Minute)

		assert.Equal(t, 1, provider.PurgeExpired())
		exists, err := provider.Exists(ctx, "long")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	operations := map[string]func() error{
		"GetEmptyKey":       func() error { _, err := provider.Get(ctx, ""); return err },
		"SetEmptyKey":       func() error { return provider.Set(ctx, "", []byte("v"), time.Minute) },
		"SetNilValue":       func() error { return provider.Set(ctx, "k", nil, time.Minute) },
		"SetNegativeTTL":    func() error { return provider.Set(ctx, "k", []byte("v"), -time.Minute) },
		"DeleteEmptyKey":    func() error { return provider.Delete(ctx, "") },
		"ExistsEmptyKey":    func() error { _, err := provider.Exists(ctx, ""); return err },
		"IncrementEmptyKey": func() error { _, err := provider.Increment(ctx, "", time.Now()); return err },
		"CurrentEmptyKey":   func() error { _, err := provider.Current(ctx, ""); return err },
	}

	for name, operation := range operations {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(operation()))
		})
	}
}

func TestMemoryCacheProvider_RequestCounter(t *testing.T) {
	clock := newClock()
	provider := NewMemoryCacheProviderWithClock(clock.Now)
	ctx := context.Background()
	key := "requests:client-1:2026-10-18"
	midnight := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	for want := int64(1); want <= 3; want++ {
		count, err := provider.Increment(ctx, key, midnight)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	current, err := provider.Current(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(3), current)

	// a later expiry passed on increment does not extend the existing key
	_, err = provider.Increment(ctx, key, midnight.Add(48*time.Hour))
	require.NoError(t, err)

	clock.Advance(13 * time.Hour)

	current, err = provider.Current(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current)

	count, err := provider.Increment(ctx, key, midnight.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryCacheProvider_ConcurrentIncrement(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := provider.Increment(ctx, "requests:shared", expiresAt)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	current, err := provider.Current(ctx, "requests:shared")
	require.NoError(t, err)
	assert.Equal(t, int64(50), current)
}

func TestMemoryCacheProvider_Metrics(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "metrics-key", []byte("value"), time.Minute))
	_, err := provider.Get(ctx, "metrics-key")
	require.NoError(t, err)
	_, err = provider.Get(ctx, "non-existent")
	assert.Error(t, err)
	_, err = provider.Exists(ctx, "metrics-key")
	require.NoError(t, err)

	stats := provider.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(2), stats.TotalOps)
	assert.Equal(t, 0.5, stats.HitRatio)
}

func TestMemoryCacheProvider_InterfaceCompliance(t *testing.T) {
	provider := NewMemoryCacheProvider()

	var _ ports.CacheProvider = provider
	var _ ports.RequestCounter = provider
	var _ ports.CacheMetrics = provider
	var _ CacheBackend = provider
}
