package external

import (
	"context"
	"strconv"
	"sync"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

type MemoryCacheProvider struct {
	data  map[string]memoryCacheItem
	mutex sync.RWMutex
	now   func() time.Time
	stats cacheStats
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return NewMemoryCacheProviderWithClock(time.Now)
}

// NewMemoryCacheProviderWithClock creates a memory cache whose expiry follows now
func NewMemoryCacheProviderWithClock(now func() time.Time) *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data: make(map[string]memoryCacheItem),
		now:  now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || c.expired(item) {
		c.stats.recordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.stats.recordHit()
	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:      value,
		expiresAt: c.now().Add(ttl),
	}

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return false, nil
	}

	return !c.expired(item), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	return nil
}

// Increment implements RequestCounter; the expiry is only set when the key is created
func (c *MemoryCacheProvider) Increment(ctx context.Context, key string, expiresAt time.Time) (int64, error) {
	if key == "" {
		return 0, errors.NewValidationError("counter key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, exists := c.data[key]
	var count int64
	if exists && !c.expired(item) {
		parsed, err := strconv.ParseInt(string(item.data), 10, 64)
		if err != nil {
			return 0, errors.NewValidationError("counter value is not an integer")
		}
		count = parsed
	} else {
		item = memoryCacheItem{expiresAt: expiresAt}
	}

	count++
	item.data = []byte(strconv.FormatInt(count, 10))
	c.data[key] = item
	return count, nil
}

// Current implements RequestCounter
func (c *MemoryCacheProvider) Current(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, errors.NewValidationError("counter key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || c.expired(item) {
		return 0, nil
	}
	count, err := strconv.ParseInt(string(item.data), 10, 64)
	if err != nil {
		return 0, errors.NewValidationError("counter value is not an integer")
	}
	return count, nil
}

// PurgeExpired drops expired entries and returns how many were removed
func (c *MemoryCacheProvider) PurgeExpired() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for key, item := range c.data {
		if c.expired(item) {
			delete(c.data, key)
			removed++
		}
	}
	return removed
}

func (c *MemoryCacheProvider) expired(item memoryCacheItem) bool {
	return c.now().After(item.expiresAt)
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.stats.snapshot()
}

// cacheStats is shared by the memory and redis providers
type cacheStats struct {
	mutex  sync.RWMutex
	hits   int64
	misses int64
}

func (s *cacheStats) recordHit() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.hits++
}

func (s *cacheStats) recordMiss() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.misses++
}

func (s *cacheStats) snapshot() ports.CacheStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	lookups := s.hits + s.misses
	hitRatio := float64(0)
	if lookups > 0 {
		hitRatio = float64(s.hits) / float64(lookups)
	}

	return ports.CacheStats{
		Hits:        s.hits,
		Misses:      s.misses,
		TotalOps:    lookups,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
