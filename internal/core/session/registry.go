package session

import (
	"sync"
	"time"
)

// Registry hands out one container per session key
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Container
	now      func() time.Time
}

func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		sessions: make(map[string]*Container),
		now:      now,
	}
}

// Get returns the container for key, creating it on first use
func (r *Registry) Get(key string) *Container {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.sessions[key]
	if !ok {
		c = NewContainer(r.now)
		r.sessions[key] = c
	}
	return c
}

// Remove forgets the container for key
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, key)
}

// Len returns the number of live containers
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// EvictIdle drops containers unused for longer than maxIdle and returns how many were removed
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for key, c := range r.sessions {
		if c.IdleSince().Before(cutoff) {
			delete(r.sessions, key)
			removed++
		}
	}
	return removed
}
