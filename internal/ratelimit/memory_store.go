package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for tests and for running the API
// without Redis.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*memoryCounter
}

type memoryCounter struct {
	count     int64
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]*memoryCounter)}
}

// Incr increments key, creating it with ttl when absent or expired.
func (s *MemoryStore) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c, ok := s.counters[key]
	if !ok || now.After(c.expiresAt) {
		c = &memoryCounter{expiresAt: now.Add(ttl)}
		s.counters[key] = c
	}
	c.count++
	return c.count, nil
}
