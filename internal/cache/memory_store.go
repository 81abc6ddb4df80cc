package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for tests and for running the API
// without Redis.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	entry     *Entry
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory cache store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get returns the stored entry for key, or (nil, nil) when absent or expired.
func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, nil
	}
	return e.entry, nil
}

// Set stores entry for key with the given TTL.
func (s *MemoryStore) Set(_ context.Context, key string, entry *Entry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{entry: entry, expiresAt: time.Now().Add(ttl)}
	return nil
}
