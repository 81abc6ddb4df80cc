package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "edgecache"

// RedisStore persists cache entries as JSON envelopes in Redis, with
// eviction handled by key TTLs.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed cache store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cacheKey(url string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, url)
}

// Get loads the entry stored for url, or (nil, nil) when absent.
func (s *RedisStore) Get(ctx context.Context, url string) (*Entry, error) {
	data, err := s.client.Get(ctx, cacheKey(url)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}
	return &entry, nil
}

// Set stores entry for url with the given TTL.
func (s *RedisStore) Set(ctx context.Context, url string, entry *Entry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	return s.client.Set(ctx, cacheKey(url), data, ttl).Err()
}
