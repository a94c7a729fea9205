package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryCache is an in-process Cache used when Redis is unavailable and in
// tests. Values are stored JSON-encoded so Get/Set behave identically to
// the Redis implementation.
type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache returns a process-local Cache with the given default
// cleanup interval for expired entries.
func NewMemoryCache(cleanupInterval time.Duration) Cache {
	return &memoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, found := m.store.Get(key)
	if !found {
		return false, nil
	}

	data, ok := raw.([]byte)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store.Set(key, data, ttl)
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		m.store.Delete(key)
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error {
	return nil
}
