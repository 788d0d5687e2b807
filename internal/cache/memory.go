package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache with per-entry TTL. A zero TTL on Set
// stores the entry without expiration, which suits query results over an
// immutable corpus.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory cache. defaultTTL applies when Set receives a
// zero TTL and defaultTTL is non-zero; cleanupInterval controls how often
// expired entries are evicted.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	if defaultTTL == 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &Memory{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a value from the cache.
func (c *Memory) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value. A zero ttl falls back to the cache default.
func (c *Memory) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache.
func (c *Memory) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all entries.
func (c *Memory) Clear() error {
	c.cache.Flush()
	return nil
}
