// Package cache provides the response cache for plan requests, keyed by
// a content hash of the prompt. The cache is advisory: the pipeline must
// run to completion with the cache absent, empty, or failing.
//
// Concurrent identical requests are NOT deduplicated — both may compute
// and the last write wins. Callers that need single-flight semantics
// must layer it themselves.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Key derives the cache key for a prompt: "trip:" plus the hex sha256 of
// the raw text.
func Key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "trip:" + hex.EncodeToString(sum[:])
}

// Cache stores serialized plan responses with a TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// InMemoryCache is a TTL cache guarded by an RWMutex. Expired entries
// are dropped lazily on read and swept when the map grows past maxSize.
type InMemoryCache struct {
	mu      sync.RWMutex
	items   map[string]cacheItem
	maxSize int
}

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// NewInMemoryCache creates a cache bounded at maxSize entries; zero or
// negative means 1000.
func NewInMemoryCache(maxSize int) *InMemoryCache {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &InMemoryCache{
		items:   make(map[string]cacheItem),
		maxSize: maxSize,
	}
}

// Get returns the cached value when present and unexpired.
func (c *InMemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	item, found := c.items[key]
	c.mu.RUnlock()

	if !found {
		return nil, false, nil
	}
	if time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return item.value, true, nil
}

// Set stores value under key for ttl.
func (c *InMemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= c.maxSize {
		c.evictExpiredLocked()
		if len(c.items) >= c.maxSize {
			c.evictOldestLocked()
		}
	}

	c.items[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Len reports the current entry count.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *InMemoryCache) evictExpiredLocked() {
	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}
}

func (c *InMemoryCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	for key, item := range c.items {
		if oldestKey == "" || item.expiresAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = item.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
