package cache

import (
	"sync"
	"time"
)

// SimpleCache is a in-memory cache with per key TTL.
// Used mainly for the Data Dragon version and id mappings, so we only hit the
// CDN once per version instead of on every lookup.
type SimpleCache struct {
	memoryCache map[string]SimpleCacheItem
	mu          sync.RWMutex
}

// Simple cache item.
type SimpleCacheItem struct {
	value any
	ttl   time.Time
}

// NewSimpleCache creates a empty cache.
func NewSimpleCache() *SimpleCache {
	return &SimpleCache{
		memoryCache: make(map[string]SimpleCacheItem),
	}
}

// Get returns a key value of the cache, nil if missing or expired.
func (sc *SimpleCache) Get(key string) any {
	sc.mu.RLock()
	item, exists := sc.memoryCache[key]
	sc.mu.RUnlock()

	if !exists {
		return nil
	}

	// If the reset time was reached, remove the cache.
	if time.Now().After(item.ttl) {
		sc.mu.Lock()
		delete(sc.memoryCache, key)
		sc.mu.Unlock()
		return nil
	}

	return item.value
}

// Set a given key on the cache.
func (sc *SimpleCache) Set(key string, value any, ttl time.Duration) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.memoryCache[key] = SimpleCacheItem{
		value: value,
		ttl:   time.Now().Add(ttl),
	}
}
