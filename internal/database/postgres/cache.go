package postgres

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedProfileEntry wraps an encoded profile with version metadata for cache invalidation
type cachedProfileEntry struct {
	Version  string
	Document []byte
	CachedAt time.Time
}

// profileCache is an LRU of encoded profile documents with time-based expiration.
// Documents are stored encoded so every hit decodes a private copy.
type profileCache struct {
	lru *expirable.LRU[string, *cachedProfileEntry]
}

func newProfileCache(size int, ttl time.Duration) *profileCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &profileCache{
		lru: expirable.NewLRU[string, *cachedProfileEntry](size, nil, ttl),
	}
}

// Get returns the cached document, dropping entries from an older schema version
func (c *profileCache) Get(id string) ([]byte, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	return entry.Document, true
}

// Set stores a document with the current schema version
func (c *profileCache) Set(id string, doc []byte) {
	c.lru.Add(id, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Document: doc,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a profile from the cache
func (c *profileCache) Invalidate(id string) {
	c.lru.Remove(id)
}

// Len reports the number of cached profiles
func (c *profileCache) Len() int {
	return c.lru.Len()
}
