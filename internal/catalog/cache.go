package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/calenfir/bazaar/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedItemEntry wraps an item with version metadata for cache invalidation
type cachedItemEntry struct {
	Version  string       `json:"version"`
	Item     *domain.Item `json:"item"`
	CachedAt time.Time    `json:"cached_at"`
}

// itemCache provides an in-memory LRU cache for item lookups with
// time-based expiration. Items are read-mostly reference data; admin
// writes invalidate the entry explicitly.
type itemCache struct {
	lru *expirable.LRU[uuid.UUID, *cachedItemEntry]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[uuid.UUID, *cachedItemEntry](size, nil, ttl),
	}
}

// Get retrieves an item from the cache.
// Returns (nil, false) if not cached, expired, or version mismatch.
func (c *itemCache) Get(itemID uuid.UUID) (*domain.Item, bool) {
	entry, found := c.lru.Get(itemID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(itemID)
		return nil, false
	}

	return entry.Item, true
}

// Set stores an item in the cache with current schema version.
func (c *itemCache) Set(item *domain.Item) {
	entry := &cachedItemEntry{
		Version:  CacheSchemaVersion,
		Item:     item,
		CachedAt: time.Now(),
	}
	c.lru.Add(item.ID, entry)
}

// Invalidate removes an item from the cache after an admin write.
func (c *itemCache) Invalidate(itemID uuid.UUID) {
	c.lru.Remove(itemID)
}

// Clear removes all entries from the cache.
func (c *itemCache) Clear() {
	c.lru.Purge()
}
