package osu

import (
	"sync"
	"time"
)

// CacheStore holds raw response bodies keyed by the rendered request uri.
// Implementations must be safe for concurrent use.
type CacheStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, body []byte, ttl time.Duration)
}

// CachedKinds selects which request kinds are served from the cache.
// Combine the flags with the |-operator.
type CachedKinds uint8

//goland:noinspection ALL
const (
	CacheUsers CachedKinds = 1 << iota
	CacheScores
	CacheBeatmaps
	CacheMatches
)

func (k CachedKinds) contains(other CachedKinds) bool {
	return k&other == other
}

func (k requestKind) cacheKind() CachedKinds {
	switch k {
	case kindBeatmaps:
		return CacheBeatmaps
	case kindMatch:
		return CacheMatches
	case kindUser:
		return CacheUsers
	default:
		return CacheScores
	}
}

type memoryEntry struct {
	body      []byte
	expiresAt time.Time
}

// MemoryCache is an in-process CacheStore with per-entry expiry.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.body, true
}

func (c *MemoryCache) Set(key string, body []byte, ttl time.Duration) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{body: body, expiresAt: expiresAt}
	c.mu.Unlock()
}
