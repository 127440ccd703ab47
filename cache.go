package accessai

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes computed responses for a fixed TTL. Keys are stable
// hashes of an endpoint name plus its normalized parameters, so identical
// requests hit the same entry. Safe for concurrent use.
//
// Only deterministic endpoints should be memoized: responses that embed
// freshly minted identifiers would replay stale ids on a hit.
type Cache struct {
	store *gocache.Cache
}

// NewCache returns a cache whose entries expire after ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{store: gocache.New(ttl, 10*time.Minute)}
}

// Key builds a stable cache key from an endpoint name and its normalized
// parameters.
func (c *Cache) Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached value for key, if present and unexpired.
func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Set stores v under key with the default TTL.
func (c *Cache) Set(key string, v any) {
	c.store.SetDefault(key, v)
}
