package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache is the session-scoped in-memory store. Entries expire after their
// duration and are swept every cleanup interval.
type Cache interface {
	Set(key string, value interface{}, duration time.Duration)
	Get(key string) (interface{}, bool)
	// Add stores the value only if the key is absent or expired.
	Add(key string, value interface{}, duration time.Duration) error
	// Touch re-arms the expiration of an existing entry.
	Touch(key string, duration time.Duration) bool
	Delete(key string)
	Count() int
	Flush()
	// OnEvicted registers a callback for expired or deleted entries.
	OnEvicted(fn func(key string, value interface{}))
}

type goCache struct {
	internal *cache.Cache
}

// NewCache returns a new Cache instance with default expiration and cleanup interval
func NewCache(defaultExpiration, cleanupInterval time.Duration) Cache {
	return &goCache{
		internal: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *goCache) Set(key string, value interface{}, duration time.Duration) {
	c.internal.Set(key, value, duration)
}

func (c *goCache) Get(key string) (interface{}, bool) {
	return c.internal.Get(key)
}

func (c *goCache) Add(key string, value interface{}, duration time.Duration) error {
	return c.internal.Add(key, value, duration)
}

func (c *goCache) Touch(key string, duration time.Duration) bool {
	val, found := c.internal.Get(key)
	if !found {
		return false
	}
	c.internal.Set(key, val, duration)
	return true
}

func (c *goCache) Delete(key string) {
	c.internal.Delete(key)
}

func (c *goCache) Count() int {
	return c.internal.ItemCount()
}

func (c *goCache) Flush() {
	c.internal.Flush()
}

func (c *goCache) OnEvicted(fn func(key string, value interface{})) {
	c.internal.OnEvicted(fn)
}

// GetFromCache returns the typed value stored under key.
func GetFromCache[T any](c Cache, key string) (T, bool) {
	val, found := c.Get(key)
	if !found {
		var zero T
		return zero, false
	}
	typedVal, ok := val.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return typedVal, true
}
