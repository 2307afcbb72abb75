package repository

import (
	"github.com/bradfitz/gomemcache/memcache"
)

// RenderCache caches rendered public payloads in memcached. A miss or
// a memcached outage is never an error to the caller; the content is
// simply rebuilt from Postgres.
type RenderCache struct {
	mc  *memcache.Client
	ttl int32
}

func NewRenderCache(mc *memcache.Client, ttlSeconds int32) *RenderCache {
	return &RenderCache{mc: mc, ttl: ttlSeconds}
}

func (c *RenderCache) Get(key string) ([]byte, bool) {
	if c == nil || c.mc == nil {
		return nil, false
	}
	item, err := c.mc.Get(key)
	if err != nil {
		return nil, false
	}
	return item.Value, true
}

func (c *RenderCache) Set(key string, value []byte) {
	if c == nil || c.mc == nil {
		return
	}
	_ = c.mc.Set(&memcache.Item{Key: key, Value: value, Expiration: c.ttl})
}

func (c *RenderCache) Delete(key string) {
	if c == nil || c.mc == nil {
		return
	}
	_ = c.mc.Delete(key)
}
