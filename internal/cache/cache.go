package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const productListTTL = 5 * time.Minute

// Cache is a read-through cache for hot public listings. A nil *Cache (or a
// failed redis connection) disables caching entirely; every method is safe to
// call on the disabled form.
type Cache struct {
	rdb *redis.Client
}

// New connects to redis at addr. An empty addr or a failed ping returns nil,
// which callers treat as "caching off".
func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("[cache] redis unavailable at %s: %v (caching disabled)", addr, err)
		return nil
	}
	return &Cache{rdb: rdb}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, productListTTL)
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
