// Package cache is a thin Redis-backed JSON cache. A nil *Cache is a
// valid no-op cache, so callers don't branch on whether Redis is
// configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned when a key is absent (or caching is disabled).
var ErrMiss = errors.New("cache miss")

// Cache wraps a Redis client with a key namespace.
type Cache struct {
	rdb    *redis.Client
	prefix string
}

// New connects to Redis and returns a Cache. An empty addr returns a
// nil Cache, which disables caching.
func New(addr, password, prefix string) (*Cache, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Cache{rdb: rdb, prefix: prefix}, nil
}

func (c *Cache) key(parts ...string) string {
	return c.prefix + ":" + strings.Join(parts, ":")
}

// Get unmarshals the cached value for the keyed entry into dest.
func (c *Cache) Get(ctx context.Context, dest any, parts ...string) error {
	if c == nil {
		return ErrMiss
	}
	data, err := c.rdb.Get(ctx, c.key(parts...)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set stores value as JSON under the keyed entry with a TTL.
func (c *Cache) Set(ctx context.Context, value any, ttl time.Duration, parts ...string) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(parts...), data, ttl).Err()
}

// Del removes the keyed entry.
func (c *Cache) Del(ctx context.Context, parts ...string) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key(parts...)).Err()
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
