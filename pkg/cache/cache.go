package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// defaultOperationTimeout bounds individual Redis operations.
const defaultOperationTimeout = 5 * time.Second

// Cache is a JSON-over-Redis cache. When disabled it degrades to a no-op
// so callers never need to branch on availability.
type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: client, enabled: true}, nil
}

func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

func (c *Cache) Get(key string, dest interface{}) error {
	if !c.Enabled() {
		return fmt.Errorf("cache disabled")
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("key not found")
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(key string) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

// DeletePattern removes every key matching a glob pattern, e.g. "page:*".
func (c *Cache) DeletePattern(pattern string) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
