// Package cache implements the result cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/analytics/internal/application/adapter"
)

// keyPrefix namespaces every key written by this service.
const keyPrefix = "analytics:"

// redisResultCache implements the adapter.ResultCache interface.
type redisResultCache struct {
	client *redis.Client
}

// NewRedisResultCache creates a new Redis-backed result cache.
func NewRedisResultCache(client *redis.Client) adapter.ResultCache {
	return &redisResultCache{
		client: client,
	}
}

// Get decodes the cached JSON value for key into dest.
func (c *redisResultCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return true, nil
}

// Set stores value as JSON under key for ttl.
func (c *redisResultCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
