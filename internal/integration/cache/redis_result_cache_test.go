// Package cache implements the result cache on top of Redis.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedResult struct {
	Months   int
	Interest float64
	Order    []string
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisResultCache) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, &redisResultCache{client: client}
}

func TestRedisResultCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		_, cache := newTestCache(t)
		var out cachedResult
		hit, err := cache.Get(ctx, "missing", &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hit {
			t.Error("expected miss")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		server, cache := newTestCache(t)
		in := cachedResult{Months: 18, Interest: 1234.56, Order: []string{"card", "car"}}
		if err := cache.Set(ctx, "debt:simulate:v1:abc", in, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !server.Exists(keyPrefix + "debt:simulate:v1:abc") {
			t.Error("expected prefixed key in redis")
		}

		var out cachedResult
		hit, err := cache.Get(ctx, "debt:simulate:v1:abc", &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hit {
			t.Fatal("expected hit")
		}
		if out.Months != 18 || out.Interest != 1234.56 || len(out.Order) != 2 {
			t.Errorf("unexpected cached value %+v", out)
		}
	})

	t.Run("expires", func(t *testing.T) {
		server, cache := newTestCache(t)
		if err := cache.Set(ctx, "k", cachedResult{Months: 1}, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		server.FastForward(2 * time.Minute)

		var out cachedResult
		hit, _ := cache.Get(ctx, "k", &out)
		if hit {
			t.Error("expected entry to expire")
		}
	})

	t.Run("corrupt value", func(t *testing.T) {
		server, cache := newTestCache(t)
		_ = server.Set(keyPrefix+"k", "not json")

		var out cachedResult
		if _, err := cache.Get(ctx, "k", &out); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("server down", func(t *testing.T) {
		server, cache := newTestCache(t)
		server.Close()

		var out cachedResult
		if _, err := cache.Get(ctx, "k", &out); err == nil {
			t.Error("expected error when redis is unreachable")
		}
	})
}
