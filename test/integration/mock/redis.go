package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts a single in-process redis server and returns a client for it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis drops every key held by the server.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}

// CountKeys returns how many keys match pattern.
func CountKeys(client *redis.Client, pattern string) (int, error) {
	keys, err := client.Keys(context.Background(), pattern).Result()
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}
