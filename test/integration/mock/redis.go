package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis

// NewRedis returns a client for a shared in-process Redis server.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		redisConn = openRedisConn()
	})

	return redisConn
}

func openRedisConn() *redis.Client {
	var err error
	redisServer, err = miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{
		Addr: redisServer.Addr(),
	})
}

// ClearRedis removes every key.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}

// RedisKeyExists reports whether key is currently stored.
func RedisKeyExists(key string) bool {
	if redisServer == nil {
		return false
	}
	return redisServer.Exists(key)
}
