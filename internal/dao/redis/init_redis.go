// Package redis wraps the cache operations used by the service layer:
// favorites sets, refresh-token session keys and request-list cache
// invalidation. This file holds connection initialization only.
package redis

import (
	"context"
	"strconv"

	"imovel_hub_server/internal/config"

	"github.com/redis/go-redis/v9"
)

// redisClient is the package-wide client instance.
var redisClient *redis.Client

var ctx = context.Background()

// Init creates the Redis client from configuration.
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,
		// pool sizing
		PoolSize:     50,
		MinIdleConns: 10,
	})
}

// Close releases the client. Called during shutdown.
func Close() error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Close()
}

// Enabled reports whether Init has run. Services treat the cache as
// best-effort and skip it when disabled (e.g. in tests).
func Enabled() bool {
	return redisClient != nil
}
