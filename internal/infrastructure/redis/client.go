package redisinfra

import (
	"github.com/recipeshare/api/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewClient builds the shared Redis client. Per-call timeouts and
// reconnects are the driver's concern; callers pass context per
// operation.
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
