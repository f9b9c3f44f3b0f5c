package cache

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/rakapradana/kosthub-backend/internal/config"
)

// NewClient builds a Redis client from config. Returns nil when no address is
// configured; callers treat a nil client as cache-disabled.
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
