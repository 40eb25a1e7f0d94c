package cache

import (
	"context"
	"fmt"

	"ledger/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client for cfg. It does not dial until first use.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Connect returns a pinged client, or nil when Redis is not configured.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	client := NewRedisClient(cfg)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return client, nil
}
