package database

import (
	"context"
	"fmt"

	"freight_pricing/internal/config"
	"freight_pricing/internal/infrastructure/retry"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns a client for the published-config cache, or nil when
// REDIS_ADDR is not set.
func ConnectRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	const operation = "database.ConnectRedis"

	if cfg.RedisAddr == "" {
		logger.Info("[startup] redis not configured, published config is read from the store")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	err := retry.Startup(ctx, logger, "redis", cfg.StartupMaxElapsed, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return client, nil
}
