package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/JoshuaJairaj/GreenCart-Logistics/config"
	"github.com/redis/go-redis/v9"
)

// OpenRedis connects and pings. The cache is optional at the service
// level, so callers may treat a failure here as non-fatal.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
