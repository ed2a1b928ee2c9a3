package redis

import (
	"context"
	"fmt"
	"time"

	lowimpl "github.com/redis/go-redis/v9"

	"contractbot/internal/config"
)

func NewClient(cfg config.RedisConfig) (*lowimpl.Client, error) {
	client := lowimpl.NewClient(&lowimpl.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}
