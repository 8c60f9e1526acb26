package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smatech/auth-service/internal/infrastructure/config"
)

// pingTimeout bounds the connectivity check at startup. The listing cache
// runs its own per-call deadlines through the request context.
const pingTimeout = 5 * time.Second

// Connect builds a client for cfg.Addr and verifies it answers a ping
// before the cache layer gets hold of it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
