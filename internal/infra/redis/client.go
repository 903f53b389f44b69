package redis

import (
	"context"
	"fmt"
	"time"

	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

// NewClient creates the Redis client from app.redis.* properties and pings it.
func NewClient(ctx context.Context) (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithNamespace(resource.GetString("app.redis.namespace"))

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", config.Addr(), err)
	}
	return client, nil
}
