package account

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionCache stores issued session tokens so the auth middleware can
// validate them without re-verifying signatures on every request.
type SessionCache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// redisSessionCache backs SessionCache with the auth Redis DB.
type redisSessionCache struct {
	client *redis.Client
}

// NewRedisSessionCache wraps a Redis client as a SessionCache.
func NewRedisSessionCache(client *redis.Client) SessionCache {
	return &redisSessionCache{client: client}
}

func (c *redisSessionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisSessionCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
