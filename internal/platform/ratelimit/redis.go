package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCounter shares windows across instances through a Redis
// INCR + EXPIRE pair. The expiry is set when the key is first seen so
// a bucket never outlives its window.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}

	return incr.Val(), nil
}

func (c *RedisCounter) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping rate limit redis: %w", err)
	}
	return nil
}

func (c *RedisCounter) Close() error {
	return c.client.Close()
}

// NewCounterFromURI builds the backend selected by the storage URI:
// memory:// for the in-process counter, redis:// (or rediss://) for a
// shared Redis instance.
func NewCounterFromURI(uri string) (Counter, error) {
	trimmed := strings.TrimSpace(uri)
	switch {
	case trimmed == "" || strings.HasPrefix(trimmed, "memory://"):
		return NewMemoryCounter(), nil
	case strings.HasPrefix(trimmed, "redis://"), strings.HasPrefix(trimmed, "rediss://"):
		opts, err := redis.ParseURL(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse rate limit storage uri: %w", err)
		}
		return NewRedisCounter(redis.NewClient(opts)), nil
	default:
		return nil, fmt.Errorf("unsupported rate limit storage uri %q: expected memory:// or redis://", uri)
	}
}
