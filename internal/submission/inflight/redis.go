package inflight

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sunsetguide/pkg/platform/sentinel"
)

const keyPrefix = "sunsetguide:inflight:"

// Redis shares the lock table across replicas with SET NX.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed lock.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Acquire implements the same contract as InMemory.Acquire.
func (l *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) error {
	ok, err := l.client.SetNX(ctx, keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire in-flight lock: %w", err)
	}
	if !ok {
		return sentinel.ErrConflict
	}
	return nil
}

// Release drops the lock for key.
func (l *Redis) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release in-flight lock: %w", err)
	}
	return nil
}
