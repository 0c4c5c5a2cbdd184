package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionStore is the narrow persistence surface the wizard needs: string
// blobs with a TTL. The production store is Redis.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore wraps a Redis client as a SessionStore.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (r *redisSessionStore) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *redisSessionStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisSessionStore) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
