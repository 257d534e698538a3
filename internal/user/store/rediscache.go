package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"user-registry/internal/user/models"
	"user-registry/pkg/platform/sentinel"
)

// userKeyPrefix namespaces cached user records in Redis.
const userKeyPrefix = "users:id:"

// RedisCache is a TTL-bounded read cache in front of the user store. It is
// strictly best effort: the service treats cache failures as misses and
// invalidates entries on every mutation.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs a Redis-backed user cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Save caches a user record with the configured TTL.
func (c *RedisCache) Save(ctx context.Context, u *models.User) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return c.client.Set(ctx, userKeyPrefix+u.ID, payload, c.ttl).Err()
}

// Find returns the cached user or sentinel.ErrNotFound on a miss.
func (c *RedisCache) Find(ctx context.Context, id string) (*models.User, error) {
	payload, err := c.client.Get(ctx, userKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var u models.User
	if err := json.Unmarshal(payload, &u); err != nil {
		return nil, fmt.Errorf("unmarshal cached user: %w", err)
	}
	return &u, nil
}

// Invalidate drops the cached entry for an id. Missing keys are not an error.
func (c *RedisCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, userKeyPrefix+id).Err()
}
