package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ProfileCache implements ports.ProfileCache using Redis. It holds the
// serialized dashboard projection keyed by owner.
type ProfileCache struct {
	client *goredis.Client
	prefix string
}

// NewProfileCache creates a new Redis-backed profile cache.
func NewProfileCache(client *goredis.Client) *ProfileCache {
	return &ProfileCache{
		client: client,
		prefix: "seller:profile:",
	}
}

// Get retrieves a cached projection.
// Returns nil, nil on a cache miss.
func (c *ProfileCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+userID.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis profile get: %w", err)
	}
	return val, nil
}

// Set stores a projection with TTL.
func (c *ProfileCache) Set(ctx context.Context, userID uuid.UUID, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+userID.String(), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis profile set: %w", err)
	}
	return nil
}

// Invalidate drops the cached projection after a write.
func (c *ProfileCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, c.prefix+userID.String()).Err(); err != nil {
		return fmt.Errorf("redis profile del: %w", err)
	}
	return nil
}
