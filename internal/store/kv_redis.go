package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"artpiece/internal/domain"
)

// DefaultRedisPrefix namespaces artpiece keys in a shared Redis.
const DefaultRedisPrefix = "artpiece:"

// RedisKV keeps values in Redis under prefix+key, without expiry.
type RedisKV struct {
	client *redis.Client
	prefix string
}

// NewRedisKV returns a Redis-backed key-value store.
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: prefix}
}

// Get returns the stored value for key and whether it was present.
func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

// Set replaces the value for key.
func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *RedisKV) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Compile-time assertion that RedisKV implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*RedisKV)(nil)
