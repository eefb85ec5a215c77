package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "grocery:list:"

// RedisStore keeps grocery lists as plain Redis strings without expiry.
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

// Create implements Store
func (s *RedisStore) Create(ctx context.Context, id string, payload json.RawMessage) error {
	if err := s.redis.Set(ctx, redisKey(id), []byte(payload), 0).Err(); err != nil {
		return fmt.Errorf("failed to store grocery list in Redis: %w", err)
	}
	return nil
}

// Get implements Store
func (s *RedisStore) Get(ctx context.Context, id string) (json.RawMessage, bool, error) {
	data, err := s.redis.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get grocery list from Redis: %w", err)
	}
	return json.RawMessage(data), true, nil
}

// Delete implements Store
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete grocery list from Redis: %w", err)
	}
	return nil
}

// Ping implements Store
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}
