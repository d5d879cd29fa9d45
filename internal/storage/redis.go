package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend хранит каждый слот в отдельном ключе Redis без срока жизни
type RedisBackend struct {
	redisClient *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{redisClient: client}
}

func (r *RedisBackend) GetItem(ctx context.Context, key string) (string, bool, error) {
	val, err := r.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get slot %s from redis: %w", key, err)
	}
	return val, true, nil
}

func (r *RedisBackend) SetItem(ctx context.Context, key, value string) error {
	if err := r.redisClient.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set slot %s in redis: %w", key, err)
	}
	return nil
}

func (r *RedisBackend) RemoveItem(ctx context.Context, key string) error {
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to remove slot %s from redis: %w", key, err)
	}
	return nil
}
