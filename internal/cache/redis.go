package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisapp "github.com/Waleedanwar01/project-insurance-1/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

const redisPrefix = "cms:"

type RedisCache struct {
	client *redisapp.Client
	ttl    time.Duration
}

func NewRedisCache(client *redisapp.Client, opts Options) *RedisCache {
	return &RedisCache{client: client, ttl: opts.TTL}
}

func (r *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	const op = "cache.RedisCache.Get"

	raw, err := r.client.Get(ctx, redisPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%s: decode: %w", op, err)
	}

	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any) error {
	const op = "cache.RedisCache.Set"

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	if err := r.client.Set(ctx, redisPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	const op = "cache.RedisCache.Delete"

	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = redisPrefix + k
	}

	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
