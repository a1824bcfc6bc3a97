// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/lingopress/internal/platform/constants"
)

// RedisCache implements [PublicCache] on Redis.
//
// Keys embed a generation counter; Invalidate bumps the counter so stale
// entries become unreachable and expire on their own.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed public cache.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = constants.DefaultPublicCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (cache *RedisCache) generation(context context.Context) (string, error) {
	generation, err := cache.client.Get(context, constants.RedisKeyPublicGen).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis_public_cache_generation_failed: %w", err)
	}
	return generation, nil
}

func (cache *RedisCache) key(context context.Context, key string) (string, error) {
	generation, err := cache.generation(context)
	if err != nil {
		return "", err
	}
	return constants.RedisPrefixPublicPosts + generation + ":" + key, nil
}

func (cache *RedisCache) Get(context context.Context, key string, dst any) (bool, error) {
	fullKey, err := cache.key(context, key)
	if err != nil {
		return false, err
	}

	raw, err := cache.client.Get(context, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_public_cache_get_failed: %w", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("redis_public_cache_decode_failed: %w", err)
	}
	return true, nil
}

func (cache *RedisCache) Set(context context.Context, key string, value any) error {
	fullKey, err := cache.key(context, key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_public_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, fullKey, raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_public_cache_set_failed: %w", err)
	}
	return nil
}

func (cache *RedisCache) Invalidate(context context.Context) error {
	if err := cache.client.Incr(context, constants.RedisKeyPublicGen).Err(); err != nil {
		return fmt.Errorf("redis_public_cache_invalidate_failed: %w", err)
	}
	return nil
}
