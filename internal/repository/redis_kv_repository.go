package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisKVRepository 基于Redis的键值存储
type RedisKVRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisKVRepository 创建Redis键值Repository
func NewRedisKVRepository(client *redis.Client, keyPrefix string) *RedisKVRepository {
	return &RedisKVRepository{client: client, keyPrefix: keyPrefix}
}

// Get 读取槽位
func (r *RedisKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set 写入槽位，不过期
func (r *RedisKVRepository) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.keyPrefix+key, value, 0).Err()
}

// Remove 删除槽位
func (r *RedisKVRepository) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.keyPrefix+key).Err()
}
