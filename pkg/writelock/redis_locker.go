package writelock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// 释放锁的Lua脚本
// 只有当前值等于调用方凭证时才删除，避免过期后误删他人的锁
var releaseScript = redis.NewScript(
	`if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0`,
)

// RedisLocker 基于Redis的跨进程写锁
// 多个服务进程共用同一个Redis存储时，用它串行化整份集合的读-改-写。
// 锁带过期时间，防止进程崩溃后锁无法释放。
type RedisLocker struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	retry     time.Duration
}

// NewRedisLocker 创建基于Redis的写锁
func NewRedisLocker(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = time.Second
	}
	return &RedisLocker{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		retry:     50 * time.Millisecond,
	}
}

func (rl *RedisLocker) redisKey(key string) string {
	return rl.keyPrefix + "lock:" + key
}

// Acquire 获取写锁(SET NX + 过期时间)，直到成功或ctx结束
func (rl *RedisLocker) Acquire(ctx context.Context, key string) (string, error) {
	token := uuid.NewString()

	for {
		ok, err := rl.client.SetNX(ctx, rl.redisKey(key), token, rl.ttl).Result()
		if err != nil {
			return "", fmt.Errorf("获取写锁失败: %w", err)
		}
		if ok {
			return token, nil
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("等待写锁 %s 超时: %w", key, ctx.Err())
		case <-time.After(rl.retry):
		}
	}
}

// Release 释放写锁，锁已过期或属于他人时返回 ErrNotHeld
func (rl *RedisLocker) Release(ctx context.Context, key, token string) error {
	deleted, err := releaseScript.Run(ctx, rl.client, []string{rl.redisKey(key)}, token).Int64()
	if err != nil {
		return fmt.Errorf("执行Lua脚本失败: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("释放写锁 %s 失败: %w", key, ErrNotHeld)
	}
	return nil
}
