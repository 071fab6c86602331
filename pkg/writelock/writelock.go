// Package writelock 串行化对同一存储槽位的读-改-写。
package writelock

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrNotHeld 释放时锁不属于调用方(未获取、已过期或已被他人持有)
var ErrNotHeld = errors.New("写锁未被持有")

// Locker 按key互斥
// Acquire 返回持有凭证，Release 只释放凭证匹配的锁。
type Locker interface {
	Acquire(ctx context.Context, key string) (string, error)
	Release(ctx context.Context, key, token string) error
}

// LocalLocker 进程内写锁
type LocalLocker struct {
	mu      sync.Mutex
	slots   map[string]chan struct{}
	holders map[string]string
}

// NewLocalLocker 创建进程内写锁
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		slots:   make(map[string]chan struct{}),
		holders: make(map[string]string),
	}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

// Acquire 获取写锁，ctx结束时放弃等待
func (l *LocalLocker) Acquire(ctx context.Context, key string) (string, error) {
	select {
	case l.slot(key) <- struct{}{}:
	case <-ctx.Done():
		return "", fmt.Errorf("等待写锁 %s 超时: %w", key, ctx.Err())
	}

	token := uuid.NewString()
	l.mu.Lock()
	l.holders[key] = token
	l.mu.Unlock()
	return token, nil
}

// Release 释放写锁
func (l *LocalLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	if l.holders[key] != token || token == "" {
		l.mu.Unlock()
		return fmt.Errorf("释放写锁 %s 失败: %w", key, ErrNotHeld)
	}
	delete(l.holders, key)
	ch := l.slots[key]
	l.mu.Unlock()

	<-ch
	return nil
}
