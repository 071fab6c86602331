package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"resource-share/internal/models"
	"resource-share/pkg/writelock"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// setupDB 为每个测试创建独立的内存SQLite
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:repo_%d?mode=memory&cache=shared", seq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func fixedClock(ts string) func() time.Time {
	at, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return at }
}

func newTestRepo(t *testing.T) (*ResourceRepository, *KVRepository) {
	t.Helper()
	kv := NewKVRepository(setupDB(t))
	repo := NewResourceRepository(kv, writelock.NewLocalLocker(), quietLogger())
	repo.SetClock(fixedClock("2026-10-19T08:30:00Z"))
	return repo, kv
}

// brokenKV 模拟不可用的存储
type brokenKV struct{}

var errBackendDown = errors.New("backend down")

func (brokenKV) Get(context.Context, string) (string, bool, error) { return "", false, errBackendDown }
func (brokenKV) Set(context.Context, string, string) error         { return errBackendDown }
func (brokenKV) Remove(context.Context, string) error              { return errBackendDown }
