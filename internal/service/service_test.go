package service

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"resource-share/internal/config"
	"resource-share/internal/models"
	"resource-share/internal/repository"
	"resource-share/pkg/writelock"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func setupKV(t *testing.T) *repository.KVRepository {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:service_%d?mode=memory&cache=shared", seq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db))
	return repository.NewKVRepository(db)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestResourceRepo(t *testing.T, kv repository.KVStore) *repository.ResourceRepository {
	t.Helper()
	repo := repository.NewResourceRepository(kv, writelock.NewLocalLocker(), quietLogger())
	at := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	repo.SetClock(func() time.Time { return at })
	return repo
}

func defaultAdmin() config.AdminConfig {
	return config.AdminConfig{Username: "admin", Password: "password123"}
}

func ids(resources []models.Resource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.ID)
	}
	return out
}

var bg = context.Background()
