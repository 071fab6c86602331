package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"resource-share/internal/config"
	"resource-share/internal/models"
	"resource-share/internal/repository"
	"resource-share/internal/service"
	"resource-share/pkg/writelock"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// app 按配置组装好的运行时依赖
type app struct {
	cfg       *config.Config
	logger    *logrus.Logger
	resources *repository.ResourceRepository
	session   *service.SessionService
	closers   []func() error
}

func newApp(configFile string) (*app, error) {
	// 加载配置
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}

	kv, locker, err := a.openStorage()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.resources = repository.NewResourceRepository(kv, locker, logger.WithField("component", "resources"))
	a.session = service.NewSessionService(kv, service.NewAdminCredentials(cfg.Admin), logger.WithField("component", "session"))
	return a, nil
}

// openStorage 根据存储驱动创建键值存储和写锁
func (a *app) openStorage() (repository.KVStore, writelock.Locker, error) {
	if a.cfg.Storage.IsSQL() {
		// 初始化数据库
		db, err := models.InitDB(a.cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("初始化数据库失败: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("获取数据库连接失败: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		return repository.NewKVRepository(db), writelock.NewLocalLocker(), nil
	}

	// 初始化Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.GetAddress(),
		DB:       a.cfg.Redis.DB,
		Password: a.cfg.Redis.Password,
	})
	a.closers = append(a.closers, redisClient.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	prefix := a.cfg.Storage.KeyPrefix
	kv := repository.NewRedisKVRepository(redisClient, prefix)
	locker := writelock.NewRedisLocker(redisClient, prefix, a.cfg.Redis.GetLockTimeout())
	return kv, locker, nil
}

// Close 释放存储连接
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.WithError(err).Warn("关闭连接失败")
		}
	}
	a.closers = nil
}

// newLogger 初始化日志
func newLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}

	logger := logrus.New()
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)
	return logger, nil
}
