package models

import (
	"fmt"

	"resource-share/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库并迁移键值表
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Storage.DSN)
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.Storage.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.Storage.DSN)
	default:
		return nil, fmt.Errorf("存储驱动 %s 不是SQL数据库", cfg.Storage.Driver)
	}

	// 配置GORM
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // 使用静默模式
	})
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("迁移数据库失败: %w", err)
	}

	return db, nil
}

// AutoMigrate 自动迁移数据库表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&KVEntry{})
}
