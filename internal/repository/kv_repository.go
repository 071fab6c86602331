package repository

import (
	"context"
	"errors"

	"resource-share/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore 键值槽位存储
// 值为字符串，缺失的key返回 ok=false 而不是错误。
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// KVRepository 基于数据库表的键值存储
type KVRepository struct {
	db *gorm.DB
}

// NewKVRepository 创建键值Repository
func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get 读取槽位
func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := r.db.WithContext(ctx).Where("slot_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set 写入槽位，已存在则覆盖
func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Remove 删除槽位，不存在时不报错
func (r *KVRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&models.KVEntry{}, "slot_key = ?", key).Error
}
