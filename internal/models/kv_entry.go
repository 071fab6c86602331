package models

import (
	"time"
)

// KVEntry 键值槽位
type KVEntry struct {
	Key       string    `gorm:"column:slot_key;primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
