package config

import (
	"fmt"
	"time"
)

// Config 应用配置结构
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis_service"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Admin   AdminConfig   `mapstructure:"admin"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress 获取服务器地址
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// 存储驱动
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// StorageConfig 键值存储配置
// Driver 为 sqlite/mysql/postgres 时使用 DSN 打开数据库，redis 时使用 redis_service 配置。
type StorageConfig struct {
	Driver    string `mapstructure:"driver"`
	DSN       string `mapstructure:"dsn"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// IsSQL 是否为SQL后端
func (s *StorageConfig) IsSQL() bool {
	return s.Driver == DriverSQLite || s.Driver == DriverMySQL || s.Driver == DriverPostgres
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	DB          int    `mapstructure:"db"`
	Password    string `mapstructure:"password"`
	LockTimeout int    `mapstructure:"lock_timeout"`
}

// GetAddress 获取Redis地址
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GetLockTimeout 获取写锁等待时间
func (r *RedisConfig) GetLockTimeout() time.Duration {
	return time.Duration(r.LockTimeout) * time.Second
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	Algorithm     string `mapstructure:"algorithm"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

// GetExpireDuration 获取过期时间
func (j *JWTConfig) GetExpireDuration() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

// AdminConfig 管理员配置
// Password 可以是明文，也可以是 bcrypt 哈希($2a$/$2b$开头)
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// CORSConfig CORS配置
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}

// 筛选模式
const (
	FilterModeIntersect = "intersect"
	FilterModeLegacy    = "legacy"
)

// CatalogConfig 资源目录配置
type CatalogConfig struct {
	FilterMode string `mapstructure:"filter_mode"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
