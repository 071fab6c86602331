package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// 允许通过环境变量覆盖的配置项，例如 JWT_SECRET_KEY、ADMIN_PASSWORD
var envKeys = []string{
	"server.host",
	"server.port",
	"server.production_mode",
	"storage.driver",
	"storage.dsn",
	"storage.key_prefix",
	"redis_service.host",
	"redis_service.port",
	"redis_service.db",
	"redis_service.password",
	"jwt.secret_key",
	"admin.username",
	"admin.password",
	"catalog.filter_mode",
	"log.level",
}

// LoadConfig 加载配置文件
// configFile 为空时在 . 和 ./config 下查找 config.yaml，找不到则只使用环境变量和默认值。
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 设置配置文件路径
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// 读取环境变量
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("绑定环境变量失败: %w", err)
		}
	}

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 解析配置
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 设置默认值
	setDefaults(&cfg)

	// 验证配置
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &cfg, nil
}

// setDefaults 设置默认值
func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 18080
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverSQLite
	}
	if cfg.Storage.Driver == DriverSQLite && cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "./database/app.db"
	}
	if cfg.Storage.KeyPrefix == "" {
		cfg.Storage.KeyPrefix = "resource_share:"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379 // 标准 Redis 端口
	}
	if cfg.Redis.LockTimeout == 0 {
		cfg.Redis.LockTimeout = 5
	}
	if cfg.JWT.Algorithm == "" {
		cfg.JWT.Algorithm = "HS256"
	}
	if cfg.JWT.ExpireMinutes == 0 {
		cfg.JWT.ExpireMinutes = 1440 // 1天
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = "password123"
	}
	if cfg.CORS.AllowMethods == nil {
		cfg.CORS.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if cfg.CORS.AllowHeaders == nil {
		cfg.CORS.AllowHeaders = []string{"*"}
	}
	if cfg.Catalog.FilterMode == "" {
		cfg.Catalog.FilterMode = FilterModeIntersect
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

// validateConfig 验证配置
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务器端口: %d", cfg.Server.Port)
	}

	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT密钥不能为空")
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("存储驱动 %s 需要配置 dsn", cfg.Storage.Driver)
		}
	case DriverRedis:
	default:
		return fmt.Errorf("不支持的存储驱动: %s", cfg.Storage.Driver)
	}

	switch cfg.Catalog.FilterMode {
	case FilterModeIntersect, FilterModeLegacy:
	default:
		return fmt.Errorf("不支持的筛选模式: %s", cfg.Catalog.FilterMode)
	}

	// 检查数据库目录是否存在
	if cfg.Storage.Driver == DriverSQLite && !strings.HasPrefix(cfg.Storage.DSN, "file:") {
		dbDir := filepath.Dir(cfg.Storage.DSN)
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return fmt.Errorf("创建数据库目录失败: %w", err)
			}
		}
	}

	return nil
}
