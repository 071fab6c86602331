package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"

	"resource-share/internal/config"
	"resource-share/internal/models"
	"resource-share/internal/repository"
	"resource-share/internal/utils"

	"github.com/sirupsen/logrus"
)

const (
	// LoggedInKey 登录标记槽位，值为 "true"
	LoggedInKey = "admin_logged_in"
	// UsernameKey 登录用户名槽位
	UsernameKey = "admin_username"
)

// CredentialVerifier 凭据校验
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// AdminCredentials 配置文件中的管理员账号
// 密码为 bcrypt 哈希时按哈希比对，否则按明文比对。
type AdminCredentials struct {
	Username string
	Password string
}

// NewAdminCredentials 从配置创建管理员凭据
func NewAdminCredentials(cfg config.AdminConfig) *AdminCredentials {
	return &AdminCredentials{Username: cfg.Username, Password: cfg.Password}
}

// Verify 校验用户名和密码
func (a *AdminCredentials) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) != 1 {
		return false
	}
	if utils.IsBcryptHash(a.Password) {
		return utils.CheckPassword(password, a.Password) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
}

// SessionService 进程内唯一的管理员会话
type SessionService struct {
	mu       sync.RWMutex
	session  models.Session
	kv       repository.KVStore
	verifier CredentialVerifier
	logger   logrus.FieldLogger
}

// NewSessionService 创建会话服务，初始为匿名状态
func NewSessionService(kv repository.KVStore, verifier CredentialVerifier, logger logrus.FieldLogger) *SessionService {
	return &SessionService{
		kv:       kv,
		verifier: verifier,
		logger:   logger,
	}
}

// Login 校验凭据，成功后更新会话并持久化登录标记
// 凭据错误返回 false 且不做任何改动。
func (s *SessionService) Login(ctx context.Context, username, password string) (bool, error) {
	if !s.verifier.Verify(username, password) {
		s.logger.WithField("username", username).Warn("管理员登录失败")
		return false, nil
	}

	if err := s.kv.Set(ctx, LoggedInKey, "true"); err != nil {
		return false, fmt.Errorf("保存登录状态失败: %w", err)
	}
	if err := s.kv.Set(ctx, UsernameKey, username); err != nil {
		return false, fmt.Errorf("保存登录状态失败: %w", err)
	}

	s.mu.Lock()
	s.session = models.Session{IsAuthenticated: true, IsAdmin: true, Username: username}
	s.mu.Unlock()

	s.logger.WithField("username", username).Info("管理员已登录")
	return true, nil
}

// Logout 清除持久化的登录标记和会话
// 先删除登录标记，删除失败时会话保持不变；标记删除后持久化状态已是未登录。
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, LoggedInKey); err != nil {
		return fmt.Errorf("清除登录状态失败: %w", err)
	}

	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if err := s.kv.Remove(ctx, UsernameKey); err != nil {
		return fmt.Errorf("清除登录用户名失败: %w", err)
	}
	return nil
}

// Restore 启动时从存储恢复会话
// 仅当标记为 "true" 且用户名非空时恢复为已登录。
func (s *SessionService) Restore(ctx context.Context) error {
	flag, _, err := s.kv.Get(ctx, LoggedInKey)
	if err != nil {
		return fmt.Errorf("读取登录状态失败: %w", err)
	}
	username, _, err := s.kv.Get(ctx, UsernameKey)
	if err != nil {
		return fmt.Errorf("读取登录状态失败: %w", err)
	}

	restored := models.Session{}
	if flag == "true" && username != "" {
		restored = models.Session{IsAuthenticated: true, IsAdmin: true, Username: username}
	}

	s.mu.Lock()
	s.session = restored
	s.mu.Unlock()
	return nil
}

// Current 当前会话快照
func (s *SessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}
