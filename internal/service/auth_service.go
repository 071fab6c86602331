package service

import (
	"context"
	"fmt"
	"sync"

	"resource-share/internal/dto"
	"resource-share/internal/models"
	"resource-share/internal/utils"
)

// AuthService 认证服务
// 只有最近一次登录签发的Token有效，退出登录或重新登录后旧Token失效。
type AuthService struct {
	session    *SessionService
	jwtManager *utils.JWTManager

	mu      sync.RWMutex
	tokenID string
}

// NewAuthService 创建认证服务
func NewAuthService(session *SessionService, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		session:    session,
		jwtManager: jwtManager,
	}
}

// Login 管理员登录，成功后签发Token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	ok, err := s.session.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthFailed
	}

	current := s.session.Current()
	token, tokenID, err := s.jwtManager.GenerateTokenWithID(current.Username, current.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	s.mu.Lock()
	s.tokenID = tokenID
	s.mu.Unlock()

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Session:     current,
	}, nil
}

// Logout 退出登录，会话清除后当前Token同时失效
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.session.Logout(ctx)
	if !s.session.Current().IsAuthenticated {
		s.mu.Lock()
		s.tokenID = ""
		s.mu.Unlock()
	}
	return err
}

// Current 当前会话
func (s *AuthService) Current() models.Session {
	return s.session.Current()
}

// Authorize 管理接口鉴权：会话必须是管理员，且Token是该会话最近一次登录签发的
func (s *AuthService) Authorize(token string) (*utils.JWTClaims, error) {
	current := s.session.Current()
	if !current.IsAdminSession() {
		return nil, ErrAuthFailed
	}

	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if !claims.IsAdmin || claims.Username != current.Username {
		return nil, ErrAuthFailed
	}

	s.mu.RLock()
	issued := s.tokenID
	s.mu.RUnlock()
	if issued == "" || claims.ID != issued {
		return nil, ErrAuthFailed
	}
	return claims, nil
}
