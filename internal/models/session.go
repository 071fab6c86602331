package models

// Session 管理员会话
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	IsAdmin         bool   `json:"isAdmin"`
	Username        string `json:"username"`
}

// IsAdminSession 已登录且为管理员
func (s Session) IsAdminSession() bool {
	return s.IsAuthenticated && s.IsAdmin
}
