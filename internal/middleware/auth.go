package middleware

import (
	"strings"

	"resource-share/internal/service"
	"resource-share/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminLoginPath 未登录访问管理接口时前端应跳转的页面
const AdminLoginPath = "/admin/login"

// AdminGate 管理员认证中间件
// 要求当前会话为管理员，且请求携带属于该会话用户的Bearer Token。
func AdminGate(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authService.Current().IsAdminSession() {
			utils.RedirectToLogin(c, "请先登录管理员账号", AdminLoginPath)
			c.Abort()
			return
		}

		// 获取Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RedirectToLogin(c, "未认证", AdminLoginPath)
			c.Abort()
			return
		}

		// 解析Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.RedirectToLogin(c, "无效的认证格式", AdminLoginPath)
			c.Abort()
			return
		}

		claims, err := authService.Authorize(parts[1])
		if err != nil {
			utils.RedirectToLogin(c, "Token无效或已过期", AdminLoginPath)
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("username", claims.Username)

		c.Next()
	}
}

// GetUsername 从上下文获取用户名
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}
	return username.(string), true
}
