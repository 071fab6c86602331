package middleware

import (
	"net/http"
	"strings"

	"resource-share/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS 跨域中间件
func CORS(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origins := cfg.CORS.Origins
		origin := c.Request.Header.Get("Origin")

		// 检查origin是否在允许列表中
		allowed := false
		for _, o := range origins {
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		if cfg.CORS.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		methods := cfg.CORS.AllowMethods
		if len(methods) > 0 {
			c.Header("Access-Control-Allow-Methods", strings.Join(methods, ", "))
		}

		headers := cfg.CORS.AllowHeaders
		if len(headers) > 0 {
			c.Header("Access-Control-Allow-Headers", strings.Join(headers, ", "))
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
