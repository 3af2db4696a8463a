package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CorsMiddleware 跨域处理
// 允许的域名来自 ALLOWED_ORIGINS（逗号分隔），开发环境放宽本机与私网地址
func CorsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		// 根据不同 Origin 进行缓存区分
		c.Writer.Header().Add("Vary", "Origin")

		allowed := false
		for _, allowedOrigin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
			if allowedOrigin != "" && origin == strings.TrimSpace(allowedOrigin) {
				allowed = true
				break
			}
		}

		// 开发环境放宽：允许本机与私网 IP 的任意端口
		env := strings.ToLower(os.Getenv("ENV"))
		isDev := env == "" || env == "dev" || env == "development"
		isLocalDynamic := strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:") ||
			strings.HasPrefix(origin, "https://localhost:") ||
			strings.HasPrefix(origin, "https://127.0.0.1:")
		isLAN := strings.HasPrefix(origin, "http://192.168.") ||
			strings.HasPrefix(origin, "http://10.") ||
			strings.HasPrefix(origin, "http://172.") ||
			strings.HasPrefix(origin, "https://192.168.") ||
			strings.HasPrefix(origin, "https://10.") ||
			strings.HasPrefix(origin, "https://172.")
		if !allowed && isDev && origin != "" && (isLocalDynamic || isLAN) {
			allowed = true
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, Accept")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SecurityHeadersMiddleware 基本安全头部
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// HSTS - 在生产环境启用
		if os.Getenv("ENV") == "production" {
			c.Writer.Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		}

		c.Next()
	}
}
