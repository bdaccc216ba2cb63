package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/response"
)

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 认证是配置开关（auth.enabled），关闭时所有接口公开
// 2. 开启时写接口要求管理员登录：提取Token → 查黑名单 → 验证
// 3. 当前Token注入Context，登出接口从中取出并吊销
type AuthMiddleware struct {
	enabled    bool
	jwtManager *jwt.Manager
	tokenStore *redis.TokenStore
}

// NewAuthMiddleware 创建认证中间件
// enabled为false时jwtManager/tokenStore可以为nil
func NewAuthMiddleware(enabled bool, jwtManager *jwt.Manager, tokenStore *redis.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		enabled:    enabled,
		jwtManager: jwtManager,
		tokenStore: tokenStore,
	}
}

// RequireAuth 要求管理员登录
// 使用方式：
//
//	writes := r.Group("/api")
//	writes.Use(authMiddleware.RequireAuth())
//	writes.POST("/books/", handler.CreateBook)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 认证未开启时直接放行
		if !m.enabled {
			c.Next()
			return
		}

		// 1. 从Header提取Token
		// 格式：Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, 40100, "请先登录")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, 40101, "Token格式错误")
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 2. 检查Token是否已被吊销（管理员已登出）
		revoked, err := m.tokenStore.IsRevoked(c.Request.Context(), tokenString)
		if err != nil {
			response.ErrorWithCode(c, 50000, "验证Token失败")
			c.Abort()
			return
		}
		if revoked {
			response.ErrorWithCode(c, 40102, "Token已失效，请重新登录")
			c.Abort()
			return
		}

		// 3. 验证Token并解析Claims
		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err) // 自动处理ErrTokenExpired、ErrInvalidToken
			c.Abort()
			return
		}

		// 4. 注入Context，登出接口需要拿到原始Token
		c.Set("username", claims.Username)
		c.Set("token", tokenString)

		c.Next()
	}
}

// GetToken 从Context取出当前请求的Token
func GetToken(c *gin.Context) (string, bool) {
	token, ok := c.Get("token")
	if !ok {
		return "", false
	}
	s, ok := token.(string)
	return s, ok
}
