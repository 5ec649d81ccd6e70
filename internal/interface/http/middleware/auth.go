package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/response"
)

// Context中的键
const (
	ContextUserID      = "user_id"
	ContextEmail       = "email"
	ContextNickname    = "nickname"
	ContextAccessToken = "access_token"
)

// AuthMiddleware JWT认证中间件
// 流程：提取Bearer Token -> 查黑名单 -> 校验签名和有效期 -> 用户信息写入Context
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "Token格式错误")
			c.Abort()
			return
		}

		// 已登出的Token在过期前一直留在黑名单里
		blacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, apperrors.WithCause(apperrors.ErrRedisError, err))
			c.Abort()
			return
		}
		if blacklisted {
			response.ErrorWithCode(c, apperrors.ErrCodeTokenExpired, "Token已失效，请重新登录")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Set(ContextAccessToken, tokenString)
		c.Next()
	}
}

// OptionalAuth 有Token则解析，没有或无效时按匿名用户继续
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := m.jwtManager.ParseToken(tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextNickname, claims.Nickname)

	// 请求日志带上用户ID
	ctx := c.Request.Context()
	entry := logger.FromContext(ctx).WithField("user_id", claims.UserID)
	c.Request = c.Request.WithContext(logger.WithContext(ctx, entry))
}

// GetUserID 未登录时返回0
func GetUserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

func GetEmail(c *gin.Context) string {
	return c.GetString(ContextEmail)
}

// GetAccessToken 当前请求携带的Access Token，只在RequireAuth之后有值
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ContextAccessToken)
}

// MustGetUserID 只能在RequireAuth之后的Handler里调用
func MustGetUserID(c *gin.Context) uint {
	userID := GetUserID(c)
	if userID == 0 {
		panic("user_id not found in context")
	}
	return userID
}
