package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

const (
	ctxMemberID    = "member_id"
	ctxEmail       = "email"
	ctxRole        = "role"
	ctxAccessToken = "access_token"
)

var (
	errTokenFormat  = apperrors.New(apperrors.ErrCodeInvalidToken, "Token格式错误")
	errTokenRevoked = apperrors.New(apperrors.ErrCodeInvalidToken, "Token已失效，请重新登录")
)

// Blacklist Token黑名单(persistence/redis.SessionStore实现)
type Blacklist interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证中间件
// 1. 从Authorization: Bearer <token>提取Token
// 2. 检查黑名单(已登出的Token)
// 3. 验证签名与有效期
// 4. 将会员信息注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  Blacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist Blacklist) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, blacklist: blacklist}
}

// RequireAuth 要求登录
//
//	authorized := r.Group("/bookstore")
//	authorized.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			if c.GetHeader("Authorization") == "" {
				abort(c, apperrors.ErrUnauthorized)
			} else {
				abort(c, errTokenFormat)
			}
			return
		}

		revoked, err := m.blacklist.IsInBlacklist(c.Request.Context(), token)
		if err != nil {
			logger.FromContext(c.Request.Context()).Error("检查Token黑名单失败", slog.Any("error", err))
			abort(c, apperrors.Wrap(err, "验证Token失败"))
			return
		}
		if revoked {
			abort(c, errTokenRevoked)
			return
		}

		claims, err := m.jwtManager.ParseToken(token)
		if err != nil {
			abort(c, err) // ErrTokenExpired / ErrInvalidToken
			return
		}

		setClaims(c, claims, token)
		c.Next()
	}
}

// RequireRole 要求指定角色,需放在RequireAuth之后
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		abort(c, apperrors.ErrForbidden)
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || scheme != "Bearer" || token == "" {
		return "", false
	}
	return token, true
}

func setClaims(c *gin.Context, claims *jwt.Claims, token string) {
	c.Set(ctxMemberID, claims.MemberID)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxRole, claims.Role)
	c.Set(ctxAccessToken, token)
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// =========================================
// Context辅助函数（供Handler使用）
// =========================================

// GetMemberID 当前登录会员ID,未登录返回0
func GetMemberID(c *gin.Context) uint {
	return c.GetUint(ctxMemberID)
}

// GetRole 当前登录会员角色
func GetRole(c *gin.Context) string {
	return c.GetString(ctxRole)
}

// GetAccessToken 当前请求的Access Token(登出时加入黑名单)
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxAccessToken)
}

// MustGetMemberID 用于已经通过RequireAuth的Handler,取不到时panic
func MustGetMemberID(c *gin.Context) uint {
	id := GetMemberID(c)
	if id == 0 {
		panic("member_id not found in context")
	}
	return id
}
