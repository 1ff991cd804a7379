package member

import (
	"context"
	"log/slog"
	"time"

	"github.com/xiebiao/bookstore-api/internal/domain/member"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
	"github.com/xiebiao/bookstore-api/pkg/logger"
)

// SessionStore 登录会话存储(Redis实现见persistence/redis)
type SessionStore interface {
	SaveSession(ctx context.Context, sess redis.Session, ttl time.Duration) error
	DeleteSession(ctx context.Context, memberID uint) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
}

// LoginUseCase 会员登录用例
// 1. 校验邮箱密码
// 2. 生成JWT Token对
// 3. 保存会话到Redis
type LoginUseCase struct {
	members  member.Service
	tokens   *jwt.Manager
	sessions SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(members member.Service, tokens *jwt.Manager, sessions SessionStore) *LoginUseCase {
	return &LoginUseCase{members: members, tokens: tokens, sessions: sessions}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
	IP       string
}

// LoginResponse 登录响应
type LoginResponse struct {
	Member       MemberInfo `json:"member"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresIn    int64      `json:"expires_in"`
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	m, err := uc.members.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokens.GenerateToken(m.ID, m.Email, string(m.Role))
	if err != nil {
		return nil, err
	}

	// 会话保存失败不影响登录
	sess := redis.Session{MemberID: m.ID, Email: m.Email, Role: string(m.Role), IP: req.IP, LoginAt: time.Now()}
	if err := uc.sessions.SaveSession(ctx, sess, uc.tokens.RefreshTokenExpire()); err != nil {
		logger.FromContext(ctx).Warn("保存会话失败", slog.Uint64("member_id", uint64(m.ID)), slog.Any("error", err))
	}

	return &LoginResponse{
		Member:       toMemberInfo(m),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// LogoutUseCase 会员登出用例
type LogoutUseCase struct {
	tokens   *jwt.Manager
	sessions SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(tokens *jwt.Manager, sessions SessionStore) *LogoutUseCase {
	return &LogoutUseCase{tokens: tokens, sessions: sessions}
}

// Execute 删除会话,并把Access Token加入黑名单直到其自然过期
func (uc *LogoutUseCase) Execute(ctx context.Context, memberID uint, accessToken string) error {
	if err := uc.sessions.DeleteSession(ctx, memberID); err != nil {
		return err
	}
	return uc.sessions.AddToBlacklist(ctx, accessToken, uc.tokens.AccessTokenExpire())
}
