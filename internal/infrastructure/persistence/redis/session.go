package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// SessionStore 会员会话与Token黑名单
// Key: session:{member_id}(Hash)、blacklist:{token}(String)
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Session 登录会话
type Session struct {
	MemberID uint
	Email    string
	Role     string
	IP       string
	LoginAt  time.Time
}

func sessionKey(memberID uint) string {
	return fmt.Sprintf("session:%d", memberID)
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

// SaveSession 保存会话,ttl与Refresh Token有效期一致
// HSet与Expire在一个事务管道中执行
func (s *SessionStore) SaveSession(ctx context.Context, sess Session, ttl time.Duration) error {
	key := sessionKey(sess.MemberID)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"member_id": sess.MemberID,
			"email":     sess.Email,
			"role":      sess.Role,
			"ip":        sess.IP,
			"login_at":  sess.LoginAt.Unix(),
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "保存会话失败")
	}
	return nil
}

// GetSession 会话不存在时返回ErrUnauthorized
func (s *SessionStore) GetSession(ctx context.Context, memberID uint) (*Session, error) {
	result, err := s.client.HGetAll(ctx, sessionKey(memberID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "获取会话失败")
	}
	if len(result) == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	loginAt, _ := strconv.ParseInt(result["login_at"], 10, 64)
	return &Session{
		MemberID: memberID,
		Email:    result["email"],
		Role:     result["role"],
		IP:       result["ip"],
		LoginAt:  time.Unix(loginAt, 0),
	}, nil
}

// DeleteSession 登出时删除会话
func (s *SessionStore) DeleteSession(ctx context.Context, memberID uint) error {
	if err := s.client.Del(ctx, sessionKey(memberID)).Err(); err != nil {
		return apperrors.Wrap(err, "删除会话失败")
	}
	return nil
}

// AddToBlacklist Token加入黑名单,ttl取Access Token有效期
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "添加Token到黑名单失败")
	}
	return nil
}

// IsInBlacklist Token是否已被吊销
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "检查黑名单失败")
	}
	return n > 0, nil
}
