package member

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/member"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
)

type mockMembers struct {
	member.Service
	mock.Mock
}

func (m *mockMembers) Register(ctx context.Context, email, password, name string) (*member.Member, error) {
	args := m.Called(ctx, email, password, name)
	mem, _ := args.Get(0).(*member.Member)
	return mem, args.Error(1)
}

func (m *mockMembers) Authenticate(ctx context.Context, email, password string) (*member.Member, error) {
	args := m.Called(ctx, email, password)
	mem, _ := args.Get(0).(*member.Member)
	return mem, args.Error(1)
}

type fakeSessions struct {
	saved       []redis.Session
	savedTTL    time.Duration
	deleted     []uint
	blacklisted map[string]time.Duration
	saveErr     error
}

func (f *fakeSessions) SaveSession(_ context.Context, sess redis.Session, ttl time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, sess)
	f.savedTTL = ttl
	return nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, memberID uint) error {
	f.deleted = append(f.deleted, memberID)
	return nil
}

func (f *fakeSessions) AddToBlacklist(_ context.Context, token string, ttl time.Duration) error {
	if f.blacklisted == nil {
		f.blacklisted = map[string]time.Duration{}
	}
	f.blacklisted[token] = ttl
	return nil
}

func newTokens() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestLoginUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	members := new(mockMembers)
	members.On("Authenticate", ctx, "a@b.com", "passw0rd1").
		Return(&member.Member{ID: 9, Email: "a@b.com", Name: "alice", Role: member.RoleMember}, nil)
	sessions := &fakeSessions{}
	tokens := newTokens()

	res, err := NewLoginUseCase(members, tokens, sessions).Execute(ctx, LoginRequest{
		Email: "a@b.com", Password: "passw0rd1", IP: "10.0.0.1",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), res.Member.ID)
	assert.Equal(t, "MEMBER", res.Member.Role)
	assert.Equal(t, int64(900), res.ExpiresIn)

	claims, err := tokens.ParseToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.MemberID)

	require.Len(t, sessions.saved, 1)
	assert.Equal(t, "10.0.0.1", sessions.saved[0].IP)
	assert.Equal(t, 24*time.Hour, sessions.savedTTL)
}

func TestLoginUseCase_SessionFailureDoesNotBlockLogin(t *testing.T) {
	ctx := context.Background()
	members := new(mockMembers)
	members.On("Authenticate", ctx, "a@b.com", "x").Return(&member.Member{ID: 1, Role: member.RoleMember}, nil)

	res, err := NewLoginUseCase(members, newTokens(), &fakeSessions{saveErr: errors.New("redis down")}).
		Execute(ctx, LoginRequest{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	ctx := context.Background()
	members := new(mockMembers)
	members.On("Authenticate", ctx, "a@b.com", "bad").Return(nil, apperrors.ErrInvalidPassword)
	sessions := &fakeSessions{}

	_, err := NewLoginUseCase(members, newTokens(), sessions).Execute(ctx, LoginRequest{Email: "a@b.com", Password: "bad"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	assert.Empty(t, sessions.saved)
}

func TestLogoutUseCase_Execute(t *testing.T) {
	sessions := &fakeSessions{}
	err := NewLogoutUseCase(newTokens(), sessions).Execute(context.Background(), 9, "token-abc")

	require.NoError(t, err)
	assert.Equal(t, []uint{9}, sessions.deleted)
	assert.Equal(t, 15*time.Minute, sessions.blacklisted["token-abc"])
}

func TestRegisterUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	members := new(mockMembers)
	members.On("Register", ctx, "a@b.com", "passw0rd1", "alice").
		Return(&member.Member{ID: 3, Email: "a@b.com", Name: "alice", Role: member.RoleMember, Password: "hash"}, nil)

	info, err := NewRegisterUseCase(members).Execute(ctx, RegisterRequest{Email: "a@b.com", Password: "passw0rd1", Name: "alice"})

	require.NoError(t, err)
	assert.Equal(t, MemberInfo{ID: 3, Email: "a@b.com", Name: "alice", Role: "MEMBER"}, *info)
}
