package member

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/member"
)

// RegisterUseCase 会员注册用例
type RegisterUseCase struct {
	members member.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(members member.Service) *RegisterUseCase {
	return &RegisterUseCase{members: members}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

// MemberInfo 会员信息(不含密码)
type MemberInfo struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toMemberInfo(m *member.Member) MemberInfo {
	return MemberInfo{ID: m.ID, Email: m.Email, Name: m.Name, Role: string(m.Role)}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*MemberInfo, error) {
	m, err := uc.members.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}
	info := toMemberInfo(m)
	return &info, nil
}
