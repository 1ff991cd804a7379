package member

import (
	"time"
)

// Role 会员角色
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

// Member 会员实体(聚合根)
// 1. Password为bcrypt哈希值,实体不提供明文访问
// 2. 领域实体不带GORM tag,映射在mysql包完成
type Member struct {
	ID        uint
	Email     string
	Password  string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMember 创建普通会员(hashedPassword必须已加密)
func NewMember(email, hashedPassword, name string) *Member {
	now := time.Now()
	return &Member{
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		Role:      RoleMember,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 是否为管理员
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}
