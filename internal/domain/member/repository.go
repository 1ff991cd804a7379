package member

import (
	"context"
)

// Repository 会员仓储接口
type Repository interface {
	// Create 创建会员,邮箱已存在时返回ErrEmailDuplicate
	Create(ctx context.Context, m *Member) error

	// FindByID 不存在时返回ErrMemberNotFound
	FindByID(ctx context.Context, id uint) (*Member, error)

	// FindByEmail 不存在时返回ErrMemberNotFound
	FindByEmail(ctx context.Context, email string) (*Member, error)

	// ExistsByID 会员是否存在
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
