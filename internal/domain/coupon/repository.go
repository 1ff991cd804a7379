package coupon

import (
	"context"

	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// Repository 优惠券仓储接口
type Repository interface {
	Create(ctx context.Context, c *Coupon) error

	// FindByID 不存在时返回ErrCouponNotFound
	FindByID(ctx context.Context, id uint) (*Coupon, error)

	// ListByMember status为空时不过滤,按发放时间倒序
	ListByMember(ctx context.Context, memberID uint, status Status, p pagination.Pageable) (pagination.Page[Coupon], error)

	// UpdateStatus 仅当当前状态为from时更新,返回是否更新成功
	UpdateStatus(ctx context.Context, c *Coupon, from Status) (bool, error)
}
