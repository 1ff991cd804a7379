package coupon

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/coupon"
	"github.com/xiebiao/bookstore-api/internal/domain/member"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// CouponUseCase 优惠券发放、查询、使用
type CouponUseCase struct {
	coupons coupon.Service
	members member.Service
}

// NewCouponUseCase 创建优惠券用例
func NewCouponUseCase(coupons coupon.Service, members member.Service) *CouponUseCase {
	return &CouponUseCase{coupons: coupons, members: members}
}

// Issue 发放优惠券,会员必须存在
func (uc *CouponUseCase) Issue(ctx context.Context, memberID, couponFormID uint) (*coupon.Coupon, error) {
	if err := uc.members.MustExist(ctx, memberID); err != nil {
		return nil, err
	}
	return uc.coupons.Issue(ctx, memberID, couponFormID)
}

// ListMine status为空串时不过滤
func (uc *CouponUseCase) ListMine(ctx context.Context, memberID uint, status string, page, size int) (pagination.Page[coupon.Coupon], error) {
	st, err := coupon.ParseStatus(status)
	if err != nil {
		return pagination.Page[coupon.Coupon]{}, err
	}
	return uc.coupons.ListByMember(ctx, memberID, st, pagination.Of(page, size))
}

func (uc *CouponUseCase) Use(ctx context.Context, memberID, couponID uint) (*coupon.Coupon, error) {
	return uc.coupons.Use(ctx, memberID, couponID)
}
