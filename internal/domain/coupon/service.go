package coupon

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// Service 优惠券领域服务
type Service interface {
	// Issue 给会员发放READY状态的优惠券
	Issue(ctx context.Context, memberID, couponFormID uint) (*Coupon, error)

	ListByMember(ctx context.Context, memberID uint, status Status, p pagination.Pageable) (pagination.Page[Coupon], error)

	// Use 使用优惠券,非本人的券视为不存在
	Use(ctx context.Context, memberID, couponID uint) (*Coupon, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService 创建优惠券服务
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Issue(ctx context.Context, memberID, couponFormID uint) (*Coupon, error) {
	c := &Coupon{
		CouponFormID: couponFormID,
		MemberID:     memberID,
		Status:       StatusReady,
		IssuedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListByMember(ctx context.Context, memberID uint, status Status, p pagination.Pageable) (pagination.Page[Coupon], error) {
	return s.repo.ListByMember(ctx, memberID, status, p)
}

// Use 条件更新(status = READY)防止并发重复使用
func (s *service) Use(ctx context.Context, memberID, couponID uint) (*Coupon, error) {
	c, err := s.repo.FindByID(ctx, couponID)
	if err != nil {
		return nil, err
	}
	if c.MemberID != memberID {
		return nil, ErrCouponNotFound
	}

	if err := c.Use(s.now()); err != nil {
		return nil, err
	}

	ok, err := s.repo.UpdateStatus(ctx, c, StatusReady)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCouponStatus
	}
	return c, nil
}
