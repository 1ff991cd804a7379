package coupon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/coupon"
	"github.com/xiebiao/bookstore-api/internal/domain/member"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

type mockCoupons struct {
	coupon.Service
	mock.Mock
}

func (m *mockCoupons) Issue(ctx context.Context, memberID, formID uint) (*coupon.Coupon, error) {
	args := m.Called(ctx, memberID, formID)
	c, _ := args.Get(0).(*coupon.Coupon)
	return c, args.Error(1)
}

func (m *mockCoupons) ListByMember(ctx context.Context, memberID uint, status coupon.Status, p pagination.Pageable) (pagination.Page[coupon.Coupon], error) {
	args := m.Called(ctx, memberID, status, p)
	return args.Get(0).(pagination.Page[coupon.Coupon]), args.Error(1)
}

type mockMembers struct {
	member.Service
	mock.Mock
}

func (m *mockMembers) MustExist(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestCouponUseCase_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("会员不存在", func(t *testing.T) {
		coupons, members := new(mockCoupons), new(mockMembers)
		members.On("MustExist", ctx, uint(8)).Return(member.ErrMemberNotFound)

		_, err := NewCouponUseCase(coupons, members).Issue(ctx, 8, 1)

		assert.ErrorIs(t, err, member.ErrMemberNotFound)
		coupons.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("发放", func(t *testing.T) {
		coupons, members := new(mockCoupons), new(mockMembers)
		members.On("MustExist", ctx, uint(8)).Return(nil)
		coupons.On("Issue", ctx, uint(8), uint(1)).Return(&coupon.Coupon{ID: 3, Status: coupon.StatusReady}, nil)

		c, err := NewCouponUseCase(coupons, members).Issue(ctx, 8, 1)

		require.NoError(t, err)
		assert.Equal(t, coupon.StatusReady, c.Status)
	})
}

func TestCouponUseCase_ListMine(t *testing.T) {
	ctx := context.Background()
	coupons := new(mockCoupons)
	p := pagination.Of(1, 10)
	coupons.On("ListByMember", ctx, uint(2), coupon.StatusUsed, p).
		Return(pagination.NewPage([]coupon.Coupon{{ID: 1}}, 1, p), nil)
	uc := NewCouponUseCase(coupons, new(mockMembers))

	page, err := uc.ListMine(ctx, 2, "USED", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)

	_, err = uc.ListMine(ctx, 2, "LOST", 1, 10)
	assert.ErrorIs(t, err, coupon.ErrInvalidStatus)
}
