package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/coupon"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

func TestCouponRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCouponRepository(db)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	var ids []uint
	for i := 0; i < 3; i++ {
		c := &coupon.Coupon{CouponFormID: 10, MemberID: 1, Status: coupon.StatusReady, IssuedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, repo.Create(ctx, c))
		ids = append(ids, c.ID)
	}
	require.NoError(t, repo.Create(ctx, &coupon.Coupon{CouponFormID: 10, MemberID: 2, Status: coupon.StatusReady, IssuedAt: base}))

	c, err := repo.FindByID(ctx, ids[0])
	require.NoError(t, err)
	require.NoError(t, c.Use(base))

	ok, err := repo.UpdateStatus(ctx, c, coupon.StatusReady)
	require.NoError(t, err)
	assert.True(t, ok)

	// 已不是READY,条件更新失败
	ok, err = repo.UpdateStatus(ctx, c, coupon.StatusReady)
	require.NoError(t, err)
	assert.False(t, ok)

	page, err := repo.ListByMember(ctx, 1, "", pagination.Of(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Content, 3)
	assert.Equal(t, ids[2], page.Content[0].ID)

	page, err = repo.ListByMember(ctx, 1, coupon.StatusReady, pagination.Of(1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Content, 1)

	page, err = repo.ListByMember(ctx, 1, coupon.StatusUsed, pagination.Of(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, coupon.StatusUsed, page.Content[0].Status)
	assert.NotNil(t, page.Content[0].UsedAt)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
}
