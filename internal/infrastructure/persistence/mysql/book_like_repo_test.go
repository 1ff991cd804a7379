package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/booklike"
)

func TestBookLikeRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBookLikeRepository(db)
	b := seedBook(t, db, bookFixture{title: "Go", price: 100})

	like := &booklike.BookLike{MemberID: 1, BookID: b.ID, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, like))
	assert.NotZero(t, like.ID)

	exists, err := repo.Exists(ctx, 1, b.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// 唯一索引拦截重复点赞
	err = repo.Create(ctx, &booklike.BookLike{MemberID: 1, BookID: b.ID, CreatedAt: time.Now()})
	assert.ErrorIs(t, err, booklike.ErrBookLikeDuplicate)

	n, err := NewBookQueryRepository(db).CountLikeByBookID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete(ctx, 1, b.ID))
	assert.ErrorIs(t, repo.Delete(ctx, 1, b.ID), booklike.ErrBookLikeNotFound)
}
