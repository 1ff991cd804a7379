package tag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/tag"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

type fakeTx struct{ calls int }

func (f *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type mockTags struct {
	tag.Service
	mock.Mock
}

func (m *mockTags) DeleteTag(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTags) ReadBooksByTag(ctx context.Context, tagID uint, q book.ListQuery) (pagination.Page[book.Detail], error) {
	args := m.Called(ctx, tagID, q)
	return args.Get(0).(pagination.Page[book.Detail]), args.Error(1)
}

func TestCommandUseCase_DeleteInTransaction(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	tags := new(mockTags)
	tags.On("DeleteTag", ctx, uint(4)).Return(tag.ErrTagNotFound)

	err := NewCommandUseCase(tx, tags).Delete(ctx, 4)

	assert.ErrorIs(t, err, tag.ErrTagNotFound)
	assert.Equal(t, 1, tx.calls)
}

func TestQueryUseCase_BooksByTag(t *testing.T) {
	ctx := context.Background()

	t.Run("非法排序", func(t *testing.T) {
		tags := new(mockTags)
		_, err := NewQueryUseCase(tags).BooksByTag(ctx, 1, appbook.ListBooksRequest{Sort: []string{"isbn"}})

		assert.ErrorIs(t, err, book.ErrInvalidSortKey)
		tags.AssertNotCalled(t, "ReadBooksByTag", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("按价格排序", func(t *testing.T) {
		tags := new(mockTags)
		q := book.ListQuery{Pageable: pagination.Of(1, 20), Orders: []book.Order{{Key: book.SortPrice, Desc: true}}}
		tags.On("ReadBooksByTag", ctx, uint(1), q).
			Return(pagination.NewPage([]book.Detail{{ID: 2}}, 1, q.Pageable), nil)

		page, err := NewQueryUseCase(tags).BooksByTag(ctx, 1, appbook.ListBooksRequest{Sort: []string{"price,desc"}})

		require.NoError(t, err)
		assert.Equal(t, uint(2), page.Content[0].ID)
	})
}
