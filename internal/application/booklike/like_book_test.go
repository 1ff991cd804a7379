package booklike

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/booklike"
)

type mockLikes struct {
	booklike.Service
	mock.Mock
}

func (m *mockLikes) Like(ctx context.Context, memberID, bookID uint) (*booklike.BookLike, error) {
	args := m.Called(ctx, memberID, bookID)
	l, _ := args.Get(0).(*booklike.BookLike)
	return l, args.Error(1)
}

func (m *mockLikes) Unlike(ctx context.Context, memberID, bookID uint) error {
	return m.Called(ctx, memberID, bookID).Error(0)
}

func (m *mockLikes) CountLikes(ctx context.Context, bookID uint) (int64, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(int64), args.Error(1)
}

func TestLikeBookUseCase_Like(t *testing.T) {
	ctx := context.Background()
	likes := new(mockLikes)
	likes.On("Like", ctx, uint(1), uint(2)).Return(&booklike.BookLike{ID: 1}, nil)
	likes.On("CountLikes", ctx, uint(2)).Return(int64(3), nil)

	res, err := NewLikeBookUseCase(likes).Like(ctx, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, &LikeResult{BookID: 2, Likes: 3}, res)
}

func TestLikeBookUseCase_LikeDuplicate(t *testing.T) {
	ctx := context.Background()
	likes := new(mockLikes)
	likes.On("Like", ctx, uint(1), uint(2)).Return(nil, booklike.ErrBookLikeDuplicate)

	_, err := NewLikeBookUseCase(likes).Like(ctx, 1, 2)

	assert.ErrorIs(t, err, booklike.ErrBookLikeDuplicate)
	likes.AssertNotCalled(t, "CountLikes", mock.Anything, mock.Anything)
}

func TestLikeBookUseCase_Unlike(t *testing.T) {
	ctx := context.Background()
	likes := new(mockLikes)
	likes.On("Unlike", ctx, uint(1), uint(2)).Return(nil)
	likes.On("CountLikes", ctx, uint(2)).Return(int64(0), nil)

	res, err := NewLikeBookUseCase(likes).Unlike(ctx, 1, 2)

	require.NoError(t, err)
	assert.Zero(t, res.Likes)
}
