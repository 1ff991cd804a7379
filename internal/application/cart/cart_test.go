package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/cart"
)

type fakeTx struct{ calls int }

func (f *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type mockCarts struct {
	cart.Service
	mock.Mock
}

func (m *mockCarts) AddItem(ctx context.Context, memberID, bookID uint, quantity int) (*cart.Item, error) {
	args := m.Called(ctx, memberID, bookID, quantity)
	it, _ := args.Get(0).(*cart.Item)
	return it, args.Error(1)
}

func (m *mockCarts) Clear(ctx context.Context, memberID uint) error {
	return m.Called(ctx, memberID).Error(0)
}

func TestCartUseCase_AddItemRunsInTransaction(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	carts := new(mockCarts)
	carts.On("AddItem", ctx, uint(1), uint(2), 3).Return(&cart.Item{ID: 5, BookID: 2, Quantity: 3}, nil)

	it, err := NewCartUseCase(tx, carts).AddItem(ctx, 1, 2, 3)

	require.NoError(t, err)
	assert.Equal(t, uint(5), it.ID)
	assert.Equal(t, 1, tx.calls)
}

func TestCartUseCase_AddItemError(t *testing.T) {
	ctx := context.Background()
	carts := new(mockCarts)
	carts.On("AddItem", ctx, uint(1), uint(2), 500).Return(nil, cart.ErrQuantityTooLarge)

	it, err := NewCartUseCase(&fakeTx{}, carts).AddItem(ctx, 1, 2, 500)

	assert.ErrorIs(t, err, cart.ErrQuantityTooLarge)
	assert.Nil(t, it)
}

func TestCartUseCase_Clear(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	carts := new(mockCarts)
	boom := errors.New("db down")
	carts.On("Clear", ctx, uint(1)).Return(boom)

	assert.ErrorIs(t, NewCartUseCase(tx, carts).Clear(ctx, 1), boom)
	assert.Equal(t, 1, tx.calls)
}
