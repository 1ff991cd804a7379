package cart

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/cart"
	"github.com/xiebiao/bookstore-api/internal/domain/shared"
)

// CartUseCase 会员购物车
// 1. 懒创建购物车与合并条目在同一事务
// 2. 清空购物车时购物车与条目在同一事务删除
type CartUseCase struct {
	tx    shared.Transactor
	carts cart.Service
}

// NewCartUseCase 创建购物车用例
func NewCartUseCase(tx shared.Transactor, carts cart.Service) *CartUseCase {
	return &CartUseCase{tx: tx, carts: carts}
}

func (uc *CartUseCase) Get(ctx context.Context, memberID uint) (*cart.View, error) {
	return uc.carts.GetCart(ctx, memberID)
}

func (uc *CartUseCase) AddItem(ctx context.Context, memberID, bookID uint, quantity int) (*cart.Item, error) {
	var item *cart.Item
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		item, err = uc.carts.AddItem(ctx, memberID, bookID, quantity)
		return err
	})
	return item, err
}

// UpdateItem 数量为0时删除条目
func (uc *CartUseCase) UpdateItem(ctx context.Context, memberID, itemID uint, quantity int) error {
	return uc.carts.UpdateItem(ctx, memberID, itemID, quantity)
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, memberID, itemID uint) error {
	return uc.carts.RemoveItem(ctx, memberID, itemID)
}

func (uc *CartUseCase) Clear(ctx context.Context, memberID uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.carts.Clear(ctx, memberID)
	})
}
