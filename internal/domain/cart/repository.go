package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// FindByMember 会员没有购物车时返回ErrCartNotFound
	FindByMember(ctx context.Context, memberID uint) (*Cart, error)
	Create(ctx context.Context, c *Cart) error

	// Delete 删除购物车及全部条目(调用方提供事务)
	Delete(ctx context.Context, cartID uint) error

	// FindItem 不存在时返回ErrCartItemNotFound
	FindItem(ctx context.Context, itemID uint) (*Item, error)

	// FindItemByBook 购物车中该书的条目,不存在时返回ErrCartItemNotFound
	FindItemByBook(ctx context.Context, cartID, bookID uint) (*Item, error)

	// SaveItem ID为0时新增,否则更新数量
	SaveItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, itemID uint) error

	// ListLines 条目连接图书,按条目创建顺序
	ListLines(ctx context.Context, cartID uint) ([]Line, error)
}
