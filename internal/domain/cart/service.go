package cart

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// MaxQuantity 单本图书在购物车中的最大数量
const MaxQuantity = 99

// Service 购物车领域服务
// 所有条目操作都校验条目属于当前会员的购物车,否则视为不存在
type Service interface {
	GetCart(ctx context.Context, memberID uint) (*View, error)

	// AddItem 购物车不存在时创建,同一本书合并数量
	AddItem(ctx context.Context, memberID, bookID uint, quantity int) (*Item, error)

	// UpdateItem 数量为0时删除条目
	UpdateItem(ctx context.Context, memberID, itemID uint, quantity int) error
	RemoveItem(ctx context.Context, memberID, itemID uint) error

	// Clear 删除购物车及全部条目,需在事务中调用
	Clear(ctx context.Context, memberID uint) error
}

type service struct {
	repo  Repository
	books book.Service
}

// NewService 创建购物车服务
func NewService(repo Repository, books book.Service) Service {
	return &service{repo: repo, books: books}
}

func (s *service) GetCart(ctx context.Context, memberID uint) (*View, error) {
	c, err := s.repo.FindByMember(ctx, memberID)
	if errors.Is(err, ErrCartNotFound) {
		return NewView(0, nil), nil
	}
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.ListLines(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return NewView(c.ID, lines), nil
}

func (s *service) AddItem(ctx context.Context, memberID, bookID uint, quantity int) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := s.books.MustExist(ctx, bookID); err != nil {
		return nil, err
	}

	c, err := s.findOrCreate(ctx, memberID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindItemByBook(ctx, c.ID, bookID)
	switch {
	case errors.Is(err, ErrCartItemNotFound):
		item = &Item{CartID: c.ID, BookID: bookID, CreatedAt: time.Now()}
	case err != nil:
		return nil, err
	}

	item.Quantity += quantity
	if item.Quantity > MaxQuantity {
		return nil, ErrQuantityTooLarge
	}
	if err := s.repo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, memberID, itemID uint, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}

	item, err := s.ownedItem(ctx, memberID, itemID)
	if err != nil {
		return err
	}
	if quantity == 0 {
		return s.repo.DeleteItem(ctx, item.ID)
	}

	item.Quantity = quantity
	return s.repo.SaveItem(ctx, item)
}

func (s *service) RemoveItem(ctx context.Context, memberID, itemID uint) error {
	item, err := s.ownedItem(ctx, memberID, itemID)
	if err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, item.ID)
}

// Clear 没有购物车时直接返回
func (s *service) Clear(ctx context.Context, memberID uint) error {
	c, err := s.repo.FindByMember(ctx, memberID)
	if errors.Is(err, ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}

func (s *service) findOrCreate(ctx context.Context, memberID uint) (*Cart, error) {
	c, err := s.repo.FindByMember(ctx, memberID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	c = &Cart{MemberID: memberID, CreatedAt: time.Now()}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ownedItem 条目必须属于会员自己的购物车
func (s *service) ownedItem(ctx context.Context, memberID, itemID uint) (*Item, error) {
	c, err := s.repo.FindByMember(ctx, memberID)
	if errors.Is(err, ErrCartNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.CartID != c.ID {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}
