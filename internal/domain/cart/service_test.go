package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// memRepo 内存仓储,图书标题与售价来自titles
type memRepo struct {
	mu     sync.Mutex
	carts  map[uint]*Cart
	items  map[uint]*Item
	nextID uint
	titles map[uint]string
}

func newMemRepo() *memRepo {
	return &memRepo{
		carts:  make(map[uint]*Cart),
		items:  make(map[uint]*Item),
		titles: map[uint]string{1: "Go语言实战", 2: "数据库系统概念"},
	}
}

func (r *memRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *memRepo) FindByMember(_ context.Context, memberID uint) (*Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.carts {
		if c.MemberID == memberID {
			return c, nil
		}
	}
	return nil, ErrCartNotFound
}

func (r *memRepo) Create(_ context.Context, c *Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.id()
	r.carts[c.ID] = c
	return nil
}

func (r *memRepo) Delete(_ context.Context, cartID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, it := range r.items {
		if it.CartID == cartID {
			delete(r.items, id)
		}
	}
	delete(r.carts, cartID)
	return nil
}

func (r *memRepo) FindItem(_ context.Context, itemID uint) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it, ok := r.items[itemID]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, ErrCartItemNotFound
}

func (r *memRepo) FindItemByBook(_ context.Context, cartID, bookID uint) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.CartID == cartID && it.BookID == bookID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, ErrCartItemNotFound
}

func (r *memRepo) SaveItem(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == 0 {
		item.ID = r.id()
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memRepo) DeleteItem(_ context.Context, itemID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, itemID)
	return nil
}

func (r *memRepo) ListLines(_ context.Context, cartID uint) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lines []Line
	for _, it := range r.items {
		if it.CartID == cartID {
			lines = append(lines, Line{
				ItemID:       it.ID,
				BookID:       it.BookID,
				Title:        r.titles[it.BookID],
				SellingPrice: 1000 * int64(it.BookID),
				Quantity:     it.Quantity,
			})
		}
	}
	return lines, nil
}

type fakeBooks struct {
	book.Service
}

func (fakeBooks) MustExist(_ context.Context, id uint) error {
	if id > 2 {
		return book.ErrBookNotFound
	}
	return nil
}

func TestService_GetCart_Missing(t *testing.T) {
	view, err := NewService(newMemRepo(), fakeBooks{}).GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.NotNil(t, view.Lines)
	assert.Zero(t, view.TotalPrice)
}

func TestService_AddItem_MergesSameBook(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo, fakeBooks{})

	first, err := svc.AddItem(ctx, 7, 1, 2)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, 7, 1, 3)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 7, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)
	assert.Len(t, repo.carts, 1)

	view, err := svc.GetCart(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, 6, view.TotalQuantity)
	assert.Equal(t, int64(5*1000+1*2000), view.TotalPrice)
}

func TestService_AddItem_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo(), fakeBooks{})

	_, err := svc.AddItem(ctx, 7, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, 7, 3, 1)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = svc.AddItem(ctx, 7, 1, MaxQuantity+1)
	assert.ErrorIs(t, err, ErrQuantityTooLarge)
}

func TestService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo, fakeBooks{})

	item, err := svc.AddItem(ctx, 7, 1, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateItem(ctx, 7, item.ID, 4))
	assert.Equal(t, 4, repo.items[item.ID].Quantity)

	require.NoError(t, svc.UpdateItem(ctx, 7, item.ID, 0))
	assert.NotContains(t, repo.items, item.ID)

	assert.ErrorIs(t, svc.UpdateItem(ctx, 7, item.ID, -1), ErrInvalidQuantity)
}

func TestService_OtherMembersItem(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo(), fakeBooks{})

	item, err := svc.AddItem(ctx, 7, 1, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 8, 2, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveItem(ctx, 8, item.ID), ErrCartItemNotFound)
	assert.ErrorIs(t, svc.UpdateItem(ctx, 8, item.ID, 3), ErrCartItemNotFound)
	assert.ErrorIs(t, svc.RemoveItem(ctx, 9, item.ID), ErrCartItemNotFound)
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo, fakeBooks{})

	_, err := svc.AddItem(ctx, 7, 1, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 7, 2, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, 7))
	assert.Empty(t, repo.carts)
	assert.Empty(t, repo.items)

	assert.NoError(t, svc.Clear(ctx, 7))
}
