package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/cart"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByMember(ctx context.Context, memberID uint) (*cart.Cart, error) {
	var model CartModel
	if err := getDB(ctx, r.db).Where("member_id = ?", memberID).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}
	return &cart.Cart{ID: model.ID, MemberID: model.MemberID, CreatedAt: model.CreatedAt}, nil
}

func (r *cartRepository) Create(ctx context.Context, c *cart.Cart) error {
	model := &CartModel{MemberID: c.MemberID, CreatedAt: c.CreatedAt}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建购物车失败")
	}
	c.ID = model.ID
	return nil
}

// Delete 先删条目再删购物车
func (r *cartRepository) Delete(ctx context.Context, cartID uint) error {
	db := getDB(ctx, r.db)
	if err := db.Where("cart_id = ?", cartID).Delete(&BookCartModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除购物车条目失败")
	}
	if err := db.Delete(&CartModel{}, cartID).Error; err != nil {
		return apperrors.Wrap(err, "删除购物车失败")
	}
	return nil
}

func (r *cartRepository) FindItem(ctx context.Context, itemID uint) (*cart.Item, error) {
	var model BookCartModel
	if err := getDB(ctx, r.db).First(&model, itemID).Error; err != nil {
		if isNotFound(err) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}
	return toCartItem(&model), nil
}

func (r *cartRepository) FindItemByBook(ctx context.Context, cartID, bookID uint) (*cart.Item, error) {
	var model BookCartModel
	err := getDB(ctx, r.db).Where("cart_id = ? AND book_id = ?", cartID, bookID).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}
	return toCartItem(&model), nil
}

func (r *cartRepository) SaveItem(ctx context.Context, item *cart.Item) error {
	db := getDB(ctx, r.db)
	if item.ID == 0 {
		model := &BookCartModel{
			CartID:    item.CartID,
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
		}
		if err := db.Create(model).Error; err != nil {
			return apperrors.Wrap(err, "添加购物车条目失败")
		}
		item.ID = model.ID
		return nil
	}

	err := db.Model(&BookCartModel{}).Where("id = ?", item.ID).Update("quantity", item.Quantity).Error
	if err != nil {
		return apperrors.Wrap(err, "更新购物车条目失败")
	}
	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	if err := getDB(ctx, r.db).Delete(&BookCartModel{}, itemID).Error; err != nil {
		return apperrors.Wrap(err, "删除购物车条目失败")
	}
	return nil
}

type cartLineRow struct {
	ItemID       uint
	BookID       uint
	Title        string
	SellingPrice int64
	Quantity     int
}

func (r *cartRepository) ListLines(ctx context.Context, cartID uint) ([]cart.Line, error) {
	var rows []cartLineRow
	err := getDB(ctx, r.db).Table("book_carts AS bc").
		Select("bc.id AS item_id, bc.book_id, b.title, b.selling_price, bc.quantity").
		Joins("JOIN books AS b ON b.id = bc.book_id").
		Where("bc.cart_id = ?", cartID).
		Order("bc.created_at ASC").Order("bc.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	lines := make([]cart.Line, len(rows))
	for i, row := range rows {
		lines[i] = cart.Line{
			ItemID:       row.ItemID,
			BookID:       row.BookID,
			Title:        row.Title,
			SellingPrice: row.SellingPrice,
			Quantity:     row.Quantity,
		}
	}
	return lines, nil
}

func toCartItem(m *BookCartModel) *cart.Item {
	return &cart.Item{
		ID:        m.ID,
		CartID:    m.CartID,
		BookID:    m.BookID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}
}
