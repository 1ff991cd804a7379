package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// bookRepository 图书仓储实现(写模型)
// 1. 负责domain实体与GORM模型之间的转换
// 2. 数据库错误(如ISBN重复)转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书,图片随图书一起插入
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	for i := range b.Images {
		b.Images[i].ID = model.Images[i].ID
		b.Images[i].BookID = model.ID
	}
	return nil
}

func (r *bookRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Where("isbn = ?", isbn).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

// Delete 删除图书及全部从属数据
// 子表先删,最后删books;必须由调用方放在同一事务中
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	children := []struct {
		model interface{}
		name  string
	}{
		{&BookImageModel{}, "图片"},
		{&BookLikeModel{}, "点赞"},
		{&BookTagModel{}, "标签关联"},
		{&BookCategoryModel{}, "分类关联"},
		{&BookCartModel{}, "购物车条目"},
	}
	for _, c := range children {
		if err := db.Where("book_id = ?", id).Delete(c.model).Error; err != nil {
			return apperrors.Wrapf(err, "删除图书%s失败", c.name)
		}
	}

	result := db.Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	model := &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
		Price:         b.Price,
		SellingPrice:  b.SellingPrice,
		Quantity:      b.Quantity,
		ViewCount:     b.ViewCount,
		Packing:       b.Packing,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Publisher:     b.Publisher,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	for _, img := range b.Images {
		model.Images = append(model.Images, BookImageModel{URL: img.URL, Type: string(img.Type)})
	}
	return model
}
