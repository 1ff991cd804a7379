package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/category"
	"github.com/xiebiao/bookstore-api/internal/domain/shared"
	"github.com/xiebiao/bookstore-api/internal/domain/tag"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
)

// CreateBookUseCase 图书上架用例
// 图书、图片、标签关联、分类关联在同一事务中写入,任一失败整体回滚
type CreateBookUseCase struct {
	tx         shared.Transactor
	books      book.Service
	tags       tag.Service
	categories category.Service
}

// NewCreateBookUseCase 创建上架用例
func NewCreateBookUseCase(tx shared.Transactor, books book.Service, tags tag.Service, categories category.Service) *CreateBookUseCase {
	metrics.InitMetrics()
	return &CreateBookUseCase{tx: tx, books: books, tags: tags, categories: categories}
}

// ImageInput 图片
type ImageInput struct {
	URL  string
	Type string
}

// CreateBookRequest 上架请求
type CreateBookRequest struct {
	Title         string
	Description   string
	PublishedDate time.Time
	Price         int64
	SellingPrice  int64
	Quantity      int
	Packing       bool
	Author        string
	ISBN          string
	Publisher     string
	Images        []ImageInput
	TagIDs        []uint
	CategoryIDs   []uint
}

// Execute 执行上架
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*book.Book, error) {
	b := &book.Book{
		Title:         req.Title,
		Description:   req.Description,
		PublishedDate: req.PublishedDate,
		Price:         req.Price,
		SellingPrice:  req.SellingPrice,
		Quantity:      req.Quantity,
		Packing:       req.Packing,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Publisher:     req.Publisher,
	}
	for _, img := range req.Images {
		b.Images = append(b.Images, book.Image{URL: img.URL, Type: book.ImageType(img.Type)})
	}

	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := uc.books.CreateBook(ctx, b); err != nil {
			return err
		}
		for _, tagID := range req.TagIDs {
			if err := uc.tags.AttachTag(ctx, b.ID, tagID); err != nil {
				return err
			}
		}
		return uc.categories.AssignToBook(ctx, b.ID, req.CategoryIDs)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	return b, nil
}
