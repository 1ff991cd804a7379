package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/shared"
)

// DeleteBookUseCase 删除图书用例
// 图片、点赞、标签/分类关联、购物车条目随图书在一个事务中删除
type DeleteBookUseCase struct {
	tx    shared.Transactor
	books book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(tx shared.Transactor, books book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{tx: tx, books: books}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.books.DeleteBook(ctx, id)
	})
}
