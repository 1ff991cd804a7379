package tag

import (
	"context"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/shared"
	"github.com/xiebiao/bookstore-api/internal/domain/tag"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// CommandUseCase 标签的增删改与打标签
type CommandUseCase struct {
	tx   shared.Transactor
	tags tag.Service
}

// NewCommandUseCase 创建标签写用例
func NewCommandUseCase(tx shared.Transactor, tags tag.Service) *CommandUseCase {
	return &CommandUseCase{tx: tx, tags: tags}
}

func (uc *CommandUseCase) Create(ctx context.Context, name string) (*tag.Tag, error) {
	return uc.tags.CreateTag(ctx, name)
}

func (uc *CommandUseCase) Update(ctx context.Context, id uint, name string) (*tag.Tag, error) {
	return uc.tags.UpdateTag(ctx, id, name)
}

// Delete 标签与其图书关联在同一事务中删除
func (uc *CommandUseCase) Delete(ctx context.Context, id uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.tags.DeleteTag(ctx, id)
	})
}

func (uc *CommandUseCase) Attach(ctx context.Context, bookID, tagID uint) error {
	return uc.tags.AttachTag(ctx, bookID, tagID)
}

// QueryUseCase 标签下的图书与图书的标签
type QueryUseCase struct {
	tags tag.Service
}

// NewQueryUseCase 创建标签查询用例
func NewQueryUseCase(tags tag.Service) *QueryUseCase {
	return &QueryUseCase{tags: tags}
}

// BooksByTag 分页与排序参数同图书列表,排序非法时不查询
func (uc *QueryUseCase) BooksByTag(ctx context.Context, tagID uint, req appbook.ListBooksRequest) (pagination.Page[book.Detail], error) {
	q, err := req.Query()
	if err != nil {
		return pagination.Page[book.Detail]{}, err
	}
	return uc.tags.ReadBooksByTag(ctx, tagID, q)
}

func (uc *QueryUseCase) TagsByBook(ctx context.Context, bookID uint) ([]string, error) {
	return uc.tags.ReadTagsByBook(ctx, bookID)
}
