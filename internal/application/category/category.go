package category

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/category"
	"github.com/xiebiao/bookstore-api/internal/domain/shared"
)

// CommandUseCase 分类的创建、删除与图书分类设置
type CommandUseCase struct {
	tx         shared.Transactor
	categories category.Service
}

// NewCommandUseCase 创建分类写用例
func NewCommandUseCase(tx shared.Transactor, categories category.Service) *CommandUseCase {
	return &CommandUseCase{tx: tx, categories: categories}
}

func (uc *CommandUseCase) Create(ctx context.Context, name string, parentID *uint) (*category.Category, error) {
	return uc.categories.Create(ctx, name, parentID)
}

// Delete 删除整棵子树及其图书关联(同一事务)
func (uc *CommandUseCase) Delete(ctx context.Context, id uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.categories.Delete(ctx, id)
	})
}

// AssignToBook 校验与写入在同一事务,避免校验后分类被删除
func (uc *CommandUseCase) AssignToBook(ctx context.Context, bookID uint, categoryIDs []uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.categories.AssignToBook(ctx, bookID, categoryIDs)
	})
}

// QueryUseCase 分类查询
type QueryUseCase struct {
	categories category.Service
}

// NewQueryUseCase 创建分类查询用例
func NewQueryUseCase(categories category.Service) *QueryUseCase {
	return &QueryUseCase{categories: categories}
}

func (uc *QueryUseCase) Roots(ctx context.Context) ([]category.Summary, error) {
	return uc.categories.ListRoots(ctx)
}

func (uc *QueryUseCase) Children(ctx context.Context, id uint) ([]category.Summary, error) {
	return uc.categories.ListChildren(ctx, id)
}

func (uc *QueryUseCase) Tree(ctx context.Context) ([]*category.Node, error) {
	return uc.categories.Tree(ctx)
}
