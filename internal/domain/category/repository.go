package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	Create(ctx context.Context, c *Category) error

	// FindByID 不存在时返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// CountByIDs 给定ID中实际存在的分类数
	CountByIDs(ctx context.Context, ids []uint) (int64, error)

	ListRoots(ctx context.Context) ([]Summary, error)
	ListChildren(ctx context.Context, parentID uint) ([]Summary, error)
	ListAll(ctx context.Context) ([]Category, error)

	// DeleteByIDs 删除分类及其图书关联(调用方提供事务)
	DeleteByIDs(ctx context.Context, ids []uint) error

	// AssignBook 关联图书与分类,已存在的关联跳过
	AssignBook(ctx context.Context, bookID uint, categoryIDs []uint) error
}
