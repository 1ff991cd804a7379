package tag

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// Repository 标签仓储接口
type Repository interface {
	// Create 名称重复时返回ErrTagDuplicate
	Create(ctx context.Context, t *Tag) error

	// Update 不存在时返回ErrTagNotFound,名称重复时返回ErrTagDuplicate
	Update(ctx context.Context, t *Tag) error

	// Delete 删除标签及其图书关联(调用方提供事务)
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Tag, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	// AttachToBook 关联已存在时返回ErrBookTagDuplicate
	AttachToBook(ctx context.Context, bookID, tagID uint) error
	ExistsLink(ctx context.Context, bookID, tagID uint) (bool, error)

	// ListBooks 带该标签的图书(完整字段 + 主图),排序规则同图书列表
	ListBooks(ctx context.Context, tagID uint, q book.ListQuery) (pagination.Page[book.Detail], error)

	// ListNamesByBook 图书的标签名(可能重复,由Service去重)
	ListNamesByBook(ctx context.Context, bookID uint) ([]string, error)
}
