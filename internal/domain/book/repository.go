package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// Repository 图书仓储接口(写模型)
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	// Create 创建图书及其图片,回填ID
	// ISBN重复时返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// ExistsByID 图书是否存在
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// ExistsByISBN ISBN是否已被使用
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// Delete 删除图书及其图片、点赞、标签/分类关联、购物车条目
	// 调用方负责提供事务(Transactor),不存在时返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error
}

// QueryRepository 图书查询仓储(读模型)
// 每个分页查询执行两条SQL:内容查询 + 总数查询
type QueryRepository interface {
	// ListBooks 图书列表(左连接主图与点赞),按orders排序
	ListBooks(ctx context.Context, q ListQuery) (pagination.Page[ListItem], error)

	// ReadDetail 图书详情,不存在时返回ErrBookNotFound
	ReadDetail(ctx context.Context, id uint) (*Detail, error)

	// ListForAdmin 管理后台列表(不排序)
	ListForAdmin(ctx context.Context, p pagination.Pageable) (pagination.Page[AdminItem], error)

	// ListLikedByMember 会员点赞过的图书(最近点赞在前),总数为该会员点赞数
	ListLikedByMember(ctx context.Context, memberID uint, p pagination.Pageable) (pagination.Page[ListItem], error)

	// ListOrderedByLikeCount 按点赞数降序,总数为图书总数
	ListOrderedByLikeCount(ctx context.Context, p pagination.Pageable) (pagination.Page[ListItem], error)

	// CountLikeByBookID 图书点赞数
	CountLikeByBookID(ctx context.Context, bookID uint) (int64, error)
}
