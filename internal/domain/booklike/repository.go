package booklike

import (
	"context"
)

// Repository 点赞仓储接口
type Repository interface {
	// Create 唯一索引冲突时返回ErrBookLikeDuplicate
	Create(ctx context.Context, like *BookLike) error

	// Delete 删除点赞,记录不存在时返回ErrBookLikeNotFound
	Delete(ctx context.Context, memberID, bookID uint) error

	Exists(ctx context.Context, memberID, bookID uint) (bool, error)
}
