package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/booklike"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

type bookLikeRepository struct {
	db *gorm.DB
}

// NewBookLikeRepository 创建点赞仓储
func NewBookLikeRepository(db *gorm.DB) booklike.Repository {
	return &bookLikeRepository{db: db}
}

// Create 并发重复点赞由uk_member_book唯一索引拦截
func (r *bookLikeRepository) Create(ctx context.Context, like *booklike.BookLike) error {
	model := &BookLikeModel{MemberID: like.MemberID, BookID: like.BookID, CreatedAt: like.CreatedAt}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return booklike.ErrBookLikeDuplicate
		}
		return apperrors.Wrap(err, "点赞失败")
	}
	like.ID = model.ID
	return nil
}

func (r *bookLikeRepository) Delete(ctx context.Context, memberID, bookID uint) error {
	result := getDB(ctx, r.db).
		Where("member_id = ? AND book_id = ?", memberID, bookID).
		Delete(&BookLikeModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "取消点赞失败")
	}
	if result.RowsAffected == 0 {
		return booklike.ErrBookLikeNotFound
	}
	return nil
}

func (r *bookLikeRepository) Exists(ctx context.Context, memberID, bookID uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BookLikeModel{}).
		Where("member_id = ? AND book_id = ?", memberID, bookID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询点赞失败")
	}
	return count > 0, nil
}
