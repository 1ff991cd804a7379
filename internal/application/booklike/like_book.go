package booklike

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/booklike"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// LikeBookUseCase 点赞与取消点赞
type LikeBookUseCase struct {
	likes booklike.Service
}

// NewLikeBookUseCase 创建点赞用例
func NewLikeBookUseCase(likes booklike.Service) *LikeBookUseCase {
	metrics.InitMetrics()
	return &LikeBookUseCase{likes: likes}
}

// LikeResult 点赞后的计数
type LikeResult struct {
	BookID uint  `json:"book_id"`
	Likes  int64 `json:"likes"`
}

// Like 点赞并返回最新点赞数
func (uc *LikeBookUseCase) Like(ctx context.Context, memberID, bookID uint) (*LikeResult, error) {
	if _, err := uc.likes.Like(ctx, memberID, bookID); err != nil {
		return nil, err
	}
	metrics.IncCounterVec(metrics.BookLikesTotal, map[string]string{"action": "like"})
	return uc.result(ctx, bookID)
}

// Unlike 取消点赞并返回最新点赞数
func (uc *LikeBookUseCase) Unlike(ctx context.Context, memberID, bookID uint) (*LikeResult, error) {
	if err := uc.likes.Unlike(ctx, memberID, bookID); err != nil {
		return nil, err
	}
	metrics.IncCounterVec(metrics.BookLikesTotal, map[string]string{"action": "unlike"})
	return uc.result(ctx, bookID)
}

// Count 图书点赞数
func (uc *LikeBookUseCase) Count(ctx context.Context, bookID uint) (*LikeResult, error) {
	return uc.result(ctx, bookID)
}

func (uc *LikeBookUseCase) result(ctx context.Context, bookID uint) (*LikeResult, error) {
	n, err := uc.likes.CountLikes(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{BookID: bookID, Likes: n}, nil
}

// LikedBooksUseCase 会员点赞列表与点赞排行
type LikedBooksUseCase struct {
	likes booklike.Service
}

// NewLikedBooksUseCase 创建点赞列表用例
func NewLikedBooksUseCase(likes booklike.Service) *LikedBooksUseCase {
	return &LikedBooksUseCase{likes: likes}
}

// ByMember 会员点赞过的图书,没有时返回ErrLikedBooksNotFound
func (uc *LikedBooksUseCase) ByMember(ctx context.Context, memberID uint, page, size int) (pagination.Page[book.ListItem], error) {
	return uc.likes.ListLikedBooks(ctx, memberID, pagination.Of(page, size))
}

// Ranking 按点赞数降序的图书
func (uc *LikedBooksUseCase) Ranking(ctx context.Context, page, size int) (pagination.Page[book.ListItem], error) {
	return uc.likes.Ranking(ctx, pagination.Of(page, size))
}
