package booklike

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// Service 点赞领域服务
// 列表与计数走图书查询仓储(book.QueryRepository)
type Service interface {
	Like(ctx context.Context, memberID, bookID uint) (*BookLike, error)
	Unlike(ctx context.Context, memberID, bookID uint) error
	CountLikes(ctx context.Context, bookID uint) (int64, error)

	// ListLikedBooks 会员点赞过的图书,空页返回ErrLikedBooksNotFound
	ListLikedBooks(ctx context.Context, memberID uint, p pagination.Pageable) (pagination.Page[book.ListItem], error)

	// Ranking 按点赞数降序的图书
	Ranking(ctx context.Context, p pagination.Pageable) (pagination.Page[book.ListItem], error)
}

type service struct {
	repo  Repository
	books book.Service
	query book.QueryRepository
}

// NewService 创建点赞服务
func NewService(repo Repository, books book.Service, query book.QueryRepository) Service {
	return &service{repo: repo, books: books, query: query}
}

// Like 点赞
// 1. 图书必须存在
// 2. 先查重复,并发时由(member_id, book_id)唯一索引兜底
func (s *service) Like(ctx context.Context, memberID, bookID uint) (*BookLike, error) {
	if err := s.books.MustExist(ctx, bookID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, memberID, bookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBookLikeDuplicate
	}

	like := &BookLike{MemberID: memberID, BookID: bookID, CreatedAt: time.Now()}
	if err := s.repo.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

func (s *service) Unlike(ctx context.Context, memberID, bookID uint) error {
	if err := s.books.MustExist(ctx, bookID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, memberID, bookID)
}

func (s *service) CountLikes(ctx context.Context, bookID uint) (int64, error) {
	if err := s.books.MustExist(ctx, bookID); err != nil {
		return 0, err
	}
	return s.query.CountLikeByBookID(ctx, bookID)
}

func (s *service) ListLikedBooks(ctx context.Context, memberID uint, p pagination.Pageable) (pagination.Page[book.ListItem], error) {
	page, err := s.query.ListLikedByMember(ctx, memberID, p)
	if err != nil {
		return page, err
	}
	if page.Empty() {
		return page, ErrLikedBooksNotFound
	}
	return page, nil
}

func (s *service) Ranking(ctx context.Context, p pagination.Pageable) (pagination.Page[book.ListItem], error) {
	return s.query.ListOrderedByLikeCount(ctx, p)
}
