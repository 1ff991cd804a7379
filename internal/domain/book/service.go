package book

import (
	"context"
	"strings"
	"time"

	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// Service 图书领域服务接口
// 1. 写操作负责业务规则校验(ISBN格式与唯一、价格、主图数量)
// 2. 读操作委托给QueryRepository,排序字段在查询前校验
type Service interface {
	// CreateBook 创建图书(含图片)
	CreateBook(ctx context.Context, b *Book) error

	// DeleteBook 删除图书及关联数据,需在事务中调用
	DeleteBook(ctx context.Context, id uint) error

	// MustExist 图书不存在时返回ErrBookNotFound
	MustExist(ctx context.Context, id uint) error

	ListBooks(ctx context.Context, q ListQuery) (pagination.Page[ListItem], error)
	ReadDetail(ctx context.Context, id uint) (*Detail, error)
	ListForAdmin(ctx context.Context, p pagination.Pageable) (pagination.Page[AdminItem], error)
}

type service struct {
	repo  Repository
	query QueryRepository
}

// NewService 创建图书领域服务
func NewService(repo Repository, query QueryRepository) Service {
	return &service{repo: repo, query: query}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) error {
	// 1. 规范化并校验
	b.Title = strings.TrimSpace(b.Title)
	b.ISBN = strings.ReplaceAll(strings.TrimSpace(b.ISBN), "-", "")
	if err := b.Validate(); err != nil {
		return err
	}

	// 2. ISBN唯一(并发下由唯一索引兜底,Repository返回ErrISBNDuplicate)
	exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return err
	}
	if exists {
		return ErrISBNDuplicate
	}

	// 3. 持久化
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	return s.repo.Create(ctx, b)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if err := s.MustExist(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) MustExist(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}
	return nil
}

// ListBooks 图书列表,非法排序字段在查询前拒绝
func (s *service) ListBooks(ctx context.Context, q ListQuery) (pagination.Page[ListItem], error) {
	if err := q.Validate(); err != nil {
		return pagination.Page[ListItem]{}, err
	}
	return s.query.ListBooks(ctx, q)
}

func (s *service) ReadDetail(ctx context.Context, id uint) (*Detail, error) {
	return s.query.ReadDetail(ctx, id)
}

func (s *service) ListForAdmin(ctx context.Context, p pagination.Pageable) (pagination.Page[AdminItem], error) {
	return s.query.ListForAdmin(ctx, p)
}
