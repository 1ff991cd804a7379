package category

import (
	"context"
	"slices"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// Service 分类领域服务
type Service interface {
	// Create 创建分类,parentID非nil时父分类必须存在
	Create(ctx context.Context, name string, parentID *uint) (*Category, error)

	ListRoots(ctx context.Context) ([]Summary, error)
	ListChildren(ctx context.Context, id uint) ([]Summary, error)
	Tree(ctx context.Context) ([]*Node, error)

	// AssignToBook 图书与所有分类都必须存在
	AssignToBook(ctx context.Context, bookID uint, categoryIDs []uint) error

	// Delete 删除分类及整棵子树,需在事务中调用
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo  Repository
	books book.Service
}

// NewService 创建分类服务
func NewService(repo Repository, books book.Service) Service {
	return &service{repo: repo, books: books}
}

func (s *service) Create(ctx context.Context, name string, parentID *uint) (*Category, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if parentID != nil {
		if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	c := &Category{Name: name, ParentID: parentID}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListRoots(ctx context.Context) ([]Summary, error) {
	return s.repo.ListRoots(ctx)
}

func (s *service) ListChildren(ctx context.Context, id uint) ([]Summary, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListChildren(ctx, id)
}

func (s *service) Tree(ctx context.Context) ([]*Node, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(all), nil
}

func (s *service) AssignToBook(ctx context.Context, bookID uint, categoryIDs []uint) error {
	if err := s.books.MustExist(ctx, bookID); err != nil {
		return err
	}

	ids := slices.Clone(categoryIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) == 0 {
		return nil
	}

	n, err := s.repo.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return ErrCategoryNotFound
	}
	return s.repo.AssignBook(ctx, bookID, ids)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteByIDs(ctx, SubtreeIDs(all, id))
}
