package tag

import (
	"context"
	"slices"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// Service 标签领域服务
type Service interface {
	CreateTag(ctx context.Context, name string) (*Tag, error)
	UpdateTag(ctx context.Context, id uint, name string) (*Tag, error)

	// DeleteTag 删除标签并解除所有图书关联,需在事务中调用
	DeleteTag(ctx context.Context, id uint) error

	// AttachTag 给图书打标签,图书与标签都必须存在
	AttachTag(ctx context.Context, bookID, tagID uint) error

	// ReadBooksByTag 空页返回ErrTagBooksNotFound
	ReadBooksByTag(ctx context.Context, tagID uint, q book.ListQuery) (pagination.Page[book.Detail], error)

	// ReadTagsByBook 去重并排序的标签名,没有标签返回ErrBookTagsNotFound
	ReadTagsByBook(ctx context.Context, bookID uint) ([]string, error)
}

type service struct {
	repo  Repository
	books book.Service
}

// NewService 创建标签服务
func NewService(repo Repository, books book.Service) Service {
	return &service{repo: repo, books: books}
}

func (s *service) CreateTag(ctx context.Context, name string) (*Tag, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrTagDuplicate
	}

	t := &Tag{Name: name}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) UpdateTag(ctx context.Context, id uint, name string) (*Tag, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Name == name {
		return t, nil
	}

	t.Name = name
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) DeleteTag(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) AttachTag(ctx context.Context, bookID, tagID uint) error {
	if err := s.books.MustExist(ctx, bookID); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, tagID); err != nil {
		return err
	}

	linked, err := s.repo.ExistsLink(ctx, bookID, tagID)
	if err != nil {
		return err
	}
	if linked {
		return ErrBookTagDuplicate
	}
	return s.repo.AttachToBook(ctx, bookID, tagID)
}

func (s *service) ReadBooksByTag(ctx context.Context, tagID uint, q book.ListQuery) (pagination.Page[book.Detail], error) {
	if err := q.Validate(); err != nil {
		return pagination.Page[book.Detail]{}, err
	}

	page, err := s.repo.ListBooks(ctx, tagID, q)
	if err != nil {
		return page, err
	}
	if page.Empty() {
		return page, ErrTagBooksNotFound
	}
	return page, nil
}

func (s *service) ReadTagsByBook(ctx context.Context, bookID uint) ([]string, error) {
	names, err := s.repo.ListNamesByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrBookTagsNotFound
	}

	slices.Sort(names)
	return slices.Compact(names), nil
}
