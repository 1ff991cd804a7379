package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// ListBooksRequest 列表查询请求
// Sort形如 "price,desc",可以有多个,按顺序生效
type ListBooksRequest struct {
	Page int
	Size int
	Sort []string
}

// Query 解析分页与排序,排序字段非法时返回ErrInvalidSortKey
func (r ListBooksRequest) Query() (book.ListQuery, error) {
	orders, err := book.ParseOrders(r.Sort)
	if err != nil {
		return book.ListQuery{}, err
	}
	return book.ListQuery{Pageable: pagination.Of(r.Page, r.Size), Orders: orders}, nil
}

// ListBooksUseCase 图书列表查询用例
type ListBooksUseCase struct {
	books book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(books book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{books: books}
}

// Execute 排序参数在查询之前校验,非法时不访问数据库
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (pagination.Page[book.ListItem], error) {
	q, err := req.Query()
	if err != nil {
		return pagination.Page[book.ListItem]{}, err
	}
	return uc.books.ListBooks(ctx, q)
}

// ReadBookUseCase 图书详情用例
type ReadBookUseCase struct {
	books book.Service
}

func NewReadBookUseCase(books book.Service) *ReadBookUseCase {
	return &ReadBookUseCase{books: books}
}

func (uc *ReadBookUseCase) Execute(ctx context.Context, id uint) (*book.Detail, error) {
	return uc.books.ReadDetail(ctx, id)
}

// ListAdminBooksUseCase 管理后台图书列表用例
type ListAdminBooksUseCase struct {
	books book.Service
}

func NewListAdminBooksUseCase(books book.Service) *ListAdminBooksUseCase {
	return &ListAdminBooksUseCase{books: books}
}

func (uc *ListAdminBooksUseCase) Execute(ctx context.Context, page, size int) (pagination.Page[book.AdminItem], error) {
	return uc.books.ListForAdmin(ctx, pagination.Of(page, size))
}
