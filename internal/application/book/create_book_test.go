package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/category"
	"github.com/xiebiao/bookstore-api/internal/domain/tag"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// fakeTx 直接执行回调,记录调用次数
type fakeTx struct{ calls int }

func (f *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type mockBooks struct {
	book.Service
	mock.Mock
}

func (m *mockBooks) CreateBook(ctx context.Context, b *book.Book) error {
	err := m.Called(ctx, b).Error(0)
	if err == nil {
		b.ID = 7
	}
	return err
}

func (m *mockBooks) DeleteBook(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBooks) ListBooks(ctx context.Context, q book.ListQuery) (pagination.Page[book.ListItem], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.Page[book.ListItem]), args.Error(1)
}

type mockTags struct {
	tag.Service
	mock.Mock
}

func (m *mockTags) AttachTag(ctx context.Context, bookID, tagID uint) error {
	return m.Called(ctx, bookID, tagID).Error(0)
}

type mockCategories struct {
	category.Service
	mock.Mock
}

func (m *mockCategories) AssignToBook(ctx context.Context, bookID uint, ids []uint) error {
	return m.Called(ctx, bookID, ids).Error(0)
}

func TestCreateBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	books, tags, cats := new(mockBooks), new(mockTags), new(mockCategories)

	books.On("CreateBook", ctx, mock.AnythingOfType("*book.Book")).Return(nil)
	tags.On("AttachTag", ctx, uint(7), uint(1)).Return(nil)
	tags.On("AttachTag", ctx, uint(7), uint(2)).Return(nil)
	cats.On("AssignToBook", ctx, uint(7), []uint{3}).Return(nil)

	uc := NewCreateBookUseCase(tx, books, tags, cats)
	b, err := uc.Execute(ctx, CreateBookRequest{
		Title:  "Go语言实战",
		ISBN:   "9787115428028",
		Price:  5900,
		Images: []ImageInput{{URL: "/img/go.jpg", Type: "MAIN"}},
		TagIDs: []uint{1, 2}, CategoryIDs: []uint{3},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), b.ID)
	assert.Equal(t, book.ImageMain, b.Images[0].Type)
	assert.Equal(t, 1, tx.calls)
	books.AssertExpectations(t)
	tags.AssertExpectations(t)
	cats.AssertExpectations(t)
}

func TestCreateBookUseCase_StopsOnTagFailure(t *testing.T) {
	ctx := context.Background()
	books, tags, cats := new(mockBooks), new(mockTags), new(mockCategories)

	books.On("CreateBook", ctx, mock.Anything).Return(nil)
	tags.On("AttachTag", ctx, uint(7), uint(1)).Return(tag.ErrTagNotFound)

	_, err := NewCreateBookUseCase(&fakeTx{}, books, tags, cats).Execute(ctx, CreateBookRequest{TagIDs: []uint{1}})

	assert.ErrorIs(t, err, tag.ErrTagNotFound)
	cats.AssertNotCalled(t, "AssignToBook", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	books := new(mockBooks)
	books.On("DeleteBook", ctx, uint(4)).Return(book.ErrBookNotFound)

	err := NewDeleteBookUseCase(tx, books).Execute(ctx, 4)

	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Equal(t, 1, tx.calls)
}

func TestListBooksUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("非法排序不查询", func(t *testing.T) {
		books := new(mockBooks)
		_, err := NewListBooksUseCase(books).Execute(ctx, ListBooksRequest{Sort: []string{"title,desc"}})

		assert.ErrorIs(t, err, book.ErrInvalidSortKey)
		books.AssertNotCalled(t, "ListBooks", mock.Anything, mock.Anything)
	})

	t.Run("解析分页与排序", func(t *testing.T) {
		books := new(mockBooks)
		want := book.ListQuery{
			Pageable: pagination.Of(2, 5),
			Orders:   []book.Order{{Key: book.SortLikes, Desc: true}, {Key: book.SortPrice}},
		}
		page := pagination.NewPage([]book.ListItem{{ID: 1}}, 6, want.Pageable)
		books.On("ListBooks", ctx, want).Return(page, nil)

		got, err := NewListBooksUseCase(books).Execute(ctx, ListBooksRequest{
			Page: 2, Size: 5, Sort: []string{"likes,desc", "price"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, got.TotalPages)
	})

	t.Run("错误透传", func(t *testing.T) {
		books := new(mockBooks)
		boom := errors.New("db down")
		books.On("ListBooks", ctx, mock.Anything).Return(pagination.Page[book.ListItem]{}, boom)

		_, err := NewListBooksUseCase(books).Execute(ctx, ListBooksRequest{})
		assert.ErrorIs(t, err, boom)
	})
}
