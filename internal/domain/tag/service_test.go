package tag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, t *Tag) error {
	err := m.Called(ctx, t).Error(0)
	if err == nil {
		t.ID = 1
	}
	return err
}

func (m *mockRepo) Update(ctx context.Context, t *Tag) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*Tag, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*Tag)
	return t, args.Error(1)
}

func (m *mockRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) AttachToBook(ctx context.Context, bookID, tagID uint) error {
	return m.Called(ctx, bookID, tagID).Error(0)
}

func (m *mockRepo) ExistsLink(ctx context.Context, bookID, tagID uint) (bool, error) {
	args := m.Called(ctx, bookID, tagID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ListBooks(ctx context.Context, tagID uint, q book.ListQuery) (pagination.Page[book.Detail], error) {
	args := m.Called(ctx, tagID, q)
	return args.Get(0).(pagination.Page[book.Detail]), args.Error(1)
}

func (m *mockRepo) ListNamesByBook(ctx context.Context, bookID uint) ([]string, error) {
	args := m.Called(ctx, bookID)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type mockBooks struct {
	book.Service
	mock.Mock
}

func (m *mockBooks) MustExist(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreateTag(t *testing.T) {
	ctx := context.Background()

	t.Run("成功并去除空白", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("ExistsByName", ctx, "编程").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*tag.Tag")).Return(nil)

		tg, err := NewService(repo, new(mockBooks)).CreateTag(ctx, "  编程 ")
		require.NoError(t, err)
		assert.Equal(t, "编程", tg.Name)
		assert.Equal(t, uint(1), tg.ID)
	})

	t.Run("重复", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("ExistsByName", ctx, "编程").Return(true, nil)

		_, err := NewService(repo, new(mockBooks)).CreateTag(ctx, "编程")
		assert.ErrorIs(t, err, ErrTagDuplicate)
	})

	t.Run("空名", func(t *testing.T) {
		_, err := NewService(new(mockRepo), new(mockBooks)).CreateTag(ctx, "   ")
		assert.ErrorIs(t, err, ErrInvalidTagName)
	})
}

func TestService_UpdateTag_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("FindByID", ctx, uint(4)).Return(nil, ErrTagNotFound)

	_, err := NewService(repo, new(mockBooks)).UpdateTag(ctx, 4, "小说")
	assert.ErrorIs(t, err, ErrTagNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_AttachTag(t *testing.T) {
	ctx := context.Background()

	t.Run("已关联", func(t *testing.T) {
		repo, books := new(mockRepo), new(mockBooks)
		books.On("MustExist", ctx, uint(2)).Return(nil)
		repo.On("FindByID", ctx, uint(5)).Return(&Tag{ID: 5, Name: "编程"}, nil)
		repo.On("ExistsLink", ctx, uint(2), uint(5)).Return(true, nil)

		err := NewService(repo, books).AttachTag(ctx, 2, 5)
		assert.ErrorIs(t, err, ErrBookTagDuplicate)
		repo.AssertNotCalled(t, "AttachToBook", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("图书不存在", func(t *testing.T) {
		repo, books := new(mockRepo), new(mockBooks)
		books.On("MustExist", ctx, uint(2)).Return(book.ErrBookNotFound)

		assert.ErrorIs(t, NewService(repo, books).AttachTag(ctx, 2, 5), book.ErrBookNotFound)
	})
}

func TestService_ReadBooksByTag(t *testing.T) {
	ctx := context.Background()
	q := book.ListQuery{Pageable: pagination.Of(1, 10)}

	repo := new(mockRepo)
	repo.On("ListBooks", ctx, uint(5), q).Return(pagination.NewPage[book.Detail](nil, 0, q.Pageable), nil)

	_, err := NewService(repo, new(mockBooks)).ReadBooksByTag(ctx, 5, q)
	assert.ErrorIs(t, err, ErrTagBooksNotFound)

	_, err = NewService(repo, new(mockBooks)).ReadBooksByTag(ctx, 5, book.ListQuery{Orders: []book.Order{{}}})
	assert.ErrorIs(t, err, book.ErrInvalidSortKey)
}

func TestService_ReadTagsByBook(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("ListNamesByBook", ctx, uint(1)).Return([]string{"编程", "Go", "编程"}, nil)
	repo.On("ListNamesByBook", ctx, uint(2)).Return([]string{}, nil)
	svc := NewService(repo, new(mockBooks))

	names, err := svc.ReadTagsByBook(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "编程"}, names)

	_, err = svc.ReadTagsByBook(ctx, 2)
	assert.ErrorIs(t, err, ErrBookTagsNotFound)
}
