package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	args := m.Called(ctx, isbn)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockQuery struct{ mock.Mock }

func (m *mockQuery) ListBooks(ctx context.Context, q ListQuery) (pagination.Page[ListItem], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.Page[ListItem]), args.Error(1)
}

func (m *mockQuery) ReadDetail(ctx context.Context, id uint) (*Detail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*Detail)
	return d, args.Error(1)
}

func (m *mockQuery) ListForAdmin(ctx context.Context, p pagination.Pageable) (pagination.Page[AdminItem], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(pagination.Page[AdminItem]), args.Error(1)
}

func (m *mockQuery) ListLikedByMember(ctx context.Context, memberID uint, p pagination.Pageable) (pagination.Page[ListItem], error) {
	args := m.Called(ctx, memberID, p)
	return args.Get(0).(pagination.Page[ListItem]), args.Error(1)
}

func (m *mockQuery) ListOrderedByLikeCount(ctx context.Context, p pagination.Pageable) (pagination.Page[ListItem], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(pagination.Page[ListItem]), args.Error(1)
}

func (m *mockQuery) CountLikeByBookID(ctx context.Context, bookID uint) (int64, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(int64), args.Error(1)
}

func validBook() *Book {
	return &Book{
		Title:        " Go语言实战 ",
		ISBN:         "978-7-115-42802-8",
		Price:        5900,
		SellingPrice: 5310,
		Quantity:     10,
		Author:       "William Kennedy",
		Publisher:    "人民邮电出版社",
		Images: []Image{
			{URL: "https://img.example.com/main.jpg", Type: ImageMain},
			{URL: "https://img.example.com/desc.jpg", Type: ImageDescription},
		},
	}
}

func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	svc := NewService(repo, new(mockQuery))

	repo.On("ExistsByISBN", ctx, "9787115428028").Return(false, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*book.Book")).Return(nil)

	b := validBook()
	require.NoError(t, svc.CreateBook(ctx, b))

	assert.Equal(t, "Go语言实战", b.Title)
	assert.Equal(t, "9787115428028", b.ISBN)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Equal(t, "https://img.example.com/main.jpg", b.MainImageURL())
	repo.AssertExpectations(t)
}

func TestService_CreateBook_RejectsDuplicateISBN(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("ExistsByISBN", ctx, "9787115428028").Return(true, nil)

	err := NewService(repo, new(mockQuery)).CreateBook(ctx, validBook())

	assert.ErrorIs(t, err, ErrISBNDuplicate)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBook_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Book)
		want   error
	}{
		{"空书名", func(b *Book) { b.Title = "  " }, ErrInvalidTitle},
		{"ISBN位数", func(b *Book) { b.ISBN = "123456789" }, ErrInvalidISBN},
		{"负价格", func(b *Book) { b.Price = -1 }, ErrInvalidPrice},
		{"售价高于定价", func(b *Book) { b.SellingPrice = b.Price + 1 }, ErrSellingPriceTooHigh},
		{"负库存", func(b *Book) { b.Quantity = -1 }, ErrInvalidQuantity},
		{"未知图片类型", func(b *Book) { b.Images[1].Type = "COVER" }, ErrInvalidImage},
		{"两张主图", func(b *Book) { b.Images[1].Type = ImageMain }, ErrMultipleMainImages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			b := validBook()
			tt.mutate(b)

			err := NewService(repo, new(mockQuery)).CreateBook(context.Background(), b)

			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "ExistsByISBN", mock.Anything, mock.Anything)
		})
	}
}

func TestService_DeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("不存在", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("ExistsByID", ctx, uint(9)).Return(false, nil)

		err := NewService(repo, new(mockQuery)).DeleteBook(ctx, 9)
		assert.ErrorIs(t, err, ErrBookNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("存在", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("ExistsByID", ctx, uint(3)).Return(true, nil)
		repo.On("Delete", ctx, uint(3)).Return(nil)

		require.NoError(t, NewService(repo, new(mockQuery)).DeleteBook(ctx, 3))
		repo.AssertExpectations(t)
	})

	t.Run("查询失败透传", func(t *testing.T) {
		repo := new(mockRepo)
		boom := errors.New("db down")
		repo.On("ExistsByID", ctx, uint(3)).Return(false, boom)

		assert.ErrorIs(t, NewService(repo, new(mockQuery)).DeleteBook(ctx, 3), boom)
	})
}

func TestService_ListBooks_RejectsSortBeforeQuery(t *testing.T) {
	query := new(mockQuery)
	svc := NewService(new(mockRepo), query)

	_, err := svc.ListBooks(context.Background(), ListQuery{
		Pageable: pagination.Of(1, 10),
		Orders:   []Order{{Key: SortKey(0)}},
	})

	assert.ErrorIs(t, err, ErrInvalidSortKey)
	query.AssertNotCalled(t, "ListBooks", mock.Anything, mock.Anything)
}

func TestService_ReadDetail(t *testing.T) {
	ctx := context.Background()
	query := new(mockQuery)
	query.On("ReadDetail", ctx, uint(5)).Return(nil, ErrBookNotFound)

	_, err := NewService(new(mockRepo), query).ReadDetail(ctx, 5)
	assert.ErrorIs(t, err, ErrBookNotFound)
}
