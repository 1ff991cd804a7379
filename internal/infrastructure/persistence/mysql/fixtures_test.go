package mysql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// newTestDB 内存SQLite,单连接保证所有查询看到同一个库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

type bookFixture struct {
	title     string
	price     int64
	viewCount int64
	published time.Time
	mainImage bool
}

var isbnSeq int

// seedBook 通过仓储插入图书,带一张详情图,按需带主图
func seedBook(t *testing.T, db *gorm.DB, f bookFixture) *book.Book {
	t.Helper()
	isbnSeq++

	b := &book.Book{
		Title:         f.title,
		Description:   f.title + "简介",
		PublishedDate: f.published,
		Price:         f.price,
		SellingPrice:  f.price * 9 / 10,
		Quantity:      5,
		ViewCount:     f.viewCount,
		Author:        "作者" + f.title,
		ISBN:          fmt.Sprintf("9780000%06d", isbnSeq),
		Publisher:     "测试出版社",
		Images: []book.Image{
			{URL: "/img/" + f.title + "-desc.jpg", Type: book.ImageDescription},
		},
	}
	if f.mainImage {
		b.Images = append(b.Images, book.Image{URL: "/img/" + f.title + ".jpg", Type: book.ImageMain})
	}

	require.NoError(t, NewBookRepository(db).Create(context.Background(), b))
	return b
}

// seedLikes 给图书插入n个不同会员的点赞
func seedLikes(t *testing.T, db *gorm.DB, bookID uint, memberIDs ...uint) {
	t.Helper()
	for i, memberID := range memberIDs {
		like := &BookLikeModel{
			MemberID:  memberID,
			BookID:    bookID,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		}
		require.NoError(t, db.Create(like).Error)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
