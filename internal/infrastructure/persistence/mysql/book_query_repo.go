package mysql

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

const tracerName = "bookstore-api/mysql"

// listColumns 列表投影列,GROUP BY同样使用这些列
const (
	listColumns = "b.id, b.title, b.price, b.selling_price, b.author, bi.url"
	listSelect  = "b.id, b.title, b.price, b.selling_price, b.author, bi.url AS image_url"
)

// bookQueryRepository 图书查询仓储(读模型)
// 每个分页查询两条SQL:内容查询(连接 + 排序 + 分页)与总数查询
type bookQueryRepository struct {
	db *gorm.DB
}

// NewBookQueryRepository 创建图书查询仓储
func NewBookQueryRepository(db *gorm.DB) book.QueryRepository {
	return &bookQueryRepository{db: db}
}

type listItemRow struct {
	ID           uint
	Title        string
	Price        int64
	SellingPrice int64
	Author       string
	ImageURL     *string `gorm:"column:image_url"`
}

func (row listItemRow) toItem() book.ListItem {
	item := book.ListItem{
		ID:           row.ID,
		Title:        row.Title,
		Price:        row.Price,
		SellingPrice: row.SellingPrice,
		Author:       row.Author,
	}
	if row.ImageURL != nil {
		item.ImageURL = *row.ImageURL
	}
	return item
}

func toListItems(rows []listItemRow) []book.ListItem {
	items := make([]book.ListItem, len(rows))
	for i, row := range rows {
		items[i] = row.toItem()
	}
	return items
}

// orderExpr 排序字段 → SQL表达式
// 只接受封闭的SortKey,请求参数不会进入SQL
func orderExpr(o book.Order) (string, error) {
	var expr string
	switch o.Key {
	case book.SortViewCount:
		expr = "b.view_count"
	case book.SortLikes:
		expr = "COUNT(bl.id)"
	case book.SortPublishedDate:
		expr = "b.published_date"
	case book.SortPrice:
		expr = "b.price"
	default:
		return "", book.ErrInvalidSortKey
	}
	if o.Desc {
		return expr + " DESC", nil
	}
	return expr + " ASC", nil
}

// applyOrders 依次追加排序条件,最后以b.id ASC保证结果稳定
func applyOrders(db *gorm.DB, orders []book.Order) (*gorm.DB, error) {
	for _, o := range orders {
		expr, err := orderExpr(o)
		if err != nil {
			return nil, err
		}
		db = db.Order(expr)
	}
	return db.Order("b.id ASC"), nil
}

// joinedBooks books LEFT JOIN 主图 LEFT JOIN 点赞
func joinedBooks(db *gorm.DB) *gorm.DB {
	return db.Table("books AS b").
		Joins("LEFT JOIN book_images AS bi ON bi.book_id = b.id AND bi.type = ?", string(book.ImageMain)).
		Joins("LEFT JOIN book_likes AS bl ON bl.book_id = b.id")
}

func (r *bookQueryRepository) countBooks(db *gorm.DB) (int64, error) {
	var total int64
	if err := db.Model(&BookModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询图书总数失败")
	}
	return total, nil
}

// ListBooks 图书列表
func (r *bookQueryRepository) ListBooks(ctx context.Context, q book.ListQuery) (pagination.Page[book.ListItem], error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookQuery.ListBooks",
		attribute.Int("page", q.Pageable.Page), attribute.Int("size", q.Pageable.Size))
	defer span.End()

	db := getDB(ctx, r.db)
	query, err := applyOrders(joinedBooks(db).Select(listSelect).Group(listColumns), q.Orders)
	if err != nil {
		return pagination.Page[book.ListItem]{}, err
	}

	var rows []listItemRow
	if err := query.Offset(q.Pageable.Offset()).Limit(q.Pageable.Limit()).Scan(&rows).Error; err != nil {
		tracing.RecordError(span, err)
		return pagination.Page[book.ListItem]{}, apperrors.Wrap(err, "查询图书列表失败")
	}

	total, err := r.countBooks(db)
	if err != nil {
		tracing.RecordError(span, err)
		return pagination.Page[book.ListItem]{}, err
	}
	return pagination.NewPage(toListItems(rows), total, q.Pageable), nil
}

type detailRow struct {
	ID            uint
	Title         string
	Description   string
	PublishedDate time.Time
	Price         int64
	Quantity      int
	SellingPrice  int64
	ViewCount     int64
	Packing       bool
	Author        string
	ISBN          string `gorm:"column:isbn"`
	Publisher     string
	CreatedAt     time.Time
	ImageURL      *string `gorm:"column:image_url"`
}

// detailSelect 详情投影列(标签图书列表共用)
const detailSelect = "b.id, b.title, b.description, b.published_date, b.price, b.quantity, b.selling_price, " +
	"b.view_count, b.packing, b.author, b.isbn, b.publisher, b.created_at, bi.url AS image_url"

func (row detailRow) toDetail() book.Detail {
	d := book.Detail{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		PublishedDate: row.PublishedDate,
		Price:         row.Price,
		Quantity:      row.Quantity,
		SellingPrice:  row.SellingPrice,
		ViewCount:     row.ViewCount,
		Packing:       row.Packing,
		Author:        row.Author,
		ISBN:          row.ISBN,
		Publisher:     row.Publisher,
		CreatedAt:     row.CreatedAt,
	}
	if row.ImageURL != nil {
		d.ImageURL = *row.ImageURL
	}
	return d
}

// ReadDetail 图书详情
func (r *bookQueryRepository) ReadDetail(ctx context.Context, id uint) (*book.Detail, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookQuery.ReadDetail", attribute.Int64("book.id", int64(id)))
	defer span.End()

	var rows []detailRow
	err := getDB(ctx, r.db).Table("books AS b").
		Select(detailSelect).
		Joins("LEFT JOIN book_images AS bi ON bi.book_id = b.id AND bi.type = ?", string(book.ImageMain)).
		Where("b.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		tracing.RecordError(span, err)
		return nil, apperrors.Wrap(err, "查询图书详情失败")
	}
	if len(rows) == 0 {
		return nil, book.ErrBookNotFound
	}

	d := rows[0].toDetail()
	return &d, nil
}

type adminItemRow struct {
	ID           uint
	Title        string
	Price        int64
	SellingPrice int64
	Author       string
	Quantity     int
	ViewCount    int64
}

// ListForAdmin 管理后台列表,按ID排序
func (r *bookQueryRepository) ListForAdmin(ctx context.Context, p pagination.Pageable) (pagination.Page[book.AdminItem], error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookQuery.ListForAdmin")
	defer span.End()

	db := getDB(ctx, r.db)
	var rows []adminItemRow
	err := db.Table("books AS b").
		Select("b.id, b.title, b.price, b.selling_price, b.author, b.quantity, b.view_count").
		Order("b.id ASC").
		Offset(p.Offset()).Limit(p.Limit()).
		Scan(&rows).Error
	if err != nil {
		tracing.RecordError(span, err)
		return pagination.Page[book.AdminItem]{}, apperrors.Wrap(err, "查询图书列表失败")
	}

	total, err := r.countBooks(db)
	if err != nil {
		tracing.RecordError(span, err)
		return pagination.Page[book.AdminItem]{}, err
	}

	items := make([]book.AdminItem, len(rows))
	for i, row := range rows {
		items[i] = book.AdminItem(row)
	}
	return pagination.NewPage(items, total, p), nil
}

// ListLikedByMember 会员点赞过的图书,最近点赞在前
// 总数为该会员的点赞数
func (r *bookQueryRepository) ListLikedByMember(ctx context.Context, memberID uint, p pagination.Pageable) (pagination.Page[book.ListItem], error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookQuery.ListLikedByMember", attribute.Int64("member.id", int64(memberID)))
	defer span.End()

	db := getDB(ctx, r.db)
	var rows []listItemRow
	err := db.Table("book_likes AS bl").
		Select(listSelect).
		Joins("JOIN books AS b ON b.id = bl.book_id").
		Joins("LEFT JOIN book_images AS bi ON bi.book_id = b.id AND bi.type = ?", string(book.ImageMain)).
		Where("bl.member_id = ?", memberID).
		Order("bl.created_at DESC").Order("bl.id DESC").
		Offset(p.Offset()).Limit(p.Limit()).
		Scan(&rows).Error
	if err != nil {
		tracing.RecordError(span, err)
		return pagination.Page[book.ListItem]{}, apperrors.Wrap(err, "查询点赞图书失败")
	}

	var total int64
	if err := db.Model(&BookLikeModel{}).Where("member_id = ?", memberID).Count(&total).Error; err != nil {
		tracing.RecordError(span, err)
		return pagination.Page[book.ListItem]{}, apperrors.Wrap(err, "查询点赞总数失败")
	}
	return pagination.NewPage(toListItems(rows), total, p), nil
}

// ListOrderedByLikeCount 点赞排行,总数为图书总数
// 排行查询是ListBooks的子Span
func (r *bookQueryRepository) ListOrderedByLikeCount(ctx context.Context, p pagination.Pageable) (pagination.Page[book.ListItem], error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookQuery.ListOrderedByLikeCount")
	defer span.End()

	page, err := r.ListBooks(ctx, book.ListQuery{
		Pageable: p,
		Orders:   []book.Order{{Key: book.SortLikes, Desc: true}},
	})
	if err != nil {
		tracing.RecordError(span, err)
	}
	return page, err
}

// CountLikeByBookID 图书点赞数
func (r *bookQueryRepository) CountLikeByBookID(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&BookLikeModel{}).Where("book_id = ?", bookID).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询点赞数失败")
	}
	return count, nil
}
