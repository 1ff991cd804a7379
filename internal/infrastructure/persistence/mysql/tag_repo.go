package mysql

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/tag"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓储
func NewTagRepository(db *gorm.DB) tag.Repository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, t *tag.Tag) error {
	model := &TagModel{Name: t.Name}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return tag.ErrTagDuplicate
		}
		return apperrors.Wrap(err, "创建标签失败")
	}
	t.ID = model.ID
	return nil
}

func (r *tagRepository) Update(ctx context.Context, t *tag.Tag) error {
	result := getDB(ctx, r.db).Model(&TagModel{}).Where("id = ?", t.ID).Update("name", t.Name)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return tag.ErrTagDuplicate
		}
		return apperrors.Wrap(result.Error, "更新标签失败")
	}
	if result.RowsAffected == 0 {
		return tag.ErrTagNotFound
	}
	return nil
}

// Delete 先删关联再删标签
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	if err := db.Where("tag_id = ?", id).Delete(&BookTagModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除标签关联失败")
	}

	result := db.Delete(&TagModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除标签失败")
	}
	if result.RowsAffected == 0 {
		return tag.ErrTagNotFound
	}
	return nil
}

func (r *tagRepository) FindByID(ctx context.Context, id uint) (*tag.Tag, error) {
	var model TagModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, tag.ErrTagNotFound
		}
		return nil, apperrors.Wrap(err, "查询标签失败")
	}
	return &tag.Tag{ID: model.ID, Name: model.Name}, nil
}

func (r *tagRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&TagModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询标签失败")
	}
	return count > 0, nil
}

func (r *tagRepository) AttachToBook(ctx context.Context, bookID, tagID uint) error {
	if err := getDB(ctx, r.db).Create(&BookTagModel{BookID: bookID, TagID: tagID}).Error; err != nil {
		if isDuplicateError(err) {
			return tag.ErrBookTagDuplicate
		}
		return apperrors.Wrap(err, "关联标签失败")
	}
	return nil
}

func (r *tagRepository) ExistsLink(ctx context.Context, bookID, tagID uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BookTagModel{}).
		Where("book_id = ? AND tag_id = ?", bookID, tagID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询标签关联失败")
	}
	return count > 0, nil
}

// ListBooks 标签下的图书
// 结构同图书列表:JOIN book_tags,LEFT JOIN 主图与点赞,GROUP BY后排序
func (r *tagRepository) ListBooks(ctx context.Context, tagID uint, q book.ListQuery) (pagination.Page[book.Detail], error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "TagQuery.ListBooks", attribute.Int64("tag.id", int64(tagID)))
	defer span.End()

	db := getDB(ctx, r.db)
	query := joinedBooks(db).
		Joins("JOIN book_tags AS bt ON bt.book_id = b.id").
		Where("bt.tag_id = ?", tagID).
		Select(detailSelect).
		Group("b.id, b.title, b.description, b.published_date, b.price, b.quantity, b.selling_price, " +
			"b.view_count, b.packing, b.author, b.isbn, b.publisher, b.created_at, bi.url")
	query, err := applyOrders(query, q.Orders)
	if err != nil {
		return pagination.Page[book.Detail]{}, err
	}

	var rows []detailRow
	if err := query.Offset(q.Pageable.Offset()).Limit(q.Pageable.Limit()).Scan(&rows).Error; err != nil {
		tracing.RecordError(span, err)
		return pagination.Page[book.Detail]{}, apperrors.Wrap(err, "查询标签图书失败")
	}

	var total int64
	if err := db.Model(&BookTagModel{}).Where("tag_id = ?", tagID).Count(&total).Error; err != nil {
		tracing.RecordError(span, err)
		return pagination.Page[book.Detail]{}, apperrors.Wrap(err, "查询标签图书总数失败")
	}

	items := make([]book.Detail, len(rows))
	for i, row := range rows {
		items[i] = row.toDetail()
	}
	return pagination.NewPage(items, total, q.Pageable), nil
}

func (r *tagRepository) ListNamesByBook(ctx context.Context, bookID uint) ([]string, error) {
	var names []string
	err := getDB(ctx, r.db).Table("book_tags AS bt").
		Joins("JOIN tags AS t ON t.id = bt.tag_id").
		Where("bt.book_id = ?", bookID).
		Pluck("t.name", &names).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书标签失败")
	}
	return names, nil
}
