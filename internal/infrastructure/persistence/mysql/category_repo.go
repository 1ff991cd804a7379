package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-api/internal/domain/category"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := &CategoryModel{Name: c.Name, ParentID: c.ParentID}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建分类失败")
	}
	c.ID = model.ID
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return &category.Category{ID: model.ID, Name: model.Name, ParentID: model.ParentID}, nil
}

func (r *categoryRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&CategoryModel{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询分类失败")
	}
	return count, nil
}

func (r *categoryRepository) listSummaries(db *gorm.DB) ([]category.Summary, error) {
	var models []CategoryModel
	if err := db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	out := make([]category.Summary, len(models))
	for i, m := range models {
		out[i] = category.Summary{ID: m.ID, Name: m.Name}
	}
	return out, nil
}

func (r *categoryRepository) ListRoots(ctx context.Context) ([]category.Summary, error) {
	return r.listSummaries(getDB(ctx, r.db).Where("parent_id IS NULL"))
}

func (r *categoryRepository) ListChildren(ctx context.Context, parentID uint) ([]category.Summary, error) {
	return r.listSummaries(getDB(ctx, r.db).Where("parent_id = ?", parentID))
}

// ListAll 全量分类(用于构建树)
func (r *categoryRepository) ListAll(ctx context.Context) ([]category.Category, error) {
	var models []CategoryModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	out := make([]category.Category, len(models))
	for i, m := range models {
		out[i] = category.Category{ID: m.ID, Name: m.Name, ParentID: m.ParentID}
	}
	return out, nil
}

func (r *categoryRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	db := getDB(ctx, r.db)
	if err := db.Where("category_id IN ?", ids).Delete(&BookCategoryModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除分类关联失败")
	}
	if err := db.Where("id IN ?", ids).Delete(&CategoryModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除分类失败")
	}
	return nil
}

// AssignBook INSERT ... ON CONFLICT DO NOTHING(MySQL为INSERT IGNORE语义)
func (r *categoryRepository) AssignBook(ctx context.Context, bookID uint, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]BookCategoryModel, len(categoryIDs))
	for i, id := range categoryIDs {
		links[i] = BookCategoryModel{BookID: bookID, CategoryID: id}
	}
	if err := getDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
		return apperrors.Wrap(err, "关联分类失败")
	}
	return nil
}
