package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/member"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// memberRepository 会员仓储实现
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓储
func NewMemberRepository(db *gorm.DB) member.Repository {
	return &memberRepository{db: db}
}

// Create 邮箱唯一由uniqueIndex保证,冲突时返回ErrEmailDuplicate
func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	model := &MemberModel{
		Email:     m.Email,
		Password:  m.Password,
		Name:      m.Name,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return member.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建会员失败")
	}
	m.ID = model.ID
	return nil
}

func (r *memberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	return r.findOne(getDB(ctx, r.db).Where("id = ?", id))
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	return r.findOne(getDB(ctx, r.db).Where("email = ?", email))
}

func (r *memberRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&MemberModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询会员失败")
	}
	return count > 0, nil
}

func (r *memberRepository) findOne(db *gorm.DB) (*member.Member, error) {
	var model MemberModel
	if err := db.First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询会员失败")
	}
	return &member.Member{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		Name:      model.Name,
		Role:      member.Role(model.Role),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
