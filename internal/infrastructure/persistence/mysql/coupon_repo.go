package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/coupon"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository 创建优惠券仓储
func NewCouponRepository(db *gorm.DB) coupon.Repository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	model := &CouponModel{
		CouponFormID: c.CouponFormID,
		MemberID:     c.MemberID,
		Status:       string(c.Status),
		IssuedAt:     c.IssuedAt,
		UsedAt:       c.UsedAt,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "发放优惠券失败")
	}
	c.ID = model.ID
	return nil
}

func (r *couponRepository) FindByID(ctx context.Context, id uint) (*coupon.Coupon, error) {
	var model CouponModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, coupon.ErrCouponNotFound
		}
		return nil, apperrors.Wrap(err, "查询优惠券失败")
	}
	return toCoupon(&model), nil
}

func (r *couponRepository) ListByMember(ctx context.Context, memberID uint, status coupon.Status, p pagination.Pageable) (pagination.Page[coupon.Coupon], error) {
	query := getDB(ctx, r.db).Model(&CouponModel{}).Where("member_id = ?", memberID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	// Session使条件可以在Count与Find之间复用
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return pagination.Page[coupon.Coupon]{}, apperrors.Wrap(err, "查询优惠券总数失败")
	}

	var models []CouponModel
	err := query.Order("issued_at DESC").Order("id DESC").
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&models).Error
	if err != nil {
		return pagination.Page[coupon.Coupon]{}, apperrors.Wrap(err, "查询优惠券失败")
	}

	items := make([]coupon.Coupon, len(models))
	for i := range models {
		items[i] = *toCoupon(&models[i])
	}
	return pagination.NewPage(items, total, p), nil
}

// UpdateStatus UPDATE ... WHERE id = ? AND status = from
func (r *couponRepository) UpdateStatus(ctx context.Context, c *coupon.Coupon, from coupon.Status) (bool, error) {
	result := getDB(ctx, r.db).Model(&CouponModel{}).
		Where("id = ? AND status = ?", c.ID, string(from)).
		Updates(map[string]interface{}{"status": string(c.Status), "used_at": c.UsedAt})
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "更新优惠券失败")
	}
	return result.RowsAffected == 1, nil
}

func toCoupon(m *CouponModel) *coupon.Coupon {
	return &coupon.Coupon{
		ID:           m.ID,
		CouponFormID: m.CouponFormID,
		MemberID:     m.MemberID,
		Status:       coupon.Status(m.Status),
		IssuedAt:     m.IssuedAt,
		UsedAt:       m.UsedAt,
	}
}
