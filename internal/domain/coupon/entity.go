package coupon

import (
	"time"
)

// Status 优惠券状态
type Status string

const (
	StatusReady   Status = "READY"
	StatusUsed    Status = "USED"
	StatusExpired Status = "EXPIRED"
)

// ParseStatus 空串表示不过滤
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case "", StatusReady, StatusUsed, StatusExpired:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Coupon 发放给会员的优惠券
// CouponFormID指向优惠券模板(面额、有效期等由模板定义)
type Coupon struct {
	ID           uint
	CouponFormID uint
	MemberID     uint
	Status       Status
	IssuedAt     time.Time
	UsedAt       *time.Time
}

// Use READY -> USED
func (c *Coupon) Use(now time.Time) error {
	if c.Status != StatusReady {
		return ErrInvalidCouponStatus.WithDetail(string(c.Status))
	}
	c.Status = StatusUsed
	c.UsedAt = &now
	return nil
}
