package coupon

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrCouponNotFound      = apperrors.New(apperrors.ErrCodeCouponNotFound, "优惠券不存在")
	ErrInvalidCouponStatus = apperrors.New(apperrors.ErrCodeInvalidCouponStatus, "优惠券不可用")
	ErrInvalidStatus       = apperrors.New(apperrors.ErrCodeValidation, "优惠券状态参数不正确")
)
