package cart

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrCartNotFound     = apperrors.New(apperrors.ErrCodeNotFound, "购物车不存在")
	ErrCartItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车条目不存在")
	ErrInvalidQuantity  = apperrors.New(apperrors.ErrCodeValidation, "数量不正确")
	ErrQuantityTooLarge = apperrors.New(apperrors.ErrCodeValidation, "单本图书数量不能超过99")
)
