package book

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrInvalidSortKey 排序字段不在白名单内
	ErrInvalidSortKey = apperrors.New(apperrors.ErrCodeInvalidSortKey, "invalid sort key")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	ErrInvalidTitle        = apperrors.New(apperrors.ErrCodeValidation, "书名不能为空")
	ErrInvalidISBN         = apperrors.New(apperrors.ErrCodeValidation, "ISBN格式不正确")
	ErrInvalidPrice        = apperrors.New(apperrors.ErrCodeValidation, "价格不能为负数")
	ErrSellingPriceTooHigh = apperrors.New(apperrors.ErrCodeValidation, "售价不能高于定价")
	ErrInvalidQuantity     = apperrors.New(apperrors.ErrCodeValidation, "库存不能为负数")
	ErrInvalidImage        = apperrors.New(apperrors.ErrCodeValidation, "图片类型或地址不正确")
	ErrMultipleMainImages  = apperrors.New(apperrors.ErrCodeValidation, "每本书最多只能有一张主图")
)
