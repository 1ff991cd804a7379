package category

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrCategoryNotFound    = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")
	ErrInvalidCategoryName = apperrors.New(apperrors.ErrCodeValidation, "分类名长度应为1-30个字符")
)
