package member

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrMemberNotFound = apperrors.New(apperrors.ErrCodeMemberNotFound, "会员不存在")
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "邮箱已被注册")
	ErrInvalidEmail   = apperrors.New(apperrors.ErrCodeValidation, "邮箱格式不正确")
	ErrInvalidName    = apperrors.New(apperrors.ErrCodeValidation, "昵称长度应为2-50个字符")
)
