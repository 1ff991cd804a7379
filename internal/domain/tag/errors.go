package tag

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrTagNotFound      = apperrors.New(apperrors.ErrCodeTagNotFound, "标签不存在")
	ErrTagDuplicate     = apperrors.New(apperrors.ErrCodeTagDuplicate, "标签已存在")
	ErrBookTagDuplicate = apperrors.New(apperrors.ErrCodeBookTagDuplicate, "图书已有该标签")
	ErrTagBooksNotFound = apperrors.New(apperrors.ErrCodeTagBooksNotFound, "该标签下没有图书")
	ErrBookTagsNotFound = apperrors.New(apperrors.ErrCodeBookTagsNotFound, "该图书没有标签")
	ErrInvalidTagName   = apperrors.New(apperrors.ErrCodeValidation, "标签名长度应为1-30个字符")
)
