package booklike

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrBookLikeDuplicate  = apperrors.New(apperrors.ErrCodeBookLikeDuplicate, "已点赞过该图书")
	ErrBookLikeNotFound   = apperrors.New(apperrors.ErrCodeBookLikeNotFound, "尚未点赞该图书")
	ErrLikedBooksNotFound = apperrors.New(apperrors.ErrCodeLikedBooksNotFound, "没有点赞过的图书")
)
