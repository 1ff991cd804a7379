package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeInvalidSortKey, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeBookNotFound, http.StatusNotFound},
		{ErrCodeBookLikeDuplicate, http.StatusConflict},
		{ErrCodeInternal, http.StatusInternalServerError},
		{12, http.StatusInternalServerError},
		{49900, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "x").HTTPStatus())
		})
	}
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	detailed := ErrValidation.WithDetail("title: required")

	assert.True(t, errors.Is(detailed, ErrValidation))
	assert.False(t, errors.Is(detailed, ErrBindError))
	assert.Contains(t, detailed.Message, "title: required")
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		wrapped := fmt.Errorf("ctx: %w", ErrForbidden)
		assert.Same(t, ErrForbidden, GetAppError(wrapped))
	})

	t.Run("普通错误包装为Internal", func(t *testing.T) {
		cause := errors.New("boom")
		appErr := GetAppError(cause)

		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.ErrorIs(t, appErr, cause)
	})
}

func TestWrapf(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrapf(cause, "查询%s失败", "图书")

	assert.Equal(t, "查询图书失败", err.Message)
	assert.Equal(t, "[50000] 查询图书失败: connection refused", err.Error())
}
