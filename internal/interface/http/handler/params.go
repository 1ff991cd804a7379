package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/response"
	"github.com/xiebiao/bookstore-api/pkg/validator"
)

// bindJSON 绑定并校验JSON请求体,失败时写出40001响应并返回false
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, apperrors.ErrValidation.WithDetail(validator.FormatError(err)))
		return false
	}
	return true
}

// bindQuery 绑定并校验查询参数
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		fail(c, apperrors.ErrValidation.WithDetail(validator.FormatError(err)))
		return false
	}
	return true
}

// pathID 解析路径中的正整数ID
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		fail(c, apperrors.ErrValidation.WithDetail(name))
		return 0, false
	}
	return uint(id), true
}

func fail(c *gin.Context, err error) {
	response.Error(c, err)
}

// ok200 没有响应体的成功响应
func ok200(c *gin.Context, message string) {
	response.SuccessWithMessage(c, http.StatusOK, message, nil)
}
