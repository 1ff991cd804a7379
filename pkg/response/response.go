package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/logger"
)

// Response 统一响应结构
// 格式: {"header":{"success":true,"status":200,"message":"..."},"body":{...}}
// 1. Header.Status与HTTP状态码一致
// 2. Body成功时为业务数据,失败时为ErrorBody
type Response struct {
	Header Header      `json:"header"`
	Body   interface{} `json:"body,omitempty"`
}

// Header 响应头
type Header struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorBody 错误响应体
type ErrorBody struct {
	Code      int    `json:"code"`      // 业务错误码
	Title     string `json:"title"`     // 错误描述
	Status    int    `json:"status"`    // HTTP状态码
	Timestamp string `json:"timestamp"` // RFC3339
}

// Success 成功响应(200)
func Success(c *gin.Context, body interface{}) {
	SuccessWithMessage(c, http.StatusOK, "", body)
}

// Created 创建成功响应(201)
func Created(c *gin.Context, message string, body interface{}) {
	SuccessWithMessage(c, http.StatusCreated, message, body)
}

// SuccessWithMessage 自定义状态码与提示的成功响应
func SuccessWithMessage(c *gin.Context, status int, message string, body interface{}) {
	c.JSON(status, Response{
		Header: Header{Success: true, Status: status, Message: message},
		Body:   body,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := uc.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部错误记录完整原因,客户端只看到友好提示
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			"path", c.FullPath(),
			"code", appErr.Code,
			"error", err,
		)
	}

	c.JSON(status, Response{
		Header: Header{Success: false, Status: status, Message: headerMessage(status)},
		Body: ErrorBody{
			Code:      appErr.Code,
			Title:     appErr.Message,
			Status:    status,
			Timestamp: time.Now().Format(time.RFC3339),
		},
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

func headerMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusInternalServerError:
		return "server error"
	default:
		return http.StatusText(status)
	}
}
