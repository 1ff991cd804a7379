package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型,前三位即HTTP状态码(40402 → 404)
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较,WithDetail派生的错误也能被errors.Is识别
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// HTTPStatus 由错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 || http.StatusText(status) == "" {
		return http.StatusInternalServerError
	}
	return status
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// WithDetail 复制一份预定义错误并附带具体原因(如校验失败的字段)
func (e *AppError) WithDetail(detail string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message + ": " + detail,
		Err:     e.Err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：错误码 = HTTP状态码 * 100 + 序号
// - 400xx: 请求参数/业务规则校验失败
// - 401xx/403xx: 认证与授权
// - 404xx: 资源不存在
// - 409xx: 资源冲突(重复)
// - 500xx: 服务端错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 请求错误（40000-40099）
	ErrCodeBadRequest          = 40000 // 请求错误(通用)
	ErrCodeValidation          = 40001 // 表单校验失败
	ErrCodeBindError           = 40002 // 参数绑定失败
	ErrCodeInvalidSortKey      = 40003 // 不支持的排序字段
	ErrCodeWeakPassword        = 40004 // 密码强度不足
	ErrCodeInvalidCouponStatus = 40005 // 优惠券状态非法

	// 认证授权错误（40100-40199, 40300-40399）
	ErrCodeUnauthorized    = 40100 // 未登录
	ErrCodeInvalidToken    = 40101 // Token无效
	ErrCodeTokenExpired    = 40102 // Token过期
	ErrCodeInvalidPassword = 40103 // 密码错误
	ErrCodeForbidden       = 40300 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound           = 40400 // 资源不存在(通用)
	ErrCodeMemberNotFound     = 40401 // 会员不存在
	ErrCodeBookNotFound       = 40402 // 图书不存在
	ErrCodeTagNotFound        = 40403 // 标签不存在
	ErrCodeCategoryNotFound   = 40404 // 分类不存在
	ErrCodeCartItemNotFound   = 40405 // 购物车条目不存在
	ErrCodeCouponNotFound     = 40406 // 优惠券不存在
	ErrCodeTagBooksNotFound   = 40407 // 标签下没有图书
	ErrCodeBookTagsNotFound   = 40408 // 图书没有标签
	ErrCodeLikedBooksNotFound = 40409 // 没有点赞的图书
	ErrCodeBookLikeNotFound   = 40410 // 点赞记录不存在

	// 冲突错误（40900-40999）
	ErrCodeDuplicateEntry    = 40900 // 重复记录(通用)
	ErrCodeEmailDuplicate    = 40901 // 邮箱已存在
	ErrCodeISBNDuplicate     = 40902 // ISBN已存在
	ErrCodeTagDuplicate      = 40903 // 标签已存在
	ErrCodeBookTagDuplicate  = 40904 // 图书已有该标签
	ErrCodeBookLikeDuplicate = 40905 // 已点赞
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 请求错误
	ErrBadRequest   = New(ErrCodeBadRequest, "bad request")
	ErrValidation   = New(ErrCodeValidation, "请求表单校验失败")
	ErrBindError    = New(ErrCodeBindError, "参数格式错误")
	ErrWeakPassword = New(ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")

	// 认证授权
	ErrUnauthorized    = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token已过期")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "密码错误")
	ErrForbidden       = New(ErrCodeForbidden, "无权限访问")

	// 资源不存在
	ErrNotFound = New(ErrCodeNotFound, "not found")

	// 重复记录
	ErrDuplicateEntry = New(ErrCodeDuplicateEntry, "记录已存在")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "server error")
}
