// Package validator 注册自定义binding校验规则并格式化校验错误
package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register 向gin的binding引擎注册自定义tag
//   - isbn: 去掉'-'后为10位或13位数字
//   - image_type: MAIN | DESCRIPTION
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding引擎不是go-playground/validator")
			return
		}
		if err = v.RegisterValidation("isbn", validateISBN); err != nil {
			return
		}
		err = v.RegisterValidation("image_type", validateImageType)
	})
	return err
}

// IsISBN 校验ISBN格式(只检查位数与字符,不校验校验位)
func IsISBN(s string) bool {
	clean := strings.ReplaceAll(s, "-", "")
	if len(clean) != 10 && len(clean) != 13 {
		return false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateISBN(fl validator.FieldLevel) bool {
	return IsISBN(fl.Field().String())
}

func validateImageType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "MAIN", "DESCRIPTION":
		return true
	}
	return false
}

// FormatError 把绑定/校验错误转为 "field: tag" 形式的描述
// 非校验错误(如JSON语法错误)原样返回err.Error()
func FormatError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
