package tag

import (
	"strings"
	"unicode/utf8"
)

const maxNameLen = 30

// Tag 图书标签,名称全局唯一
type Tag struct {
	ID   uint
	Name string
}

// BookTag 图书与标签的关联行,(BookID, TagID)唯一
type BookTag struct {
	ID     uint
	BookID uint
	TagID  uint
}

// NormalizeName 去除首尾空白并校验长度
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLen {
		return "", ErrInvalidTagName
	}
	return name, nil
}
