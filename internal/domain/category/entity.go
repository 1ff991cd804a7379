package category

import (
	"strings"
	"unicode/utf8"
)

const maxNameLen = 30

// Category 图书分类
// 通过ParentID显式引用父分类,根分类ParentID为nil
type Category struct {
	ID       uint
	Name     string
	ParentID *uint
}

// IsRoot 是否为根分类
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// Summary 分类简要信息(列表与子分类查询)
type Summary struct {
	ID   uint
	Name string
}

// Node 分类树节点
type Node struct {
	ID       uint
	Name     string
	Children []*Node
}

// NormalizeName 分类名1-30个字符
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLen {
		return "", ErrInvalidCategoryName
	}
	return name, nil
}
