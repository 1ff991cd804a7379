package dto

import (
	"github.com/xiebiao/bookstore-api/internal/domain/category"
	"github.com/xiebiao/bookstore-api/internal/domain/tag"
)

// TagRequest 创建/修改标签
type TagRequest struct {
	Name string `json:"name" binding:"required,max=30" example:"编程"`
}

// AttachTagRequest 给图书打标签
type AttachTagRequest struct {
	TagID uint `json:"tag_id" binding:"required" example:"1"`
}

// TagResponse 标签
type TagResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"编程"`
}

func NewTagResponse(t *tag.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name}
}

// CreateCategoryRequest 创建分类,parent_id为空时创建根分类
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,max=30" example:"计算机"`
	ParentID *uint  `json:"parent_id" example:"1"`
}

// AssignCategoriesRequest 给图书设置分类
type AssignCategoriesRequest struct {
	CategoryIDs []uint `json:"category_ids" binding:"required,min=1" example:"1,2"`
}

// CategoryResponse 分类
type CategoryResponse struct {
	ID       uint   `json:"id" example:"2"`
	Name     string `json:"name" example:"编程语言"`
	ParentID *uint  `json:"parent_id,omitempty" example:"1"`
}

func NewCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, ParentID: c.ParentID}
}

// CategorySummary 分类列表项
type CategorySummary struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"计算机"`
}

func NewCategorySummaries(list []category.Summary) []CategorySummary {
	out := make([]CategorySummary, 0, len(list))
	for _, s := range list {
		out = append(out, CategorySummary(s))
	}
	return out
}

// CategoryNode 分类树节点,叶子节点children为[]
type CategoryNode struct {
	ID       uint           `json:"id" example:"1"`
	Name     string         `json:"name" example:"计算机"`
	Children []CategoryNode `json:"children"`
}

func NewCategoryTree(nodes []*category.Node) []CategoryNode {
	out := make([]CategoryNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, CategoryNode{ID: n.ID, Name: n.Name, Children: NewCategoryTree(n.Children)})
	}
	return out
}
