package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/bookstore-api/internal/application/category"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// CategoryHandler 图书分类
type CategoryHandler struct {
	commands *appcategory.CommandUseCase
	queries  *appcategory.QueryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(commands *appcategory.CommandUseCase, queries *appcategory.QueryUseCase) *CategoryHandler {
	return &CategoryHandler{commands: commands, queries: queries}
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类"
// @Success      201 {object} response.Response{body=dto.CategoryResponse}
// @Failure      404 {object} response.Response "父分类不存在"
// @Router       /bookstore/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.commands.Create(c.Request.Context(), req.Name, req.ParentID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "category created", dto.NewCategoryResponse(cat))
}

// ListRoots 根分类
// @Summary      根分类
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{body=[]dto.CategorySummary}
// @Router       /bookstore/categories [get]
func (h *CategoryHandler) ListRoots(c *gin.Context) {
	list, err := h.queries.Roots(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewCategorySummaries(list))
}

// ListChildren 子分类
// @Summary      子分类
// @Tags         分类
// @Produce      json
// @Param        categoryId path int true "分类ID"
// @Success      200 {object} response.Response{body=[]dto.CategorySummary}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /bookstore/categories/{categoryId}/children [get]
func (h *CategoryHandler) ListChildren(c *gin.Context) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	list, err := h.queries.Children(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewCategorySummaries(list))
}

// Tree 分类树
// @Summary      分类树
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{body=[]dto.CategoryNode}
// @Router       /bookstore/categories/tree [get]
func (h *CategoryHandler) Tree(c *gin.Context) {
	roots, err := h.queries.Tree(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewCategoryTree(roots))
}

// Delete 删除分类(含子树)
// @Summary      删除分类
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId path int true "分类ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /bookstore/categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok200(c, "category deleted")
}

// AssignToBook 设置图书分类
// @Summary      设置图书分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Param        request body dto.AssignCategoriesRequest true "分类ID列表"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书或分类不存在"
// @Router       /bookstore/books/{bookId}/categories [post]
func (h *CategoryHandler) AssignToBook(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	var req dto.AssignCategoriesRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.commands.AssignToBook(c.Request.Context(), bookID, req.CategoryIDs); err != nil {
		fail(c, err)
		return
	}
	ok200(c, "categories assigned")
}
