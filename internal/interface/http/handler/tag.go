package handler

import (
	"github.com/gin-gonic/gin"

	apptag "github.com/xiebiao/bookstore-api/internal/application/tag"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// TagHandler 标签与图书标签
type TagHandler struct {
	commands *apptag.CommandUseCase
	queries  *apptag.QueryUseCase
}

// NewTagHandler 创建标签处理器
func NewTagHandler(commands *apptag.CommandUseCase, queries *apptag.QueryUseCase) *TagHandler {
	return &TagHandler{commands: commands, queries: queries}
}

// CreateTag 创建标签
// @Summary      创建标签
// @Tags         标签
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.TagRequest true "标签"
// @Success      201 {object} response.Response{body=dto.TagResponse}
// @Failure      409 {object} response.Response "标签已存在"
// @Router       /bookstore/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.TagRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.commands.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "tag created", dto.NewTagResponse(t))
}

// UpdateTag 修改标签名
// @Summary      修改标签名
// @Tags         标签
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tagId path int true "标签ID"
// @Param        request body dto.TagRequest true "标签"
// @Success      200 {object} response.Response{body=dto.TagResponse}
// @Failure      404 {object} response.Response "标签不存在"
// @Router       /bookstore/tags/{tagId} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := pathID(c, "tagId")
	if !ok {
		return
	}
	var req dto.TagRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.commands.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewTagResponse(t))
}

// DeleteTag 删除标签
// @Summary      删除标签
// @Tags         标签
// @Produce      json
// @Security     BearerAuth
// @Param        tagId path int true "标签ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "标签不存在"
// @Router       /bookstore/tags/{tagId} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := pathID(c, "tagId")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok200(c, "tag deleted")
}

// AttachTag 给图书打标签
// @Summary      给图书打标签
// @Tags         标签
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Param        request body dto.AttachTagRequest true "标签ID"
// @Success      201 {object} response.Response
// @Failure      404 {object} response.Response "图书或标签不存在"
// @Failure      409 {object} response.Response "图书已有该标签"
// @Router       /bookstore/books/{bookId}/tags [post]
func (h *TagHandler) AttachTag(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	var req dto.AttachTagRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.commands.Attach(c.Request.Context(), bookID, req.TagID); err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "tag attached", nil)
}

// BooksByTag 标签下的图书
// @Summary      标签下的图书
// @Tags         标签
// @Produce      json
// @Param        tagId path int true "标签ID"
// @Param        page query int false "页码"
// @Param        size query int false "每页条数"
// @Param        sort query []string false "排序,如 price,desc" collectionFormat(multi)
// @Success      200 {object} response.Response{body=pagination.Page[dto.BookDetailResponse]}
// @Failure      404 {object} response.Response "标签下没有图书"
// @Router       /tags/{tagId}/books [get]
func (h *TagHandler) BooksByTag(c *gin.Context) {
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}
	var req dto.ListBooksRequest
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.queries.BooksByTag(c.Request.Context(), tagID, req.ToQuery())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.BookDetailPage(page))
}

// TagsByBook 图书的标签名
// @Summary      图书的标签
// @Tags         标签
// @Produce      json
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response{body=[]string}
// @Failure      404 {object} response.Response "图书没有标签"
// @Router       /books/{bookId}/tags [get]
func (h *TagHandler) TagsByBook(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	names, err := h.queries.TagsByBook(c.Request.Context(), bookID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, names)
}
