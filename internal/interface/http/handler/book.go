package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBook *appbook.CreateBookUseCase
	deleteBook *appbook.DeleteBookUseCase
	listBooks  *appbook.ListBooksUseCase
	readBook   *appbook.ReadBookUseCase
	listAdmin  *appbook.ListAdminBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBook *appbook.CreateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	listBooks *appbook.ListBooksUseCase,
	readBook *appbook.ReadBookUseCase,
	listAdmin *appbook.ListAdminBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createBook: createBook,
		deleteBook: deleteBook,
		listBooks:  listBooks,
		readBook:   readBook,
		listAdmin:  listAdmin,
	}
}

// CreateBook 图书上架
// @Summary      图书上架
// @Description  管理员创建图书(含图片、标签、分类),同一事务写入
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{body=dto.BookCreatedResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非管理员"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /bookstore/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.createBook.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "book created", dto.NewBookCreatedResponse(b))
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  书 + 主图,sort可重复,字段限 viewCount / likes / publishedDate / price
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        size query int false "每页条数(最大100)"
// @Param        sort query []string false "排序,如 likes,desc" collectionFormat(multi)
// @Success      200 {object} response.Response{body=pagination.Page[dto.BookListItem]}
// @Failure      400 {object} response.Response "排序字段非法"
// @Router       /bookstore/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.listBooks.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.BookListPage(page))
}

// ReadBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response{body=dto.BookDetailResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /bookstore/books/{bookId} [get]
func (h *BookHandler) ReadBook(c *gin.Context) {
	id, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	detail, err := h.readBook.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewBookDetailResponse(*detail))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  图片、点赞、标签/分类关联、购物车条目一并删除
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /bookstore/books/{bookId} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok200(c, "book deleted")
}

// ListAdminBooks 管理后台图书列表
// @Summary      管理后台图书列表
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        size query int false "每页条数"
// @Success      200 {object} response.Response{body=pagination.Page[dto.AdminBookItem]}
// @Router       /bookstore/admin/books [get]
func (h *BookHandler) ListAdminBooks(c *gin.Context) {
	var req dto.PageRequest
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.listAdmin.Execute(c.Request.Context(), req.Page, req.Size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.AdminBookPage(page))
}
