package handler

import (
	"github.com/gin-gonic/gin"

	applike "github.com/xiebiao/bookstore-api/internal/application/booklike"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// LikeHandler 图书点赞
type LikeHandler struct {
	likes *applike.LikeBookUseCase
	liked *applike.LikedBooksUseCase
}

// NewLikeHandler 创建点赞处理器
func NewLikeHandler(likes *applike.LikeBookUseCase, liked *applike.LikedBooksUseCase) *LikeHandler {
	return &LikeHandler{likes: likes, liked: liked}
}

// Like 点赞
// @Summary      点赞图书
// @Tags         点赞
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Success      201 {object} response.Response{body=dto.LikeCountResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "已点赞"
// @Router       /bookstore/books/{bookId}/likes [post]
func (h *LikeHandler) Like(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	res, err := h.likes.Like(c.Request.Context(), middleware.MustGetMemberID(c), bookID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "liked", dto.LikeCountResponse(*res))
}

// Unlike 取消点赞
// @Summary      取消点赞
// @Tags         点赞
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response{body=dto.LikeCountResponse}
// @Failure      404 {object} response.Response "未点赞"
// @Router       /bookstore/books/{bookId}/likes [delete]
func (h *LikeHandler) Unlike(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	res, err := h.likes.Unlike(c.Request.Context(), middleware.MustGetMemberID(c), bookID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.LikeCountResponse(*res))
}

// CountLikes 图书点赞数
// @Summary      图书点赞数
// @Tags         点赞
// @Produce      json
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response{body=dto.LikeCountResponse}
// @Router       /bookstore/books/{bookId}/likes/count [get]
func (h *LikeHandler) CountLikes(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	res, err := h.likes.Count(c.Request.Context(), bookID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.LikeCountResponse(*res))
}

// ListMyLikes 我点赞的图书
// @Summary      我点赞的图书
// @Description  最近点赞在前
// @Tags         点赞
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        size query int false "每页条数"
// @Success      200 {object} response.Response{body=pagination.Page[dto.BookListItem]}
// @Failure      404 {object} response.Response "没有点赞的图书"
// @Router       /bookstore/members/me/likes [get]
func (h *LikeHandler) ListMyLikes(c *gin.Context) {
	var req dto.PageRequest
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.liked.ByMember(c.Request.Context(), middleware.MustGetMemberID(c), req.Page, req.Size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.BookListPage(page))
}

// Ranking 点赞排行
// @Summary      点赞排行
// @Tags         点赞
// @Produce      json
// @Param        page query int false "页码"
// @Param        size query int false "每页条数"
// @Success      200 {object} response.Response{body=pagination.Page[dto.BookListItem]}
// @Router       /bookstore/rankings/likes [get]
func (h *LikeHandler) Ranking(c *gin.Context) {
	var req dto.PageRequest
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.liked.Ranking(c.Request.Context(), req.Page, req.Size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.BookListPage(page))
}
