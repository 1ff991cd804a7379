package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookstore-api/internal/application/cart"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// CartHandler 当前会员的购物车
type CartHandler struct {
	carts *appcart.CartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(carts *appcart.CartUseCase) *CartHandler {
	return &CartHandler{carts: carts}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Description  尚未添加过图书时返回空购物车
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{body=dto.CartResponse}
// @Router       /bookstore/carts/me [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.carts.Get(c.Request.Context(), middleware.MustGetMemberID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewCartResponse(view))
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  同一本书合并数量
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartItemRequest true "图书与数量"
// @Success      201 {object} response.Response{body=dto.CartItemResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /bookstore/carts/me/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.carts.AddItem(c.Request.Context(), middleware.MustGetMemberID(c), req.BookID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "item added", dto.NewCartItemResponse(item))
}

// UpdateItem 修改数量
// @Summary      修改购物车条目数量
// @Description  数量为0时删除条目
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookCartId path int true "条目ID"
// @Param        request body dto.UpdateCartItemRequest true "数量"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /bookstore/carts/me/items/{bookCartId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, ok := pathID(c, "bookCartId")
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.carts.UpdateItem(c.Request.Context(), middleware.MustGetMemberID(c), itemID, *req.Quantity); err != nil {
		fail(c, err)
		return
	}
	ok200(c, "item updated")
}

// RemoveItem 删除条目
// @Summary      删除购物车条目
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        bookCartId path int true "条目ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /bookstore/carts/me/items/{bookCartId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, ok := pathID(c, "bookCartId")
	if !ok {
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), middleware.MustGetMemberID(c), itemID); err != nil {
		fail(c, err)
		return
	}
	ok200(c, "item removed")
}

// Clear 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /bookstore/carts/me [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), middleware.MustGetMemberID(c)); err != nil {
		fail(c, err)
		return
	}
	ok200(c, "cart cleared")
}
