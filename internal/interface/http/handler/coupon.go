package handler

import (
	"github.com/gin-gonic/gin"

	appcoupon "github.com/xiebiao/bookstore-api/internal/application/coupon"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// CouponHandler 优惠券
type CouponHandler struct {
	coupons *appcoupon.CouponUseCase
}

// NewCouponHandler 创建优惠券处理器
func NewCouponHandler(coupons *appcoupon.CouponUseCase) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// Issue 发放优惠券
// @Summary      发放优惠券
// @Tags         优惠券
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.IssueCouponRequest true "会员与优惠券模板"
// @Success      201 {object} response.Response{body=dto.CouponResponse}
// @Failure      404 {object} response.Response "会员不存在"
// @Router       /bookstore/coupons [post]
func (h *CouponHandler) Issue(c *gin.Context) {
	var req dto.IssueCouponRequest
	if !bindJSON(c, &req) {
		return
	}

	cp, err := h.coupons.Issue(c.Request.Context(), req.MemberID, req.CouponFormID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "coupon issued", dto.NewCouponResponse(*cp))
}

// ListMine 我的优惠券
// @Summary      我的优惠券
// @Tags         优惠券
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "READY | USED | EXPIRED"
// @Param        page query int false "页码"
// @Param        size query int false "每页条数"
// @Success      200 {object} response.Response{body=pagination.Page[dto.CouponResponse]}
// @Router       /bookstore/coupons/me [get]
func (h *CouponHandler) ListMine(c *gin.Context) {
	var req dto.ListCouponsRequest
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.coupons.ListMine(c.Request.Context(), middleware.MustGetMemberID(c), req.Status, req.Page, req.Size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.CouponPage(page))
}

// Use 使用优惠券
// @Summary      使用优惠券
// @Tags         优惠券
// @Produce      json
// @Security     BearerAuth
// @Param        couponId path int true "优惠券ID"
// @Success      200 {object} response.Response{body=dto.CouponResponse}
// @Failure      400 {object} response.Response "优惠券不是READY状态"
// @Failure      404 {object} response.Response "优惠券不存在"
// @Router       /bookstore/coupons/{couponId}/use [post]
func (h *CouponHandler) Use(c *gin.Context) {
	id, ok := pathID(c, "couponId")
	if !ok {
		return
	}

	cp, err := h.coupons.Use(c.Request.Context(), middleware.MustGetMemberID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewCouponResponse(*cp))
}
