package dto

import (
	"github.com/xiebiao/bookstore-api/internal/domain/cart"
	"github.com/xiebiao/bookstore-api/internal/domain/coupon"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// AddCartItemRequest 加入购物车
type AddCartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=99" example:"2"`
}

// UpdateCartItemRequest 修改数量,0表示删除条目
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0,max=99" example:"3"`
}

// CartItemResponse 购物车条目
type CartItemResponse struct {
	ID       uint `json:"id" example:"10"`
	BookID   uint `json:"book_id" example:"1"`
	Quantity int  `json:"quantity" example:"2"`
}

func NewCartItemResponse(it *cart.Item) CartItemResponse {
	return CartItemResponse{ID: it.ID, BookID: it.BookID, Quantity: it.Quantity}
}

// CartLine 购物车展示行
type CartLine struct {
	ItemID       uint   `json:"item_id" example:"10"`
	BookID       uint   `json:"book_id" example:"1"`
	Title        string `json:"title" example:"Go语言实战"`
	SellingPrice int64  `json:"selling_price" example:"5310"`
	Quantity     int    `json:"quantity" example:"2"`
	LineTotal    int64  `json:"line_total" example:"10620"`
}

// CartResponse 购物车
type CartResponse struct {
	CartID        uint       `json:"cart_id,omitempty" example:"3"` // 尚未创建购物车时省略
	Lines         []CartLine `json:"lines"`
	TotalQuantity int        `json:"total_quantity" example:"2"`
	TotalPrice    int64      `json:"total_price" example:"10620"`
	TotalYuan     string     `json:"total_yuan" example:"106.20"`
}

func NewCartResponse(v *cart.View) CartResponse {
	lines := make([]CartLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, CartLine(l))
	}
	return CartResponse{
		CartID:        v.CartID,
		Lines:         lines,
		TotalQuantity: v.TotalQuantity,
		TotalPrice:    v.TotalPrice,
		TotalYuan:     FormatPriceYuan(v.TotalPrice),
	}
}

// IssueCouponRequest 发放优惠券
type IssueCouponRequest struct {
	MemberID     uint `json:"member_id" binding:"required" example:"1"`
	CouponFormID uint `json:"coupon_form_id" binding:"required" example:"5"`
}

// ListCouponsRequest 我的优惠券
type ListCouponsRequest struct {
	Page   int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Size   int    `form:"size" binding:"omitempty,min=1,max=100" example:"20"`
	Status string `form:"status" binding:"omitempty,oneof=READY USED EXPIRED" example:"READY"`
}

// CouponResponse 优惠券
type CouponResponse struct {
	ID           uint   `json:"id" example:"1"`
	CouponFormID uint   `json:"coupon_form_id" example:"5"`
	MemberID     uint   `json:"member_id" example:"1"`
	Status       string `json:"status" example:"READY"`
	IssuedAt     string `json:"issued_at" example:"2024-01-15 10:30:00"`
	UsedAt       string `json:"used_at,omitempty" example:"2024-01-16 09:00:00"`
}

func NewCouponResponse(c coupon.Coupon) CouponResponse {
	resp := CouponResponse{
		ID:           c.ID,
		CouponFormID: c.CouponFormID,
		MemberID:     c.MemberID,
		Status:       string(c.Status),
		IssuedAt:     formatDateTime(c.IssuedAt),
	}
	if c.UsedAt != nil {
		resp.UsedAt = formatDateTime(*c.UsedAt)
	}
	return resp
}

func CouponPage(p pagination.Page[coupon.Coupon]) pagination.Page[CouponResponse] {
	return pagination.Map(p, NewCouponResponse)
}
