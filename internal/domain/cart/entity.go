package cart

import (
	"time"
)

// Cart 购物车,每个会员最多一个
type Cart struct {
	ID        uint
	MemberID  uint
	CreatedAt time.Time
}

// Item 购物车条目(BookCart)
type Item struct {
	ID        uint
	CartID    uint
	BookID    uint
	Quantity  int
	CreatedAt time.Time
}

// Line 购物车展示行(条目 + 图书标题、售价)
type Line struct {
	ItemID       uint
	BookID       uint
	Title        string
	SellingPrice int64
	Quantity     int
	LineTotal    int64
}

// View 购物车视图
type View struct {
	CartID        uint
	Lines         []Line
	TotalQuantity int
	TotalPrice    int64
}

// NewView 汇总各行,lines为nil时返回空购物车
func NewView(cartID uint, lines []Line) *View {
	v := &View{CartID: cartID, Lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		l.LineTotal = l.SellingPrice * int64(l.Quantity)
		v.TotalQuantity += l.Quantity
		v.TotalPrice += l.LineTotal
		v.Lines = append(v.Lines, l)
	}
	return v
}
