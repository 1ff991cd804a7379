package book

import (
	"time"

	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

// ListQuery 列表查询条件
type ListQuery struct {
	Pageable pagination.Pageable
	Orders   []Order
}

// Validate 排序字段必须都在白名单内
func (q ListQuery) Validate() error {
	for _, o := range q.Orders {
		if !o.Key.Valid() {
			return ErrInvalidSortKey
		}
	}
	return nil
}

// ListItem 列表项(书 + 主图)
type ListItem struct {
	ID           uint
	Title        string
	Price        int64
	SellingPrice int64
	Author       string
	ImageURL     string
}

// Detail 详情(书的全部字段 + 主图)
type Detail struct {
	ID            uint
	Title         string
	Description   string
	PublishedDate time.Time
	Price         int64
	Quantity      int
	SellingPrice  int64
	ViewCount     int64
	Packing       bool
	Author        string
	ISBN          string
	Publisher     string
	CreatedAt     time.Time
	ImageURL      string
}

// AdminItem 管理后台列表项
type AdminItem struct {
	ID           uint
	Title        string
	Price        int64
	SellingPrice int64
	Author       string
	Quantity     int
	ViewCount    int64
}
