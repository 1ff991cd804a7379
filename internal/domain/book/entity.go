package book

import (
	"strings"
	"time"

	"github.com/xiebiao/bookstore-api/pkg/validator"
)

// ImageType 图书图片类型
type ImageType string

const (
	ImageMain        ImageType = "MAIN"        // 主图(列表封面)
	ImageDescription ImageType = "DESCRIPTION" // 详情图
)

// Valid 是否为已知类型
func (t ImageType) Valid() bool {
	return t == ImageMain || t == ImageDescription
}

// Image 图书图片
type Image struct {
	ID     uint
	BookID uint
	URL    string
	Type   ImageType
}

// Book 图书实体(聚合根)
// 1. 价格使用int64,单位为分
// 2. ISBN全局唯一(数据库唯一索引保证)
// 3. Images随图书一起创建,每本书最多一张MAIN图
type Book struct {
	ID            uint
	Title         string
	Description   string
	PublishedDate time.Time
	Price         int64 // 定价(分)
	SellingPrice  int64 // 售价(分)
	Quantity      int   // 库存
	ViewCount     int64
	Packing       bool // 是否支持包装
	Author        string
	ISBN          string
	Publisher     string
	Images        []Image
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate 校验图书业务规则
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrInvalidTitle
	}
	if !validator.IsISBN(b.ISBN) {
		return ErrInvalidISBN
	}
	if b.Price < 0 || b.SellingPrice < 0 {
		return ErrInvalidPrice
	}
	if b.SellingPrice > b.Price {
		return ErrSellingPriceTooHigh
	}
	if b.Quantity < 0 {
		return ErrInvalidQuantity
	}

	mains := 0
	for _, img := range b.Images {
		if !img.Type.Valid() || strings.TrimSpace(img.URL) == "" {
			return ErrInvalidImage
		}
		if img.Type == ImageMain {
			mains++
		}
	}
	if mains > 1 {
		return ErrMultipleMainImages
	}
	return nil
}

// MainImageURL 主图URL,没有主图时返回空串
func (b *Book) MainImageURL() string {
	for _, img := range b.Images {
		if img.Type == ImageMain {
			return img.URL
		}
	}
	return ""
}
