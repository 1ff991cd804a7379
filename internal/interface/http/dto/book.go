package dto

import (
	"fmt"
	"time"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/pagination"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// ImageRequest 图书图片
type ImageRequest struct {
	URL  string `json:"url" binding:"required,max=50" example:"/img/go.jpg"`
	Type string `json:"type" binding:"required,image_type" example:"MAIN"` // MAIN | DESCRIPTION
}

// CreateBookRequest HTTP上架请求
// validator tag说明:
// - isbn: 自定义ISBN格式校验(pkg/validator中注册)
// - image_type: MAIN或DESCRIPTION
// - published_date: yyyy-MM-dd
type CreateBookRequest struct {
	Title         string         `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Description   string         `json:"description" binding:"max=5000" example:"这是一本关于Go语言的实战书籍"`
	PublishedDate string         `json:"published_date" binding:"required,datetime=2006-01-02" example:"2017-03-01"`
	Price         int64          `json:"price" binding:"min=0,max=99999999" example:"5900"` // 定价(分)
	SellingPrice  int64          `json:"selling_price" binding:"min=0,max=99999999" example:"5310"`
	Quantity      int            `json:"quantity" binding:"min=0" example:"100"`
	Packing       bool           `json:"packing" example:"false"`
	Author        string         `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	ISBN          string         `json:"isbn" binding:"required,isbn" example:"9787115428028"`
	Publisher     string         `json:"publisher" binding:"required,max=100" example:"人民邮电出版社"`
	Images        []ImageRequest `json:"images" binding:"omitempty,max=10,dive"`
	TagIDs        []uint         `json:"tag_ids" example:"1,2"`
	CategoryIDs   []uint         `json:"category_ids" example:"3"`
}

// ToCommand 转为应用层请求,日期格式已由binding校验
func (r CreateBookRequest) ToCommand() appbook.CreateBookRequest {
	published, _ := time.Parse(dateLayout, r.PublishedDate)
	images := make([]appbook.ImageInput, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, appbook.ImageInput{URL: img.URL, Type: img.Type})
	}
	return appbook.CreateBookRequest{
		Title:         r.Title,
		Description:   r.Description,
		PublishedDate: published,
		Price:         r.Price,
		SellingPrice:  r.SellingPrice,
		Quantity:      r.Quantity,
		Packing:       r.Packing,
		Author:        r.Author,
		ISBN:          r.ISBN,
		Publisher:     r.Publisher,
		Images:        images,
		TagIDs:        r.TagIDs,
		CategoryIDs:   r.CategoryIDs,
	}
}

// ListBooksRequest HTTP图书列表请求
// sort可重复: ?sort=likes,desc&sort=price
type ListBooksRequest struct {
	Page int      `form:"page" binding:"omitempty,min=1" example:"1"`
	Size int      `form:"size" binding:"omitempty,min=1,max=100" example:"20"`
	Sort []string `form:"sort" example:"likes,desc"`
}

// ToQuery 转为应用层请求
func (r ListBooksRequest) ToQuery() appbook.ListBooksRequest {
	return appbook.ListBooksRequest{Page: r.Page, Size: r.Size, Sort: r.Sort}
}

// PageRequest 只分页不排序的列表请求
type PageRequest struct {
	Page int `form:"page" binding:"omitempty,min=1" example:"1"`
	Size int `form:"size" binding:"omitempty,min=1,max=100" example:"20"`
}

// BookCreatedResponse 上架结果
type BookCreatedResponse struct {
	ID        uint   `json:"id" example:"1"`
	Title     string `json:"title" example:"Go语言实战"`
	ISBN      string `json:"isbn" example:"9787115428028"`
	ImageURL  string `json:"image_url,omitempty" example:"/img/go.jpg"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// BookListItem HTTP图书列表项(书 + 主图)
type BookListItem struct {
	ID           uint   `json:"id" example:"1"`
	Title        string `json:"title" example:"Go语言实战"`
	Price        int64  `json:"price" example:"5900"`
	SellingPrice int64  `json:"selling_price" example:"5310"`
	PriceYuan    string `json:"price_yuan" example:"53.10"` // 售价(元),方便前端显示
	Author       string `json:"author" example:"威廉·肯尼迪"`
	ImageURL     string `json:"image_url" example:"/img/go.jpg"` // 没有主图时为空串
}

// BookDetailResponse HTTP图书详情
type BookDetailResponse struct {
	ID            uint   `json:"id" example:"1"`
	Title         string `json:"title" example:"Go语言实战"`
	Description   string `json:"description"`
	PublishedDate string `json:"published_date" example:"2017-03-01"`
	Price         int64  `json:"price" example:"5900"`
	Quantity      int    `json:"quantity" example:"100"`
	SellingPrice  int64  `json:"selling_price" example:"5310"`
	ViewCount     int64  `json:"view_count" example:"42"`
	Packing       bool   `json:"packing"`
	Author        string `json:"author" example:"威廉·肯尼迪"`
	ISBN          string `json:"isbn" example:"9787115428028"`
	Publisher     string `json:"publisher" example:"人民邮电出版社"`
	CreatedAt     string `json:"created_at" example:"2024-01-15 10:30:00"`
	ImageURL      string `json:"image_url" example:"/img/go.jpg"`
}

// AdminBookItem 管理后台列表项
type AdminBookItem struct {
	ID           uint   `json:"id" example:"1"`
	Title        string `json:"title" example:"Go语言实战"`
	Price        int64  `json:"price" example:"5900"`
	SellingPrice int64  `json:"selling_price" example:"5310"`
	Author       string `json:"author" example:"威廉·肯尼迪"`
	Quantity     int    `json:"quantity" example:"100"`
	ViewCount    int64  `json:"view_count" example:"42"`
}

// FormatPriceYuan 格式化价格(分→元),例如5900 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	return fmt.Sprintf("%d.%02d", priceFen/100, priceFen%100)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

func NewBookCreatedResponse(b *book.Book) BookCreatedResponse {
	return BookCreatedResponse{
		ID:        b.ID,
		Title:     b.Title,
		ISBN:      b.ISBN,
		ImageURL:  b.MainImageURL(),
		CreatedAt: formatDateTime(b.CreatedAt),
	}
}

func NewBookListItem(it book.ListItem) BookListItem {
	return BookListItem{
		ID:           it.ID,
		Title:        it.Title,
		Price:        it.Price,
		SellingPrice: it.SellingPrice,
		PriceYuan:    FormatPriceYuan(it.SellingPrice),
		Author:       it.Author,
		ImageURL:     it.ImageURL,
	}
}

func NewBookDetailResponse(d book.Detail) BookDetailResponse {
	return BookDetailResponse{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		PublishedDate: formatDate(d.PublishedDate),
		Price:         d.Price,
		Quantity:      d.Quantity,
		SellingPrice:  d.SellingPrice,
		ViewCount:     d.ViewCount,
		Packing:       d.Packing,
		Author:        d.Author,
		ISBN:          d.ISBN,
		Publisher:     d.Publisher,
		CreatedAt:     formatDateTime(d.CreatedAt),
		ImageURL:      d.ImageURL,
	}
}

func NewAdminBookItem(it book.AdminItem) AdminBookItem {
	return AdminBookItem(it)
}

// BookListPage 图书列表分页
func BookListPage(p pagination.Page[book.ListItem]) pagination.Page[BookListItem] {
	return pagination.Map(p, NewBookListItem)
}

// BookDetailPage 图书详情分页(标签下的图书)
func BookDetailPage(p pagination.Page[book.Detail]) pagination.Page[BookDetailResponse] {
	return pagination.Map(p, NewBookDetailResponse)
}

// AdminBookPage 管理后台分页
func AdminBookPage(p pagination.Page[book.AdminItem]) pagination.Page[AdminBookItem] {
	return pagination.Map(p, NewAdminBookItem)
}

// LikeCountResponse 点赞数
type LikeCountResponse struct {
	BookID uint  `json:"book_id" example:"1"`
	Likes  int64 `json:"likes" example:"12"`
}
