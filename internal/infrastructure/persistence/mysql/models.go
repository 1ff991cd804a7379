package mysql

import (
	"time"
)

// GORM数据模型
// 1. 这是infrastructure层的数据模型,带GORM tag
// 2. domain层实体不依赖GORM,Repository负责两者转换
// 3. 价格统一为int64(分)

// MemberModel 会员
type MemberModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码(bcrypt)"`
	Name      string    `gorm:"size:50;not null;comment:昵称"`
	Role      string    `gorm:"size:20;not null;default:MEMBER;comment:角色"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (MemberModel) TableName() string {
	return "members"
}

// BookModel 图书
// ISBN唯一索引防止重复,排序字段单独建索引
type BookModel struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Description   string    `gorm:"type:text;comment:图书描述"`
	PublishedDate time.Time `gorm:"index;comment:出版日期"`
	Price         int64     `gorm:"index;not null;comment:定价(分)"`
	SellingPrice  int64     `gorm:"not null;comment:售价(分)"`
	Quantity      int       `gorm:"default:0;comment:库存"`
	ViewCount     int64     `gorm:"index;default:0;comment:浏览量"`
	Packing       bool      `gorm:"default:false;comment:是否支持包装"`
	Author        string    `gorm:"index:idx_search;size:100;not null;comment:作者"`
	ISBN          string    `gorm:"column:isbn;uniqueIndex;size:20;not null;comment:ISBN"`
	Publisher     string    `gorm:"size:100;comment:出版社"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`

	Images []BookImageModel `gorm:"foreignKey:BookID"`
}

func (BookModel) TableName() string {
	return "books"
}

// BookImageModel 图书图片(MAIN | DESCRIPTION)
type BookImageModel struct {
	ID     uint   `gorm:"primaryKey"`
	BookID uint   `gorm:"index:idx_book_type;not null"`
	URL    string `gorm:"column:url;size:50;not null;comment:图片地址"`
	Type   string `gorm:"index:idx_book_type;size:20;not null;comment:图片类型"`
}

func (BookImageModel) TableName() string {
	return "book_images"
}

// BookLikeModel 点赞,(member_id, book_id)唯一
type BookLikeModel struct {
	ID        uint      `gorm:"primaryKey"`
	MemberID  uint      `gorm:"uniqueIndex:uk_member_book;not null"`
	BookID    uint      `gorm:"uniqueIndex:uk_member_book;index;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (BookLikeModel) TableName() string {
	return "book_likes"
}

// TagModel 标签
type TagModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:30;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}

// BookTagModel 图书-标签关联
type BookTagModel struct {
	ID     uint `gorm:"primaryKey"`
	BookID uint `gorm:"uniqueIndex:uk_book_tag;not null"`
	TagID  uint `gorm:"uniqueIndex:uk_book_tag;index;not null"`
}

func (BookTagModel) TableName() string {
	return "book_tags"
}

// CategoryModel 分类,ParentID为NULL表示根分类
type CategoryModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:30;not null"`
	ParentID *uint  `gorm:"index"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// BookCategoryModel 图书-分类关联
type BookCategoryModel struct {
	ID         uint `gorm:"primaryKey"`
	BookID     uint `gorm:"uniqueIndex:uk_book_category;not null"`
	CategoryID uint `gorm:"uniqueIndex:uk_book_category;index;not null"`
}

func (BookCategoryModel) TableName() string {
	return "book_categories"
}

// CartModel 购物车,每个会员一个
type CartModel struct {
	ID        uint      `gorm:"primaryKey"`
	MemberID  uint      `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (CartModel) TableName() string {
	return "carts"
}

// BookCartModel 购物车条目
type BookCartModel struct {
	ID        uint      `gorm:"primaryKey"`
	CartID    uint      `gorm:"uniqueIndex:uk_cart_book;not null"`
	BookID    uint      `gorm:"uniqueIndex:uk_cart_book;index;not null"`
	Quantity  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (BookCartModel) TableName() string {
	return "book_carts"
}

// CouponModel 会员优惠券
type CouponModel struct {
	ID           uint       `gorm:"primaryKey"`
	CouponFormID uint       `gorm:"index;not null;comment:优惠券模板ID"`
	MemberID     uint       `gorm:"index:idx_member_status;not null"`
	Status       string     `gorm:"index:idx_member_status;size:20;not null;default:READY"`
	IssuedAt     time.Time  `gorm:"not null"`
	UsedAt       *time.Time `gorm:"comment:使用时间"`
}

func (CouponModel) TableName() string {
	return "coupons"
}

// allModels AutoMigrate的模型列表
func allModels() []interface{} {
	return []interface{}{
		&MemberModel{},
		&BookModel{},
		&BookImageModel{},
		&BookLikeModel{},
		&TagModel{},
		&BookTagModel{},
		&CategoryModel{},
		&BookCategoryModel{},
		&CartModel{},
		&BookCartModel{},
		&CouponModel{},
	}
}
