package booklike

import (
	"time"
)

// BookLike 会员对图书的点赞
// (MemberID, BookID)唯一,同一会员对同一本书只能点赞一次
type BookLike struct {
	ID        uint
	MemberID  uint
	BookID    uint
	CreatedAt time.Time
}
