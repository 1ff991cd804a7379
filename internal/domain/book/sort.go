package book

import (
	"strings"
)

// SortKey 列表排序字段(封闭集合)
// Repository通过switch把SortKey映射为列或聚合表达式,请求参数不会直接拼进SQL。
type SortKey int

const (
	SortViewCount SortKey = iota + 1
	SortLikes
	SortPublishedDate
	SortPrice
)

var sortKeyNames = map[string]SortKey{
	"viewCount":     SortViewCount,
	"likes":         SortLikes,
	"publishedDate": SortPublishedDate,
	"price":         SortPrice,
}

func (k SortKey) String() string {
	switch k {
	case SortViewCount:
		return "viewCount"
	case SortLikes:
		return "likes"
	case SortPublishedDate:
		return "publishedDate"
	case SortPrice:
		return "price"
	default:
		return "unknown"
	}
}

// Valid 是否为白名单内的字段
func (k SortKey) Valid() bool {
	return k >= SortViewCount && k <= SortPrice
}

// ParseSortKey 解析排序字段名(区分大小写)
func ParseSortKey(name string) (SortKey, error) {
	if k, ok := sortKeyNames[name]; ok {
		return k, nil
	}
	return 0, ErrInvalidSortKey.WithDetail(name)
}

// Order 单个排序条件
type Order struct {
	Key  SortKey
	Desc bool
}

// ParseOrder 解析 "price" / "price,asc" / "price,desc"
// 未指定方向时为升序
func ParseOrder(raw string) (Order, error) {
	name, dir, hasDir := strings.Cut(strings.TrimSpace(raw), ",")

	key, err := ParseSortKey(strings.TrimSpace(name))
	if err != nil {
		return Order{}, err
	}

	o := Order{Key: key}
	if hasDir {
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "asc":
		case "desc":
			o.Desc = true
		default:
			return Order{}, ErrInvalidSortKey.WithDetail(raw)
		}
	}
	return o, nil
}

// ParseOrders 依次解析多个排序条件,任一非法即返回ErrInvalidSortKey
// 空串会被忽略(如 ?sort= )
func ParseOrders(raw []string) ([]Order, error) {
	orders := make([]Order, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		o, err := ParseOrder(r)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
