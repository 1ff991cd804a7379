// Package pagination 分页参数与分页结果
package pagination

const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 100
)

// Pageable 分页请求(页码从1开始)
type Pageable struct {
	Page int
	Size int
}

// Of 创建分页请求并规范化参数
// page<1按1处理, size<1按默认值, size>100截断为100
func Of(page, size int) Pageable {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Pageable{Page: page, Size: size}
}

// Offset SQL偏移量
func (p Pageable) Offset() int {
	return (p.Page - 1) * p.Size
}

// Limit SQL条数
func (p Pageable) Limit() int {
	return p.Size
}

// Page 分页结果
type Page[T any] struct {
	Content    []T   `json:"content"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
}

// NewPage 创建分页结果,content为nil时返回空切片(序列化为[])
func NewPage[T any](content []T, total int64, p Pageable) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if p.Size > 0 {
		totalPages = int(total) / p.Size
		if int(total)%p.Size != 0 {
			totalPages++
		}
	}

	return Page[T]{
		Content:    content,
		Total:      total,
		Page:       p.Page,
		Size:       p.Size,
		TotalPages: totalPages,
	}
}

// Empty 当前页是否没有数据
func (p Page[T]) Empty() bool {
	return len(p.Content) == 0
}

// Map 转换分页内容,保留分页信息
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Content))
	for i, item := range p.Content {
		out[i] = fn(item)
	}
	return Page[R]{
		Content:    out,
		Total:      p.Total,
		Page:       p.Page,
		Size:       p.Size,
		TotalPages: p.TotalPages,
	}
}
