package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-api/pkg/logger"
)

const headerCache = "X-Cache"

// 缓存命名空间,写操作按命名空间整体清理
const (
	CacheBooks      = "books"
	CacheTags       = "tags"
	CacheCategories = "categories"
	CacheLikes      = "likes"
)

// ResponseStore 响应缓存存储(persistence/redis.ResponseCache实现)
type ResponseStore interface {
	Key(namespace, path, rawQuery string) string
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	EvictNamespace(ctx context.Context, namespace string) (int, error)
}

// CacheMiddleware 公开GET接口的响应缓存
// 1. 命中时直接返回缓存的JSON,X-Cache: HIT
// 2. 未命中时执行Handler,只缓存200响应
// 3. Redis故障时跳过缓存,请求照常处理
type CacheMiddleware struct {
	store   ResponseStore
	enabled bool
}

// NewCacheMiddleware store为nil或enabled为false时所有方法都是透传
func NewCacheMiddleware(store ResponseStore, enabled bool) *CacheMiddleware {
	return &CacheMiddleware{store: store, enabled: enabled && store != nil}
}

// Cached 缓存namespace下的GET响应
func (m *CacheMiddleware) Cached(namespace string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := m.store.Key(namespace, c.Request.URL.Path, c.Request.URL.RawQuery)

		body, hit, err := m.store.Get(ctx, namespace, key)
		if err != nil {
			logger.FromContext(ctx).Warn("读取响应缓存失败", slog.String("key", key), slog.Any("error", err))
		}
		if hit {
			c.Header(headerCache, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		c.Header(headerCache, "MISS")
		w := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if err != nil || c.Writer.Status() != http.StatusOK {
			return
		}
		if err := m.store.Set(ctx, key, w.body.Bytes()); err != nil {
			logger.FromContext(ctx).Warn("写入响应缓存失败", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// Evict 写操作成功(状态码<400)后清理namespaces
func (m *CacheMiddleware) Evict(namespaces ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !m.enabled || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		ctx := c.Request.Context()
		for _, ns := range namespaces {
			if _, err := m.store.EvictNamespace(ctx, ns); err != nil {
				logger.FromContext(ctx).Warn("清理响应缓存失败", slog.String("namespace", ns), slog.Any("error", err))
			}
		}
	}
}

// bodyRecorder 在写给客户端的同时保留一份响应体
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
