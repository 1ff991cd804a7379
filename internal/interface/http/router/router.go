// Package router 注册HTTP路由
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookstore-api/docs" // swagger文档
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/response"
	"github.com/xiebiao/bookstore-api/pkg/validator"
)

const roleAdmin = "ADMIN"

// Handlers 全部HTTP处理器
type Handlers struct {
	Book     *handler.BookHandler
	Like     *handler.LikeHandler
	Tag      *handler.TagHandler
	Category *handler.CategoryHandler
	Cart     *handler.CartHandler
	Coupon   *handler.CouponHandler
	Member   *handler.MemberHandler
}

// New 创建Gin引擎并注册路由
// 中间件顺序: Recovery → RequestLogger → Tracing → Metrics → 路由级(认证/缓存)
func New(cfg *config.Config, h *Handlers, auth *middleware.AuthMiddleware, cache *middleware.CacheMiddleware) (*gin.Engine, error) {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	if err := validator.Register(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		gin.CustomRecovery(func(c *gin.Context, _ any) {
			response.Error(c, apperrors.ErrInternal)
			c.Abort()
		}),
		middleware.RequestLogger(),
		middleware.Tracing(),
		middleware.Metrics(),
	)
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrNotFound)
	})

	r.GET("/ping", func(c *gin.Context) {
		response.SuccessWithMessage(c, http.StatusOK, "pong", gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.Server.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := auth.RequireAuth()
	adminOnly := []gin.HandlerFunc{requireAuth, middleware.RequireRole(roleAdmin)}

	// 标签读接口不带/bookstore前缀
	r.GET("/tags/:tagId/books", cache.Cached(middleware.CacheTags), h.Tag.BooksByTag)
	r.GET("/books/:bookId/tags", cache.Cached(middleware.CacheTags), h.Tag.TagsByBook)

	api := r.Group("/bookstore")
	{
		// 图书
		books := api.Group("/books")
		books.GET("", cache.Cached(middleware.CacheBooks), h.Book.ListBooks)
		books.GET("/:bookId", cache.Cached(middleware.CacheBooks), h.Book.ReadBook)
		// 点赞排行包含零点赞的书,上架时同时清理likes
		books.POST("", append(adminOnly,
			cache.Evict(middleware.CacheBooks, middleware.CacheTags, middleware.CacheCategories, middleware.CacheLikes),
			h.Book.CreateBook)...)
		books.DELETE("/:bookId", append(adminOnly,
			cache.Evict(middleware.CacheBooks, middleware.CacheTags, middleware.CacheLikes),
			h.Book.DeleteBook)...)

		// 点赞(图书列表与标签下的图书都可按likes排序,同时清理books与tags)
		likeEvict := cache.Evict(middleware.CacheLikes, middleware.CacheBooks, middleware.CacheTags)
		books.POST("/:bookId/likes", requireAuth, likeEvict, h.Like.Like)
		books.DELETE("/:bookId/likes", requireAuth, likeEvict, h.Like.Unlike)
		books.GET("/:bookId/likes/count", cache.Cached(middleware.CacheLikes), h.Like.CountLikes)
		api.GET("/rankings/likes", cache.Cached(middleware.CacheLikes), h.Like.Ranking)

		// 图书的标签与分类
		books.POST("/:bookId/tags", append(adminOnly, cache.Evict(middleware.CacheTags), h.Tag.AttachTag)...)
		books.POST("/:bookId/categories", append(adminOnly, cache.Evict(middleware.CacheCategories), h.Category.AssignToBook)...)

		api.GET("/admin/books", append(adminOnly, h.Book.ListAdminBooks)...)

		// 标签
		tags := api.Group("/tags", adminOnly...)
		tags.Use(cache.Evict(middleware.CacheTags))
		tags.POST("", h.Tag.CreateTag)
		tags.PUT("/:tagId", h.Tag.UpdateTag)
		tags.DELETE("/:tagId", h.Tag.DeleteTag)

		// 分类
		categories := api.Group("/categories")
		categories.GET("", cache.Cached(middleware.CacheCategories), h.Category.ListRoots)
		categories.GET("/tree", cache.Cached(middleware.CacheCategories), h.Category.Tree)
		categories.GET("/:categoryId/children", cache.Cached(middleware.CacheCategories), h.Category.ListChildren)
		categories.POST("", append(adminOnly, cache.Evict(middleware.CacheCategories), h.Category.Create)...)
		categories.DELETE("/:categoryId", append(adminOnly, cache.Evict(middleware.CacheCategories), h.Category.Delete)...)

		// 购物车(按会员区分,不缓存)
		carts := api.Group("/carts/me", requireAuth)
		carts.GET("", h.Cart.GetCart)
		carts.DELETE("", h.Cart.Clear)
		carts.POST("/items", h.Cart.AddItem)
		carts.PUT("/items/:bookCartId", h.Cart.UpdateItem)
		carts.DELETE("/items/:bookCartId", h.Cart.RemoveItem)

		// 优惠券
		coupons := api.Group("/coupons")
		coupons.POST("", append(adminOnly, h.Coupon.Issue)...)
		coupons.GET("/me", requireAuth, h.Coupon.ListMine)
		coupons.POST("/:couponId/use", requireAuth, h.Coupon.Use)

		// 会员
		members := api.Group("/members")
		members.POST("/register", h.Member.Register)
		members.POST("/login", h.Member.Login)
		members.POST("/logout", requireAuth, h.Member.Logout)
		members.GET("/me/likes", requireAuth, h.Like.ListMyLikes)
	}

	return r, nil
}
