//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后执行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	applike "github.com/xiebiao/bookstore-api/internal/application/booklike"
	appcart "github.com/xiebiao/bookstore-api/internal/application/cart"
	appcategory "github.com/xiebiao/bookstore-api/internal/application/category"
	appcoupon "github.com/xiebiao/bookstore-api/internal/application/coupon"
	appmember "github.com/xiebiao/bookstore-api/internal/application/member"
	apptag "github.com/xiebiao/bookstore-api/internal/application/tag"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/booklike"
	"github.com/xiebiao/bookstore-api/internal/domain/cart"
	"github.com/xiebiao/bookstore-api/internal/domain/category"
	"github.com/xiebiao/bookstore-api/internal/domain/coupon"
	"github.com/xiebiao/bookstore-api/internal/domain/member"
	"github.com/xiebiao/bookstore-api/internal/domain/shared"
	"github.com/xiebiao/bookstore-api/internal/domain/tag"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-api/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis连接
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
)

// repositorySet 仓储与事务管理器
var repositorySet = wire.NewSet(
	mysql.NewMemberRepository,
	mysql.NewBookRepository,
	mysql.NewBookQueryRepository,
	mysql.NewBookLikeRepository,
	mysql.NewTagRepository,
	mysql.NewCategoryRepository,
	mysql.NewCartRepository,
	mysql.NewCouponRepository,
	mysql.NewTxManager,
	wire.Bind(new(shared.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	member.NewService,
	book.NewService,
	booklike.NewService,
	tag.NewService,
	category.NewService,
	cart.NewService,
	coupon.NewService,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	appmember.NewRegisterUseCase,
	appmember.NewLoginUseCase,
	appmember.NewLogoutUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewReadBookUseCase,
	appbook.NewListAdminBooksUseCase,
	applike.NewLikeBookUseCase,
	applike.NewLikedBooksUseCase,
	apptag.NewCommandUseCase,
	apptag.NewQueryUseCase,
	appcategory.NewCommandUseCase,
	appcategory.NewQueryUseCase,
	appcart.NewCartUseCase,
	appcoupon.NewCouponUseCase,
)

// middlewareSet JWT、会话、认证与响应缓存
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	wire.Bind(new(appmember.SessionStore), new(*redis.SessionStore)),
	wire.Bind(new(middleware.Blacklist), new(*redis.SessionStore)),
	middleware.NewAuthMiddleware,
	provideCacheMiddleware,
)

// handlerSet HTTP处理器
var handlerSet = wire.NewSet(
	handler.NewMemberHandler,
	handler.NewBookHandler,
	handler.NewLikeHandler,
	handler.NewTagHandler,
	handler.NewCategoryHandler,
	handler.NewCartHandler,
	handler.NewCouponHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用,cleanup按创建的逆序关闭Redis与数据库
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
