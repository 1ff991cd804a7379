package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
)

// App 组装完成的应用
type App struct {
	cfg    *config.Config
	server *http.Server
}

func newApp(cfg *config.Config, engine *gin.Engine) *App {
	return &App{
		cfg: cfg,
		server: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// provideDB 创建数据库连接,cleanup关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := mysql.CloseDB(db); err != nil {
			slog.Error("关闭数据库连接失败", "error", err)
		}
	}
	return db, cleanup, nil
}

// provideRedis 创建Redis连接,cleanup关闭客户端
func provideRedis(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("关闭Redis连接失败", "error", err)
		}
	}
	return client, cleanup, nil
}

// provideJWTManager jwt.NewManager只需要JWT相关的配置
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideCacheMiddleware cache.enabled=false时缓存中间件全部透传
func provideCacheMiddleware(cfg *config.Config, client *goredis.Client) *middleware.CacheMiddleware {
	if !cfg.Cache.Enabled {
		return middleware.NewCacheMiddleware(nil, false)
	}
	return middleware.NewCacheMiddleware(redis.NewResponseCache(client, cfg.Cache), true)
}
