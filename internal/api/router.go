package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"gorm.io/gorm"

	"github.com/d60-Lab/graphql-blog/config"
	"github.com/d60-Lab/graphql-blog/internal/api/handler"
	"github.com/d60-Lab/graphql-blog/internal/api/middleware"
)

// NewRouter 组装 gin 引擎：中间件 + GraphQL 端点 + 健康检查
func NewRouter(cfg *config.Config, schema *graphql.Schema, db *gorm.DB) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	h := handler.New(schema, db)
	r.POST("/graphql", h.GraphQL)
	r.GET("/graphql", h.Playground)
	r.GET("/healthz", h.Health)
	return r
}
