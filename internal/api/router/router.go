package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-hub/backend/config"
	"campus-hub/backend/internal/api/handler"
	"campus-hub/backend/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
//
// 路由路径沿用旧服务端的约定（无 /api/v1 前缀），
// 既有前端直接请求 /activities/... 不能破坏
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))
	if cfg.Server.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst))
	}

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 活动模块 ──
	activities := r.Group("/activities")
	{
		activities.GET("", h.Activity.ListActivities)
		activities.GET("/search", h.Search.Search)
		activities.GET("/categories", h.Search.Categories)
		activities.GET("/suggestions", h.Search.Suggestions)
		activities.GET("/export", h.Export.ExportRoster)
		activities.POST("/:name/signup", h.Activity.Signup)
		activities.DELETE("/:name/unregister", h.Activity.Unregister)
	}

	// ── 学生名册 ──
	r.GET("/students", h.Activity.ListStudents)

	return r
}
