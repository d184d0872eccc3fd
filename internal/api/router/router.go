package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"defense-hub/config"
	"defense-hub/internal/api/handler"
	"defense-hub/internal/api/middleware"
	"defense-hub/pkg/jwt"
	"defense-hub/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(&cfg.Server.CORS))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetProfile)

			// 基础数据（建场次表单下拉项）
			authorized.GET("/departments", h.RefData.ListDepartments)
			authorized.GET("/class-groups", h.RefData.ListClassGroups)
			authorized.GET("/academic-years", h.RefData.ListAcademicYears)

			// 答辩模块
			defenses := authorized.Group("/defenses")
			{
				defenses.GET("", h.Defense.ListAll)
				defenses.POST("", middleware.RoleAuth("admin"), h.Defense.CreateSession)
				defenses.GET("/:id", h.Defense.GetSession)
				defenses.GET("/:id/slots", h.Defense.GetSessionSlots)
				defenses.POST("/:id/slots", middleware.RoleAuth("admin"), h.Defense.AddSlot)
				defenses.PUT("/slots/:id", middleware.RoleAuth("admin"), h.Defense.UpdateSlot)
				defenses.GET("/student/:id", h.Defense.ListSessionsForStudent)
				defenses.GET("/student/:id/slots", h.Defense.ListSlotsForStudent)
				defenses.GET("/reviewer/:id", h.Defense.ListSessionsForReviewer)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/defenses", middleware.RoleAuth("admin"), h.Export.ExportSessions)
				export.GET("/defenses/reviewer/:id", h.Export.ExportSessionsForReviewer)
				export.GET("/defenses/:id/slots", h.Export.ExportSessionSlots)
				if cfg.Feature.CalendarExportEnabled {
					export.GET("/calendar/reviewer/:id", h.Export.ReviewerCalendar)
				}
			}
		}
	}

	return r
}
