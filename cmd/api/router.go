package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gogarvis-backend/internal/domains/content"
	"gogarvis-backend/internal/shared/middleware"
	"gogarvis-backend/internal/shared/response"
	"gogarvis-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(strings.Split(c.Config.App.CORSOrigins, ",")),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupContentRoutes(v1, c)
		setupVersionRoutes(v1, c)
		setupAuditRoutes(v1, c)
		setupAdminRoutes(v1, c)
		setupChatRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/session", c.UserHandler.CreateSession)
		auth.GET("/me", middleware.Auth(c.UserService), c.UserHandler.Me)
		auth.POST("/logout", middleware.Auth(c.UserService), c.UserHandler.Logout)
	}
}

// ========================================
// CONTENT ROUTES
// ========================================
// Mỗi kind một prefix riêng (tương thích client cũ), cùng một handler.
// Reads cần auth; writes cần editor role trở lên.
func setupContentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	kinds := map[string]content.Kind{
		"documents":               content.KindDocument,
		"glossary":                content.KindGlossary,
		"architecture/components": content.KindComponent,
		"pigpen":                  content.KindOperator,
		"brands":                  content.KindBrand,
	}

	for prefix, kind := range kinds {
		group := v1.Group("/" + prefix)
		group.Use(middleware.Auth(c.UserService))
		{
			group.GET("", c.ContentHandler.List(kind))
			group.GET("/categories", c.ContentHandler.Categories(kind))
			group.GET("/:id", c.ContentHandler.Get(kind))

			group.POST("", middleware.RequireEditor(), c.ContentHandler.Create(kind))
			group.PUT("/:id", middleware.RequireEditor(), c.ContentHandler.Update(kind))
			group.DELETE("/:id", middleware.RequireEditor(), c.ContentHandler.Delete(kind))
		}
	}

	v1.GET("/dashboard/stats", middleware.Auth(c.UserService), c.ContentHandler.DashboardStats)
}

// ========================================
// VERSION ROUTES
// ========================================
func setupVersionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	versions := v1.Group("/versions")
	versions.Use(middleware.Auth(c.UserService))
	{
		versions.GET("/:type/:id", c.VersionHandler.History)
		versions.POST("/:type/:id/rollback/:version_id", middleware.RequireEditor(), c.VersionHandler.Rollback)
	}
}

// ========================================
// AUDIT ROUTES (admin)
// ========================================
func setupAuditRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auditLog := v1.Group("/audit-log")
	auditLog.Use(middleware.Auth(c.UserService), middleware.RequireAdmin())
	{
		auditLog.GET("", c.AuditHandler.List)
		auditLog.GET("/export", c.AuditHandler.Export)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(c.UserService), middleware.RequireAdmin())
	{
		admin.GET("/users", c.UserHandler.ListUsers)
		admin.PUT("/users/:id/role", c.UserHandler.UpdateRole)
	}
}

// ========================================
// CHAT ROUTES
// ========================================
func setupChatRoutes(v1 *gin.RouterGroup, c *container.Container) {
	chat := v1.Group("/chat")
	chat.Use(middleware.Auth(c.UserService))
	{
		chat.POST("", c.ChatHandler.Chat)
		chat.GET("/history", c.ChatHandler.History)
		chat.POST("/session/clear", c.ChatHandler.ClearSession)

		chat.POST("/files", c.ChatHandler.UploadFile)
		chat.GET("/files", c.ChatHandler.ListFiles)
		chat.DELETE("/files/:id", c.ChatHandler.DeleteFile)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		}

		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["redis"] = "unreachable"
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}

		response.Success(ctx, http.StatusOK, status)
	}
}
