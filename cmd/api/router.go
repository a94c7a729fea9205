package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.ClientIP(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// setupPublicRoutes wires the read surface plus the two unauthenticated
// writes: contact intake and admin login.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/profile", c.ProfileHandler.Get)
	v1.GET("/skills", c.SkillHandler.List)
	v1.GET("/projects", c.ProjectHandler.List)
	v1.GET("/projects/slug/:slug", c.ProjectHandler.GetBySlug)
	v1.GET("/projects/:id", c.ProjectHandler.Get)
	v1.GET("/experience", c.ExperienceHandler.List)
	v1.GET("/education", c.EducationHandler.List)
	v1.GET("/stats", c.StatsHandler.Get)

	v1.POST("/contact", c.ContactHandler.Submit)
	v1.POST("/auth/login", c.AuthHandler.Login)
}

// setupAdminRoutes wires the token-protected write surface.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin", middleware.AdminAuth(c.JWTManager))
	{
		admin.POST("/profile", c.ProfileHandler.Create)
		admin.PUT("/profile/:id", c.ProfileHandler.Update)
		admin.DELETE("/profile/:id", c.ProfileHandler.Delete)

		admin.POST("/skills", c.SkillHandler.Create)
		admin.PUT("/skills/:id", c.SkillHandler.Update)
		admin.DELETE("/skills/:id", c.SkillHandler.Delete)

		admin.POST("/projects", c.ProjectHandler.Create)
		admin.PUT("/projects/:id", c.ProjectHandler.Update)
		admin.DELETE("/projects/:id", c.ProjectHandler.Delete)

		admin.POST("/experience", c.ExperienceHandler.Create)
		admin.PUT("/experience/:id", c.ExperienceHandler.Update)
		admin.DELETE("/experience/:id", c.ExperienceHandler.Delete)

		admin.POST("/education", c.EducationHandler.Create)
		admin.PUT("/education/:id", c.EducationHandler.Update)
		admin.DELETE("/education/:id", c.EducationHandler.Delete)

		admin.POST("/media", c.MediaHandler.Upload)
		admin.DELETE("/media/:key", c.MediaHandler.Delete)

		admin.GET("/messages", c.ContactHandler.List)
		admin.PATCH("/messages/:id/read", c.ContactHandler.MarkRead)
		admin.PATCH("/messages/:id/replied", c.ContactHandler.MarkReplied)
		admin.DELETE("/messages/:id", c.ContactHandler.Delete)
	}
}

// healthCheckHandler reports liveness of the API and its dependencies.
// A dead database makes the whole check fail; a dead cache is reported
// but tolerated.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{
			"database": "ok",
			"cache":    "ok",
		}
		status := http.StatusOK

		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			checks["database"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = "unreachable"
		}

		if status != http.StatusOK {
			ctx.JSON(status, gin.H{"success": false, "checks": checks})
			return
		}

		response.Success(ctx, http.StatusOK, "healthy", gin.H{
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
