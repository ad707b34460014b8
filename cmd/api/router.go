package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yatube-backend/internal/shared/middleware"
	"yatube-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupGroupRoutes(v1, c)
		setupFeedRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.GetMe)

		// Profiles are public; the viewer identity only affects
		// the is_following field
		users.GET("/:username", middleware.OptionalAuthMiddleware(c.JWTManager), c.UserHandler.GetProfile)
		users.GET("/:username/posts", c.PostHandler.ListByAuthor)

		users.POST("/:username/follow", middleware.AuthMiddleware(c.JWTManager), c.FollowHandler.Follow)
		users.DELETE("/:username/follow", middleware.AuthMiddleware(c.JWTManager), c.FollowHandler.Unfollow)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.Get)
		posts.GET("/:id/comments", c.PostHandler.ListComments)

		posts.POST("", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.Create)
		posts.PUT("/:id", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.Update)
		posts.DELETE("/:id", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.Delete)
		posts.POST("/:id/comments", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.AddComment)
	}
}

// ========================================
// GROUP ROUTES
// ========================================
func setupGroupRoutes(v1 *gin.RouterGroup, c *container.Container) {
	groups := v1.Group("/groups")
	{
		groups.GET("", c.GroupHandler.List)
		groups.GET("/:slug", c.GroupHandler.GetBySlug)
		groups.GET("/:slug/posts", c.PostHandler.ListByGroup)

		groups.POST("", middleware.AuthMiddleware(c.JWTManager), c.GroupHandler.Create)
		groups.DELETE("/:slug", middleware.AuthMiddleware(c.JWTManager), c.GroupHandler.Delete)
	}
}

// ========================================
// FEED ROUTES
// ========================================
func setupFeedRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// The personal feed only makes sense for an authenticated caller
	v1.GET("/feed", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.Feed)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis; a dead cache degrades nothing critical
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
