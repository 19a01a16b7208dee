package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"tastehub-backend/internal/shared/middleware"
	"tastehub-backend/pkg/container"
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
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupRestaurantRoutes(v1, c)
		setupReviewRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupModerationRoutes(v1, c)
	}

	return router
}

// ========================================
// RESTAURANT ROUTES
// ========================================
func setupRestaurantRoutes(v1 *gin.RouterGroup, c *container.Container) {
	restaurants := v1.Group("/restaurants")
	{
		restaurants.GET("", c.RestaurantHandler.ListRestaurants)
		restaurants.GET("/:id", c.RestaurantHandler.GetRestaurant)
		restaurants.GET("/:id/menu", c.RestaurantHandler.GetMenu)

		// Reviews live under their restaurant
		restaurants.GET("/:id/reviews", c.ReviewHandler.ListReviews)
		restaurants.POST("/:id/reviews", middleware.AuthMiddleware(c.JWTManager), c.ReviewHandler.SubmitReview)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviews := v1.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		reviews.DELETE("/:id", c.ReviewHandler.DeleteReview)
		reviews.POST("/:id/report", c.ReviewHandler.ReportReview)
		reviews.POST("/:id/votes", c.VoteHandler.CastVote)
		reviews.POST("/:id/comments", c.CommentHandler.SubmitComment)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	comments.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		comments.POST("/:id/report", c.CommentHandler.ReportComment)
	}
}

// ========================================
// MODERATION ROUTES
// ========================================
func setupModerationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	moderation := v1.Group("/moderation")
	moderation.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.ModeratorMiddleware(),
	)
	{
		moderation.GET("/queues", c.ModerationHandler.GetQueues)
		moderation.POST("/:kind/:id/approve", c.ModerationHandler.Approve)
		moderation.POST("/:kind/:id/mark-safe", c.ModerationHandler.MarkSafe)
		moderation.POST("/:kind/:id/reject", c.ModerationHandler.Reject)
		moderation.POST("/:kind/:id/respond", c.ModerationHandler.Respond)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
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

		// Check redis
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

		c.JSON(200, health)
	}
}
