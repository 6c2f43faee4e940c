package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

// Categories change rarely, so their listing tolerates a longer TTL than
// ticket listings.
const categoryListCacheTTL = 10 * time.Minute

// CategoryRouteConfig holds dependencies for category routes.
type CategoryRouteConfig struct {
	CategoryHandler *handlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Permissions     *middleware.PermissionMiddleware
	Cache           *middleware.ResponseCacheMiddleware // may be nil if caching is disabled
}

// SetupCategoryRoutes configures category and user-interest routes.
func SetupCategoryRoutes(api *gin.RouterGroup, cfg *CategoryRouteConfig) {
	categories := api.Group("/categories")
	categories.Use(cfg.AuthMiddleware.RequireAuth())
	if cfg.Cache != nil {
		categories.Use(cfg.Cache.InvalidateOnWrite("/categories"))
	}
	{
		listHandlers := []gin.HandlerFunc{cfg.CategoryHandler.ListCategories}
		if cfg.Cache != nil {
			listHandlers = append([]gin.HandlerFunc{cfg.Cache.CacheGET(categoryListCacheTTL)}, listHandlers...)
		}
		categories.GET("", listHandlers...)

		// User-interest routes are registered before /:id so the router does
		// not treat "user-interests" as a category ID.
		categories.GET("/user-interests", cfg.CategoryHandler.GetUserInterest)
		categories.PUT("/user-interests", cfg.CategoryHandler.UpdateUserInterest)

		categories.GET("/:id", cfg.CategoryHandler.GetCategory)

		categories.POST("", cfg.Permissions.Require("category", "create"), cfg.CategoryHandler.CreateCategory)
		categories.PUT("/:id", cfg.Permissions.Require("category", "update"), cfg.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id", cfg.Permissions.Require("category", "delete"), cfg.CategoryHandler.DeleteCategory)
	}
}
