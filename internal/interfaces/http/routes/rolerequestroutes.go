package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

// RoleRequestRouteConfig holds dependencies for role request routes.
type RoleRequestRouteConfig struct {
	RoleRequestHandler *handlers.RoleRequestHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Permissions        *middleware.PermissionMiddleware
}

// SetupRoleRequestRoutes configures role request routes.
func SetupRoleRequestRoutes(api *gin.RouterGroup, cfg *RoleRequestRouteConfig) {
	requests := api.Group("/role-requests")
	requests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// "my-requests" is registered before /:id so the router does not
		// treat it as a request ID.
		requests.GET("/my-requests", cfg.RoleRequestHandler.ListMine)

		requests.POST("", cfg.RoleRequestHandler.Create)
		requests.GET("", cfg.Permissions.Require("role_request", "list_all"), cfg.RoleRequestHandler.List)
		requests.PUT("/:id/review", cfg.Permissions.Require("role_request", "review"), cfg.RoleRequestHandler.Review)
		requests.DELETE("/:id", cfg.RoleRequestHandler.Delete)
	}
}
