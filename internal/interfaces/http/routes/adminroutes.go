package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	AdminHandler       *handlers.AdminHandler
	TicketHandler      *handlers.TicketHandler
	RoleRequestHandler *handlers.RoleRequestHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Permissions        *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures the admin console routes. The dashboard
// read grant doubles as the console entry gate; destructive routes carry
// their own grants on top.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.Permissions.Require("dashboard", "read"))
	{
		admin.GET("/dashboard", cfg.AdminHandler.Dashboard)

		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.DELETE("/users/:id", cfg.Permissions.Require("user", "delete"), cfg.AdminHandler.DeleteUser)

		admin.GET("/tickets", cfg.TicketHandler.ListTickets)
		admin.DELETE("/tickets/:id", cfg.TicketHandler.DeleteTicket)

		admin.GET("/role-requests", cfg.RoleRequestHandler.List)
	}
}
