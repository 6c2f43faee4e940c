package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

// ticketListCacheTTL bounds how long a cached ticket listing can lag
// behind a write that escaped prefix invalidation.
const ticketListCacheTTL = 5 * time.Minute

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permissions    *middleware.PermissionMiddleware
	Cache          *middleware.ResponseCacheMiddleware // may be nil if caching is disabled
}

// SetupTicketRoutes configures ticket and comment routes.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	if cfg.Cache != nil {
		tickets.Use(cfg.Cache.InvalidateOnWrite("/tickets"))
	}
	{
		listHandlers := []gin.HandlerFunc{cfg.TicketHandler.ListTickets}
		if cfg.Cache != nil {
			listHandlers = append([]gin.HandlerFunc{cfg.Cache.CacheGET(ticketListCacheTTL)}, listHandlers...)
		}
		tickets.GET("", listHandlers...)
		tickets.POST("", cfg.TicketHandler.CreateTicket)

		// Comment routes are registered before /:id so the router does not
		// treat "comments" as a ticket ID.
		tickets.PUT("/comments/:id", cfg.TicketHandler.UpdateComment)
		tickets.DELETE("/comments/:id", cfg.TicketHandler.DeleteComment)
		tickets.POST("/comments/:id/vote", cfg.TicketHandler.VoteComment)

		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
		tickets.GET("/:id/comments", cfg.TicketHandler.GetComments)
		tickets.POST("/:id/vote", cfg.TicketHandler.VoteTicket)
		tickets.POST("/:id/assign", cfg.Permissions.Require("ticket", "assign"), cfg.TicketHandler.AssignTicket)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", cfg.TicketHandler.DeleteTicket)
	}
}
