package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/admin/usecases"
	"quickdesk/internal/interfaces/dto"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type AdminHandler struct {
	dashboardUC  usecases.GetDashboardExecutor
	listUsersUC  usecases.ListUsersExecutor
	deleteUserUC usecases.DeleteUserExecutor
	logger       logger.Interface
}

func NewAdminHandler(
	dashboardUC usecases.GetDashboardExecutor,
	listUsersUC usecases.ListUsersExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	log logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		dashboardUC:  dashboardUC,
		listUsersUC:  listUsersUC,
		deleteUserUC: deleteUserUC,
		logger:       log,
	}
}

// DashboardResponse is the admin overview payload.
type DashboardResponse struct {
	TotalUsers          int64                `json:"total_users"`
	TotalTickets        int64                `json:"total_tickets"`
	OpenTickets         int64                `json:"open_tickets"`
	InProgressTickets   int64                `json:"in_progress_tickets"`
	ResolvedTickets     int64                `json:"resolved_tickets"`
	ClosedTickets       int64                `json:"closed_tickets"`
	TicketsToday        int64                `json:"tickets_today"`
	PendingRoleRequests int64                `json:"pending_role_requests"`
	RecentTickets       []dto.TicketResponse `json:"recent_tickets"`
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{
		Actor: authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := &DashboardResponse{
		TotalUsers:          result.TotalUsers,
		TotalTickets:        result.TotalTickets,
		OpenTickets:         result.OpenTickets,
		InProgressTickets:   result.InProgressTickets,
		ResolvedTickets:     result.ResolvedTickets,
		ClosedTickets:       result.ClosedTickets,
		TicketsToday:        result.TicketsToday,
		PendingRoleRequests: result.PendingRoleRequests,
		RecentTickets:       dto.TicketsToResponses(result.RecentTickets, c.GetUint(constants.ContextKeyUserID)),
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Actor:    authorization.ActorFromContext(c),
		Role:     c.Query("role"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", constants.DefaultPage),
		PageSize: queryInt(c, "limit", constants.DefaultPageSize),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := dto.UsersToResponses(result.Users)
	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID: userID,
		Actor:  authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}
