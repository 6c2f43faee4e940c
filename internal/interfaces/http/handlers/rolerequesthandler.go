package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/rolerequest/usecases"
	"quickdesk/internal/interfaces/dto"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type RoleRequestHandler struct {
	createUC usecases.CreateRoleRequestExecutor
	reviewUC usecases.ReviewRoleRequestExecutor
	listUC   usecases.ListRoleRequestsExecutor
	listMyUC usecases.ListMyRoleRequestsExecutor
	deleteUC usecases.DeleteRoleRequestExecutor
	logger   logger.Interface
}

func NewRoleRequestHandler(
	createUC usecases.CreateRoleRequestExecutor,
	reviewUC usecases.ReviewRoleRequestExecutor,
	listUC usecases.ListRoleRequestsExecutor,
	listMyUC usecases.ListMyRoleRequestsExecutor,
	deleteUC usecases.DeleteRoleRequestExecutor,
	log logger.Interface,
) *RoleRequestHandler {
	return &RoleRequestHandler{
		createUC: createUC,
		reviewUC: reviewUC,
		listUC:   listUC,
		listMyUC: listMyUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

type CreateRoleRequestRequest struct {
	RequestedRole string `json:"requested_role" binding:"required"`
	Reason        string `json:"reason"`
}

// Create handles POST /role-requests
func (h *RoleRequestHandler) Create(c *gin.Context) {
	var req CreateRoleRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateRoleRequestCommand{
		UserID:        c.GetUint(constants.ContextKeyUserID),
		RequestedRole: req.RequestedRole,
		Reason:        req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Role request submitted successfully")
}

type ReviewRoleRequestRequest struct {
	Approve    bool   `json:"approve"`
	AdminNotes string `json:"admin_notes"`
}

// Review handles PUT /role-requests/:id/review
func (h *RoleRequestHandler) Review(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewRoleRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.reviewUC.Execute(c.Request.Context(), usecases.ReviewRoleRequestCommand{
		RequestID:  requestID,
		Actor:      authorization.ActorFromContext(c),
		Approve:    req.Approve,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role request reviewed", result)
}

// List handles GET /role-requests
func (h *RoleRequestHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRoleRequestsQuery{
		Actor:    authorization.ActorFromContext(c),
		Status:   c.Query("status"),
		Page:     queryInt(c, "page", constants.DefaultPage),
		PageSize: queryInt(c, "limit", constants.DefaultPageSize),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := dto.RoleRequestsToResponses(result.Requests)
	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

// ListMine handles GET /role-requests/my-requests
func (h *RoleRequestHandler) ListMine(c *gin.Context) {
	result, err := h.listMyUC.Execute(c.Request.Context(), usecases.ListMyRoleRequestsQuery{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.RoleRequestsToResponses(result.Requests))
}

// Delete handles DELETE /role-requests/:id
func (h *RoleRequestHandler) Delete(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeleteRoleRequestCommand{
		RequestID: requestID,
		Actor:     authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role request deleted successfully", nil)
}
