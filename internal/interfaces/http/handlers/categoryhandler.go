package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/category/usecases"
	"quickdesk/internal/interfaces/dto"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type CategoryHandler struct {
	listCategoriesUC     usecases.ListCategoriesExecutor
	getCategoryUC        usecases.GetCategoryExecutor
	createCategoryUC     usecases.CreateCategoryExecutor
	updateCategoryUC     usecases.UpdateCategoryExecutor
	deleteCategoryUC     usecases.DeleteCategoryExecutor
	getUserInterestUC    usecases.GetUserInterestExecutor
	updateUserInterestUC usecases.UpdateUserInterestExecutor
	logger               logger.Interface
}

func NewCategoryHandler(
	listCategoriesUC usecases.ListCategoriesExecutor,
	getCategoryUC usecases.GetCategoryExecutor,
	createCategoryUC usecases.CreateCategoryExecutor,
	updateCategoryUC usecases.UpdateCategoryExecutor,
	deleteCategoryUC usecases.DeleteCategoryExecutor,
	getUserInterestUC usecases.GetUserInterestExecutor,
	updateUserInterestUC usecases.UpdateUserInterestExecutor,
	log logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		listCategoriesUC:     listCategoriesUC,
		getCategoryUC:        getCategoryUC,
		createCategoryUC:     createCategoryUC,
		updateCategoryUC:     updateCategoryUC,
		deleteCategoryUC:     deleteCategoryUC,
		getUserInterestUC:    getUserInterestUC,
		updateUserInterestUC: updateUserInterestUC,
		logger:               log,
	}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context(), usecases.ListCategoriesQuery{
		Actor:           authorization.ActorFromContext(c),
		IncludeInactive: c.Query("include_inactive") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.CategoriesToResponses(result.Categories))
}

// GetCategory handles GET /categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCategoryUC.Execute(c.Request.Context(), usecases.GetCategoryQuery{
		CategoryID: categoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.CategoryToResponse(result.Category))
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Actor:       authorization.ActorFromContext(c),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateCategory handles PUT /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.updateCategoryUC.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		CategoryID:  categoryID,
		Actor:       authorization.ActorFromContext(c),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteCategoryUC.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{
		CategoryID: categoryID,
		Actor:      authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

// GetUserInterest handles GET /categories/user-interests
func (h *CategoryHandler) GetUserInterest(c *gin.Context) {
	result, err := h.getUserInterestUC.Execute(c.Request.Context(), usecases.GetUserInterestQuery{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Category == nil {
		utils.SuccessResponse(c, http.StatusOK, "", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.CategoryToResponse(result.Category))
}

type UpdateUserInterestRequest struct {
	// CategoryIDs keeps the submitted list shape; only the first entry is
	// stored. An empty list clears the interest.
	CategoryIDs []uint `json:"category_ids"`
}

// UpdateUserInterest handles PUT /categories/user-interests
func (h *CategoryHandler) UpdateUserInterest(c *gin.Context) {
	var req UpdateUserInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.UpdateUserInterestCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
	}
	if len(req.CategoryIDs) > 0 {
		cmd.CategoryID = &req.CategoryIDs[0]
	}

	result, err := h.updateUserInterestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Interest updated successfully", result)
}
