package usecases

import (
	"context"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type ListRoleRequestsQuery struct {
	Actor    authorization.Actor
	Status   string
	Page     int
	PageSize int
}

type ListRoleRequestsResult struct {
	Requests []*rolerequest.RoleRequest
	Total    int64
	Page     int
	PageSize int
}

type ListRoleRequestsUseCase struct {
	requestRepo rolerequest.RoleRequestRepository
	logger      logger.Interface
}

func NewListRoleRequestsUseCase(requestRepo rolerequest.RoleRequestRepository, logger logger.Interface) *ListRoleRequestsUseCase {
	return &ListRoleRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRoleRequestsUseCase) Execute(ctx context.Context, query ListRoleRequestsQuery) (*ListRoleRequestsResult, error) {
	if !authorization.CanReviewRoleRequests(query.Actor) {
		uc.logger.Warnw("user not authorized to list role requests", "user_id", query.Actor.ID)
		return nil, errors.NewForbiddenError("only admins can list role requests")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := rolerequest.RequestFilter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if query.Status != "" {
		status, err := rolerequest.NewRequestStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list role requests", "error", err)
		return nil, err
	}

	return &ListRoleRequestsResult{
		Requests: requests,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

type ListMyRoleRequestsQuery struct {
	UserID uint
}

type ListMyRoleRequestsResult struct {
	Requests []*rolerequest.RoleRequest
}

type ListMyRoleRequestsUseCase struct {
	requestRepo rolerequest.RoleRequestRepository
	logger      logger.Interface
}

func NewListMyRoleRequestsUseCase(requestRepo rolerequest.RoleRequestRepository, logger logger.Interface) *ListMyRoleRequestsUseCase {
	return &ListMyRoleRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListMyRoleRequestsUseCase) Execute(ctx context.Context, query ListMyRoleRequestsQuery) (*ListMyRoleRequestsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	requests, err := uc.requestRepo.ListByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user role requests", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return &ListMyRoleRequestsResult{Requests: requests}, nil
}
