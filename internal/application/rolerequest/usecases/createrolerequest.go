package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type CreateRoleRequestCommand struct {
	UserID        uint
	RequestedRole string
	Reason        string
}

type CreateRoleRequestResult struct {
	RequestID     uint
	RequestedRole string
	Status        string
	CreatedAt     time.Time
}

type CreateRoleRequestUseCase struct {
	requestRepo rolerequest.RoleRequestRepository
	userRepo    user.UserRepository
	logger      logger.Interface
}

func NewCreateRoleRequestUseCase(
	requestRepo rolerequest.RoleRequestRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *CreateRoleRequestUseCase {
	return &CreateRoleRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *CreateRoleRequestUseCase) Execute(ctx context.Context, cmd CreateRoleRequestCommand) (*CreateRoleRequestResult, error) {
	uc.logger.Infow("executing create role request use case", "user_id", cmd.UserID, "requested_role", cmd.RequestedRole)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	requestedRole := authorization.UserRole(cmd.RequestedRole)
	if !requestedRole.IsValid() || requestedRole == authorization.RoleEndUser {
		return nil, errors.NewValidationError("requested role must be support_agent or admin")
	}

	requester, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	if requester.Role() == requestedRole {
		return nil, errors.NewConflictError("you already hold this role")
	}

	pending, err := uc.requestRepo.GetPendingByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check pending requests", "error", err, "user_id", cmd.UserID)
		return nil, err
	}
	if pending != nil {
		return nil, errors.NewConflictError("you already have a pending role request")
	}

	request, err := rolerequest.NewRoleRequest(cmd.UserID, requestedRole, cmd.Reason)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, request); err != nil {
		uc.logger.Errorw("failed to save role request", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("role request created", "request_id", request.ID(), "user_id", cmd.UserID)

	return &CreateRoleRequestResult{
		RequestID:     request.ID(),
		RequestedRole: request.RequestedRole().String(),
		Status:        request.Status().String(),
		CreatedAt:     request.CreatedAt(),
	}, nil
}
