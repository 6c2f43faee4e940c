package usecases

import (
	"context"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type DeleteRoleRequestCommand struct {
	RequestID uint
	Actor     authorization.Actor
}

type DeleteRoleRequestUseCase struct {
	requestRepo rolerequest.RoleRequestRepository
	logger      logger.Interface
}

func NewDeleteRoleRequestUseCase(requestRepo rolerequest.RoleRequestRepository, logger logger.Interface) *DeleteRoleRequestUseCase {
	return &DeleteRoleRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *DeleteRoleRequestUseCase) Execute(ctx context.Context, cmd DeleteRoleRequestCommand) error {
	uc.logger.Infow("executing delete role request use case", "request_id", cmd.RequestID, "user_id", cmd.Actor.ID)

	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}

	request, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get role request", "error", err, "request_id", cmd.RequestID)
		return err
	}

	if !authorization.CanDeleteRoleRequest(cmd.Actor, request.UserID()) {
		uc.logger.Warnw("user not authorized to delete role request", "request_id", cmd.RequestID, "user_id", cmd.Actor.ID)
		return errors.NewForbiddenError("you cannot delete this role request")
	}

	// Requesters may only withdraw requests that are still pending; admins
	// may clean up reviewed ones too.
	if !cmd.Actor.Role.IsAdmin() && !request.Status().IsPending() {
		return errors.NewConflictError("only pending requests can be withdrawn")
	}

	if err := uc.requestRepo.Delete(ctx, cmd.RequestID); err != nil {
		uc.logger.Errorw("failed to delete role request", "error", err, "request_id", cmd.RequestID)
		return err
	}

	uc.logger.Infow("role request deleted", "request_id", cmd.RequestID)
	return nil
}
