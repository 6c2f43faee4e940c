package usecases

import (
	"context"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
	Actor  authorization.Actor
}

type DeleteUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.UserRepository, log logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   log,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID, "actor_id", cmd.Actor.ID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if !authorization.CanManageUsers(cmd.Actor) {
		return errors.NewForbiddenError("only admins can delete users")
	}
	// Self-deletion is rejected even for admins.
	if cmd.UserID == cmd.Actor.ID {
		return errors.NewForbiddenError("you cannot delete your own account")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return err
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("user deleted successfully", "user_id", cmd.UserID)
	return nil
}
