package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileResult struct {
	User *user.User
}

type GetProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return &GetProfileResult{User: existing}, nil
}

type UpdateProfileCommand struct {
	UserID    uint
	FirstName string
	LastName  string
}

type UpdateProfileResult struct {
	UserID    uint
	FullName  string
	UpdatedAt time.Time
}

type UpdateProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	if err := existing.UpdateProfile(cmd.FirstName, cmd.LastName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user profile", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("profile updated successfully", "user_id", existing.ID())

	return &UpdateProfileResult{
		UserID:    existing.ID(),
		FullName:  existing.FullName(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
