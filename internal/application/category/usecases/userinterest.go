package usecases

import (
	"context"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type GetUserInterestQuery struct {
	UserID uint
}

type GetUserInterestResult struct {
	// Category is nil when the user has not picked one.
	Category *category.Category
}

type GetUserInterestUseCase struct {
	userRepo     user.UserRepository
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewGetUserInterestUseCase(
	userRepo user.UserRepository,
	categoryRepo category.CategoryRepository,
	logger logger.Interface,
) *GetUserInterestUseCase {
	return &GetUserInterestUseCase{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetUserInterestUseCase) Execute(ctx context.Context, query GetUserInterestQuery) (*GetUserInterestResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.UserID)
		return nil, err
	}

	if existing.CategoryOfInterestID() == nil {
		return &GetUserInterestResult{}, nil
	}

	cat, err := uc.categoryRepo.GetByID(ctx, *existing.CategoryOfInterestID())
	if err != nil {
		// A category removed after being picked is treated as no interest.
		if errors.IsNotFoundError(err) {
			return &GetUserInterestResult{}, nil
		}
		uc.logger.Errorw("failed to get interest category", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return &GetUserInterestResult{Category: cat}, nil
}

type UpdateUserInterestCommand struct {
	UserID uint
	// CategoryID nil clears the interest.
	CategoryID *uint
}

type UpdateUserInterestResult struct {
	UserID     uint
	CategoryID *uint
}

type UpdateUserInterestUseCase struct {
	userRepo     user.UserRepository
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewUpdateUserInterestUseCase(
	userRepo user.UserRepository,
	categoryRepo category.CategoryRepository,
	logger logger.Interface,
) *UpdateUserInterestUseCase {
	return &UpdateUserInterestUseCase{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateUserInterestUseCase) Execute(ctx context.Context, cmd UpdateUserInterestCommand) (*UpdateUserInterestResult, error) {
	uc.logger.Infow("executing update user interest use case", "user_id", cmd.UserID, "category_id", cmd.CategoryID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	if cmd.CategoryID != nil {
		cat, err := uc.categoryRepo.GetByID(ctx, *cmd.CategoryID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("category does not exist")
			}
			return nil, err
		}
		if !cat.IsActive() {
			return nil, errors.NewValidationError("category is not active")
		}
	}

	existing.SetCategoryOfInterest(cmd.CategoryID)

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user interest", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	return &UpdateUserInterestResult{
		UserID:     existing.ID(),
		CategoryID: existing.CategoryOfInterestID(),
	}, nil
}
