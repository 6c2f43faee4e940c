package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/services/content"
)

type UpdateCategoryCommand struct {
	CategoryID  uint
	Actor       authorization.Actor
	Name        *string
	Description *string
	Color       *string
	IsActive    *bool
}

type UpdateCategoryResult struct {
	CategoryID  uint
	Name        string
	Description string
	Color       string
	IsActive    bool
	UpdatedAt   time.Time
}

type UpdateCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	content      content.Service
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(
	categoryRepo category.CategoryRepository,
	contentSvc content.Service,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		content:      contentSvc,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryResult, error) {
	uc.logger.Infow("executing update category use case", "category_id", cmd.CategoryID, "user_id", cmd.Actor.ID)

	if cmd.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	if !authorization.CanManageCategories(cmd.Actor) {
		uc.logger.Warnw("user not authorized to manage categories", "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("only admins can manage categories")
	}

	existing, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "category_id", cmd.CategoryID)
		return nil, err
	}

	name := existing.Name()
	if cmd.Name != nil {
		name = uc.content.Sanitize(*cmd.Name)
		if !existing.NameEquals(name) {
			other, err := uc.categoryRepo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID() != existing.ID() {
				return nil, errors.NewConflictError("a category with this name already exists")
			}
		}
	}

	description := existing.Description()
	if cmd.Description != nil {
		description = uc.content.Sanitize(*cmd.Description)
	}

	color := existing.Color()
	if cmd.Color != nil {
		color = *cmd.Color
	}

	if err := existing.Update(name, description, color); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			existing.Activate()
		} else {
			existing.Deactivate()
		}
	}

	if err := uc.categoryRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update category", "error", err, "category_id", cmd.CategoryID)
		return nil, err
	}

	uc.logger.Infow("category updated successfully", "category_id", existing.ID())

	return &UpdateCategoryResult{
		CategoryID:  existing.ID(),
		Name:        existing.Name(),
		Description: existing.Description(),
		Color:       existing.Color(),
		IsActive:    existing.IsActive(),
		UpdatedAt:   existing.UpdatedAt(),
	}, nil
}
