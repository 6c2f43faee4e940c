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

type CreateCategoryCommand struct {
	Actor       authorization.Actor
	Name        string
	Description string
	Color       string
}

type CreateCategoryResult struct {
	CategoryID  uint
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
}

type CreateCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	content      content.Service
	logger       logger.Interface
}

func NewCreateCategoryUseCase(
	categoryRepo category.CategoryRepository,
	contentSvc content.Service,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		content:      contentSvc,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error) {
	uc.logger.Infow("executing create category use case", "name", cmd.Name, "user_id", cmd.Actor.ID)

	if !authorization.CanManageCategories(cmd.Actor) {
		uc.logger.Warnw("user not authorized to manage categories", "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("only admins can manage categories")
	}

	name := uc.content.Sanitize(cmd.Name)
	description := uc.content.Sanitize(cmd.Description)

	// Names are unique ignoring case; "Billing" and "billing" are the same
	// category.
	existing, err := uc.categoryRepo.GetByName(ctx, name)
	if err != nil {
		uc.logger.Errorw("failed to check category name", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a category with this name already exists")
	}

	newCategory, err := category.NewCategory(name, description, cmd.Color, cmd.Actor.ID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, newCategory); err != nil {
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, err
	}

	uc.logger.Infow("category created successfully", "category_id", newCategory.ID(), "name", newCategory.Name())

	return &CreateCategoryResult{
		CategoryID:  newCategory.ID(),
		Name:        newCategory.Name(),
		Description: newCategory.Description(),
		Color:       newCategory.Color(),
		CreatedAt:   newCategory.CreatedAt(),
	}, nil
}
