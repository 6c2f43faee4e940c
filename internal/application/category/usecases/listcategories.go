package usecases

import (
	"context"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ListCategoriesQuery struct {
	Actor authorization.Actor
	// IncludeInactive is only honored for admins; everyone else gets the
	// active set.
	IncludeInactive bool
}

type ListCategoriesResult struct {
	Categories []*category.Category
}

type ListCategoriesUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query ListCategoriesQuery) (*ListCategoriesResult, error) {
	onlyActive := true
	if query.IncludeInactive && authorization.CanManageCategories(query.Actor) {
		onlyActive = false
	}

	categories, err := uc.categoryRepo.List(ctx, onlyActive)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	return &ListCategoriesResult{Categories: categories}, nil
}

type GetCategoryQuery struct {
	CategoryID uint
}

type GetCategoryResult struct {
	Category *category.Category
}

type GetCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewGetCategoryUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, query GetCategoryQuery) (*GetCategoryResult, error) {
	if query.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	existing, err := uc.categoryRepo.GetByID(ctx, query.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "category_id", query.CategoryID)
		return nil, err
	}

	return &GetCategoryResult{Category: existing}, nil
}
