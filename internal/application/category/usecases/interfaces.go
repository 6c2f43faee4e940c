package usecases

import "context"

type ListCategoriesExecutor interface {
	Execute(ctx context.Context, query ListCategoriesQuery) (*ListCategoriesResult, error)
}

type GetCategoryExecutor interface {
	Execute(ctx context.Context, query GetCategoryQuery) (*GetCategoryResult, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryResult, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) error
}

type GetUserInterestExecutor interface {
	Execute(ctx context.Context, query GetUserInterestQuery) (*GetUserInterestResult, error)
}

type UpdateUserInterestExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserInterestCommand) (*UpdateUserInterestResult, error)
}
