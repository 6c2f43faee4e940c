package usecases

import "context"

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}
