package usecases

import "context"

type CreateRoleRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRoleRequestCommand) (*CreateRoleRequestResult, error)
}

type ListRoleRequestsExecutor interface {
	Execute(ctx context.Context, query ListRoleRequestsQuery) (*ListRoleRequestsResult, error)
}

type ListMyRoleRequestsExecutor interface {
	Execute(ctx context.Context, query ListMyRoleRequestsQuery) (*ListMyRoleRequestsResult, error)
}

type ReviewRoleRequestExecutor interface {
	Execute(ctx context.Context, cmd ReviewRoleRequestCommand) (*ReviewRoleRequestResult, error)
}

type DeleteRoleRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRoleRequestCommand) error
}
