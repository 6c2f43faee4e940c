package usecases

import (
	"context"
	"strings"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type ListUsersQuery struct {
	Actor    authorization.Actor
	Role     string
	Search   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*user.User
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   log,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !authorization.CanManageUsers(query.Actor) {
		return nil, errors.NewForbiddenError("only admins can list users")
	}

	filter := user.UserFilter{
		Search: strings.TrimSpace(query.Search),
	}

	if query.Role != "" {
		role := authorization.UserRole(query.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role filter: " + query.Role)
		}
		filter.Role = &role
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{
		Users:    users,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
