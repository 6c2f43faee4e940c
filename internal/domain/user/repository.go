package user

import (
	"context"

	"quickdesk/internal/shared/authorization"
)

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)
	// ListActiveByRole returns all active users holding the given role.
	// Notification fan-out to support agents goes through it.
	ListActiveByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
	CountAll(ctx context.Context) (int64, error)
	// CountByCategoryInterest counts users whose category of interest is the
	// given category. The category deletion guard depends on it.
	CountByCategoryInterest(ctx context.Context, categoryID uint) (int64, error)
}

type UserFilter struct {
	Role     *authorization.UserRole
	Search   string
	Page     int
	PageSize int
}
