package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
)

type mockUserRepository struct {
	GetByIDFunc  func(ctx context.Context, userID uint) (*user.User, error)
	DeleteFunc   func(ctx context.Context, userID uint) error
	ListFunc     func(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error)
	CountAllFunc func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListActiveByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *mockUserRepository) CountByCategoryInterest(ctx context.Context, categoryID uint) (int64, error) {
	return 0, nil
}

type mockTicketRepository struct {
	CountAllFunc          func(ctx context.Context) (int64, error)
	CountByStatusFunc     func(ctx context.Context, status vo.TicketStatus) (int64, error)
	CountCreatedSinceFunc func(ctx context.Context, since time.Time) (int64, error)
	ListRecentFunc        func(ctx context.Context, limit int) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error    { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, status vo.TicketStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return 0, nil
}

func (m *mockTicketRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountCreatedSinceFunc != nil {
		return m.CountCreatedSinceFunc(ctx, since)
	}
	return 0, nil
}

func (m *mockTicketRepository) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockRoleRequestRepository struct {
	CountPendingFunc func(ctx context.Context) (int64, error)
}

func (m *mockRoleRequestRepository) Save(ctx context.Context, r *rolerequest.RoleRequest) error {
	return nil
}

func (m *mockRoleRequestRepository) Update(ctx context.Context, r *rolerequest.RoleRequest) error {
	return nil
}

func (m *mockRoleRequestRepository) Delete(ctx context.Context, requestID uint) error { return nil }

func (m *mockRoleRequestRepository) GetByID(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
	return nil, nil
}

func (m *mockRoleRequestRepository) GetPendingByUserID(ctx context.Context, userID uint) (*rolerequest.RoleRequest, error) {
	return nil, nil
}

func (m *mockRoleRequestRepository) ListByUserID(ctx context.Context, userID uint) ([]*rolerequest.RoleRequest, error) {
	return nil, nil
}

func (m *mockRoleRequestRepository) List(ctx context.Context, filter rolerequest.RequestFilter) ([]*rolerequest.RoleRequest, int64, error) {
	return nil, 0, nil
}

func (m *mockRoleRequestRepository) CountPending(ctx context.Context) (int64, error) {
	if m.CountPendingFunc != nil {
		return m.CountPendingFunc(ctx)
	}
	return 0, nil
}
