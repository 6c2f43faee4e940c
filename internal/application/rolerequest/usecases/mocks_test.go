package usecases

import (
	"context"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
)

type mockRoleRequestRepository struct {
	SaveFunc               func(ctx context.Context, r *rolerequest.RoleRequest) error
	UpdateFunc             func(ctx context.Context, r *rolerequest.RoleRequest) error
	DeleteFunc             func(ctx context.Context, requestID uint) error
	GetByIDFunc            func(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error)
	GetPendingByUserIDFunc func(ctx context.Context, userID uint) (*rolerequest.RoleRequest, error)
	ListByUserIDFunc       func(ctx context.Context, userID uint) ([]*rolerequest.RoleRequest, error)
	ListFunc               func(ctx context.Context, filter rolerequest.RequestFilter) ([]*rolerequest.RoleRequest, int64, error)
	CountPendingFunc       func(ctx context.Context) (int64, error)
}

func (m *mockRoleRequestRepository) Save(ctx context.Context, r *rolerequest.RoleRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRoleRequestRepository) Update(ctx context.Context, r *rolerequest.RoleRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRoleRequestRepository) Delete(ctx context.Context, requestID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, requestID)
	}
	return nil
}

func (m *mockRoleRequestRepository) GetByID(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockRoleRequestRepository) GetPendingByUserID(ctx context.Context, userID uint) (*rolerequest.RoleRequest, error) {
	if m.GetPendingByUserIDFunc != nil {
		return m.GetPendingByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRoleRequestRepository) ListByUserID(ctx context.Context, userID uint) ([]*rolerequest.RoleRequest, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRoleRequestRepository) List(ctx context.Context, filter rolerequest.RequestFilter) ([]*rolerequest.RoleRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRoleRequestRepository) CountPending(ctx context.Context) (int64, error) {
	if m.CountPendingFunc != nil {
		return m.CountPendingFunc(ctx)
	}
	return 0, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, userID uint) (*user.User, error)
	UpdateFunc  func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error { return nil }

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
	return nil, 0, nil
}

func (m *mockUserRepository) ListActiveByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) CountAll(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockUserRepository) CountByCategoryInterest(ctx context.Context, categoryID uint) (int64, error) {
	return 0, nil
}

type mockEventPublisher struct {
	Published []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	return nil
}
