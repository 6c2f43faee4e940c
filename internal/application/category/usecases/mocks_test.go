package usecases

import (
	"context"
	"strings"
	"time"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
)

type mockCategoryRepository struct {
	SaveFunc      func(ctx context.Context, c *category.Category) error
	UpdateFunc    func(ctx context.Context, c *category.Category) error
	DeleteFunc    func(ctx context.Context, categoryID uint) error
	GetByIDFunc   func(ctx context.Context, categoryID uint) (*category.Category, error)
	GetByNameFunc func(ctx context.Context, name string) (*category.Category, error)
	ListFunc      func(ctx context.Context, onlyActive bool) ([]*category.Category, error)
	CountAllFunc  func(ctx context.Context) (int64, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, categoryID)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context, onlyActive bool) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, onlyActive)
	}
	return nil, nil
}

func (m *mockCategoryRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

type mockTicketRepository struct {
	CountByCategoryFunc func(ctx context.Context, categoryID uint) (int64, error)
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

func (m *mockTicketRepository) CountAll(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockTicketRepository) CountByStatus(ctx context.Context, status vo.TicketStatus) (int64, error) {
	return 0, nil
}

func (m *mockTicketRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, categoryID)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func (m *mockTicketRepository) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc                 func(ctx context.Context, userID uint) (*user.User, error)
	UpdateFunc                  func(ctx context.Context, u *user.User) error
	CountByCategoryInterestFunc func(ctx context.Context, categoryID uint) (int64, error)
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
	if m.CountByCategoryInterestFunc != nil {
		return m.CountByCategoryInterestFunc(ctx, categoryID)
	}
	return 0, nil
}

type passthroughContent struct{}

func (passthroughContent) Sanitize(text string) string {
	return strings.TrimSpace(text)
}

func (passthroughContent) RenderSafeHTML(markdown string) (string, error) {
	return markdown, nil
}
