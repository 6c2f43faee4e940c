package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/domain/user"
	uservo "quickdesk/internal/domain/user/valueobjects"
	"quickdesk/internal/shared/authorization"
)

var (
	endUserActor = authorization.Actor{ID: 10, Role: authorization.RoleEndUser}
	agentActor   = authorization.Actor{ID: 20, Role: authorization.RoleSupportAgent}
	adminActor   = authorization.Actor{ID: 30, Role: authorization.RoleAdmin}
)

func newStoredTicket(t *testing.T, id, creatorID uint) *ticket.Ticket {
	t.Helper()
	created := time.Now().Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(
		id,
		"Printer offline",
		"The office printer stopped responding",
		nil,
		vo.StatusOpen,
		vo.PriorityMedium,
		creatorID,
		nil,
		nil,
		nil,
		nil,
		true,
		nil,
		nil,
		created,
		created,
	)
	require.NoError(t, err)
	return tk
}

func newStoredComment(t *testing.T, id, ticketID, authorID uint, isInternal bool) *ticket.Comment {
	t.Helper()
	created := time.Now().Add(-30 * time.Minute)
	c, err := ticket.ReconstructComment(
		id,
		ticketID,
		authorID,
		"Have you tried turning it off and on again?",
		isInternal,
		nil,
		nil,
		nil,
		created,
		created,
	)
	require.NoError(t, err)
	return c
}

func newStoredCategory(t *testing.T, id uint, name string, active bool) *category.Category {
	t.Helper()
	created := time.Now().Add(-24 * time.Hour)
	c, err := category.ReconstructCategory(id, name, "", category.DefaultColor, active, false, 1, created, created)
	require.NoError(t, err)
	return c
}

func newStoredUser(t *testing.T, id uint, role authorization.UserRole, active bool) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("agent@example.com")
	require.NoError(t, err)
	created := time.Now().Add(-24 * time.Hour)
	u, err := user.ReconstructUser(id, "Sam", "Agent", email, "$2a$10$hash", role, nil, active, created, created)
	require.NoError(t, err)
	return u
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}
