package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  UserRole
	}{
		{"end user", "end_user", RoleEndUser},
		{"support agent", "support_agent", RoleSupportAgent},
		{"admin", "admin", RoleAdmin},
		{"unknown falls back to end user", "superuser", RoleEndUser},
		{"empty falls back to end user", "", RoleEndUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUserRole(tt.input))
		})
	}
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleSupportAgent.IsStaff())
	assert.False(t, RoleSupportAgent.IsAdmin())
	assert.False(t, RoleEndUser.IsStaff())
}

func TestTicketPermissions(t *testing.T) {
	endUser := Actor{ID: 1, Role: RoleEndUser}
	agent := Actor{ID: 2, Role: RoleSupportAgent}
	admin := Actor{ID: 3, Role: RoleAdmin}

	tests := []struct {
		name      string
		check     func() bool
		want      bool
	}{
		{"end user views own ticket", func() bool { return CanViewTicket(endUser, 1) }, true},
		{"end user cannot view others ticket", func() bool { return CanViewTicket(endUser, 9) }, false},
		{"agent views any ticket", func() bool { return CanViewTicket(agent, 9) }, true},
		{"admin views any ticket", func() bool { return CanViewTicket(admin, 9) }, true},

		{"end user updates own ticket", func() bool { return CanUpdateTicket(endUser, 1) }, true},
		{"end user cannot update others ticket", func() bool { return CanUpdateTicket(endUser, 9) }, false},
		{"agent updates any ticket", func() bool { return CanUpdateTicket(agent, 9) }, true},

		{"end user cannot touch workflow fields", func() bool { return CanChangeTicketWorkflow(endUser) }, false},
		{"agent touches workflow fields", func() bool { return CanChangeTicketWorkflow(agent) }, true},

		{"end user deletes own ticket", func() bool { return CanDeleteTicket(endUser, 1) }, true},
		{"agent cannot delete others ticket", func() bool { return CanDeleteTicket(agent, 9) }, false},
		{"agent deletes own ticket", func() bool { return CanDeleteTicket(agent, 2) }, true},
		{"admin deletes any ticket", func() bool { return CanDeleteTicket(admin, 9) }, true},

		{"end user never sees internal comments", func() bool { return CanSeeInternalComments(endUser) }, false},
		{"agent sees internal comments", func() bool { return CanSeeInternalComments(agent) }, true},

		{"end user list scoped to own", func() bool { return ScopesTicketListToOwn(endUser) }, true},
		{"agent list unscoped", func() bool { return ScopesTicketListToOwn(agent) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check())
		})
	}
}

func TestCommentAndAdminPermissions(t *testing.T) {
	endUser := Actor{ID: 1, Role: RoleEndUser}
	agent := Actor{ID: 2, Role: RoleSupportAgent}
	admin := Actor{ID: 3, Role: RoleAdmin}

	assert.True(t, CanModifyComment(endUser, 1))
	assert.False(t, CanModifyComment(endUser, 2))
	assert.False(t, CanModifyComment(agent, 1))
	assert.True(t, CanModifyComment(admin, 1))

	assert.False(t, CanManageCategories(agent))
	assert.True(t, CanManageCategories(admin))

	assert.False(t, CanReviewRoleRequests(agent))
	assert.True(t, CanReviewRoleRequests(admin))

	assert.True(t, CanDeleteRoleRequest(endUser, 1))
	assert.False(t, CanDeleteRoleRequest(endUser, 2))
	assert.True(t, CanDeleteRoleRequest(admin, 2))

	assert.False(t, CanManageUsers(agent))
	assert.True(t, CanManageUsers(admin))
}
