package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/user"
	uservo "quickdesk/internal/domain/user/valueobjects"
	"quickdesk/internal/shared/authorization"
	apperrors "quickdesk/internal/shared/errors"
)

var _ user.UserRepository = (*UserRepository)(nil)

func createTestUser(t *testing.T, email string, role authorization.UserRole) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser("Test", "User", addr, "$2a$10$hash")
	require.NoError(t, err)
	if role != authorization.RoleEndUser {
		require.NoError(t, u.ChangeRole(role))
	}
	return u
}

func TestUserRepository_Save(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	t.Run("save assigns an ID", func(t *testing.T) {
		u := createTestUser(t, "alice@example.com", authorization.RoleEndUser)

		err := repo.Save(ctx, u)
		assert.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		u1 := createTestUser(t, "dup@example.com", authorization.RoleEndUser)
		require.NoError(t, repo.Save(ctx, u1))

		u2 := createTestUser(t, "dup@example.com", authorization.RoleEndUser)
		err := repo.Save(ctx, u2)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	u := createTestUser(t, "bob@example.com", authorization.RoleSupportAgent)
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), found.ID())
	assert.Equal(t, authorization.RoleSupportAgent, found.Role())

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.Error(t, err)
}

func TestUserRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestUser(t, "agent1@example.com", authorization.RoleSupportAgent)))
	require.NoError(t, repo.Save(ctx, createTestUser(t, "agent2@example.com", authorization.RoleSupportAgent)))
	require.NoError(t, repo.Save(ctx, createTestUser(t, "user1@example.com", authorization.RoleEndUser)))

	t.Run("filter by role", func(t *testing.T) {
		role := authorization.RoleSupportAgent
		users, total, err := repo.List(ctx, user.UserFilter{
			Role:     &role,
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, users, 2)
	})

	t.Run("search matches email", func(t *testing.T) {
		users, total, err := repo.List(ctx, user.UserFilter{
			Search:   "user1",
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Len(t, users, 1)
	})
}

func TestUserRepository_ListActiveByRole(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	active := createTestUser(t, "active@example.com", authorization.RoleSupportAgent)
	require.NoError(t, repo.Save(ctx, active))

	inactive := createTestUser(t, "inactive@example.com", authorization.RoleSupportAgent)
	inactive.Deactivate()
	require.NoError(t, repo.Save(ctx, inactive))

	agents, err := repo.ListActiveByRole(ctx, authorization.RoleSupportAgent)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "active@example.com", agents[0].Email().String())
}

func TestUserRepository_CountByCategoryInterest(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	catID := uint(3)
	u := createTestUser(t, "interested@example.com", authorization.RoleEndUser)
	u.SetCategoryOfInterest(&catID)
	require.NoError(t, repo.Save(ctx, u))
	require.NoError(t, repo.Save(ctx, createTestUser(t, "other@example.com", authorization.RoleEndUser)))

	count, err := repo.CountByCategoryInterest(ctx, catID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
