package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/user"
	uservo "quickdesk/internal/domain/user/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

var (
	endUserActor = authorization.Actor{ID: 10, Role: authorization.RoleEndUser}
	adminActor   = authorization.Actor{ID: 30, Role: authorization.RoleAdmin}
)

func newStoredUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("requester@example.com")
	require.NoError(t, err)
	created := time.Now().Add(-24 * time.Hour)
	u, err := user.ReconstructUser(id, "Pat", "Requester", email, "$2a$10$hash", role, nil, true, created, created)
	require.NoError(t, err)
	return u
}

func newStoredRequest(t *testing.T, id, userID uint, status rolerequest.RequestStatus) *rolerequest.RoleRequest {
	t.Helper()
	created := time.Now().Add(-time.Hour)
	r, err := rolerequest.ReconstructRoleRequest(
		id,
		userID,
		authorization.RoleSupportAgent,
		"I handle tickets daily",
		status,
		nil,
		nil,
		"",
		created,
		created,
	)
	require.NoError(t, err)
	return r
}

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(database)
}

func TestCreateRoleRequestUseCase_Execute(t *testing.T) {
	t.Run("end user requests agent role", func(t *testing.T) {
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newStoredUser(t, userID, authorization.RoleEndUser), nil
			},
		}
		var saved *rolerequest.RoleRequest
		mockRequests := &mockRoleRequestRepository{
			SaveFunc: func(ctx context.Context, r *rolerequest.RoleRequest) error {
				require.NoError(t, r.SetID(5))
				saved = r
				return nil
			},
		}
		useCase := NewCreateRoleRequestUseCase(mockRequests, mockUsers, logger.NewNop())

		result, err := useCase.Execute(context.Background(), CreateRoleRequestCommand{
			UserID:        10,
			RequestedRole: "support_agent",
			Reason:        "I handle tickets daily",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(5), result.RequestID)
		assert.Equal(t, "pending", result.Status)
		require.NotNil(t, saved)
	})

	t.Run("pending request already exists", func(t *testing.T) {
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newStoredUser(t, userID, authorization.RoleEndUser), nil
			},
		}
		mockRequests := &mockRoleRequestRepository{
			GetPendingByUserIDFunc: func(ctx context.Context, userID uint) (*rolerequest.RoleRequest, error) {
				return newStoredRequest(t, 4, userID, rolerequest.StatusPending), nil
			},
		}
		useCase := NewCreateRoleRequestUseCase(mockRequests, mockUsers, logger.NewNop())

		_, err := useCase.Execute(context.Background(), CreateRoleRequestCommand{UserID: 10, RequestedRole: "support_agent"})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("requesting current role conflicts", func(t *testing.T) {
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newStoredUser(t, userID, authorization.RoleSupportAgent), nil
			},
		}
		useCase := NewCreateRoleRequestUseCase(&mockRoleRequestRepository{}, mockUsers, logger.NewNop())

		_, err := useCase.Execute(context.Background(), CreateRoleRequestCommand{UserID: 10, RequestedRole: "support_agent"})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("end_user role not requestable", func(t *testing.T) {
		useCase := NewCreateRoleRequestUseCase(&mockRoleRequestRepository{}, &mockUserRepository{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), CreateRoleRequestCommand{UserID: 10, RequestedRole: "end_user"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestReviewRoleRequestUseCase_Execute(t *testing.T) {
	txManager := newTestTxManager(t)

	t.Run("approval changes role", func(t *testing.T) {
		request := newStoredRequest(t, 5, 10, rolerequest.StatusPending)
		requester := newStoredUser(t, 10, authorization.RoleEndUser)
		var updatedUser *user.User
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return requester, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updatedUser = u
				return nil
			},
		}
		mockRequests := &mockRoleRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
				return request, nil
			},
		}
		publisher := &mockEventPublisher{}
		useCase := NewReviewRoleRequestUseCase(mockRequests, mockUsers, txManager, publisher, logger.NewNop())

		result, err := useCase.Execute(context.Background(), ReviewRoleRequestCommand{
			RequestID: 5,
			Actor:     adminActor,
			Approve:   true,
		})

		require.NoError(t, err)
		assert.Equal(t, "approved", result.Status)
		require.NotNil(t, result.ReviewedAt)
		require.NotNil(t, updatedUser)
		assert.Equal(t, authorization.RoleSupportAgent, updatedUser.Role())

		require.Len(t, publisher.Published, 2)
		assert.Equal(t, events.EventRoleRequestReviewed, publisher.Published[0].EventName())
		assert.Equal(t, events.EventUserRoleChanged, publisher.Published[1].EventName())
	})

	t.Run("rejection leaves role untouched", func(t *testing.T) {
		request := newStoredRequest(t, 5, 10, rolerequest.StatusPending)
		requester := newStoredUser(t, 10, authorization.RoleEndUser)
		var userUpdated bool
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return requester, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				userUpdated = true
				return nil
			},
		}
		mockRequests := &mockRoleRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
				return request, nil
			},
		}
		publisher := &mockEventPublisher{}
		useCase := NewReviewRoleRequestUseCase(mockRequests, mockUsers, txManager, publisher, logger.NewNop())

		result, err := useCase.Execute(context.Background(), ReviewRoleRequestCommand{
			RequestID:  5,
			Actor:      adminActor,
			Approve:    false,
			AdminNotes: "not enough tenure",
		})

		require.NoError(t, err)
		assert.Equal(t, "rejected", result.Status)
		assert.False(t, userUpdated)
		assert.Equal(t, authorization.RoleEndUser, requester.Role())
		require.Len(t, publisher.Published, 1)
	})

	t.Run("already reviewed request conflicts", func(t *testing.T) {
		request := newStoredRequest(t, 5, 10, rolerequest.StatusApproved)
		mockRequests := &mockRoleRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
				return request, nil
			},
		}
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newStoredUser(t, userID, authorization.RoleEndUser), nil
			},
		}
		useCase := NewReviewRoleRequestUseCase(mockRequests, mockUsers, txManager, &mockEventPublisher{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), ReviewRoleRequestCommand{RequestID: 5, Actor: adminActor, Approve: true})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		assert.Contains(t, err.Error(), "already been approved")
	})

	t.Run("non-admin denied", func(t *testing.T) {
		useCase := NewReviewRoleRequestUseCase(&mockRoleRequestRepository{}, &mockUserRepository{}, txManager, &mockEventPublisher{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), ReviewRoleRequestCommand{RequestID: 5, Actor: endUserActor, Approve: true})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestListRoleRequestsUseCase_Execute(t *testing.T) {
	t.Run("admin lists by status", func(t *testing.T) {
		var captured rolerequest.RequestFilter
		mockRequests := &mockRoleRequestRepository{
			ListFunc: func(ctx context.Context, filter rolerequest.RequestFilter) ([]*rolerequest.RoleRequest, int64, error) {
				captured = filter
				return []*rolerequest.RoleRequest{newStoredRequest(t, 5, 10, rolerequest.StatusPending)}, 1, nil
			},
		}
		useCase := NewListRoleRequestsUseCase(mockRequests, logger.NewNop())

		result, err := useCase.Execute(context.Background(), ListRoleRequestsQuery{Actor: adminActor, Status: "pending"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		require.NotNil(t, captured.Status)
		assert.Equal(t, rolerequest.StatusPending, *captured.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		useCase := NewListRoleRequestsUseCase(&mockRoleRequestRepository{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), ListRoleRequestsQuery{Actor: adminActor, Status: "stalled"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("non-admin denied", func(t *testing.T) {
		useCase := NewListRoleRequestsUseCase(&mockRoleRequestRepository{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), ListRoleRequestsQuery{Actor: endUserActor})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestDeleteRoleRequestUseCase_Execute(t *testing.T) {
	t.Run("owner withdraws pending request", func(t *testing.T) {
		request := newStoredRequest(t, 5, endUserActor.ID, rolerequest.StatusPending)
		var deleted bool
		mockRequests := &mockRoleRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
				return request, nil
			},
			DeleteFunc: func(ctx context.Context, requestID uint) error {
				deleted = true
				return nil
			},
		}
		useCase := NewDeleteRoleRequestUseCase(mockRequests, logger.NewNop())

		err := useCase.Execute(context.Background(), DeleteRoleRequestCommand{RequestID: 5, Actor: endUserActor})

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("owner cannot withdraw reviewed request", func(t *testing.T) {
		request := newStoredRequest(t, 5, endUserActor.ID, rolerequest.StatusRejected)
		mockRequests := &mockRoleRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
				return request, nil
			},
		}
		useCase := NewDeleteRoleRequestUseCase(mockRequests, logger.NewNop())

		err := useCase.Execute(context.Background(), DeleteRoleRequestCommand{RequestID: 5, Actor: endUserActor})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("admin deletes reviewed request", func(t *testing.T) {
		request := newStoredRequest(t, 5, endUserActor.ID, rolerequest.StatusRejected)
		mockRequests := &mockRoleRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
				return request, nil
			},
		}
		useCase := NewDeleteRoleRequestUseCase(mockRequests, logger.NewNop())

		err := useCase.Execute(context.Background(), DeleteRoleRequestCommand{RequestID: 5, Actor: adminActor})

		require.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		request := newStoredRequest(t, 5, 999, rolerequest.StatusPending)
		mockRequests := &mockRoleRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*rolerequest.RoleRequest, error) {
				return request, nil
			},
		}
		useCase := NewDeleteRoleRequestUseCase(mockRequests, logger.NewNop())

		err := useCase.Execute(context.Background(), DeleteRoleRequestCommand{RequestID: 5, Actor: endUserActor})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
