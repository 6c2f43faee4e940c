package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

func TestAssignTicketUseCase_Execute(t *testing.T) {
	t.Run("agent assigns ticket to active agent", func(t *testing.T) {
		stored := newStoredTicket(t, 1, endUserActor.ID)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
		}
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newStoredUser(t, userID, authorization.RoleSupportAgent, true), nil
			},
		}
		publisher := &mockEventPublisher{}
		useCase := NewAssignTicketUseCase(mockRepo, mockUsers, publisher, logger.NewNop())

		result, err := useCase.Execute(context.Background(), AssignTicketCommand{
			TicketID:   1,
			Actor:      agentActor,
			AssigneeID: uintPtr(55),
		})

		require.NoError(t, err)
		require.NotNil(t, result.AssigneeID)
		assert.Equal(t, uint(55), *result.AssigneeID)

		require.Len(t, publisher.Published, 1)
		assert.Equal(t, events.EventTicketAssigned, publisher.Published[0].EventName())
		event, ok := publisher.Published[0].(ticket.TicketAssignedEvent)
		require.True(t, ok)
		assert.Equal(t, uint(55), event.AssigneeID)
		assert.Equal(t, agentActor.ID, event.AssignedBy)
	})

	t.Run("unassign clears assignee without event", func(t *testing.T) {
		stored := newStoredTicket(t, 1, endUserActor.ID)
		require.NoError(t, stored.AssignTo(55))
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
		}
		publisher := &mockEventPublisher{}
		useCase := NewAssignTicketUseCase(mockRepo, &mockUserRepository{}, publisher, logger.NewNop())

		result, err := useCase.Execute(context.Background(), AssignTicketCommand{TicketID: 1, Actor: agentActor})

		require.NoError(t, err)
		assert.Nil(t, result.AssigneeID)
		assert.Empty(t, publisher.Published)
	})

	t.Run("end user cannot assign", func(t *testing.T) {
		useCase := NewAssignTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockEventPublisher{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), AssignTicketCommand{
			TicketID:   1,
			Actor:      endUserActor,
			AssigneeID: uintPtr(55),
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("assignee checks", func(t *testing.T) {
		tests := []struct {
			name     string
			assignee func(userID uint) (*user.User, error)
		}{
			{
				name: "missing assignee",
				assignee: func(userID uint) (*user.User, error) {
					return nil, errors.NewNotFoundError("user not found")
				},
			},
			{
				name: "end user assignee",
				assignee: func(userID uint) (*user.User, error) {
					return newStoredUser(t, userID, authorization.RoleEndUser, true), nil
				},
			},
			{
				name: "deactivated assignee",
				assignee: func(userID uint) (*user.User, error) {
					return newStoredUser(t, userID, authorization.RoleSupportAgent, false), nil
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				stored := newStoredTicket(t, 1, endUserActor.ID)
				mockRepo := &mockTicketRepository{
					GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
						return stored, nil
					},
				}
				mockUsers := &mockUserRepository{
					GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
						return tt.assignee(userID)
					},
				}
				useCase := NewAssignTicketUseCase(mockRepo, mockUsers, &mockEventPublisher{}, logger.NewNop())

				_, err := useCase.Execute(context.Background(), AssignTicketCommand{
					TicketID:   1,
					Actor:      adminActor,
					AssigneeID: uintPtr(55),
				})

				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			})
		}
	})
}
