package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	stored := newStoredTicket(t, 1, endUserActor.ID)

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			if ticketID != 1 {
				return nil, errors.NewNotFoundError("ticket not found")
			}
			return stored, nil
		},
	}

	t.Run("creator sees own ticket with comments", func(t *testing.T) {
		var requestedInternal *bool
		mockComments := &mockCommentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
				requestedInternal = &includeInternal
				return []*ticket.Comment{newStoredComment(t, 5, ticketID, agentActor.ID, false)}, nil
			},
		}
		useCase := NewGetTicketUseCase(mockRepo, mockComments, logger.NewNop())

		result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 1, Actor: endUserActor})

		require.NoError(t, err)
		assert.Equal(t, stored, result.Ticket)
		require.Len(t, result.Comments, 1)
		require.NotNil(t, requestedInternal)
		assert.False(t, *requestedInternal, "end users must not receive internal comments")
	})

	t.Run("staff request includes internal comments", func(t *testing.T) {
		var requestedInternal *bool
		mockComments := &mockCommentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
				requestedInternal = &includeInternal
				return nil, nil
			},
		}
		useCase := NewGetTicketUseCase(mockRepo, mockComments, logger.NewNop())

		_, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 1, Actor: agentActor})

		require.NoError(t, err)
		require.NotNil(t, requestedInternal)
		assert.True(t, *requestedInternal)
	})

	t.Run("other end user denied", func(t *testing.T) {
		useCase := NewGetTicketUseCase(mockRepo, &mockCommentRepository{}, logger.NewNop())

		stranger := endUserActor
		stranger.ID = 999
		result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 1, Actor: stranger})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing ticket propagates not found", func(t *testing.T) {
		useCase := NewGetTicketUseCase(mockRepo, &mockCommentRepository{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 42, Actor: adminActor})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
