package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

func TestAddCommentUseCase_Execute(t *testing.T) {
	t.Run("creator adds public comment", func(t *testing.T) {
		stored := newStoredTicket(t, 1, endUserActor.ID)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
		}
		var saved *ticket.Comment
		mockComments := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				require.NoError(t, c.SetID(100))
				saved = c
				return nil
			},
		}
		publisher := &mockEventPublisher{}
		useCase := NewAddCommentUseCase(mockRepo, mockComments, publisher, passthroughContent{}, logger.NewNop())

		result, err := useCase.Execute(context.Background(), AddCommentCommand{
			TicketID: 1,
			Actor:    endUserActor,
			Content:  "Still broken after restart",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(100), result.CommentID)
		assert.False(t, result.IsInternal)
		require.NotNil(t, saved)
		assert.Equal(t, endUserActor.ID, saved.AuthorID())

		require.Len(t, publisher.Published, 1)
		assert.Equal(t, events.EventCommentAdded, publisher.Published[0].EventName())
		event, ok := publisher.Published[0].(ticket.CommentAddedEvent)
		require.True(t, ok)
		assert.Equal(t, stored.Subject(), event.TicketSubject)
		assert.Equal(t, stored.CreatorID(), event.TicketCreatorID)
	})

	t.Run("agent adds internal comment", func(t *testing.T) {
		stored := newStoredTicket(t, 1, endUserActor.ID)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
		}
		mockComments := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				return c.SetID(101)
			},
		}
		useCase := NewAddCommentUseCase(mockRepo, mockComments, &mockEventPublisher{}, passthroughContent{}, logger.NewNop())

		result, err := useCase.Execute(context.Background(), AddCommentCommand{
			TicketID:   1,
			Actor:      agentActor,
			Content:    "Escalating to network team",
			IsInternal: true,
		})

		require.NoError(t, err)
		assert.True(t, result.IsInternal)
	})

	t.Run("end user cannot post internal comment", func(t *testing.T) {
		stored := newStoredTicket(t, 1, endUserActor.ID)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
		}
		useCase := NewAddCommentUseCase(mockRepo, &mockCommentRepository{}, &mockEventPublisher{}, passthroughContent{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), AddCommentCommand{
			TicketID:   1,
			Actor:      endUserActor,
			Content:    "sneaky note",
			IsInternal: true,
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("stranger cannot comment", func(t *testing.T) {
		stored := newStoredTicket(t, 1, 777)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return stored, nil
			},
		}
		useCase := NewAddCommentUseCase(mockRepo, &mockCommentRepository{}, &mockEventPublisher{}, passthroughContent{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), AddCommentCommand{
			TicketID: 1,
			Actor:    endUserActor,
			Content:  "me too",
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("empty content rejected", func(t *testing.T) {
		useCase := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, &mockEventPublisher{}, passthroughContent{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), AddCommentCommand{TicketID: 1, Actor: endUserActor})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateCommentUseCase_Execute(t *testing.T) {
	t.Run("author edits own comment", func(t *testing.T) {
		stored := newStoredComment(t, 5, 1, endUserActor.ID, false)
		var updated *ticket.Comment
		mockComments := &mockCommentRepository{
			GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
				return stored, nil
			},
			UpdateFunc: func(ctx context.Context, c *ticket.Comment) error {
				updated = c
				return nil
			},
		}
		useCase := NewUpdateCommentUseCase(mockComments, passthroughContent{}, logger.NewNop())

		result, err := useCase.Execute(context.Background(), UpdateCommentCommand{
			CommentID: 5,
			Actor:     endUserActor,
			Content:   "Edited: restart did not help",
		})

		require.NoError(t, err)
		assert.Equal(t, "Edited: restart did not help", result.Content)
		require.NotNil(t, updated)
	})

	t.Run("non-author denied", func(t *testing.T) {
		stored := newStoredComment(t, 5, 1, endUserActor.ID, false)
		mockComments := &mockCommentRepository{
			GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
				return stored, nil
			},
		}
		useCase := NewUpdateCommentUseCase(mockComments, passthroughContent{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), UpdateCommentCommand{
			CommentID: 5,
			Actor:     agentActor,
			Content:   "overwritten",
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("admin may edit any comment", func(t *testing.T) {
		stored := newStoredComment(t, 5, 1, endUserActor.ID, false)
		mockComments := &mockCommentRepository{
			GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
				return stored, nil
			},
		}
		useCase := NewUpdateCommentUseCase(mockComments, passthroughContent{}, logger.NewNop())

		_, err := useCase.Execute(context.Background(), UpdateCommentCommand{
			CommentID: 5,
			Actor:     adminActor,
			Content:   "moderated",
		})

		require.NoError(t, err)
	})
}

func TestDeleteCommentUseCase_Execute(t *testing.T) {
	stored := newStoredComment(t, 5, 1, endUserActor.ID, false)
	mockComments := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
			return stored, nil
		},
	}
	useCase := NewDeleteCommentUseCase(mockComments, logger.NewNop())

	err := useCase.Execute(context.Background(), DeleteCommentCommand{CommentID: 5, Actor: agentActor})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	err = useCase.Execute(context.Background(), DeleteCommentCommand{CommentID: 5, Actor: endUserActor})
	require.NoError(t, err)
}

func TestVoteCommentUseCase_Execute(t *testing.T) {
	t.Run("vote toggles on comment", func(t *testing.T) {
		parent := newStoredTicket(t, 1, endUserActor.ID)
		stored := newStoredComment(t, 5, 1, agentActor.ID, false)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return parent, nil
			},
		}
		mockComments := &mockCommentRepository{
			GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
				return stored, nil
			},
		}
		useCase := NewVoteCommentUseCase(mockRepo, mockComments, newTestTxManager(t), logger.NewNop())

		result, err := useCase.Execute(context.Background(), VoteCommentCommand{CommentID: 5, Actor: endUserActor, Kind: "upvote"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.VoteCount)

		result, err = useCase.Execute(context.Background(), VoteCommentCommand{CommentID: 5, Actor: endUserActor, Kind: "upvote"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.VoteCount)
	})

	t.Run("end user cannot vote on internal comment", func(t *testing.T) {
		parent := newStoredTicket(t, 1, endUserActor.ID)
		stored := newStoredComment(t, 5, 1, agentActor.ID, true)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return parent, nil
			},
		}
		mockComments := &mockCommentRepository{
			GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
				return stored, nil
			},
		}
		useCase := NewVoteCommentUseCase(mockRepo, mockComments, newTestTxManager(t), logger.NewNop())

		_, err := useCase.Execute(context.Background(), VoteCommentCommand{CommentID: 5, Actor: endUserActor, Kind: "upvote"})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
