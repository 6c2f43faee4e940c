package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/services/content"
)

type AddCommentCommand struct {
	TicketID   uint
	Actor      authorization.Actor
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	CommentID  uint
	TicketID   uint
	Content    string
	IsInternal bool
	CreatedAt  time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	publisher   events.EventPublisher
	content     content.Service
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	publisher events.EventPublisher,
	contentSvc content.Service,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
		content:     contentSvc,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID, "internal", cmd.IsInternal)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid add comment command", "error", err)
		return nil, err
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if !authorization.CanViewTicket(cmd.Actor, existing.CreatorID()) {
		uc.logger.Warnw("user not authorized to comment on ticket", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if cmd.IsInternal && !authorization.CanCreateInternalComment(cmd.Actor) {
		uc.logger.Warnw("user not authorized to post internal comments", "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("only support staff can post internal comments")
	}

	newComment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.ID, uc.content.Sanitize(cmd.Content), cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, newComment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	event := ticket.NewCommentAddedEvent(
		existing.ID(),
		existing.Subject(),
		existing.CreatorID(),
		existing.AssigneeID(),
		newComment.ID(),
		newComment.AuthorID(),
		newComment.IsInternal(),
		newComment.CreatedAt(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish comment added event", "error", err, "comment_id", newComment.ID())
	}

	uc.logger.Infow("comment added successfully", "comment_id", newComment.ID(), "ticket_id", cmd.TicketID)

	return &AddCommentResult{
		CommentID:  newComment.ID(),
		TicketID:   newComment.TicketID(),
		Content:    newComment.Content(),
		IsInternal: newComment.IsInternal(),
		CreatedAt:  newComment.CreatedAt(),
	}, nil
}

func (uc *AddCommentUseCase) validateCommand(cmd AddCommentCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.ID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if len(cmd.Content) > 2000 {
		return errors.NewValidationError("content exceeds maximum length of 2000 characters")
	}
	return nil
}
