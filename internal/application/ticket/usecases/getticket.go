package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	Actor    authorization.Actor
}

type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Comments []*ticket.Comment
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	if !authorization.CanViewTicket(query.Actor, existing.CreatorID()) {
		uc.logger.Warnw("user not authorized to view ticket", "ticket_id", query.TicketID, "user_id", query.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	includeInternal := authorization.CanSeeInternalComments(query.Actor)
	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID, includeInternal)
	if err != nil {
		uc.logger.Errorw("failed to load ticket comments", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	return &GetTicketResult{
		Ticket:   existing,
		Comments: comments,
	}, nil
}
