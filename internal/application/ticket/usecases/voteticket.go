package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type VoteTicketCommand struct {
	TicketID uint
	Actor    authorization.Actor
	Kind     string
}

type VoteTicketResult struct {
	TicketID     uint
	VoteCount    int
	HasUpvoted   bool
	HasDownvoted bool
}

type VoteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewVoteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *VoteTicketUseCase {
	return &VoteTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *VoteTicketUseCase) Execute(ctx context.Context, cmd VoteTicketCommand) (*VoteTicketResult, error) {
	uc.logger.Infow("executing vote ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID, "kind", cmd.Kind)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	kind, err := vo.NewVoteKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if !authorization.CanViewTicket(cmd.Actor, existing.CreatorID()) {
		uc.logger.Warnw("user not authorized to vote on ticket", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if err := existing.ApplyVote(cmd.Actor.ID, kind); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Persisting a vote rewrites the ticket row and its vote rows. One
	// transaction keeps the two from landing separately.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Update(txCtx, existing)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist ticket vote", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	return &VoteTicketResult{
		TicketID:     existing.ID(),
		VoteCount:    existing.VoteCount(),
		HasUpvoted:   existing.HasUpvoted(cmd.Actor.ID),
		HasDownvoted: existing.HasDownvoted(cmd.Actor.ID),
	}, nil
}
