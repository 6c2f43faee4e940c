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

type VoteCommentCommand struct {
	CommentID uint
	Actor     authorization.Actor
	Kind      string
}

type VoteCommentResult struct {
	CommentID    uint
	VoteCount    int
	HasUpvoted   bool
	HasDownvoted bool
}

type VoteCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewVoteCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *VoteCommentUseCase {
	return &VoteCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *VoteCommentUseCase) Execute(ctx context.Context, cmd VoteCommentCommand) (*VoteCommentResult, error) {
	uc.logger.Infow("executing vote comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID, "kind", cmd.Kind)

	if cmd.CommentID == 0 {
		return nil, errors.NewValidationError("comment ID is required")
	}

	kind, err := vo.NewVoteKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to get comment", "error", err, "comment_id", cmd.CommentID)
		return nil, err
	}

	parent, err := uc.ticketRepo.GetByID(ctx, existing.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to get parent ticket", "error", err, "ticket_id", existing.TicketID())
		return nil, err
	}

	if !authorization.CanViewTicket(cmd.Actor, parent.CreatorID()) {
		uc.logger.Warnw("user not authorized to vote on comment", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if existing.IsInternal() && !authorization.CanSeeInternalComments(cmd.Actor) {
		return nil, errors.NewForbiddenError("you do not have access to this comment")
	}

	if err := existing.ApplyVote(cmd.Actor.ID, kind); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Persisting a vote rewrites the comment row and its vote rows. One
	// transaction keeps the two from landing separately.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.commentRepo.Update(txCtx, existing)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist comment vote", "error", err, "comment_id", cmd.CommentID)
		return nil, err
	}

	return &VoteCommentResult{
		CommentID:    existing.ID(),
		VoteCount:    existing.VoteCount(),
		HasUpvoted:   existing.HasUpvoted(cmd.Actor.ID),
		HasDownvoted: existing.HasDownvoted(cmd.Actor.ID),
	}, nil
}
