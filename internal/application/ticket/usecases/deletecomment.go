package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
	Actor     authorization.Actor
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)

	if cmd.CommentID == 0 {
		return errors.NewValidationError("comment ID is required")
	}

	existing, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to get comment", "error", err, "comment_id", cmd.CommentID)
		return err
	}

	if !authorization.CanModifyComment(cmd.Actor, existing.AuthorID()) {
		uc.logger.Warnw("user not authorized to delete comment", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)
		return errors.NewForbiddenError("only the author or an admin can delete this comment")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", cmd.CommentID)
		return err
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID)
	return nil
}
