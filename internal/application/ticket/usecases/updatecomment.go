package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/services/content"
)

type UpdateCommentCommand struct {
	CommentID uint
	Actor     authorization.Actor
	Content   string
}

type UpdateCommentResult struct {
	CommentID uint
	Content   string
	UpdatedAt time.Time
}

type UpdateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	content     content.Service
	logger      logger.Interface
}

func NewUpdateCommentUseCase(
	commentRepo ticket.CommentRepository,
	contentSvc content.Service,
	logger logger.Interface,
) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		content:     contentSvc,
		logger:      logger,
	}
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*UpdateCommentResult, error) {
	uc.logger.Infow("executing update comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)

	if cmd.CommentID == 0 {
		return nil, errors.NewValidationError("comment ID is required")
	}
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("content is required")
	}
	if len(cmd.Content) > 2000 {
		return nil, errors.NewValidationError("content exceeds maximum length of 2000 characters")
	}

	existing, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to get comment", "error", err, "comment_id", cmd.CommentID)
		return nil, err
	}

	if !authorization.CanModifyComment(cmd.Actor, existing.AuthorID()) {
		uc.logger.Warnw("user not authorized to update comment", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("only the author or an admin can edit this comment")
	}

	if err := existing.UpdateContent(uc.content.Sanitize(cmd.Content)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update comment", "error", err, "comment_id", cmd.CommentID)
		return nil, err
	}

	return &UpdateCommentResult{
		CommentID: existing.ID(),
		Content:   existing.Content(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
