package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type DeleteCategoryCommand struct {
	CategoryID uint
	Actor      authorization.Actor
}

type DeleteCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	ticketRepo   ticket.TicketRepository
	userRepo     user.UserRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo category.CategoryRepository,
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		ticketRepo:   ticketRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	uc.logger.Infow("executing delete category use case", "category_id", cmd.CategoryID, "user_id", cmd.Actor.ID)

	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}

	if !authorization.CanManageCategories(cmd.Actor) {
		uc.logger.Warnw("user not authorized to manage categories", "user_id", cmd.Actor.ID)
		return errors.NewForbiddenError("only admins can manage categories")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "category_id", cmd.CategoryID)
		return err
	}

	ticketCount, err := uc.ticketRepo.CountByCategory(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to count tickets for category", "error", err, "category_id", cmd.CategoryID)
		return err
	}
	if ticketCount > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("cannot delete category: it is being used by %d ticket(s)", ticketCount))
	}

	interestCount, err := uc.userRepo.CountByCategoryInterest(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to count interested users for category", "error", err, "category_id", cmd.CategoryID)
		return err
	}
	if interestCount > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("cannot delete category: it is selected as an interest by %d user(s)", interestCount))
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "error", err, "category_id", cmd.CategoryID)
		return err
	}

	uc.logger.Infow("category deleted successfully", "category_id", cmd.CategoryID)
	return nil
}
