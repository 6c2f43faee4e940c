package usecases

import (
	"context"
	"fmt"
	"time"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ReviewRoleRequestCommand struct {
	RequestID  uint
	Actor      authorization.Actor
	Approve    bool
	AdminNotes string
}

type ReviewRoleRequestResult struct {
	RequestID  uint
	Status     string
	ReviewedAt *time.Time
}

type ReviewRoleRequestUseCase struct {
	requestRepo rolerequest.RoleRequestRepository
	userRepo    user.UserRepository
	txManager   *db.TransactionManager
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewReviewRoleRequestUseCase(
	requestRepo rolerequest.RoleRequestRepository,
	userRepo user.UserRepository,
	txManager *db.TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ReviewRoleRequestUseCase {
	return &ReviewRoleRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *ReviewRoleRequestUseCase) Execute(ctx context.Context, cmd ReviewRoleRequestCommand) (*ReviewRoleRequestResult, error) {
	uc.logger.Infow("executing review role request use case", "request_id", cmd.RequestID, "reviewer_id", cmd.Actor.ID, "approve", cmd.Approve)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	if !authorization.CanReviewRoleRequests(cmd.Actor) {
		uc.logger.Warnw("user not authorized to review role requests", "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("only admins can review role requests")
	}

	request, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get role request", "error", err, "request_id", cmd.RequestID)
		return nil, err
	}

	if !request.Status().IsPending() {
		return nil, errors.NewConflictError(
			fmt.Sprintf("request has already been %s", request.Status()))
	}

	requester, err := uc.userRepo.GetByID(ctx, request.UserID())
	if err != nil {
		uc.logger.Errorw("failed to get requesting user", "error", err, "user_id", request.UserID())
		return nil, err
	}
	oldRole := requester.Role()

	if cmd.Approve {
		if err := request.Approve(cmd.Actor.ID, cmd.AdminNotes); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := requester.ChangeRole(request.RequestedRole()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		// The role change and the request status flip must land together.
		err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.userRepo.Update(txCtx, requester); err != nil {
				return err
			}
			return uc.requestRepo.Update(txCtx, request)
		})
		if err != nil {
			uc.logger.Errorw("failed to apply role request approval", "error", err, "request_id", cmd.RequestID)
			return nil, err
		}
	} else {
		if err := request.Reject(cmd.Actor.ID, cmd.AdminNotes); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.requestRepo.Update(ctx, request); err != nil {
			uc.logger.Errorw("failed to save role request rejection", "error", err, "request_id", cmd.RequestID)
			return nil, err
		}
	}

	reviewedEvent := rolerequest.NewRoleRequestReviewedEvent(
		request.ID(),
		request.UserID(),
		request.RequestedRole().String(),
		cmd.Approve,
		cmd.Actor.ID,
		biztime.NowUTC(),
	)
	if err := uc.publisher.Publish(reviewedEvent); err != nil {
		uc.logger.Warnw("failed to publish role request reviewed event", "error", err, "request_id", request.ID())
	}
	if cmd.Approve {
		roleEvent := user.NewUserRoleChangedEvent(
			requester.ID(),
			oldRole.String(),
			requester.Role().String(),
			cmd.Actor.ID,
			biztime.NowUTC(),
		)
		if err := uc.publisher.Publish(roleEvent); err != nil {
			uc.logger.Warnw("failed to publish user role changed event", "error", err, "user_id", requester.ID())
		}
	}

	uc.logger.Infow("role request reviewed", "request_id", request.ID(), "status", request.Status().String())

	return &ReviewRoleRequestResult{
		RequestID:  request.ID(),
		Status:     request.Status().String(),
		ReviewedAt: request.ReviewedAt(),
	}, nil
}
