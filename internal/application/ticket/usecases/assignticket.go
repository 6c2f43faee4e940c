package usecases

import (
	"context"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID uint
	Actor    authorization.Actor
	// AssigneeID nil unassigns the ticket.
	AssigneeID *uint
}

type AssignTicketResult struct {
	TicketID   uint
	AssigneeID *uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !authorization.CanChangeTicketWorkflow(cmd.Actor) {
		uc.logger.Warnw("user not authorized to assign tickets", "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("only support staff can assign tickets")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if cmd.AssigneeID == nil {
		existing.Unassign()
	} else {
		if err := uc.checkAssignee(ctx, *cmd.AssigneeID); err != nil {
			return nil, err
		}
		if err := existing.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if cmd.AssigneeID != nil {
		event := ticket.NewTicketAssignedEvent(
			existing.ID(),
			existing.Subject(),
			*cmd.AssigneeID,
			cmd.Actor.ID,
			biztime.NowUTC(),
		)
		if err := uc.publisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket assigned event", "error", err, "ticket_id", existing.ID())
		}
	}

	uc.logger.Infow("ticket assignment updated", "ticket_id", existing.ID(), "assignee_id", cmd.AssigneeID)

	return &AssignTicketResult{
		TicketID:   existing.ID(),
		AssigneeID: existing.AssigneeID(),
	}, nil
}

func (uc *AssignTicketUseCase) checkAssignee(ctx context.Context, assigneeID uint) error {
	assignee, err := uc.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("assignee does not exist")
		}
		return err
	}
	if !assignee.Role().IsStaff() {
		return errors.NewValidationError("assignee must be a support agent or admin")
	}
	if !assignee.IsActive() {
		return errors.NewValidationError("assignee account is deactivated")
	}
	return nil
}
