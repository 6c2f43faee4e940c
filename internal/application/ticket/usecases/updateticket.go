package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/services/content"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Actor       authorization.Actor
	Subject     *string
	Description *string
	CategoryID  *uint
	// ClearCategory removes the ticket's category. CategoryID wins when
	// both are set.
	ClearCategory bool
	Priority      *string
	Status        *string
}

type UpdateTicketResult struct {
	TicketID  uint
	Subject   string
	Status    string
	Priority  string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo category.CategoryRepository
	publisher    events.EventPublisher
	content      content.Service
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo category.CategoryRepository,
	publisher events.EventPublisher,
	contentSvc content.Service,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		content:      contentSvc,
		logger:       logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update ticket command", "error", err)
		return nil, err
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if !authorization.CanUpdateTicket(cmd.Actor, existing.CreatorID()) {
		uc.logger.Warnw("user not authorized to update ticket", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	// The status field from non-staff actors is dropped, not rejected, so
	// that a stale client form cannot fail an otherwise valid edit. End
	// users may still change the priority of their own tickets.
	if !authorization.CanChangeTicketWorkflow(cmd.Actor) {
		cmd.Status = nil
	}

	if err := uc.applyDetails(ctx, existing, cmd); err != nil {
		return nil, err
	}

	oldStatus := existing.Status()
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := existing.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if existing.Status() != oldStatus {
		event := ticket.NewTicketStatusChangedEvent(
			existing.ID(),
			existing.Subject(),
			existing.CreatorID(),
			oldStatus.String(),
			existing.Status().String(),
			cmd.Actor.ID,
			biztime.NowUTC(),
		)
		if err := uc.publisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish status changed event", "error", err, "ticket_id", existing.ID())
		}
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", existing.ID())

	return &UpdateTicketResult{
		TicketID:  existing.ID(),
		Subject:   existing.Subject(),
		Status:    existing.Status().String(),
		Priority:  existing.Priority().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}

func (uc *UpdateTicketUseCase) applyDetails(ctx context.Context, existing *ticket.Ticket, cmd UpdateTicketCommand) error {
	subject := ""
	if cmd.Subject != nil {
		subject = uc.content.Sanitize(*cmd.Subject)
	}
	description := ""
	if cmd.Description != nil {
		description = uc.content.Sanitize(*cmd.Description)
	}
	if subject != "" || description != "" {
		if err := existing.UpdateDetails(subject, description); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	switch {
	case cmd.CategoryID != nil:
		cat, err := uc.categoryRepo.GetByID(ctx, *cmd.CategoryID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewValidationError("category does not exist")
			}
			return err
		}
		if !cat.IsActive() {
			return errors.NewValidationError("category is not active")
		}
		existing.SetCategory(cmd.CategoryID)
	case cmd.ClearCategory:
		existing.SetCategory(nil)
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := existing.ChangePriority(priority); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	return nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.ID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if cmd.Subject != nil {
		if len(*cmd.Subject) == 0 {
			return errors.NewValidationError("subject cannot be empty")
		}
		if len(*cmd.Subject) > 200 {
			return errors.NewValidationError("subject exceeds maximum length of 200 characters")
		}
	}
	if cmd.Description != nil {
		if len(*cmd.Description) == 0 {
			return errors.NewValidationError("description cannot be empty")
		}
		if len(*cmd.Description) > 2000 {
			return errors.NewValidationError("description exceeds maximum length of 2000 characters")
		}
	}
	return nil
}
