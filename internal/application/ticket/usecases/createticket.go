package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/services/content"
)

type CreateTicketCommand struct {
	Subject     string
	Description string
	CategoryID  *uint
	Priority    string
	CreatorID   uint
}

type CreateTicketResult struct {
	TicketID  uint
	Subject   string
	Status    string
	Priority  string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo category.CategoryRepository
	publisher    events.EventPublisher
	content      content.Service
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo category.CategoryRepository,
	publisher events.EventPublisher,
	contentSvc content.Service,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		content:      contentSvc,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "creator_id", cmd.CreatorID, "priority", cmd.Priority)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		parsed, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = parsed
	}

	if cmd.CategoryID != nil {
		if err := uc.checkCategory(ctx, *cmd.CategoryID); err != nil {
			return nil, err
		}
	}

	subject := uc.content.Sanitize(cmd.Subject)
	description := uc.content.Sanitize(cmd.Description)

	newTicket, err := ticket.NewTicket(subject, description, cmd.CategoryID, priority, cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	event := ticket.NewTicketCreatedEvent(
		newTicket.ID(),
		newTicket.Subject(),
		newTicket.CreatorID(),
		newTicket.Priority().String(),
		newTicket.CategoryID(),
		newTicket.CreatedAt(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "error", err, "ticket_id", newTicket.ID())
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "creator_id", cmd.CreatorID)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Subject:   newTicket.Subject(),
		Status:    newTicket.Status().String(),
		Priority:  newTicket.Priority().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}
	if len(cmd.Subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 2000 {
		return errors.NewValidationError("description exceeds maximum length of 2000 characters")
	}
	return nil
}

func (uc *CreateTicketUseCase) checkCategory(ctx context.Context, categoryID uint) error {
	cat, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("category does not exist")
		}
		return err
	}
	if !cat.IsActive() {
		return errors.NewValidationError("category is not active")
	}
	return nil
}
