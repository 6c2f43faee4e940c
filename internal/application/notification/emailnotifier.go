// Package notification bridges domain events to outbound email. Every send
// is best-effort: failures are logged and never propagated back into the
// operation that raised the event.
package notification

import (
	"context"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/email"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/logger"
)

// EmailNotifier subscribes to ticket lifecycle events and mails the
// interested parties.
type EmailNotifier struct {
	userRepo     user.UserRepository
	emailService email.Service
	logger       logger.Interface
}

func NewEmailNotifier(
	userRepo user.UserRepository,
	emailService email.Service,
	log logger.Interface,
) *EmailNotifier {
	return &EmailNotifier{
		userRepo:     userRepo,
		emailService: emailService,
		logger:       log,
	}
}

// Register subscribes the notifier's handlers on the dispatcher.
func (n *EmailNotifier) Register(subscriber events.EventSubscriber) error {
	handlers := map[string]func(events.DomainEvent) error{
		events.EventTicketCreated:       n.handleTicketCreated,
		events.EventTicketStatusChanged: n.handleStatusChanged,
		events.EventCommentAdded:        n.handleCommentAdded,
		events.EventTicketAssigned:      n.handleTicketAssigned,
	}
	for name, fn := range handlers {
		if err := subscriber.Subscribe(name, events.NewHandlerFunc(name, fn)); err != nil {
			return err
		}
	}
	return nil
}

// handleTicketCreated fans the new ticket out to every active support agent.
func (n *EmailNotifier) handleTicketCreated(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketCreatedEvent)
	if !ok {
		return nil
	}

	ctx := context.Background()
	agents, err := n.userRepo.ListActiveByRole(ctx, authorization.RoleSupportAgent)
	if err != nil {
		n.logger.Errorw("failed to list support agents for notification", "error", err, "ticket_id", e.TicketID)
		return nil
	}

	for _, agent := range agents {
		if err := n.emailService.SendTicketCreated(agent.Email().String(), e.Subject, e.TicketID); err != nil {
			n.logger.Warnw("failed to send ticket created email",
				"error", err, "ticket_id", e.TicketID, "recipient_id", agent.ID())
		}
	}
	return nil
}

// handleStatusChanged mails the ticket creator about the new status.
func (n *EmailNotifier) handleStatusChanged(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketStatusChangedEvent)
	if !ok {
		return nil
	}

	creator, err := n.userRepo.GetByID(context.Background(), e.CreatorID)
	if err != nil {
		n.logger.Errorw("failed to load ticket creator for notification", "error", err, "ticket_id", e.TicketID)
		return nil
	}

	if err := n.emailService.SendTicketStatusUpdated(creator.Email().String(), e.Subject, e.TicketID, e.OldStatus, e.NewStatus); err != nil {
		n.logger.Warnw("failed to send status update email",
			"error", err, "ticket_id", e.TicketID, "recipient_id", creator.ID())
	}
	return nil
}

// handleCommentAdded mails the creator and the assignee about a public
// reply. Internal comments stay internal and the author never gets their
// own reply back.
func (n *EmailNotifier) handleCommentAdded(event events.DomainEvent) error {
	e, ok := event.(ticket.CommentAddedEvent)
	if !ok {
		return nil
	}
	if e.IsInternal {
		return nil
	}

	recipients := map[uint]bool{e.TicketCreatorID: true}
	if e.AssigneeID != nil {
		recipients[*e.AssigneeID] = true
	}
	delete(recipients, e.AuthorID)

	ctx := context.Background()
	for recipientID := range recipients {
		recipient, err := n.userRepo.GetByID(ctx, recipientID)
		if err != nil {
			n.logger.Errorw("failed to load reply recipient", "error", err, "ticket_id", e.TicketID, "recipient_id", recipientID)
			continue
		}
		if err := n.emailService.SendNewReply(recipient.Email().String(), e.TicketSubject, e.TicketID); err != nil {
			n.logger.Warnw("failed to send new reply email",
				"error", err, "ticket_id", e.TicketID, "recipient_id", recipientID)
		}
	}
	return nil
}

// handleTicketAssigned mails the newly assigned agent.
func (n *EmailNotifier) handleTicketAssigned(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketAssignedEvent)
	if !ok {
		return nil
	}

	assignee, err := n.userRepo.GetByID(context.Background(), e.AssigneeID)
	if err != nil {
		n.logger.Errorw("failed to load assignee for notification", "error", err, "ticket_id", e.TicketID)
		return nil
	}

	if err := n.emailService.SendTicketAssigned(assignee.Email().String(), e.Subject, e.TicketID); err != nil {
		n.logger.Warnw("failed to send ticket assigned email",
			"error", err, "ticket_id", e.TicketID, "recipient_id", assignee.ID())
	}
	return nil
}
