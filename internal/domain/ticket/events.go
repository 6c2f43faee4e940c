package ticket

import (
	"time"

	"quickdesk/internal/domain/shared/events"
)

type TicketCreatedEvent struct {
	TicketID   uint
	Subject    string
	CreatorID  uint
	Priority   string
	CategoryID *uint
	Timestamp  time.Time
}

func NewTicketCreatedEvent(
	ticketID uint,
	subject string,
	creatorID uint,
	priority string,
	categoryID *uint,
	timestamp time.Time,
) TicketCreatedEvent {
	return TicketCreatedEvent{
		TicketID:   ticketID,
		Subject:    subject,
		CreatorID:  creatorID,
		Priority:   priority,
		CategoryID: categoryID,
		Timestamp:  timestamp,
	}
}

func (e TicketCreatedEvent) EventName() string {
	return events.EventTicketCreated
}

type TicketStatusChangedEvent struct {
	TicketID  uint
	Subject   string
	CreatorID uint
	OldStatus string
	NewStatus string
	ChangedBy uint
	Timestamp time.Time
}

func NewTicketStatusChangedEvent(
	ticketID uint,
	subject string,
	creatorID uint,
	oldStatus string,
	newStatus string,
	changedBy uint,
	timestamp time.Time,
) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		TicketID:  ticketID,
		Subject:   subject,
		CreatorID: creatorID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy,
		Timestamp: timestamp,
	}
}

func (e TicketStatusChangedEvent) EventName() string {
	return events.EventTicketStatusChanged
}

type TicketAssignedEvent struct {
	TicketID   uint
	Subject    string
	AssigneeID uint
	AssignedBy uint
	Timestamp  time.Time
}

func NewTicketAssignedEvent(
	ticketID uint,
	subject string,
	assigneeID uint,
	assignedBy uint,
	timestamp time.Time,
) TicketAssignedEvent {
	return TicketAssignedEvent{
		TicketID:   ticketID,
		Subject:    subject,
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
		Timestamp:  timestamp,
	}
}

func (e TicketAssignedEvent) EventName() string {
	return events.EventTicketAssigned
}

type CommentAddedEvent struct {
	TicketID        uint
	TicketSubject   string
	TicketCreatorID uint
	AssigneeID      *uint
	CommentID       uint
	AuthorID        uint
	IsInternal      bool
	Timestamp       time.Time
}

func NewCommentAddedEvent(
	ticketID uint,
	ticketSubject string,
	ticketCreatorID uint,
	assigneeID *uint,
	commentID uint,
	authorID uint,
	isInternal bool,
	timestamp time.Time,
) CommentAddedEvent {
	return CommentAddedEvent{
		TicketID:        ticketID,
		TicketSubject:   ticketSubject,
		TicketCreatorID: ticketCreatorID,
		AssigneeID:      assigneeID,
		CommentID:       commentID,
		AuthorID:        authorID,
		IsInternal:      isInternal,
		Timestamp:       timestamp,
	}
}

func (e CommentAddedEvent) EventName() string {
	return events.EventCommentAdded
}
