package ticket

import (
	"context"
	"time"

	vo "quickdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status vo.TicketStatus) (int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*Ticket, error)
}

type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	CategoryID *uint
	CreatorID  *uint
	AssigneeID *uint
	Unassigned bool
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, commentID uint) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// GetByTicketID returns the ticket's comments oldest first. When
	// includeInternal is false, internal comments are filtered out.
	GetByTicketID(ctx context.Context, ticketID uint, includeInternal bool) ([]*Comment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
