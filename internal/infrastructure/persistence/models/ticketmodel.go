package models

import (
	"gorm.io/datatypes"

	"quickdesk/internal/shared/constants"
)

type TicketModel struct {
	ID          uint           `gorm:"primaryKey"`
	Subject     string         `gorm:"size:200;not null"`
	Description string         `gorm:"type:text;not null"`
	CategoryID  *uint          `gorm:"index"`
	Priority    string         `gorm:"size:20;not null;index"`
	Status      string         `gorm:"size:20;not null;index"`
	CreatorID   uint           `gorm:"not null;index"`
	AssigneeID  *uint          `gorm:"index"`
	Attachments datatypes.JSON `gorm:"type:json"`
	IsPublic    bool           `gorm:"not null;default:true"`
	ResolvedAt  *int64
	ClosedAt    *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID          uint           `gorm:"primaryKey"`
	TicketID    uint           `gorm:"not null;index"`
	AuthorID    uint           `gorm:"not null;index"`
	Content     string         `gorm:"type:text;not null"`
	IsInternal  bool           `gorm:"not null;default:false"`
	Attachments datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

// TicketVoteModel stores one row per user vote on a ticket. The composite
// unique index guarantees a user holds at most one vote per ticket.
type TicketVoteModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;uniqueIndex:idx_ticket_votes_ticket_user"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_ticket_votes_ticket_user"`
	Kind      string `gorm:"size:10;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketVoteModel) TableName() string {
	return constants.TableTicketVotes
}

// CommentVoteModel stores one row per user vote on a comment.
type CommentVoteModel struct {
	ID        uint   `gorm:"primaryKey"`
	CommentID uint   `gorm:"not null;uniqueIndex:idx_comment_votes_comment_user"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_comment_votes_comment_user"`
	Kind      string `gorm:"size:10;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CommentVoteModel) TableName() string {
	return constants.TableCommentVotes
}
