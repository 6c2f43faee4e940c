package ticket

import (
	"fmt"
	"time"

	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/biztime"
	"quickdesk/internal/shared/utils/setutil"
)

type Comment struct {
	id          uint
	ticketID    uint
	authorID    uint
	content     string
	isInternal  bool
	attachments []Attachment
	upvotes     *setutil.UintSet
	downvotes   *setutil.UintSet
	createdAt   time.Time
	updatedAt   time.Time
}

func NewComment(
	ticketID uint,
	authorID uint,
	content string,
	isInternal bool,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 2000 {
		return nil, fmt.Errorf("content exceeds maximum length of 2000 characters")
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:    ticketID,
		authorID:    authorID,
		content:     content,
		isInternal:  isInternal,
		attachments: []Attachment{},
		upvotes:     setutil.NewUintSet(),
		downvotes:   setutil.NewUintSet(),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	isInternal bool,
	attachments []Attachment,
	upvoterIDs []uint,
	downvoterIDs []uint,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Comment{
		id:          id,
		ticketID:    ticketID,
		authorID:    authorID,
		content:     content,
		isInternal:  isInternal,
		attachments: attachments,
		upvotes:     setutil.NewUintSetFrom(upvoterIDs),
		downvotes:   setutil.NewUintSetFrom(downvoterIDs),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) Attachments() []Attachment {
	attachmentsCopy := make([]Attachment, len(c.attachments))
	copy(attachmentsCopy, c.attachments)
	return attachmentsCopy
}

func (c *Comment) UpvoterIDs() []uint {
	return c.upvotes.ToSlice()
}

func (c *Comment) DownvoterIDs() []uint {
	return c.downvotes.ToSlice()
}

func (c *Comment) VoteCount() int {
	return c.upvotes.Len() - c.downvotes.Len()
}

func (c *Comment) HasUpvoted(userID uint) bool {
	return c.upvotes.Has(userID)
}

func (c *Comment) HasDownvoted(userID uint) bool {
	return c.downvotes.Has(userID)
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

// GetOwnerID implements authorization.OwnedResource.
func (c *Comment) GetOwnerID() uint {
	return c.authorID
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > 2000 {
		return fmt.Errorf("content exceeds maximum length of 2000 characters")
	}

	c.content = content
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Comment) AddAttachment(a Attachment) error {
	if a.Filename == "" {
		return fmt.Errorf("attachment filename is required")
	}
	c.attachments = append(c.attachments, a)
	c.updatedAt = biztime.NowUTC()
	return nil
}

// ApplyVote uses the same toggle algorithm as Ticket.ApplyVote.
func (c *Comment) ApplyVote(userID uint, kind vo.VoteKind) error {
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if !kind.IsValid() {
		return fmt.Errorf("invalid vote type: %s", kind)
	}

	target, opposite := c.upvotes, c.downvotes
	if kind == vo.VoteDown {
		target, opposite = c.downvotes, c.upvotes
	}

	opposite.Remove(userID)
	target.Toggle(userID)
	c.updatedAt = biztime.NowUTC()
	return nil
}
