package ticket

import (
	"fmt"
	"time"

	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/biztime"
	"quickdesk/internal/shared/utils/setutil"
)

type Ticket struct {
	id          uint
	subject     string
	description string
	categoryID  *uint
	status      vo.TicketStatus
	priority    vo.Priority
	creatorID   uint
	assigneeID  *uint
	attachments []Attachment
	upvotes     *setutil.UintSet
	downvotes   *setutil.UintSet
	isPublic    bool
	resolvedAt  *time.Time
	closedAt    *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	subject string,
	description string,
	categoryID *uint,
	priority vo.Priority,
	creatorID uint,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 2000 {
		return nil, fmt.Errorf("description exceeds maximum length of 2000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		subject:     subject,
		description: description,
		categoryID:  categoryID,
		status:      vo.StatusOpen,
		priority:    priority,
		creatorID:   creatorID,
		attachments: []Attachment{},
		upvotes:     setutil.NewUintSet(),
		downvotes:   setutil.NewUintSet(),
		isPublic:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	subject string,
	description string,
	categoryID *uint,
	status vo.TicketStatus,
	priority vo.Priority,
	creatorID uint,
	assigneeID *uint,
	attachments []Attachment,
	upvoterIDs []uint,
	downvoterIDs []uint,
	isPublic bool,
	resolvedAt *time.Time,
	closedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Ticket{
		id:          id,
		subject:     subject,
		description: description,
		categoryID:  categoryID,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		attachments: attachments,
		upvotes:     setutil.NewUintSetFrom(upvoterIDs),
		downvotes:   setutil.NewUintSetFrom(downvoterIDs),
		isPublic:    isPublic,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) CategoryID() *uint {
	return t.categoryID
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Attachments() []Attachment {
	attachmentsCopy := make([]Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) UpvoterIDs() []uint {
	return t.upvotes.ToSlice()
}

func (t *Ticket) DownvoterIDs() []uint {
	return t.downvotes.ToSlice()
}

// VoteCount is the derived score: upvotes minus downvotes.
func (t *Ticket) VoteCount() int {
	return t.upvotes.Len() - t.downvotes.Len()
}

func (t *Ticket) HasUpvoted(userID uint) bool {
	return t.upvotes.Has(userID)
}

func (t *Ticket) HasDownvoted(userID uint) bool {
	return t.downvotes.Has(userID)
}

func (t *Ticket) IsPublic() bool {
	return t.isPublic
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// GetOwnerID implements authorization.OwnedResource.
func (t *Ticket) GetOwnerID() uint {
	return t.creatorID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails changes subject and description. Empty arguments leave the
// current value untouched so partial updates stay simple for callers.
func (t *Ticket) UpdateDetails(subject, description string) error {
	if subject != "" {
		if len(subject) > 200 {
			return fmt.Errorf("subject exceeds maximum length of 200 characters")
		}
		t.subject = subject
	}
	if description != "" {
		if len(description) > 2000 {
			return fmt.Errorf("description exceeds maximum length of 2000 characters")
		}
		t.description = description
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) SetCategory(categoryID *uint) {
	t.categoryID = categoryID
	t.updatedAt = biztime.NowUTC()
}

// ChangeStatus moves the ticket to any valid target status. There is no
// transition whitelist; support staff may jump straight from open to closed
// or pull a closed ticket back to in_progress.
//
// Entering resolved or closed stamps the matching timestamp with the current
// time, overwriting any previous mark. Leaving either status never clears
// the timestamp; resolvedAt and closedAt are audit marks of the most recent
// entry into those states.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	now := biztime.NowUTC()
	t.updatedAt = now

	switch {
	case newStatus.IsResolved():
		t.resolvedAt = &now
	case newStatus.IsClosed():
		t.closedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) AddAttachment(a Attachment) error {
	if a.Filename == "" {
		return fmt.Errorf("attachment filename is required")
	}
	t.attachments = append(t.attachments, a)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ApplyVote records a vote toggle for userID. The user is first removed from
// the opposite set unconditionally, then membership in the target set is
// toggled. This keeps the two sets disjoint and makes a repeated identical
// vote withdraw itself.
func (t *Ticket) ApplyVote(userID uint, kind vo.VoteKind) error {
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if !kind.IsValid() {
		return fmt.Errorf("invalid vote type: %s", kind)
	}

	target, opposite := t.upvotes, t.downvotes
	if kind == vo.VoteDown {
		target, opposite = t.downvotes, t.upvotes
	}

	opposite.Remove(userID)
	target.Toggle(userID)
	t.updatedAt = biztime.NowUTC()
	return nil
}
