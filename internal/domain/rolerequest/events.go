package rolerequest

import (
	"time"

	"quickdesk/internal/domain/shared/events"
)

type RoleRequestReviewedEvent struct {
	RequestID     uint
	UserID        uint
	RequestedRole string
	Approved      bool
	ReviewerID    uint
	Timestamp     time.Time
}

func NewRoleRequestReviewedEvent(
	requestID uint,
	userID uint,
	requestedRole string,
	approved bool,
	reviewerID uint,
	timestamp time.Time,
) RoleRequestReviewedEvent {
	return RoleRequestReviewedEvent{
		RequestID:     requestID,
		UserID:        userID,
		RequestedRole: requestedRole,
		Approved:      approved,
		ReviewerID:    reviewerID,
		Timestamp:     timestamp,
	}
}

func (e RoleRequestReviewedEvent) EventName() string {
	return events.EventRoleRequestReviewed
}
