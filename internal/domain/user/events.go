package user

import (
	"time"

	"quickdesk/internal/domain/shared/events"
)

type UserRegisteredEvent struct {
	UserID    uint
	Email     string
	FullName  string
	Timestamp time.Time
}

func NewUserRegisteredEvent(userID uint, email, fullName string, timestamp time.Time) UserRegisteredEvent {
	return UserRegisteredEvent{
		UserID:    userID,
		Email:     email,
		FullName:  fullName,
		Timestamp: timestamp,
	}
}

func (e UserRegisteredEvent) EventName() string {
	return events.EventUserRegistered
}

type UserRoleChangedEvent struct {
	UserID    uint
	OldRole   string
	NewRole   string
	ChangedBy uint
	Timestamp time.Time
}

func NewUserRoleChangedEvent(userID uint, oldRole, newRole string, changedBy uint, timestamp time.Time) UserRoleChangedEvent {
	return UserRoleChangedEvent{
		UserID:    userID,
		OldRole:   oldRole,
		NewRole:   newRole,
		ChangedBy: changedBy,
		Timestamp: timestamp,
	}
}

func (e UserRoleChangedEvent) EventName() string {
	return events.EventUserRoleChanged
}
