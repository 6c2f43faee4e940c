// Package rolerequest holds the role elevation request aggregate. End users
// ask for a higher role; admins approve or reject, and approval changes the
// requester's role in the same transaction.
package rolerequest

import (
	"fmt"
	"time"

	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

type RoleRequest struct {
	id            uint
	userID        uint
	requestedRole authorization.UserRole
	reason        string
	status        RequestStatus
	reviewedByID  *uint
	reviewedAt    *time.Time
	adminNotes    string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoleRequest(
	userID uint,
	requestedRole authorization.UserRole,
	reason string,
) (*RoleRequest, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !requestedRole.IsValid() || requestedRole == authorization.RoleEndUser {
		return nil, fmt.Errorf("requested role must be support_agent or admin")
	}
	if len(reason) > 500 {
		return nil, fmt.Errorf("reason exceeds maximum length of 500 characters")
	}

	now := biztime.NowUTC()
	return &RoleRequest{
		userID:        userID,
		requestedRole: requestedRole,
		reason:        reason,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRoleRequest(
	id uint,
	userID uint,
	requestedRole authorization.UserRole,
	reason string,
	status RequestStatus,
	reviewedByID *uint,
	reviewedAt *time.Time,
	adminNotes string,
	createdAt, updatedAt time.Time,
) (*RoleRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("role request ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &RoleRequest{
		id:            id,
		userID:        userID,
		requestedRole: requestedRole,
		reason:        reason,
		status:        status,
		reviewedByID:  reviewedByID,
		reviewedAt:    reviewedAt,
		adminNotes:    adminNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *RoleRequest) ID() uint {
	return r.id
}

func (r *RoleRequest) UserID() uint {
	return r.userID
}

func (r *RoleRequest) RequestedRole() authorization.UserRole {
	return r.requestedRole
}

func (r *RoleRequest) Reason() string {
	return r.reason
}

func (r *RoleRequest) Status() RequestStatus {
	return r.status
}

func (r *RoleRequest) ReviewedByID() *uint {
	return r.reviewedByID
}

func (r *RoleRequest) ReviewedAt() *time.Time {
	return r.reviewedAt
}

func (r *RoleRequest) AdminNotes() string {
	return r.adminNotes
}

func (r *RoleRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *RoleRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

// GetOwnerID implements authorization.OwnedResource.
func (r *RoleRequest) GetOwnerID() uint {
	return r.userID
}

func (r *RoleRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Approve marks a pending request approved. The caller is responsible for
// changing the user's role in the same transaction.
func (r *RoleRequest) Approve(reviewerID uint, notes string) error {
	return r.review(StatusApproved, reviewerID, notes)
}

// Reject marks a pending request rejected.
func (r *RoleRequest) Reject(reviewerID uint, notes string) error {
	return r.review(StatusRejected, reviewerID, notes)
}

func (r *RoleRequest) review(target RequestStatus, reviewerID uint, notes string) error {
	if reviewerID == 0 {
		return fmt.Errorf("reviewer ID is required")
	}
	if !r.status.IsPending() {
		return fmt.Errorf("request has already been %s", r.status)
	}
	if len(notes) > 500 {
		return fmt.Errorf("admin notes exceed maximum length of 500 characters")
	}

	now := biztime.NowUTC()
	r.status = target
	r.reviewedByID = &reviewerID
	r.reviewedAt = &now
	r.adminNotes = notes
	r.updatedAt = now
	return nil
}
