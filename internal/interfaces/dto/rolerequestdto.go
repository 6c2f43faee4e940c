package dto

import (
	"time"

	"quickdesk/internal/domain/rolerequest"
)

type RoleRequestResponse struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"user_id"`
	RequestedRole string     `json:"requested_role"`
	Reason        string     `json:"reason,omitempty"`
	Status        string     `json:"status"`
	ReviewedByID  *uint      `json:"reviewed_by_id,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func RoleRequestToResponse(r *rolerequest.RoleRequest) RoleRequestResponse {
	return RoleRequestResponse{
		ID:            r.ID(),
		UserID:        r.UserID(),
		RequestedRole: r.RequestedRole().String(),
		Reason:        r.Reason(),
		Status:        string(r.Status()),
		ReviewedByID:  r.ReviewedByID(),
		ReviewedAt:    r.ReviewedAt(),
		AdminNotes:    r.AdminNotes(),
		CreatedAt:     r.CreatedAt(),
	}
}

func RoleRequestsToResponses(requests []*rolerequest.RoleRequest) []RoleRequestResponse {
	out := make([]RoleRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, RoleRequestToResponse(r))
	}
	return out
}
