// Package dto holds the request and response shapes of the HTTP API and
// their converters from domain objects.
package dto

import (
	"time"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/services/content"
)

type TicketResponse struct {
	ID              uint      `json:"id"`
	Subject         string    `json:"subject"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	CategoryID      *uint     `json:"category_id,omitempty"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	CreatorID       uint      `json:"creator_id"`
	AssigneeID      *uint     `json:"assignee_id,omitempty"`
	VoteCount       int       `json:"vote_count"`
	HasUpvoted      bool      `json:"has_upvoted"`
	HasDownvoted    bool      `json:"has_downvoted"`
	ResolvedAt      *int64    `json:"resolved_at,omitempty"`
	ClosedAt        *int64    `json:"closed_at,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CommentResponse struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticket_id"`
	AuthorID     uint      `json:"author_id"`
	Content      string    `json:"content"`
	ContentHTML  string    `json:"content_html,omitempty"`
	IsInternal   bool      `json:"is_internal"`
	VoteCount    int       `json:"vote_count"`
	HasUpvoted   bool      `json:"has_upvoted"`
	HasDownvoted bool      `json:"has_downvoted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TicketDetailResponse struct {
	Ticket   TicketResponse    `json:"ticket"`
	Comments []CommentResponse `json:"comments"`
}

// TicketToResponse maps a ticket for the given viewer. When contentSvc is
// non-nil the description is additionally rendered to sanitized HTML.
func TicketToResponse(t *ticket.Ticket, viewerID uint, contentSvc content.Service) TicketResponse {
	resp := TicketResponse{
		ID:           t.ID(),
		Subject:      t.Subject(),
		Description:  t.Description(),
		CategoryID:   t.CategoryID(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		CreatorID:    t.CreatorID(),
		AssigneeID:   t.AssigneeID(),
		VoteCount:    t.VoteCount(),
		HasUpvoted:   t.HasUpvoted(viewerID),
		HasDownvoted: t.HasDownvoted(viewerID),
		ResolvedAt:   unixMilliPtr(t.ResolvedAt()),
		ClosedAt:     unixMilliPtr(t.ClosedAt()),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}

	if contentSvc != nil {
		if html, err := contentSvc.RenderSafeHTML(t.Description()); err == nil {
			resp.DescriptionHTML = html
		}
	}

	return resp
}

func TicketsToResponses(tickets []*ticket.Ticket, viewerID uint) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, TicketToResponse(t, viewerID, nil))
	}
	return out
}

func CommentToResponse(c *ticket.Comment, viewerID uint, contentSvc content.Service) CommentResponse {
	resp := CommentResponse{
		ID:           c.ID(),
		TicketID:     c.TicketID(),
		AuthorID:     c.AuthorID(),
		Content:      c.Content(),
		IsInternal:   c.IsInternal(),
		VoteCount:    c.VoteCount(),
		HasUpvoted:   c.HasUpvoted(viewerID),
		HasDownvoted: c.HasDownvoted(viewerID),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}

	if contentSvc != nil {
		if html, err := contentSvc.RenderSafeHTML(c.Content()); err == nil {
			resp.ContentHTML = html
		}
	}

	return resp
}

func CommentsToResponses(comments []*ticket.Comment, viewerID uint, contentSvc content.Service) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentToResponse(c, viewerID, contentSvc))
	}
	return out
}

func unixMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
