package dto

import (
	"time"

	"quickdesk/internal/domain/category"
)

type CategoryResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Color        string    `json:"color,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsPredefined bool      `json:"is_predefined"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func CategoryToResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Description:  c.Description(),
		Color:        c.Color(),
		IsActive:     c.IsActive(),
		IsPredefined: c.IsPredefined(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func CategoriesToResponses(categories []*category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryToResponse(c))
	}
	return out
}
