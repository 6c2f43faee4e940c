package dto

import (
	"time"

	"quickdesk/internal/domain/user"
)

type UserResponse struct {
	ID                   uint      `json:"id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	Role                 string    `json:"role"`
	CategoryOfInterestID *uint     `json:"category_of_interest_id,omitempty"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
}

func UserToResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                   u.ID(),
		FirstName:            u.FirstName(),
		LastName:             u.LastName(),
		FullName:             u.FullName(),
		Email:                u.Email().String(),
		Role:                 u.Role().String(),
		CategoryOfInterestID: u.CategoryOfInterestID(),
		IsActive:             u.IsActive(),
		CreatedAt:            u.CreatedAt(),
	}
}

func UsersToResponses(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}
