package mappers

import (
	"fmt"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
)

// RoleRequestMapper handles the conversion between role request domain
// entities and persistence models.
type RoleRequestMapper interface {
	ToModel(r *rolerequest.RoleRequest) *models.RoleRequestModel
	ToDomain(model *models.RoleRequestModel) (*rolerequest.RoleRequest, error)
}

type RoleRequestMapperImpl struct{}

func NewRoleRequestMapper() RoleRequestMapper {
	return &RoleRequestMapperImpl{}
}

func (m *RoleRequestMapperImpl) ToModel(r *rolerequest.RoleRequest) *models.RoleRequestModel {
	return &models.RoleRequestModel{
		ID:            r.ID(),
		UserID:        r.UserID(),
		RequestedRole: r.RequestedRole().String(),
		Reason:        r.Reason(),
		Status:        r.Status().String(),
		ReviewedByID:  r.ReviewedByID(),
		ReviewedAt:    timePtrToMillis(r.ReviewedAt()),
		AdminNotes:    r.AdminNotes(),
		CreatedAt:     r.CreatedAt().UnixMilli(),
		UpdatedAt:     r.UpdatedAt().UnixMilli(),
	}
}

func (m *RoleRequestMapperImpl) ToDomain(model *models.RoleRequestModel) (*rolerequest.RoleRequest, error) {
	status, err := rolerequest.NewRequestStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid role request status (id=%d): %w", model.ID, err)
	}

	return rolerequest.ReconstructRoleRequest(
		model.ID,
		model.UserID,
		authorization.ParseUserRole(model.RequestedRole),
		model.Reason,
		status,
		model.ReviewedByID,
		millisToTimePtr(model.ReviewedAt),
		model.AdminNotes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
