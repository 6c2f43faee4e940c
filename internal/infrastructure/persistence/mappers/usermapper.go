package mappers

import (
	"fmt"

	"quickdesk/internal/domain/user"
	vo "quickdesk/internal/domain/user/valueobjects"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
)

// UserMapper handles the conversion between user domain entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                   u.ID(),
		FirstName:            u.FirstName(),
		LastName:             u.LastName(),
		Email:                u.Email().String(),
		PasswordHash:         u.PasswordHash(),
		Role:                 u.Role().String(),
		CategoryOfInterestID: u.CategoryOfInterestID(),
		IsActive:             u.IsActive(),
		CreatedAt:            u.CreatedAt().UnixMilli(),
		UpdatedAt:            u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid user email (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		model.FirstName,
		model.LastName,
		email,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		model.CategoryOfInterestID,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
