package mappers

import (
	"fmt"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/infrastructure/persistence/models"
)

// CategoryMapper handles the conversion between category domain entities
// and persistence models.
type CategoryMapper interface {
	ToModel(c *category.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:           c.ID(),
		Name:         c.Name(),
		Description:  c.Description(),
		Color:        c.Color(),
		IsActive:     c.IsActive(),
		IsPredefined: c.IsPredefined(),
		CreatedByID:  c.CreatedByID(),
		CreatedAt:    c.CreatedAt().UnixMilli(),
		UpdatedAt:    c.UpdatedAt().UnixMilli(),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	c, err := category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Description,
		model.Color,
		model.IsActive,
		model.IsPredefined,
		model.CreatedByID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category (id=%d): %w", model.ID, err)
	}
	return c, nil
}
