package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	db "quickdesk/internal/shared/db"
	apperrors "quickdesk/internal/shared/errors"
)

type RoleRequestRepository struct {
	db     *gorm.DB
	mapper mappers.RoleRequestMapper
}

func NewRoleRequestRepository(database *gorm.DB) *RoleRequestRepository {
	return &RoleRequestRepository{
		db:     database,
		mapper: mappers.NewRoleRequestMapper(),
	}
}

func (r *RoleRequestRepository) Save(ctx context.Context, req *rolerequest.RoleRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save role request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *RoleRequestRepository) Update(ctx context.Context, req *rolerequest.RoleRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RoleRequestModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update role request: %w", result.Error)
	}

	return nil
}

func (r *RoleRequestRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RoleRequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete role request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("role request not found")
	}
	return nil
}

func (r *RoleRequestRepository) GetByID(ctx context.Context, id uint) (*rolerequest.RoleRequest, error) {
	var model models.RoleRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("role request not found")
		}
		return nil, fmt.Errorf("failed to find role request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetPendingByUserID returns the user's pending request, or nil when the
// user has none. A user holds at most one pending request at a time.
func (r *RoleRequestRepository) GetPendingByUserID(ctx context.Context, userID uint) (*rolerequest.RoleRequest, error) {
	var model models.RoleRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND status = ?", userID, rolerequest.StatusPending.String()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending role request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RoleRequestRepository) ListByUserID(ctx context.Context, userID uint) ([]*rolerequest.RoleRequest, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var requestModels []models.RoleRequestModel
	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list role requests: %w", err)
	}

	return r.toDomainList(requestModels)
}

func (r *RoleRequestRepository) List(
	ctx context.Context,
	filter rolerequest.RequestFilter,
) ([]*rolerequest.RoleRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RoleRequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count role requests: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var requestModels []models.RoleRequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list role requests: %w", err)
	}

	requests, err := r.toDomainList(requestModels)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *RoleRequestRepository) CountPending(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var count int64
	if err := tx.Model(&models.RoleRequestModel{}).
		Where("status = ?", rolerequest.StatusPending.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending role requests: %w", err)
	}
	return count, nil
}

func (r *RoleRequestRepository) toDomainList(requestModels []models.RoleRequestModel) ([]*rolerequest.RoleRequest, error) {
	requests := make([]*rolerequest.RoleRequest, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}
	return requests, nil
}
