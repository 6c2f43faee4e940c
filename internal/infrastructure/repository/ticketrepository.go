package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	apperrors "quickdesk/internal/shared/errors"
	db "quickdesk/internal/shared/db"
	"quickdesk/internal/shared/utils/setutil"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"subject":     true,
	"status":      true,
	"priority":    true,
	"category_id": true,
	"creator_id":  true,
	"assignee_id": true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return r.syncTicketVotes(ctx, t)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return r.syncTicketVotes(ctx, t)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	upvoters, downvoters, err := r.loadTicketVotes(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, upvoters, downvoters)
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketVoteModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket votes: %w", err)
	}
	return nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Unassigned {
		query = query.Where("assignee_id IS NULL")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("subject LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	votesByTicket, err := r.loadVotesForTickets(ctx, ticketModels)
	if err != nil {
		return nil, 0, err
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		votes := votesByTicket[model.ID]
		t, err := r.mapper.ToDomain(&model, votes.upvoters, votes.downvoters)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountAll(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var count int64
	if err := tx.Model(&models.TicketModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, status vo.TicketStatus) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var count int64
	if err := tx.Model(&models.TicketModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var count int64
	if err := tx.Model(&models.TicketModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by category: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var count int64
	if err := tx.Model(&models.TicketModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recent tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	if limit <= 0 {
		limit = 10
	}

	tx := db.GetTxFromContext(ctx, r.db)
	var ticketModels []models.TicketModel
	if err := tx.Model(&models.TicketModel{}).
		Order("created_at DESC").
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	votesByTicket, err := r.loadVotesForTickets(ctx, ticketModels)
	if err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		votes := votesByTicket[model.ID]
		t, err := r.mapper.ToDomain(&model, votes.upvoters, votes.downvoters)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}

type voteSets struct {
	upvoters   []uint
	downvoters []uint
}

func (r *TicketRepository) loadTicketVotes(ctx context.Context, ticketID uint) ([]uint, []uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var rows []models.TicketVoteModel
	if err := tx.Where("ticket_id = ?", ticketID).Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load ticket votes: %w", err)
	}

	var upvoters, downvoters []uint
	for _, row := range rows {
		if row.Kind == vo.VoteUp.String() {
			upvoters = append(upvoters, row.UserID)
		} else {
			downvoters = append(downvoters, row.UserID)
		}
	}
	return upvoters, downvoters, nil
}

func (r *TicketRepository) loadVotesForTickets(
	ctx context.Context,
	ticketModels []models.TicketModel,
) (map[uint]voteSets, error) {
	result := make(map[uint]voteSets, len(ticketModels))
	if len(ticketModels) == 0 {
		return result, nil
	}

	ids := make([]uint, len(ticketModels))
	for i, model := range ticketModels {
		ids[i] = model.ID
	}

	tx := db.GetTxFromContext(ctx, r.db)
	var rows []models.TicketVoteModel
	if err := tx.Where("ticket_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket votes: %w", err)
	}

	for _, row := range rows {
		sets := result[row.TicketID]
		if row.Kind == vo.VoteUp.String() {
			sets.upvoters = append(sets.upvoters, row.UserID)
		} else {
			sets.downvoters = append(sets.downvoters, row.UserID)
		}
		result[row.TicketID] = sets
	}
	return result, nil
}

// syncTicketVotes reconciles vote rows with the aggregate's in-memory vote
// sets: stale rows are removed and new votes inserted.
func (r *TicketRepository) syncTicketVotes(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketVoteModel
	if err := tx.Where("ticket_id = ?", t.ID()).Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load ticket votes: %w", err)
	}

	storedUp := setutil.NewUintSet()
	storedDown := setutil.NewUintSet()
	for _, row := range rows {
		if row.Kind == vo.VoteUp.String() {
			storedUp.Add(row.UserID)
		} else {
			storedDown.Add(row.UserID)
		}
	}

	currentUp := setutil.NewUintSetFrom(t.UpvoterIDs())
	currentDown := setutil.NewUintSetFrom(t.DownvoterIDs())

	removed := append(storedUp.Diff(currentUp), storedDown.Diff(currentDown)...)
	if len(removed) > 0 {
		if err := tx.Where("ticket_id = ? AND user_id IN ?", t.ID(), removed).
			Delete(&models.TicketVoteModel{}).Error; err != nil {
			return fmt.Errorf("failed to remove stale ticket votes: %w", err)
		}
	}

	var inserts []models.TicketVoteModel
	for _, userID := range currentUp.Diff(storedUp) {
		inserts = append(inserts, models.TicketVoteModel{TicketID: t.ID(), UserID: userID, Kind: vo.VoteUp.String()})
	}
	for _, userID := range currentDown.Diff(storedDown) {
		inserts = append(inserts, models.TicketVoteModel{TicketID: t.ID(), UserID: userID, Kind: vo.VoteDown.String()})
	}

	if len(inserts) > 0 {
		// Upsert guards against a concurrent vote on the same (ticket, user).
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ticket_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind"}),
		}).Create(&inserts).Error; err != nil {
			return fmt.Errorf("failed to save ticket votes: %w", err)
		}
	}

	return nil
}
