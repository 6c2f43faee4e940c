package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	db "quickdesk/internal/shared/db"
	apperrors "quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/utils/setutil"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model, err := r.mapper.CommentToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return r.syncCommentVotes(ctx, c)
}

func (r *CommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	model, err := r.mapper.CommentToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CommentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}

	return r.syncCommentVotes(ctx, c)
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}

	if err := tx.Where("comment_id = ?", id).Delete(&models.CommentVoteModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comment votes: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	upvoters, downvoters, err := r.loadCommentVotes(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.CommentToDomain(&model, upvoters, downvoters)
}

func (r *CommentRepository) GetByTicketID(
	ctx context.Context,
	ticketID uint,
	includeInternal bool,
) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("ticket_id = ?", ticketID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var commentModels []models.CommentModel
	if err := query.Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	votesByComment, err := r.loadVotesForComments(ctx, commentModels)
	if err != nil {
		return nil, err
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i, model := range commentModels {
		votes := votesByComment[model.ID]
		c, err := r.mapper.CommentToDomain(&model, votes.upvoters, votes.downvoters)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}
	return comments, nil
}

// DeleteByTicketID removes all comments and their votes for a ticket.
// Used when a ticket is deleted.
func (r *CommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var commentIDs []uint
	if err := tx.Model(&models.CommentModel{}).
		Where("ticket_id = ?", ticketID).
		Pluck("id", &commentIDs).Error; err != nil {
		return fmt.Errorf("failed to list ticket comments: %w", err)
	}

	if len(commentIDs) > 0 {
		if err := tx.Where("comment_id IN ?", commentIDs).
			Delete(&models.CommentVoteModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comment votes: %w", err)
		}
	}

	if err := tx.Where("ticket_id = ?", ticketID).
		Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket comments: %w", err)
	}
	return nil
}

func (r *CommentRepository) loadCommentVotes(ctx context.Context, commentID uint) ([]uint, []uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var rows []models.CommentVoteModel
	if err := tx.Where("comment_id = ?", commentID).Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load comment votes: %w", err)
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

func (r *CommentRepository) loadVotesForComments(
	ctx context.Context,
	commentModels []models.CommentModel,
) (map[uint]voteSets, error) {
	result := make(map[uint]voteSets, len(commentModels))
	if len(commentModels) == 0 {
		return result, nil
	}

	ids := make([]uint, len(commentModels))
	for i, model := range commentModels {
		ids[i] = model.ID
	}

	tx := db.GetTxFromContext(ctx, r.db)
	var rows []models.CommentVoteModel
	if err := tx.Where("comment_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load comment votes: %w", err)
	}

	for _, row := range rows {
		sets := result[row.CommentID]
		if row.Kind == vo.VoteUp.String() {
			sets.upvoters = append(sets.upvoters, row.UserID)
		} else {
			sets.downvoters = append(sets.downvoters, row.UserID)
		}
		result[row.CommentID] = sets
	}
	return result, nil
}

func (r *CommentRepository) syncCommentVotes(ctx context.Context, c *ticket.Comment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CommentVoteModel
	if err := tx.Where("comment_id = ?", c.ID()).Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load comment votes: %w", err)
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

	currentUp := setutil.NewUintSetFrom(c.UpvoterIDs())
	currentDown := setutil.NewUintSetFrom(c.DownvoterIDs())

	removed := append(storedUp.Diff(currentUp), storedDown.Diff(currentDown)...)
	if len(removed) > 0 {
		if err := tx.Where("comment_id = ? AND user_id IN ?", c.ID(), removed).
			Delete(&models.CommentVoteModel{}).Error; err != nil {
			return fmt.Errorf("failed to remove stale comment votes: %w", err)
		}
	}

	var inserts []models.CommentVoteModel
	for _, userID := range currentUp.Diff(storedUp) {
		inserts = append(inserts, models.CommentVoteModel{CommentID: c.ID(), UserID: userID, Kind: vo.VoteUp.String()})
	}
	for _, userID := range currentDown.Diff(storedDown) {
		inserts = append(inserts, models.CommentVoteModel{CommentID: c.ID(), UserID: userID, Kind: vo.VoteDown.String()})
	}

	if len(inserts) > 0 {
		// Upsert guards against a concurrent vote on the same (comment, user).
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "comment_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind"}),
		}).Create(&inserts).Error; err != nil {
			return fmt.Errorf("failed to save comment votes: %w", err)
		}
	}

	return nil
}
