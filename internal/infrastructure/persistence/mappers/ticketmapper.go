package mappers

import (
	"encoding/json"
	"fmt"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models. Vote rows live in their own tables, so ToDomain
// receives the voter ID slices loaded by the repository.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel, upvoterIDs, downvoterIDs []uint) (*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) (*models.CommentModel, error)
	CommentToDomain(model *models.CommentModel, upvoterIDs, downvoterIDs []uint) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	attachmentsJSON, err := marshalAttachments(t.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket attachments: %w", err)
	}

	return &models.TicketModel{
		ID:          t.ID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		CategoryID:  t.CategoryID(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Attachments: attachmentsJSON,
		IsPublic:    t.IsPublic(),
		ResolvedAt:  timePtrToMillis(t.ResolvedAt()),
		ClosedAt:    timePtrToMillis(t.ClosedAt()),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *TicketMapperImpl) ToDomain(
	model *models.TicketModel,
	upvoterIDs, downvoterIDs []uint,
) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}

	attachments, err := unmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket attachments (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Subject,
		model.Description,
		model.CategoryID,
		status,
		priority,
		model.CreatorID,
		model.AssigneeID,
		attachments,
		upvoterIDs,
		downvoterIDs,
		model.IsPublic,
		millisToTimePtr(model.ResolvedAt),
		millisToTimePtr(model.ClosedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) (*models.CommentModel, error) {
	attachmentsJSON, err := marshalAttachments(c.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comment attachments: %w", err)
	}

	return &models.CommentModel{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		AuthorID:    c.AuthorID(),
		Content:     c.Content(),
		IsInternal:  c.IsInternal(),
		Attachments: attachmentsJSON,
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *TicketMapperImpl) CommentToDomain(
	model *models.CommentModel,
	upvoterIDs, downvoterIDs []uint,
) (*ticket.Comment, error) {
	attachments, err := unmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal comment attachments (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.IsInternal,
		attachments,
		upvoterIDs,
		downvoterIDs,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func marshalAttachments(attachments []ticket.Attachment) ([]byte, error) {
	if len(attachments) == 0 {
		return nil, nil
	}
	return json.Marshal(attachments)
}

func unmarshalAttachments(data []byte) ([]ticket.Attachment, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var attachments []ticket.Attachment
	if err := json.Unmarshal(data, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}
