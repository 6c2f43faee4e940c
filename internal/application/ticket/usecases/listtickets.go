package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Actor      authorization.Actor
	Status     string
	Priority   string
	CategoryID *uint
	AssigneeID *uint
	Unassigned bool
	// MineOnly restricts the listing to the actor's own tickets even for
	// staff, backing the "my tickets" view.
	MineOnly  bool
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

type ListTicketsResult struct {
	Tickets  []*ticket.Ticket
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		uc.logger.Errorw("invalid list tickets query", "error", err)
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:  tickets,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		CategoryID: query.CategoryID,
		AssigneeID: query.AssigneeID,
		Unassigned: query.Unassigned,
		Search:     query.Search,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	// End users only ever see their own tickets regardless of the
	// requested filters.
	if query.MineOnly || authorization.ScopesTicketListToOwn(query.Actor) {
		creatorID := query.Actor.ID
		filter.CreatorID = &creatorID
	}

	return filter, nil
}
