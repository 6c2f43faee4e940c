package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"quickdesk/internal/domain/rolerequest"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type GetDashboardQuery struct {
	Actor authorization.Actor
}

type GetDashboardResult struct {
	TotalUsers          int64
	TotalTickets        int64
	OpenTickets         int64
	InProgressTickets   int64
	ResolvedTickets     int64
	ClosedTickets       int64
	TicketsToday        int64
	PendingRoleRequests int64
	RecentTickets       []*ticket.Ticket
}

// GetDashboardUseCase builds the admin overview snapshot.
type GetDashboardUseCase struct {
	userRepo        user.UserRepository
	ticketRepo      ticket.TicketRepository
	roleRequestRepo rolerequest.RoleRequestRepository
	logger          logger.Interface
}

func NewGetDashboardUseCase(
	userRepo user.UserRepository,
	ticketRepo ticket.TicketRepository,
	roleRequestRepo rolerequest.RoleRequestRepository,
	log logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		userRepo:        userRepo,
		ticketRepo:      ticketRepo,
		roleRequestRepo: roleRequestRepo,
		logger:          log,
	}
}

const recentTicketLimit = 5

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error) {
	uc.logger.Debugw("fetching admin dashboard", "actor_id", query.Actor.ID)

	if !authorization.CanManageUsers(query.Actor) {
		return nil, errors.NewForbiddenError("only admins can view the dashboard")
	}

	todayStart := biztime.StartOfDayUTC(biztime.NowUTC())
	result := &GetDashboardResult{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := uc.userRepo.CountAll(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count users")
		}
		result.TotalUsers = total
		return nil
	})

	g.Go(func() error {
		total, err := uc.ticketRepo.CountAll(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count tickets")
		}
		result.TotalTickets = total
		return nil
	})

	statusCounts := []struct {
		status vo.TicketStatus
		target *int64
	}{
		{vo.StatusOpen, &result.OpenTickets},
		{vo.StatusInProgress, &result.InProgressTickets},
		{vo.StatusResolved, &result.ResolvedTickets},
		{vo.StatusClosed, &result.ClosedTickets},
	}
	for _, sc := range statusCounts {
		sc := sc
		g.Go(func() error {
			count, err := uc.ticketRepo.CountByStatus(gctx, sc.status)
			if err != nil {
				return errors.NewInternalError("failed to count tickets by status")
			}
			*sc.target = count
			return nil
		})
	}

	g.Go(func() error {
		count, err := uc.ticketRepo.CountCreatedSince(gctx, todayStart)
		if err != nil {
			return errors.NewInternalError("failed to count today's tickets")
		}
		result.TicketsToday = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.roleRequestRepo.CountPending(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count pending role requests")
		}
		result.PendingRoleRequests = count
		return nil
	})

	g.Go(func() error {
		recent, err := uc.ticketRepo.ListRecent(gctx, recentTicketLimit)
		if err != nil {
			return errors.NewInternalError("failed to load recent tickets")
		}
		result.RecentTickets = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to build dashboard", "error", err)
		return nil, err
	}

	return result, nil
}
