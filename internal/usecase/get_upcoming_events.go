package usecase

import (
	"context"
	"fmt"
	"time"

	"hdtickets/internal/domain"
	"hdtickets/internal/monitoring"
)

// GetUpcomingEventsQuery is the input for a filtered catalog read. All
// filters are optional and combine with AND semantics; Page is 1-indexed.
type GetUpcomingEventsQuery struct {
	Category       *string
	VenueName      *string
	HighDemandOnly bool
	FromDate       *time.Time
	ToDate         *time.Time
	Page           int
	PerPage        int
}

// GetUpcomingEventsQueryHandler translates the query into a repository
// filter call. It never mutates stored state.
type GetUpcomingEventsQueryHandler struct {
	eventRepo      domain.SportsEventRepository
	contextTimeout time.Duration
}

// NewGetUpcomingEventsQueryHandler wires the read-path handler.
func NewGetUpcomingEventsQueryHandler(eventRepo domain.SportsEventRepository, timeout time.Duration) *GetUpcomingEventsQueryHandler {
	return &GetUpcomingEventsQueryHandler{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// Handle returns one page of events ordered by event date ascending (event
// ID as tie-break). An empty match set yields an empty slice, not an error.
func (h *GetUpcomingEventsQueryHandler) Handle(ctx context.Context, q GetUpcomingEventsQuery) ([]*domain.SportsEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, h.contextTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		monitoring.QueryDuration.Observe(time.Since(start).Seconds())
	}()
	monitoring.EventQueries.Inc()

	filter := domain.EventFilter{
		VenueName:      q.VenueName,
		HighDemandOnly: q.HighDemandOnly,
		FromDate:       q.FromDate,
		ToDate:         q.ToDate,
	}
	if q.Category != nil {
		category, err := domain.NewSportCategory(*q.Category)
		if err != nil {
			return nil, err
		}
		filter.Category = &category
	}

	params := domain.PaginationParams{Page: q.Page, PageSize: q.PerPage}.Normalize()
	events, err := h.eventRepo.FindWithFilters(ctx, filter, params)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	if events == nil {
		events = []*domain.SportsEvent{}
	}
	return events, nil
}
