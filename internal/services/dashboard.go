package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"hdtickets/internal/domain"
)

const dashboardStatsTTL = 5 * time.Minute

type dashboardService struct {
	eventRepo      domain.SportsEventRepository
	ticketRepo     domain.TicketRepository
	alertRepo      domain.AlertRepository
	cache          domain.CacheStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewDashboardService creates the dashboard statistics service with a cache
// read-through on the stats key.
func NewDashboardService(eventRepo domain.SportsEventRepository, ticketRepo domain.TicketRepository, alertRepo domain.AlertRepository, cache domain.CacheStore, logger *slog.Logger, timeout time.Duration) domain.DashboardService {
	return &dashboardService{
		eventRepo:      eventRepo,
		ticketRepo:     ticketRepo,
		alertRepo:      alertRepo,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Stats returns the dashboard counts, served from cache when fresh. Cache
// failures degrade to a direct read, never to an error.
func (s *dashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if raw, ok, err := s.cache.Get(ctx, domain.CacheKeyDashboardStats); err != nil {
		s.logger.Warn("dashboard stats cache read failed", "err", err)
	} else if ok {
		var stats domain.DashboardStats
		if err := json.Unmarshal(raw, &stats); err == nil {
			return &stats, nil
		}
	}

	upcoming, err := s.eventRepo.CountUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("count upcoming events: %w", err)
	}
	highDemand, err := s.ticketRepo.CountHighDemand(ctx)
	if err != nil {
		return nil, fmt.Errorf("count high demand tickets: %w", err)
	}
	activeAlerts, err := s.alertRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active alerts: %w", err)
	}

	stats := &domain.DashboardStats{
		UpcomingEvents:    upcoming,
		HighDemandTickets: highDemand,
		ActiveAlerts:      activeAlerts,
		GeneratedAt:       time.Now(),
	}
	if raw, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, domain.CacheKeyDashboardStats, raw, dashboardStatsTTL); err != nil {
			s.logger.Warn("dashboard stats cache write failed", "err", err)
		}
	}
	return stats, nil
}
