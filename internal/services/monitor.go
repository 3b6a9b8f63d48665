package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hdtickets/internal/domain"
	"hdtickets/internal/monitoring"
)

type ticketMonitorService struct {
	adapters       []domain.PlatformAdapter
	ticketRepo     domain.TicketRepository
	alertService   domain.AlertService
	bus            domain.EventBus
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewTicketMonitorService creates the scrape orchestrator over the given
// platform adapters.
func NewTicketMonitorService(adapters []domain.PlatformAdapter, ticketRepo domain.TicketRepository, alertService domain.AlertService, bus domain.EventBus, logger *slog.Logger, timeout time.Duration) domain.TicketMonitorService {
	return &ticketMonitorService{
		adapters:       adapters,
		ticketRepo:     ticketRepo,
		alertService:   alertService,
		bus:            bus,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// RunScrapeCycle scrapes every adapter once. Adapters without a real scraper
// report ErrNotImplemented and are skipped; other adapter failures are logged
// and do not abort the cycle.
func (s *ticketMonitorService) RunScrapeCycle(ctx context.Context, query string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	for _, adapter := range s.adapters {
		platform := adapter.Platform()
		listings, err := adapter.Scrape(ctx, query)
		if err != nil {
			if errors.Is(err, domain.ErrNotImplemented) {
				s.logger.Warn("platform adapter not implemented, skipping", "platform", platform)
				monitoring.ScrapeRuns.WithLabelValues(platform, "skipped").Inc()
				continue
			}
			s.logger.Error("platform scrape failed", "platform", platform, "err", err)
			monitoring.ScrapeRuns.WithLabelValues(platform, "error").Inc()
			continue
		}

		for _, listing := range listings {
			ticket := ticketFromListing(platform, listing)
			if err := s.ticketRepo.Upsert(ctx, ticket); err != nil {
				return fmt.Errorf("upsert ticket %s/%s: %w", platform, listing.ExternalRef, err)
			}
			s.bus.Publish(ctx, domain.NewTicketChanged(ticket.ID, platform))
			if err := s.alertService.EvaluateTicket(ctx, ticket); err != nil {
				s.logger.Error("alert evaluation failed", "ticket_id", ticket.ID, "err", err)
			}
		}
		monitoring.ScrapeRuns.WithLabelValues(platform, "ok").Inc()
		monitoring.TicketsScraped.WithLabelValues(platform).Add(float64(len(listings)))
	}
	return nil
}

func ticketFromListing(platform string, l domain.Listing) *domain.ScrapedTicket {
	status := domain.TicketStatusActive
	if !l.Available {
		status = domain.TicketStatusSoldOut
	}
	now := time.Now()
	return &domain.ScrapedTicket{
		Platform:     platform,
		ExternalRef:  l.ExternalRef,
		Title:        l.Title,
		Status:       status,
		MinPrice:     l.MinPrice,
		MaxPrice:     l.MaxPrice,
		IsAvailable:  l.Available,
		IsHighDemand: l.HighDemand,
		Venue:        l.Venue,
		EventDate:    l.EventDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
