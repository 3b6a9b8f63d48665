package usecase

import (
	"context"
	"fmt"
	"time"

	"hdtickets/internal/domain"
	"hdtickets/internal/monitoring"
)

// CreateSportsEventCommand is the input for creating one sports event.
// Venue fields are flattened; optional fields are nil when absent.
type CreateSportsEventCommand struct {
	Name          string
	Category      string
	EventDate     time.Time
	VenueName     string
	VenueCity     string
	VenueCountry  string
	VenueAddress  string
	VenueCapacity *int
	HomeTeam      *string
	AwayTeam      *string
	Competition   *string
}

// CreateSportsEventCommandHandler orchestrates the catalog write path:
// value objects, domain service, repository save, domain event.
type CreateSportsEventCommandHandler struct {
	management     domain.EventManagementService
	eventRepo      domain.SportsEventRepository
	bus            domain.EventBus
	contextTimeout time.Duration
}

// NewCreateSportsEventCommandHandler wires the write-path handler.
func NewCreateSportsEventCommandHandler(management domain.EventManagementService, eventRepo domain.SportsEventRepository, bus domain.EventBus, timeout time.Duration) *CreateSportsEventCommandHandler {
	return &CreateSportsEventCommandHandler{
		management:     management,
		eventRepo:      eventRepo,
		bus:            bus,
		contextTimeout: timeout,
	}
}

// Handle validates the command, persists exactly one new event, and publishes
// SportEventCreated. Validation errors propagate unchanged and nothing is
// saved on failure. The persisted aggregate (with its assigned identity) is
// returned for the caller's response.
func (h *CreateSportsEventCommandHandler) Handle(ctx context.Context, cmd CreateSportsEventCommand) (*domain.SportsEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, h.contextTimeout)
	defer cancel()

	category, err := domain.NewSportCategory(cmd.Category)
	if err != nil {
		return nil, err
	}
	date, err := domain.NewEventDate(cmd.EventDate)
	if err != nil {
		return nil, err
	}
	venue, err := domain.NewVenue(cmd.VenueName, cmd.VenueCity, cmd.VenueCountry, cmd.VenueAddress, cmd.VenueCapacity)
	if err != nil {
		return nil, err
	}

	event, err := h.management.CreateSportsEvent(cmd.Name, category, date, venue, cmd.HomeTeam, cmd.AwayTeam, cmd.Competition)
	if err != nil {
		return nil, err
	}

	if err := h.eventRepo.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}

	h.bus.Publish(ctx, domain.NewSportEventCreated(event.ID, event.Category))
	monitoring.EventsCreated.Inc()
	return event, nil
}
