package services

import (
	"strings"
	"time"

	"hdtickets/internal/domain"
)

type eventManagementService struct{}

// NewEventManagementService returns the domain service that assembles
// SportsEvent aggregates from validated value objects. It performs no I/O.
func NewEventManagementService() domain.EventManagementService {
	return &eventManagementService{}
}

// CreateSportsEvent validates the event name and returns a new, not-yet-
// persisted SportsEvent. Team fields are free-form and optional; a single
// team on a team-sport event is accepted.
func (s *eventManagementService) CreateSportsEvent(name string, category domain.SportCategory, date domain.EventDate, venue domain.Venue, homeTeam, awayTeam, competition *string) (*domain.SportsEvent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}

	now := time.Now()
	return domain.NewSportsEvent(name, category, date, venue,
		normalizeOptional(homeTeam), normalizeOptional(awayTeam), normalizeOptional(competition),
		now, now), nil
}

// normalizeOptional trims an optional string and collapses blanks to nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
