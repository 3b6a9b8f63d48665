package domain

import (
	"context"
	"time"
)

// SportsEvent is the aggregate root for one sporting event in the catalog.
// ID is assigned by the repository on first save.
type SportsEvent struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    SportCategory `json:"category"`
	Date        EventDate     `json:"event_date"`
	Venue       Venue         `json:"venue"`
	HomeTeam    *string       `json:"home_team,omitempty"`
	AwayTeam    *string       `json:"away_team,omitempty"`
	Competition *string       `json:"competition,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewSportsEvent returns a new SportsEvent with the given fields. ID is set
// by the repository on save.
func NewSportsEvent(name string, category SportCategory, date EventDate, venue Venue, homeTeam, awayTeam, competition *string, createdAt, updatedAt time.Time) *SportsEvent {
	return &SportsEvent{
		Name:        name,
		Category:    category,
		Date:        date,
		Venue:       venue,
		HomeTeam:    homeTeam,
		AwayTeam:    awayTeam,
		Competition: competition,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// IsMatch reports whether both teams are set.
func (e *SportsEvent) IsMatch() bool {
	return e.HomeTeam != nil && e.AwayTeam != nil
}

// EventFilter holds the optional, conjunctive filters for catalog queries.
// A nil field imposes no constraint. The date range is inclusive on both ends.
type EventFilter struct {
	Category       *SportCategory
	VenueName      *string
	HighDemandOnly bool
	FromDate       *time.Time
	ToDate         *time.Time
}

// SportsEventRepository defines the interface for sports event storage.
// FindWithFilters returns one page ordered by event date ascending with the
// event ID as tie-break; no matches yields an empty slice, not an error.
// Storage failures surface as *PersistenceError.
type SportsEventRepository interface {
	Save(ctx context.Context, event *SportsEvent) error
	FindWithFilters(ctx context.Context, filter EventFilter, params PaginationParams) ([]*SportsEvent, error)
	CountUpcoming(ctx context.Context) (int, error)
}

// EventManagementService assembles valid SportsEvent aggregates from
// already-validated value objects. It performs no I/O.
type EventManagementService interface {
	CreateSportsEvent(name string, category SportCategory, date EventDate, venue Venue, homeTeam, awayTeam, competition *string) (*SportsEvent, error)
}
