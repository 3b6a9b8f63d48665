package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Alert status values.
const (
	AlertStatusActive    = "active"
	AlertStatusPaused    = "paused"
	AlertStatusTriggered = "triggered"
)

// TicketAlert is a per-user price alert on a sports event: when a listing for
// the event appears at or below MaxPrice, the alert fires.
type TicketAlert struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	SportsEventID   string          `json:"sports_event_id"`
	MaxPrice        decimal.Decimal `json:"max_price"`
	Status          string          `json:"status"`
	LastTriggeredAt *time.Time      `json:"last_triggered_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewTicketAlert returns a new active TicketAlert. ID is set by the
// repository on create.
func NewTicketAlert(userID, sportsEventID string, maxPrice decimal.Decimal, createdAt time.Time) *TicketAlert {
	return &TicketAlert{
		UserID:        userID,
		SportsEventID: sportsEventID,
		MaxPrice:      maxPrice,
		Status:        AlertStatusActive,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

// AlertRepository defines the interface for ticket alert storage.
type AlertRepository interface {
	Create(ctx context.Context, alert *TicketAlert) error
	GetByID(ctx context.Context, id string) (*TicketAlert, error)
	ListByUserID(ctx context.Context, userID string) ([]*TicketAlert, error)
	ListActiveByEventID(ctx context.Context, eventID string) ([]*TicketAlert, error)
	MarkTriggered(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
}

// AlertService defines the business logic for ticket alerts.
type AlertService interface {
	CreateAlert(ctx context.Context, userID, sportsEventID string, maxPrice decimal.Decimal) (*TicketAlert, error)
	ListUserAlerts(ctx context.Context, userID string) ([]*TicketAlert, error)
	DeleteAlert(ctx context.Context, alertID, userID string) error
	EvaluateTicket(ctx context.Context, ticket *ScrapedTicket) error
}
