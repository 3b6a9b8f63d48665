package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Ticket listing status values as reported by platform scrapes.
const (
	TicketStatusActive   = "active"
	TicketStatusSoldOut  = "sold_out"
	TicketStatusDelisted = "delisted"
)

// ScrapedTicket is one ticket listing scraped from a third-party platform.
// ExternalRef is the platform's own identifier for the listing; (Platform,
// ExternalRef) is the upsert key.
type ScrapedTicket struct {
	ID            string          `json:"id"`
	SportsEventID *string         `json:"sports_event_id,omitempty"`
	Platform      string          `json:"platform"`
	ExternalRef   string          `json:"external_ref"`
	Title         string          `json:"title"`
	Status        string          `json:"status"`
	MinPrice      decimal.Decimal `json:"min_price"`
	MaxPrice      decimal.Decimal `json:"max_price"`
	IsAvailable   bool            `json:"is_available"`
	IsHighDemand  bool            `json:"is_high_demand"`
	Venue         string          `json:"venue"`
	EventDate     *time.Time      `json:"event_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TicketRepository defines the interface for scraped ticket storage.
type TicketRepository interface {
	Upsert(ctx context.Context, ticket *ScrapedTicket) error
	ListByEventID(ctx context.Context, eventID string) ([]*ScrapedTicket, error)
	ListHighDemand(ctx context.Context, params PaginationParams) ([]*ScrapedTicket, error)
	CountHighDemand(ctx context.Context) (int, error)
}
