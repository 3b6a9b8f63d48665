package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Listing is one raw ticket listing as returned by a platform adapter,
// before it is folded into a ScrapedTicket.
type Listing struct {
	ExternalRef string
	Title       string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
	Available   bool
	HighDemand  bool
	Venue       string
	EventDate   *time.Time
}

// PlatformAdapter is the capability interface for third-party ticket
// platforms. Adapters without a real scraper must fail fast with
// ErrNotImplemented; the monitor service skips them.
type PlatformAdapter interface {
	Platform() string
	Scrape(ctx context.Context, query string) ([]Listing, error)
}
