package platforms

import (
	"context"
	"net/http"

	"hdtickets/internal/domain"
)

// Config holds configuration for building the platform adapter set.
type Config struct {
	StubHubBaseURL   string
	StubHubAPIKey    string
	ScrapeRatePerSec float64
}

// NewAdapters builds the full adapter set. Adapters without a live
// integration fail fast with ErrNotImplemented and are skipped by the
// monitor service.
func NewAdapters(client *http.Client, config Config) []domain.PlatformAdapter {
	return []domain.PlatformAdapter{
		NewStubHubAdapter(client, config.StubHubBaseURL, config.StubHubAPIKey, config.ScrapeRatePerSec),
		&viagogoAdapter{},
		&tickpickAdapter{},
	}
}

type viagogoAdapter struct{}

func (a *viagogoAdapter) Platform() string { return "viagogo" }

func (a *viagogoAdapter) Scrape(ctx context.Context, query string) ([]domain.Listing, error) {
	return nil, domain.ErrNotImplemented
}

type tickpickAdapter struct{}

func (a *tickpickAdapter) Platform() string { return "tickpick" }

func (a *tickpickAdapter) Scrape(ctx context.Context, query string) ([]domain.Listing, error) {
	return nil, domain.ErrNotImplemented
}
