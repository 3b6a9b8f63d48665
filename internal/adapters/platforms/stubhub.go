package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"hdtickets/internal/domain"
)

type stubhubAdapter struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// stubhubListing mirrors the relevant fields of a StubHub search result.
type stubhubListing struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	Available  bool    `json:"available"`
	HighDemand bool    `json:"high_demand"`
	Venue      string  `json:"venue"`
	EventDate  string  `json:"event_date"`
}

type stubhubSearchResponse struct {
	Listings []stubhubListing `json:"listings"`
}

// NewStubHubAdapter returns a PlatformAdapter that searches StubHub listings.
// Requests are rate limited to stay inside the API quota.
func NewStubHubAdapter(client *http.Client, baseURL, apiKey string, requestsPerSecond float64) domain.PlatformAdapter {
	if client == nil {
		client = http.DefaultClient
	}
	return &stubhubAdapter{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (a *stubhubAdapter) Platform() string { return "stubhub" }

func (a *stubhubAdapter) Scrape(ctx context.Context, query string) ([]domain.Listing, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := fmt.Sprintf("%s/search?q=%s", a.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from stubhub: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stubhub api returned status: %d", resp.StatusCode)
	}

	var data stubhubSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode stubhub response: %w", err)
	}

	listings := make([]domain.Listing, 0, len(data.Listings))
	for _, l := range data.Listings {
		listing := domain.Listing{
			ExternalRef: l.ID,
			Title:       l.Title,
			MinPrice:    decimal.NewFromFloat(l.MinPrice),
			MaxPrice:    decimal.NewFromFloat(l.MaxPrice),
			Available:   l.Available,
			HighDemand:  l.HighDemand,
			Venue:       l.Venue,
		}
		if l.EventDate != "" {
			if t, err := time.Parse(time.RFC3339, l.EventDate); err == nil {
				listing.EventDate = &t
			}
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
