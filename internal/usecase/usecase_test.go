package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hdtickets/internal/domain"
)

// fakeSportsEventRepo is an in-memory SportsEventRepository for tests.
type fakeSportsEventRepo struct {
	byID    map[string]*domain.SportsEvent
	nextID  int
	saveErr error
	findErr error
	// highDemand marks event IDs that have high-demand tickets.
	highDemand map[string]bool
}

func newFakeSportsEventRepo() *fakeSportsEventRepo {
	return &fakeSportsEventRepo{
		byID:       make(map[string]*domain.SportsEvent),
		nextID:     1,
		highDemand: make(map[string]bool),
	}
}

func (f *fakeSportsEventRepo) Save(ctx context.Context, e *domain.SportsEvent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if e.ID == "" {
		e.ID = fmt.Sprintf("ev-%03d", f.nextID)
		f.nextID++
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeSportsEventRepo) FindWithFilters(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.SportsEvent, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matched []*domain.SportsEvent
	for _, e := range f.byID {
		if filter.Category != nil && !e.Category.Equals(*filter.Category) {
			continue
		}
		if filter.VenueName != nil && !strings.EqualFold(e.Venue.Name(), *filter.VenueName) {
			continue
		}
		if filter.HighDemandOnly && !f.highDemand[e.ID] {
			continue
		}
		if filter.FromDate != nil && e.Date.Value().Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && e.Date.Value().After(*filter.ToDate) {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Value().Equal(matched[j].Date.Value()) {
			return matched[i].Date.Value().Before(matched[j].Date.Value())
		}
		return matched[i].ID < matched[j].ID
	})
	offset := params.Offset()
	if offset >= len(matched) {
		return []*domain.SportsEvent{}, nil
	}
	end := offset + params.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeSportsEventRepo) CountUpcoming(ctx context.Context) (int, error) {
	n := 0
	for _, e := range f.byID {
		if e.Date.IsUpcoming() {
			n++
		}
	}
	return n, nil
}

// fakeBus records published events.
type fakeBus struct {
	published []domain.DomainEvent
}

func (f *fakeBus) Publish(ctx context.Context, event domain.DomainEvent) {
	f.published = append(f.published, event)
}

func (f *fakeBus) Subscribe(fn func(domain.DomainEvent)) {}

func (f *fakeBus) Close() {}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }
