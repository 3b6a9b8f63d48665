package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"hdtickets/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeAlertRepo is an in-memory AlertRepository.
type fakeAlertRepo struct {
	byID      map[string]*domain.TicketAlert
	nextID    int
	createErr error
	listErr   error
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{byID: make(map[string]*domain.TicketAlert), nextID: 1}
}

func (f *fakeAlertRepo) Create(ctx context.Context, a *domain.TicketAlert) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = fmt.Sprintf("al-%03d", f.nextID)
	f.nextID++
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAlertRepo) GetByID(ctx context.Context, id string) (*domain.TicketAlert, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeAlertRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.TicketAlert, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.TicketAlert
	for _, a := range f.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) ListActiveByEventID(ctx context.Context, eventID string) ([]*domain.TicketAlert, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.TicketAlert
	for _, a := range f.byID {
		if a.SportsEventID == eventID && a.Status == domain.AlertStatusActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) MarkTriggered(ctx context.Context, id string, at time.Time) error {
	a, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = domain.AlertStatusTriggered
	a.LastTriggeredAt = &at
	return nil
}

func (f *fakeAlertRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeAlertRepo) CountActive(ctx context.Context) (int, error) {
	n := 0
	for _, a := range f.byID {
		if a.Status == domain.AlertStatusActive {
			n++
		}
	}
	return n, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User), byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = fmt.Sprintf("user-%03d", f.nextID)
	f.nextID++
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) AssignRole(ctx context.Context, userID, roleID string) error { return nil }

// fakeEmailService records sent notifications.
type fakeEmailService struct {
	alertEmails   []*domain.AlertTriggeredEmailData
	welcomeEmails []*domain.WelcomeMessageEmailData
	sendErr       error
}

func (f *fakeEmailService) SendAlertTriggered(ctx context.Context, data *domain.AlertTriggeredEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.alertEmails = append(f.alertEmails, data)
	return nil
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.welcomeEmails = append(f.welcomeEmails, data)
	return nil
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

// fakeTicketRepo is an in-memory TicketRepository keyed by platform/external_ref.
type fakeTicketRepo struct {
	byKey     map[string]*domain.ScrapedTicket
	nextID    int
	upsertErr error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byKey: make(map[string]*domain.ScrapedTicket), nextID: 1}
}

func (f *fakeTicketRepo) Upsert(ctx context.Context, t *domain.ScrapedTicket) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	key := t.Platform + "/" + t.ExternalRef
	if existing, ok := f.byKey[key]; ok {
		t.ID = existing.ID
	} else {
		t.ID = fmt.Sprintf("tk-%03d", f.nextID)
		f.nextID++
	}
	f.byKey[key] = t
	return nil
}

func (f *fakeTicketRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.ScrapedTicket, error) {
	var out []*domain.ScrapedTicket
	for _, t := range f.byKey {
		if t.SportsEventID != nil && *t.SportsEventID == eventID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListHighDemand(ctx context.Context, params domain.PaginationParams) ([]*domain.ScrapedTicket, error) {
	var out []*domain.ScrapedTicket
	for _, t := range f.byKey {
		if t.IsHighDemand && t.IsAvailable {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) CountHighDemand(ctx context.Context) (int, error) {
	n := 0
	for _, t := range f.byKey {
		if t.IsHighDemand && t.IsAvailable {
			n++
		}
	}
	return n, nil
}

// fakePlatformAdapter returns canned listings or a fixed error.
type fakePlatformAdapter struct {
	platform string
	listings []domain.Listing
	err      error
	calls    int
}

func (f *fakePlatformAdapter) Platform() string { return f.platform }

func (f *fakePlatformAdapter) Scrape(ctx context.Context, query string) ([]domain.Listing, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

// fakeCache is an in-memory CacheStore; TTLs are ignored.
type fakeCache struct {
	data   map[string][]byte
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.sets++
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

// fakeEventCounter implements SportsEventRepository for count-only callers.
type fakeEventCounter struct {
	upcoming int
	countErr error
}

func (f *fakeEventCounter) Save(ctx context.Context, e *domain.SportsEvent) error { return nil }

func (f *fakeEventCounter) FindWithFilters(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.SportsEvent, error) {
	return []*domain.SportsEvent{}, nil
}

func (f *fakeEventCounter) CountUpcoming(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.upcoming, nil
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
