package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"hdtickets/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	signUpErr  error
	loginErr   error
	lastEmail  string
	lastRole   string
	loginToken string
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	f.lastEmail = email
	f.lastRole = role
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	now := time.Now()
	return &domain.User{ID: "user-created", Email: email, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	f.lastEmail = email
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

// fakeAlertService implements domain.AlertService for handler tests.
type fakeAlertService struct {
	createErr  error
	listErr    error
	deleteErr  error
	alerts     []*domain.TicketAlert
	lastUserID string
	lastID     string
}

func (f *fakeAlertService) CreateAlert(ctx context.Context, userID, sportsEventID string, maxPrice decimal.Decimal) (*domain.TicketAlert, error) {
	f.lastUserID = userID
	if f.createErr != nil {
		return nil, f.createErr
	}
	alert := domain.NewTicketAlert(userID, sportsEventID, maxPrice, time.Now())
	alert.ID = "al-created"
	return alert, nil
}

func (f *fakeAlertService) ListUserAlerts(ctx context.Context, userID string) ([]*domain.TicketAlert, error) {
	f.lastUserID = userID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.alerts, nil
}

func (f *fakeAlertService) DeleteAlert(ctx context.Context, alertID, userID string) error {
	f.lastID = alertID
	f.lastUserID = userID
	return f.deleteErr
}

func (f *fakeAlertService) EvaluateTicket(ctx context.Context, ticket *domain.ScrapedTicket) error {
	return nil
}

// fakeTicketRepo implements domain.TicketRepository for handler tests.
type fakeTicketRepo struct {
	byEvent    map[string][]*domain.ScrapedTicket
	highDemand []*domain.ScrapedTicket
	total      int
	listErr    error
	countErr   error
	lastParams domain.PaginationParams
}

func (f *fakeTicketRepo) Upsert(ctx context.Context, ticket *domain.ScrapedTicket) error {
	return nil
}

func (f *fakeTicketRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.ScrapedTicket, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byEvent[eventID], nil
}

func (f *fakeTicketRepo) ListHighDemand(ctx context.Context, params domain.PaginationParams) ([]*domain.ScrapedTicket, error) {
	f.lastParams = params
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.highDemand, nil
}

func (f *fakeTicketRepo) CountHighDemand(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

// fakeDashboardService implements domain.DashboardService for handler tests.
type fakeDashboardService struct {
	stats *domain.DashboardStats
	err   error
}

func (f *fakeDashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

// fakeEventBus records published events without dispatching.
type fakeEventBus struct {
	published []domain.DomainEvent
}

func (f *fakeEventBus) Publish(ctx context.Context, event domain.DomainEvent) {
	f.published = append(f.published, event)
}

func (f *fakeEventBus) Subscribe(fn func(event domain.DomainEvent)) {}

func (f *fakeEventBus) Close() {}
