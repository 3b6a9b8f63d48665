package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hdtickets/internal/domain"
	"hdtickets/internal/monitoring"
)

type alertService struct {
	alertRepo      domain.AlertRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	bus            domain.EventBus
	contextTimeout time.Duration
}

// NewAlertService creates the ticket alert service.
func NewAlertService(alertRepo domain.AlertRepository, userRepo domain.UserRepository, emailService domain.EmailService, bus domain.EventBus, timeout time.Duration) domain.AlertService {
	return &alertService{
		alertRepo:      alertRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		bus:            bus,
		contextTimeout: timeout,
	}
}

func (s *alertService) CreateAlert(ctx context.Context, userID, sportsEventID string, maxPrice decimal.Decimal) (*domain.TicketAlert, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sportsEventID == "" {
		return nil, domain.NewValidationError("sports_event_id", "must not be empty")
	}
	if !maxPrice.IsPositive() {
		return nil, domain.NewValidationError("max_price", "must be positive")
	}

	alert := domain.NewTicketAlert(userID, sportsEventID, maxPrice, time.Now())
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}
	s.bus.Publish(ctx, domain.NewAlertChanged(alert.ID))
	return alert, nil
}

func (s *alertService) ListUserAlerts(ctx context.Context, userID string) ([]*domain.TicketAlert, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	alerts, err := s.alertRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	if alerts == nil {
		alerts = []*domain.TicketAlert{}
	}
	return alerts, nil
}

func (s *alertService) DeleteAlert(ctx context.Context, alertID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get alert: %w", err)
	}
	if alert.UserID != userID {
		return domain.ErrForbidden
	}
	if err := s.alertRepo.Delete(ctx, alertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete alert: %w", err)
	}
	s.bus.Publish(ctx, domain.NewAlertChanged(alertID))
	return nil
}

// EvaluateTicket fires every active alert on the ticket's event whose price
// threshold covers the listing's minimum price. Notification failures do not
// roll back the trigger.
func (s *alertService) EvaluateTicket(ctx context.Context, ticket *domain.ScrapedTicket) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if ticket.SportsEventID == nil || !ticket.IsAvailable {
		return nil
	}
	alerts, err := s.alertRepo.ListActiveByEventID(ctx, *ticket.SportsEventID)
	if err != nil {
		return fmt.Errorf("list active alerts: %w", err)
	}

	for _, alert := range alerts {
		if ticket.MinPrice.GreaterThan(alert.MaxPrice) {
			continue
		}
		now := time.Now()
		if err := s.alertRepo.MarkTriggered(ctx, alert.ID, now); err != nil {
			return fmt.Errorf("mark alert triggered: %w", err)
		}
		monitoring.AlertsTriggered.Inc()
		s.bus.Publish(ctx, domain.NewAlertChanged(alert.ID))

		user, err := s.userRepo.GetByID(ctx, alert.UserID)
		if err != nil || user == nil {
			continue
		}
		data := &domain.AlertTriggeredEmailData{
			Email:     user.Email,
			EventName: ticket.Title,
			Platform:  ticket.Platform,
			Price:     ticket.MinPrice,
			MaxPrice:  alert.MaxPrice,
		}
		if err := s.emailService.SendAlertTriggered(ctx, data); err != nil {
			continue
		}
	}
	return nil
}
