package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hdtickets/internal/domain"
)

type alertRepository struct {
	DB *sql.DB
}

func NewAlertRepository(db *sql.DB) domain.AlertRepository {
	return &alertRepository{DB: db}
}

const ticketAlertColumns = `id, user_id, sports_event_id, max_price, status, last_triggered_at, created_at, updated_at`

func (r *alertRepository) Create(ctx context.Context, a *domain.TicketAlert) error {
	query := `
		INSERT INTO ticket_alerts (user_id, sports_event_id, max_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.UserID, a.SportsEventID, a.MaxPrice, a.Status, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		return domain.NewPersistenceError("insert ticket_alert", err)
	}
	return nil
}

func (r *alertRepository) GetByID(ctx context.Context, id string) (*domain.TicketAlert, error) {
	query := `
		SELECT ` + ticketAlertColumns + `
		FROM ticket_alerts
		WHERE id = $1
	`
	a := &domain.TicketAlert{}
	var triggeredNull sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.SportsEventID, &a.MaxPrice, &a.Status,
		&triggeredNull, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewPersistenceError("get ticket_alert", err)
	}
	if triggeredNull.Valid {
		a.LastTriggeredAt = &triggeredNull.Time
	}
	return a, nil
}

func (r *alertRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.TicketAlert, error) {
	query := `
		SELECT ` + ticketAlertColumns + `
		FROM ticket_alerts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryAlerts(ctx, query, userID)
}

func (r *alertRepository) ListActiveByEventID(ctx context.Context, eventID string) ([]*domain.TicketAlert, error) {
	query := `
		SELECT ` + ticketAlertColumns + `
		FROM ticket_alerts
		WHERE sports_event_id = $1 AND status = $2
		ORDER BY created_at ASC
	`
	return r.queryAlerts(ctx, query, eventID, domain.AlertStatusActive)
}

func (r *alertRepository) MarkTriggered(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE ticket_alerts
		SET status = $1, last_triggered_at = $2, updated_at = $2
		WHERE id = $3
	`
	result, err := r.DB.ExecContext(ctx, query, domain.AlertStatusTriggered, at, id)
	if err != nil {
		return domain.NewPersistenceError("mark ticket_alert triggered", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *alertRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM ticket_alerts WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return domain.NewPersistenceError("delete ticket_alert", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *alertRepository) CountActive(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM ticket_alerts WHERE status = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, domain.AlertStatusActive).Scan(&count); err != nil {
		return 0, domain.NewPersistenceError("count ticket_alerts", err)
	}
	return count, nil
}

func (r *alertRepository) queryAlerts(ctx context.Context, query string, args ...interface{}) ([]*domain.TicketAlert, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewPersistenceError("query ticket_alerts", err)
	}
	defer rows.Close()

	alerts := make([]*domain.TicketAlert, 0)
	for rows.Next() {
		a := &domain.TicketAlert{}
		var triggeredNull sql.NullTime
		if err := rows.Scan(&a.ID, &a.UserID, &a.SportsEventID, &a.MaxPrice, &a.Status, &triggeredNull, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, domain.NewPersistenceError("scan ticket_alert", err)
		}
		if triggeredNull.Valid {
			a.LastTriggeredAt = &triggeredNull.Time
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("query ticket_alerts", err)
	}
	return alerts, nil
}
