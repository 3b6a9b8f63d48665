package postgres

import (
	"context"
	"database/sql"

	"hdtickets/internal/domain"
)

type ticketRepository struct {
	DB *sql.DB
}

func NewTicketRepository(db *sql.DB) domain.TicketRepository {
	return &ticketRepository{DB: db}
}

const scrapedTicketColumns = `id, sports_event_id, platform, external_ref, title, status, min_price, max_price, is_available, is_high_demand, venue, event_date, created_at, updated_at`

func (r *ticketRepository) Upsert(ctx context.Context, t *domain.ScrapedTicket) error {
	query := `
		INSERT INTO scraped_tickets (sports_event_id, platform, external_ref, title, status, min_price, max_price, is_available, is_high_demand, venue, event_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (platform, external_ref) DO UPDATE
		SET sports_event_id = EXCLUDED.sports_event_id,
			title = EXCLUDED.title,
			status = EXCLUDED.status,
			min_price = EXCLUDED.min_price,
			max_price = EXCLUDED.max_price,
			is_available = EXCLUDED.is_available,
			is_high_demand = EXCLUDED.is_high_demand,
			venue = EXCLUDED.venue,
			event_date = EXCLUDED.event_date,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		t.SportsEventID, t.Platform, t.ExternalRef, t.Title, t.Status,
		t.MinPrice, t.MaxPrice, t.IsAvailable, t.IsHighDemand,
		t.Venue, t.EventDate, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return domain.NewPersistenceError("upsert scraped_ticket", err)
	}
	return nil
}

func (r *ticketRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.ScrapedTicket, error) {
	query := `
		SELECT ` + scrapedTicketColumns + `
		FROM scraped_tickets
		WHERE sports_event_id = $1
		ORDER BY min_price ASC, id ASC
	`
	return r.queryTickets(ctx, query, eventID)
}

func (r *ticketRepository) ListHighDemand(ctx context.Context, params domain.PaginationParams) ([]*domain.ScrapedTicket, error) {
	params = params.Normalize()
	query := `
		SELECT ` + scrapedTicketColumns + `
		FROM scraped_tickets
		WHERE is_high_demand AND is_available
		ORDER BY updated_at DESC, id ASC
		LIMIT $1 OFFSET $2
	`
	return r.queryTickets(ctx, query, params.Limit(), params.Offset())
}

func (r *ticketRepository) CountHighDemand(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM scraped_tickets WHERE is_high_demand AND is_available`
	var count int
	if err := r.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, domain.NewPersistenceError("count scraped_tickets", err)
	}
	return count, nil
}

func (r *ticketRepository) queryTickets(ctx context.Context, query string, args ...interface{}) ([]*domain.ScrapedTicket, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewPersistenceError("query scraped_tickets", err)
	}
	defer rows.Close()

	tickets := make([]*domain.ScrapedTicket, 0)
	for rows.Next() {
		t := &domain.ScrapedTicket{}
		var eventIDNull sql.NullString
		var eventDateNull sql.NullTime
		err := rows.Scan(
			&t.ID, &eventIDNull, &t.Platform, &t.ExternalRef, &t.Title, &t.Status,
			&t.MinPrice, &t.MaxPrice, &t.IsAvailable, &t.IsHighDemand,
			&t.Venue, &eventDateNull, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, domain.NewPersistenceError("scan scraped_ticket", err)
		}
		if eventIDNull.Valid {
			t.SportsEventID = &eventIDNull.String
		}
		if eventDateNull.Valid {
			t.EventDate = &eventDateNull.Time
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("query scraped_tickets", err)
	}
	return tickets, nil
}
