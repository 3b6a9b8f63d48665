package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hdtickets/internal/domain"
)

type sportsEventRepository struct {
	DB *sql.DB
}

func NewSportsEventRepository(db *sql.DB) domain.SportsEventRepository {
	return &sportsEventRepository{
		DB: db,
	}
}

func (r *sportsEventRepository) Save(ctx context.Context, e *domain.SportsEvent) error {
	capacity := sqlNullCapacity(e.Venue)
	if e.ID == "" {
		query := `
			INSERT INTO sports_events (name, category, event_date, venue_name, venue_city, venue_country, venue_address, venue_capacity, home_team, away_team, competition, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id
		`
		err := r.DB.QueryRowContext(ctx, query,
			e.Name, e.Category.Value(), e.Date.Value(),
			e.Venue.Name(), e.Venue.City(), e.Venue.Country(), nullString(e.Venue.Address()), capacity,
			e.HomeTeam, e.AwayTeam, e.Competition, e.CreatedAt, e.UpdatedAt,
		).Scan(&e.ID)
		if err != nil {
			return domain.NewPersistenceError("insert sports_event", err)
		}
		return nil
	}
	query := `
		UPDATE sports_events
		SET name = $1, category = $2, event_date = $3, venue_name = $4, venue_city = $5, venue_country = $6, venue_address = $7, venue_capacity = $8, home_team = $9, away_team = $10, competition = $11, updated_at = $12
		WHERE id = $13
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Name, e.Category.Value(), e.Date.Value(),
		e.Venue.Name(), e.Venue.City(), e.Venue.Country(), nullString(e.Venue.Address()), capacity,
		e.HomeTeam, e.AwayTeam, e.Competition, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return domain.NewPersistenceError("update sports_event", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sportsEventRepository) FindWithFilters(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.SportsEvent, error) {
	params = params.Normalize()

	where := []string{}
	args := []interface{}{}
	n := 1
	if filter.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", n))
		args = append(args, filter.Category.Value())
		n++
	}
	if filter.VenueName != nil {
		where = append(where, fmt.Sprintf("LOWER(venue_name) = LOWER($%d)", n))
		args = append(args, *filter.VenueName)
		n++
	}
	if filter.FromDate != nil {
		where = append(where, fmt.Sprintf("event_date >= $%d", n))
		args = append(args, *filter.FromDate)
		n++
	}
	if filter.ToDate != nil {
		where = append(where, fmt.Sprintf("event_date <= $%d", n))
		args = append(args, *filter.ToDate)
		n++
	}
	if filter.HighDemandOnly {
		where = append(where, "EXISTS (SELECT 1 FROM scraped_tickets t WHERE t.sports_event_id = sports_events.id AND t.is_high_demand)")
	}

	query := `
		SELECT id, name, category, event_date, venue_name, venue_city, venue_country, venue_address, venue_capacity, home_team, away_team, competition, created_at, updated_at
		FROM sports_events
	`
	if len(where) > 0 {
		query += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += fmt.Sprintf("ORDER BY event_date ASC, id ASC\nLIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, params.Limit(), params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewPersistenceError("query sports_events", err)
	}
	defer rows.Close()

	events := make([]*domain.SportsEvent, 0)
	for rows.Next() {
		e, err := scanSportsEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("query sports_events", err)
	}
	return events, nil
}

func (r *sportsEventRepository) CountUpcoming(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM sports_events WHERE event_date >= NOW()`
	var count int
	if err := r.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, domain.NewPersistenceError("count sports_events", err)
	}
	return count, nil
}

// scanSportsEvent rebuilds the aggregate from one row, reconstructing the
// value objects through their constructors.
func scanSportsEvent(rows *sql.Rows) (*domain.SportsEvent, error) {
	e := &domain.SportsEvent{}
	var (
		categoryRaw  string
		dateRaw      sql.NullTime
		venueName    string
		venueCity    string
		venueCountry string
		addrNull     sql.NullString
		capNull      sql.NullInt64
		homeNull     sql.NullString
		awayNull     sql.NullString
		compNull     sql.NullString
	)
	err := rows.Scan(
		&e.ID, &e.Name, &categoryRaw, &dateRaw,
		&venueName, &venueCity, &venueCountry, &addrNull, &capNull,
		&homeNull, &awayNull, &compNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, domain.NewPersistenceError("scan sports_event", err)
	}
	category, err := domain.NewSportCategory(categoryRaw)
	if err != nil {
		return nil, domain.NewPersistenceError("scan sports_event", err)
	}
	date, err := domain.NewEventDate(dateRaw.Time)
	if err != nil {
		return nil, domain.NewPersistenceError("scan sports_event", err)
	}
	var capacity *int
	if capNull.Valid {
		c := int(capNull.Int64)
		capacity = &c
	}
	venue, err := domain.NewVenue(venueName, venueCity, venueCountry, addrNull.String, capacity)
	if err != nil {
		return nil, domain.NewPersistenceError("scan sports_event", err)
	}
	e.Category = category
	e.Date = date
	e.Venue = venue
	if homeNull.Valid {
		e.HomeTeam = &homeNull.String
	}
	if awayNull.Valid {
		e.AwayTeam = &awayNull.String
	}
	if compNull.Valid {
		e.Competition = &compNull.String
	}
	return e, nil
}

func sqlNullCapacity(v domain.Venue) sql.NullInt64 {
	if c, ok := v.Capacity(); ok {
		return sql.NullInt64{Int64: int64(c), Valid: true}
	}
	return sql.NullInt64{}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
