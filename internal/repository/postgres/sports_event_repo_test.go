package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"hdtickets/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int              { return &v }
func strPtr(s string) *string        { return &s }
func timePtr(t time.Time) *time.Time { return &t }

func buildEvent(t *testing.T) *domain.SportsEvent {
	t.Helper()
	category, err := domain.NewSportCategory("football")
	require.NoError(t, err)
	date, err := domain.NewEventDate(time.Date(2026, 10, 3, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	venue, err := domain.NewVenue("Old Trafford", "Manchester", "England", "Sir Matt Busby Way", intPtr(74310))
	require.NoError(t, err)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return domain.NewSportsEvent("FC United vs City FC", category, date, venue,
		strPtr("FC United"), strPtr("City FC"), strPtr("Premier League"), now, now)
}

func sportsEventColumns() []string {
	return []string{"id", "name", "category", "event_date", "venue_name", "venue_city", "venue_country", "venue_address", "venue_capacity", "home_team", "away_team", "competition", "created_at", "updated_at"}
}

func TestSportsEventRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("insert assigns id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO sports_events`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))

		repo := NewSportsEventRepository(db)
		event := buildEvent(t)
		require.NoError(t, repo.Save(ctx, event))
		require.Equal(t, "ev-uuid-1", event.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is a persistence error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO sports_events`).
			WillReturnError(sql.ErrConnDone)

		repo := NewSportsEventRepository(db)
		err = repo.Save(ctx, buildEvent(t))
		require.Error(t, err)
		require.True(t, domain.IsPersistenceError(err))
	})

	t.Run("update existing row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE sports_events`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewSportsEventRepository(db)
		event := buildEvent(t)
		event.ID = "ev-uuid-1"
		require.NoError(t, repo.Save(ctx, event))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update of missing row is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE sports_events`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewSportsEventRepository(db)
		event := buildEvent(t)
		event.ID = "ev-missing"
		err = repo.Save(ctx, event)
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestSportsEventRepository_FindWithFilters(t *testing.T) {
	ctx := context.Background()
	eventDate := time.Date(2026, 10, 3, 15, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("filters become numbered args", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(sportsEventColumns()).
			AddRow("ev-1", "FC United vs City FC", "football", eventDate,
				"Old Trafford", "Manchester", "England", "Sir Matt Busby Way", 74310,
				"FC United", "City FC", "Premier League", createdAt, createdAt)
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT id, name, category, event_date, venue_name`).
			WithArgs("football", "Old Trafford", from, 20, 0).
			WillReturnRows(rows)

		repo := NewSportsEventRepository(db)
		category, err := domain.NewSportCategory("football")
		require.NoError(t, err)
		got, err := repo.FindWithFilters(ctx, domain.EventFilter{
			Category:  &category,
			VenueName: strPtr("Old Trafford"),
			FromDate:  timePtr(from),
		}, domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "ev-1", got[0].ID)
		require.Equal(t, "football", got[0].Category.Value())
		require.Equal(t, "Old Trafford", got[0].Venue.Name())
		capacity, ok := got[0].Venue.Capacity()
		require.True(t, ok)
		require.Equal(t, 74310, capacity)
		require.Equal(t, "FC United", *got[0].HomeTeam)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nullable columns stay nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(sportsEventColumns()).
			AddRow("ev-2", "Wimbledon Final", "tennis", eventDate,
				"Centre Court", "London", "England", nil, nil,
				nil, nil, nil, createdAt, createdAt)
		mock.ExpectQuery(`SELECT id, name, category, event_date, venue_name`).
			WithArgs(20, 0).
			WillReturnRows(rows)

		repo := NewSportsEventRepository(db)
		got, err := repo.FindWithFilters(ctx, domain.EventFilter{}, domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Nil(t, got[0].HomeTeam)
		require.Nil(t, got[0].Competition)
		_, ok := got[0].Venue.Capacity()
		require.False(t, ok)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, category, event_date, venue_name`).
			WillReturnRows(sqlmock.NewRows(sportsEventColumns()))

		repo := NewSportsEventRepository(db)
		got, err := repo.FindWithFilters(ctx, domain.EventFilter{HighDemandOnly: true}, domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, category, event_date, venue_name`).
			WillReturnError(sql.ErrConnDone)

		repo := NewSportsEventRepository(db)
		got, err := repo.FindWithFilters(ctx, domain.EventFilter{}, domain.PaginationParams{Page: 1, PageSize: 20})
		require.Error(t, err)
		require.True(t, domain.IsPersistenceError(err))
		require.Nil(t, got)
	})
}

func TestSportsEventRepository_CountUpcoming(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sports_events`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	repo := NewSportsEventRepository(db)
	count, err := repo.CountUpcoming(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
