package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "hdtickets/internal/delivery/http/helpers"
	"hdtickets/internal/domain"
	"hdtickets/internal/usecase"
)

// VenueRequest is the venue part of CreateEventRequest.
type VenueRequest struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Address  string `json:"address"`
	Capacity *int   `json:"capacity"`
}

// CreateEventRequest is the request body for POST /events
type CreateEventRequest struct {
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	EventDate   time.Time    `json:"event_date"`
	Venue       VenueRequest `json:"venue"`
	HomeTeam    *string      `json:"home_team"`
	AwayTeam    *string      `json:"away_team"`
	Competition *string      `json:"competition"`
}

// Validate implements Validator. Structural checks only; value-object rules
// (category membership, past dates, venue fields) are enforced by the handler.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Category) == "" {
		errs = append(errs, "category is required")
	}
	if c.EventDate.IsZero() {
		errs = append(errs, "event_date is required")
	}
	if strings.TrimSpace(c.Venue.Name) == "" {
		errs = append(errs, "venue.name is required")
	}
	return errs
}

// UpcomingEventsResponse is the response body for GET /events/upcoming
type UpcomingEventsResponse struct {
	Events   []*domain.SportsEvent `json:"events"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

type EventController struct {
	Logger  *slog.Logger
	Creator *usecase.CreateSportsEventCommandHandler
	Query   *usecase.GetUpcomingEventsQueryHandler
}

func NewEventController(logger *slog.Logger, creator *usecase.CreateSportsEventCommandHandler, query *usecase.GetUpcomingEventsQueryHandler) *EventController {
	return &EventController{
		Logger:  logger,
		Creator: creator,
		Query:   query,
	}
}

// CreateEvent godoc
// @Summary Create a sports event
// @Description Create a catalog entry for a sports event. Admin only. Category must be one of the supported sports; event_date must not be in the past.
// @Tags events
// @Accept json
// @Produce json
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Security BearerAuth
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	cmd := usecase.CreateSportsEventCommand{
		Name:          req.Name,
		Category:      req.Category,
		EventDate:     req.EventDate,
		VenueName:     req.Venue.Name,
		VenueCity:     req.Venue.City,
		VenueCountry:  req.Venue.Country,
		VenueAddress:  req.Venue.Address,
		VenueCapacity: req.Venue.Capacity,
		HomeTeam:      req.HomeTeam,
		AwayTeam:      req.AwayTeam,
		Competition:   req.Competition,
	}
	event, err := c.Creator.Handle(r.Context(), cmd)
	if err != nil {
		if domain.IsValidationError(err) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetUpcomingEvents godoc
// @Summary List upcoming events
// @Description List catalog events ordered by event date ascending. Optional filters: category, venue, high_demand, from, to (RFC 3339). When from is absent, only events from now onward are returned.
// @Tags events
// @Produce json
// @Param category query string false "Sport category filter"
// @Param venue query string false "Venue name filter (case-insensitive)"
// @Param high_demand query bool false "Only events with high-demand tickets"
// @Param from query string false "Start of date range (RFC 3339); defaults to now"
// @Param to query string false "End of date range (RFC 3339), inclusive"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains events and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/upcoming [get]
func (c *EventController) GetUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := h.ParsePagination(r)

	query := usecase.GetUpcomingEventsQuery{
		HighDemandOnly: q.Get("high_demand") == "true",
		Page:           params.Page,
		PerPage:        params.PageSize,
	}
	if v := strings.TrimSpace(q.Get("category")); v != "" {
		query.Category = &v
	}
	if v := strings.TrimSpace(q.Get("venue")); v != "" {
		query.VenueName = &v
	}
	if v := q.Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "from must be RFC 3339")
			return
		}
		query.FromDate = &from
	} else {
		now := time.Now()
		query.FromDate = &now
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "to must be RFC 3339")
			return
		}
		query.ToDate = &to
	}

	events, err := c.Query.Handle(r.Context(), query)
	if err != nil {
		if domain.IsValidationError(err) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, UpcomingEventsResponse{
		Events:   events,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}
