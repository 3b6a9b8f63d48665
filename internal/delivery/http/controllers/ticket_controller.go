package controllers

import (
	"log/slog"
	"net/http"

	h "hdtickets/internal/delivery/http/helpers"
	"hdtickets/internal/domain"
)

// HighDemandTicketsResponse is the response body for GET /tickets/high-demand
type HighDemandTicketsResponse struct {
	Tickets    []*domain.ScrapedTicket `json:"tickets"`
	Pagination h.PaginationMeta        `json:"pagination"`
}

type TicketController struct {
	Logger  *slog.Logger
	Tickets domain.TicketRepository
}

func NewTicketController(logger *slog.Logger, tickets domain.TicketRepository) *TicketController {
	return &TicketController{
		Logger:  logger,
		Tickets: tickets,
	}
}

// ListEventTickets godoc
// @Summary List scraped tickets for an event
// @Description List all scraped ticket listings linked to the event, ordered by minimum price ascending.
// @Tags tickets
// @Produce json
// @Param eventID path string true "Sports event ID"
// @Success 200 {object} helpers.APIResponse "data contains the ticket listings"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Security BearerAuth
// @Router /events/{eventID}/tickets [get]
func (c *TicketController) ListEventTickets(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "eventID is required")
		return
	}

	tickets, err := c.Tickets.ListByEventID(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if tickets == nil {
		tickets = []*domain.ScrapedTicket{}
	}

	h.WriteJSONSuccess(w, http.StatusOK, tickets)
}

// ListHighDemand godoc
// @Summary List high-demand tickets
// @Description List available listings flagged high demand across all platforms, most recently updated first.
// @Tags tickets
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains tickets and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Security BearerAuth
// @Router /tickets/high-demand [get]
func (c *TicketController) ListHighDemand(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)

	tickets, err := c.Tickets.ListHighDemand(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if tickets == nil {
		tickets = []*domain.ScrapedTicket{}
	}
	total, err := c.Tickets.CountHighDemand(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, HighDemandTicketsResponse{
		Tickets:    tickets,
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
