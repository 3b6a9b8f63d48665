package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	h "hdtickets/internal/delivery/http/helpers"
	"hdtickets/internal/delivery/http/middleware"
	"hdtickets/internal/domain"
)

// CreateAlertRequest is the request body for POST /alerts
type CreateAlertRequest struct {
	SportsEventID string          `json:"sports_event_id"`
	MaxPrice      decimal.Decimal `json:"max_price"`
}

// Validate implements Validator.
func (c CreateAlertRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.SportsEventID) == "" {
		errs = append(errs, "sports_event_id is required")
	}
	if !c.MaxPrice.IsPositive() {
		errs = append(errs, "max_price must be positive")
	}
	return errs
}

type AlertController struct {
	Logger  *slog.Logger
	Service domain.AlertService
}

func NewAlertController(logger *slog.Logger, svc domain.AlertService) *AlertController {
	return &AlertController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateAlert godoc
// @Summary Create a ticket price alert
// @Description Create an active price alert on a sports event for the authenticated user. The alert fires when a listing appears at or below max_price.
// @Tags alerts
// @Accept json
// @Produce json
// @Param body body CreateAlertRequest true "Alert data"
// @Success 201 {object} helpers.APIResponse "data contains the created alert"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Security BearerAuth
// @Router /alerts [post]
func (c *AlertController) CreateAlert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateAlertRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	alert, err := c.Service.CreateAlert(r.Context(), userID, req.SportsEventID, req.MaxPrice)
	if err != nil {
		if domain.IsValidationError(err) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, alert)
}

// ListMyAlerts godoc
// @Summary List the authenticated user's alerts
// @Description List the authenticated user's alerts, most recent first.
// @Tags alerts
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the alerts"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Security BearerAuth
// @Router /alerts [get]
func (c *AlertController) ListMyAlerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}

	alerts, err := c.Service.ListUserAlerts(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if alerts == nil {
		alerts = []*domain.TicketAlert{}
	}

	h.WriteJSONSuccess(w, http.StatusOK, alerts)
}

// DeleteAlert godoc
// @Summary Delete an alert
// @Description Delete one of the authenticated user's alerts. Deleting another user's alert is forbidden.
// @Tags alerts
// @Produce json
// @Param alertID path string true "Alert ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted alert ID"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Security BearerAuth
// @Router /alerts/{alertID} [delete]
func (c *AlertController) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	alertID := r.PathValue("alertID")
	if alertID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "alertID is required")
		return
	}

	if err := c.Service.DeleteAlert(r.Context(), alertID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "alert not found")
		case errors.Is(err, domain.ErrForbidden):
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "alert belongs to another user")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		}
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": alertID})
}
