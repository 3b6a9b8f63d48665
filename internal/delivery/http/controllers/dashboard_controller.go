package controllers

import (
	"log/slog"
	"net/http"

	h "hdtickets/internal/delivery/http/helpers"
	"hdtickets/internal/domain"
)

type DashboardController struct {
	Logger  *slog.Logger
	Service domain.DashboardService
}

func NewDashboardController(logger *slog.Logger, svc domain.DashboardService) *DashboardController {
	return &DashboardController{
		Logger:  logger,
		Service: svc,
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Headline counts for the admin dashboard: upcoming events, high-demand tickets, active alerts. Served from cache when fresh.
// @Tags dashboard
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the dashboard stats"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, stats)
}
