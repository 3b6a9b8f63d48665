package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"hdtickets/internal/delivery/http/controllers"
	"hdtickets/internal/delivery/http/middleware"
	"hdtickets/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	ticketController *controllers.TicketController,
	alertController *controllers.AlertController,
	dashboardController *controllers.DashboardController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(verifier, logger)
	admin := middleware.RequireRole(domain.RoleAdmin)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Catalog
	mux.HandleFunc("POST /events", authed(admin(eventController.CreateEvent)))
	mux.HandleFunc("GET /events/upcoming", eventController.GetUpcomingEvents)

	// Tickets
	mux.HandleFunc("GET /events/{eventID}/tickets", authed(ticketController.ListEventTickets))
	mux.HandleFunc("GET /tickets/high-demand", authed(ticketController.ListHighDemand))

	// Alerts
	mux.HandleFunc("POST /alerts", authed(alertController.CreateAlert))
	mux.HandleFunc("GET /alerts", authed(alertController.ListMyAlerts))
	mux.HandleFunc("DELETE /alerts/{alertID}", authed(alertController.DeleteAlert))

	// Dashboard
	mux.HandleFunc("GET /dashboard/stats", authed(admin(dashboardController.Stats)))

	// Operational endpoints
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
