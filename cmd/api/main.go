package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"hdtickets/config"
	_ "hdtickets/docs"
	"hdtickets/internal/adapters/auth"
	"hdtickets/internal/adapters/cache"
	"hdtickets/internal/adapters/email"
	"hdtickets/internal/adapters/payments"
	"hdtickets/internal/adapters/platforms"
	delivery "hdtickets/internal/delivery/http"
	"hdtickets/internal/delivery/http/controllers"
	"hdtickets/internal/delivery/http/middleware"
	"hdtickets/internal/domain"
	"hdtickets/internal/events"
	"hdtickets/internal/repository/postgres"
	"hdtickets/internal/services"
	"hdtickets/internal/usecase"
)

const serviceTimeout = 5 * time.Second

// @title HD Tickets API
// @version 1.0
// @description Sports event catalog, ticket scraping, and price alert API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("parse redis url", "err", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	cacheStore := cache.NewRedisStore(redisClient)

	bus := events.NewBus(logger)
	defer bus.Close()
	cache.RegisterInvalidator(bus, cacheStore, logger)

	eventRepo := postgres.NewSportsEventRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	alertRepo := postgres.NewAlertRepository(db)
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailFrom,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	authService := services.NewAuthService(userRepo, roleRepo, hasher, issuer, emailService, cfg.JWTExpiry)
	alertService := services.NewAlertService(alertRepo, userRepo, emailService, bus, serviceTimeout)
	dashboardService := services.NewDashboardService(eventRepo, ticketRepo, alertRepo, cacheStore, logger, serviceTimeout)

	createEvents := usecase.NewCreateSportsEventCommandHandler(services.NewEventManagementService(), eventRepo, bus, serviceTimeout)
	queryEvents := usecase.NewGetUpcomingEventsQueryHandler(eventRepo, serviceTimeout)

	adapters := platforms.NewAdapters(&http.Client{Timeout: 30 * time.Second}, platforms.Config{
		StubHubBaseURL:   cfg.StubHubBaseURL,
		StubHubAPIKey:    cfg.StubHubAPIKey,
		ScrapeRatePerSec: cfg.ScrapeRate,
	})
	monitorService := services.NewTicketMonitorService(adapters, ticketRepo, alertService, bus, logger, cfg.ScrapeInterval)

	paymentProcessor := payments.NewProcessor(payments.Config{
		Provider:     cfg.PaymentProvider,
		StripeAPIKey: cfg.StripeAPIKey,
		PayPalID:     cfg.PayPalID,
		PayPalSecret: cfg.PayPalSecret,
	})
	logger.Info("payment provider configured", "provider", paymentProcessor.Provider())

	mux := delivery.NewRouter(
		controllers.NewAuthController(logger, authService),
		controllers.NewEventController(logger, createEvents, queryEvents),
		controllers.NewTicketController(logger, ticketRepo),
		controllers.NewAlertController(logger, alertService),
		controllers.NewDashboardController(logger, dashboardService),
		verifier,
		logger,
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler := middleware.LoggingMiddleware(logger,
		middleware.CORS(cfg.AllowedOrigins, limiter.Wrap(mux)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go runScrapeLoop(ctx, monitorService, cfg, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}

// runScrapeLoop runs scrape cycles on a fixed interval until ctx is done.
// Disabled when no scrape query is configured.
func runScrapeLoop(ctx context.Context, monitor domain.TicketMonitorService, cfg *config.Config, logger *slog.Logger) {
	if cfg.ScrapeQuery == "" {
		logger.Info("scrape loop disabled: no SCRAPE_QUERY configured")
		return
	}
	ticker := time.NewTicker(cfg.ScrapeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := monitor.RunScrapeCycle(ctx, cfg.ScrapeQuery); err != nil {
				logger.Warn("scrape cycle failed", "err", err)
			}
		}
	}
}
