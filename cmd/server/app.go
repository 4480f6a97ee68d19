package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phrazzld/booking-api/internal/config"
	"github.com/phrazzld/booking-api/internal/platform/metrics"
	"github.com/phrazzld/booking-api/internal/platform/postgres"
	"github.com/phrazzld/booking-api/internal/service"
	"github.com/phrazzld/booking-api/internal/service/auth"
	"github.com/phrazzld/booking-api/internal/store"
)

// application holds the shared dependencies of the server and ensures they
// are released on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	serviceStore store.AppointmentServiceStore

	tokens         auth.TokenService
	passwords      auth.PasswordVerifier
	cookies        *auth.CookieManager
	authService    service.AuthService
	catalogService service.CatalogService

	registry *prometheus.Registry
	metrics  *metrics.Collector
}

// newApplication wires stores, services and metrics on top of db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "booking"),
	)
	app.metrics = metrics.NewCollector(app.registry)

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		slog.Int("access_token_lifetime_minutes", cfg.Auth.AccessTokenLifetimeMinutes),
		slog.Int("refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes))

	app.passwords = auth.NewBcryptVerifier()
	app.cookies = auth.NewCookieManager(cfg.Auth.RefreshCookieName, cfg.Server.IsProduction())

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.serviceStore = postgres.NewPostgresAppointmentServiceStore(db, logger)

	app.authService, err = service.NewAuthService(app.userStore, app.tokens, app.passwords, app.metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	app.catalogService, err = service.NewCatalogService(app.serviceStore, cfg.Services.ListIncludeRemoved, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog service: %w", err)
	}

	return app, nil
}

// routerConfig returns the router dependencies of the application.
func (app *application) routerConfig() routerConfig {
	return routerConfig{
		Logger:              app.logger,
		Auth:                app.authService,
		Catalog:             app.catalogService,
		Tokens:              app.tokens,
		Cookies:             app.cookies,
		Metrics:             app.metrics,
		MetricsHandler:      metrics.Handler(app.registry),
		RequireAuthOnCreate: app.config.Services.RequireAuthOnCreate,
		CORSAllowedOrigins:  app.config.Server.CORSAllowedOrigins,
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
		}
	}
}
