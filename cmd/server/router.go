package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/booking-api/internal/api"
	"github.com/phrazzld/booking-api/internal/api/middleware"
	"github.com/phrazzld/booking-api/internal/api/shared"
	"github.com/phrazzld/booking-api/internal/platform/metrics"
	"github.com/phrazzld/booking-api/internal/service"
	"github.com/phrazzld/booking-api/internal/service/auth"
)

// routerConfig carries everything newRouter needs.
type routerConfig struct {
	Logger              *slog.Logger
	Auth                service.AuthService
	Catalog             service.CatalogService
	Tokens              auth.TokenService
	Cookies             *auth.CookieManager
	Metrics             metrics.Recorder
	MetricsHandler      http.Handler
	RequireAuthOnCreate bool
	// CORSAllowedOrigins defaults to every origin when empty.
	CORSAllowedOrigins []string
}

// corsMaxAgeSeconds is how long browsers may cache a preflight response.
const corsMaxAgeSeconds = 300

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{middleware.TraceIDHeader},
		MaxAge:         corsMaxAgeSeconds,
	}
}

// newRouter builds the HTTP routing tree.
func newRouter(rc routerConfig) http.Handler {
	if rc.Metrics == nil {
		rc.Metrics = metrics.Noop{}
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(cors.Handler(corsOptions(rc.CORSAllowedOrigins)))
	r.Use(middleware.NewTraceMiddleware(rc.Logger))
	r.Use(middleware.NewMetricsMiddleware(rc.Metrics))
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(rc.Auth, rc.Cookies, rc.Logger)
	serviceHandler := api.NewServiceHandler(rc.Catalog, rc.Logger)
	authMiddleware := middleware.NewAuthMiddleware(rc.Tokens)

	r.Route("/api", func(r chi.Router) {
		r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithData(w, r, http.StatusOK, "OK")
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh-token", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.With(authMiddleware.Authenticate).Get("/me", authHandler.Me)
		})

		r.Route("/service", func(r chi.Router) {
			r.Get("/list", serviceHandler.List)
			r.Get("/{id}", serviceHandler.Get)

			if rc.RequireAuthOnCreate {
				r.With(authMiddleware.Authenticate).Post("/", serviceHandler.Create)
			} else {
				r.Post("/", serviceHandler.Create)
			}

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Put("/{id}", serviceHandler.Update)
				r.Delete("/{id}", serviceHandler.Delete)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			rc.Logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})
	if rc.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", rc.MetricsHandler)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithFailure(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithFailure(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
