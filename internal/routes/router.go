package routes

import (
	"net/http"
	"time"

	"flightdesk/dispatch/internal/api"
	"flightdesk/dispatch/internal/config"
	"flightdesk/dispatch/internal/logging"
	"flightdesk/dispatch/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const requestTimeout = 30 * time.Second

func RegisterRoutes(cfg config.Config, deps *api.Dependencies, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.InFlightMiddleware(deps.Metrics))
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(chimw.Timeout(requestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	handlers := api.NewHandlers(deps)

	// health check
	r.Get("/healthCheck", handlers.HealthCheckHandler(upSince))

	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	RegisterAPIRoutes(r, handlers, limiter)

	logging.Info("Router initialized",
		"cors_origins", cfg.CORSAllowedOrigins,
		"rate_limit_rps", cfg.RateLimitRPS,
		"rate_limit_burst", cfg.RateLimitBurst,
	)
	return r
}
