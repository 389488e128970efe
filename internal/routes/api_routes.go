package routes

import (
	"flightdesk/dispatch/internal/api"
	"flightdesk/dispatch/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, limiter *middleware.IPRateLimiter) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(limiter.Middleware)

		v1.Route("/aircraft", func(ac chi.Router) {
			ac.Get("/", handlers.ListAircraftHandler())
			ac.Post("/", handlers.CreateAircraftHandler())
			ac.Get("/{id}", handlers.GetAircraftHandler())
			ac.Put("/{id}", handlers.UpdateAircraftHandler())
			ac.Delete("/{id}", handlers.DeleteAircraftHandler())
		})

		v1.Route("/airports", func(ap chi.Router) {
			ap.Get("/", handlers.ListAirportsHandler())
			ap.Post("/", handlers.CreateAirportHandler())
			ap.Get("/{id}", handlers.GetAirportHandler())
			ap.Put("/{id}", handlers.UpdateAirportHandler())
			ap.Delete("/{id}", handlers.DeleteAirportHandler())
		})

		v1.Route("/crew", func(cr chi.Router) {
			cr.Get("/", handlers.ListCrewHandler())
			cr.Post("/", handlers.CreateCrewMemberHandler())
			cr.Get("/{id}", handlers.GetCrewMemberHandler())
			cr.Put("/{id}", handlers.UpdateCrewMemberHandler())
			cr.Delete("/{id}", handlers.DeleteCrewMemberHandler())
		})

		v1.Route("/flights", func(fl chi.Router) {
			fl.Get("/", handlers.ListFlightsHandler())
			fl.Post("/", handlers.CreateFlightHandler())
			fl.Get("/{id}", handlers.GetFlightHandler())
			fl.Put("/{id}", handlers.UpdateFlightHandler())
			fl.Delete("/{id}", handlers.DeleteFlightHandler())
		})

		v1.Get("/availability/{kind}/{id}", handlers.AvailabilityHandler())
		v1.Get("/forecast/arrival", handlers.ArrivalForecastHandler())

		v1.Post("/admin/airports/sync", handlers.SyncAirportsHandler())
	})
}
