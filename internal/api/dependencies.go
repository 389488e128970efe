package api

import (
	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/config"
	"flightdesk/dispatch/internal/db/repositories"
	"flightdesk/dispatch/internal/metrics"
	"flightdesk/dispatch/internal/services"

	"github.com/jmoiron/sqlx"
	gormlib "gorm.io/gorm"
)

type Repositories struct {
	Aircraft     *repositories.AircraftRepository
	Airports     *repositories.AirportRepository
	Crew         *repositories.CrewMemberRepository
	Flights      *repositories.FlightRepository
	Reservations *repositories.ReservationRepository
}

type Services struct {
	Cache           common.CacheInterface
	Availability    *services.AvailabilityService
	CrewComposition *services.CrewCompositionService
	Validation      *services.FlightValidationService
	Flights         *services.FlightService
	Coordinates     *services.AirportCoordinateService
	Forecast        *services.ArrivalForecastService
	AirportLoader   *common.AirportLoaderService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	SQL      *sqlx.DB
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services. gdb and sdb share one
// database; sdb runs the raw overlap queries.
func InitDependencies(
	cfg config.Config,
	gdb *gormlib.DB,
	sdb *sqlx.DB,
	cache common.CacheInterface,
	tables *common.LookupTables,
	metricsReg *metrics.MetricsRegistry,
) *Dependencies {
	repos := &Repositories{
		Aircraft:     repositories.NewAircraftRepository(gdb),
		Airports:     repositories.NewAirportRepository(gdb),
		Crew:         repositories.NewCrewMemberRepository(gdb),
		Flights:      repositories.NewFlightRepository(gdb),
		Reservations: repositories.NewReservationRepository(sdb, metricsReg),
	}

	availability := services.NewAvailabilityService(repos.Reservations)
	composition := services.NewCrewCompositionService(repos.Crew)
	validation := services.NewFlightValidationService(availability, composition, metricsReg)
	coordinates := services.NewAirportCoordinateService(repos.Airports, cache, metricsReg)

	svcs := &Services{
		Cache:           cache,
		Availability:    availability,
		CrewComposition: composition,
		Validation:      validation,
		Flights:         services.NewFlightService(repos.Flights, repos.Crew, validation),
		Coordinates:     coordinates,
		Forecast:        services.NewArrivalForecastService(coordinates, tables, metricsReg),
		AirportLoader:   common.NewAirportLoaderService(repos.Airports, cfg.AirportsSourceURL),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		SQL:      sdb,
		Metrics:  metricsReg,
	}
}
