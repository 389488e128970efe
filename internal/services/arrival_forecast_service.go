package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/logging"
	"flightdesk/dispatch/internal/metrics"

	"golang.org/x/sync/errgroup"
)

var errAirportNotFound = errors.New("airport not found")

// CoordinateResolver maps an IATA code to coordinates, returning nil when the
// code is unknown.
type CoordinateResolver interface {
	ResolveAirportCoordinates(ctx context.Context, iata string) (*common.AirportCoordinate, error)
}

// ArrivalEstimate is a computed arrival time and the figures behind it.
type ArrivalEstimate struct {
	EstimatedArrival time.Time `json:"estimatedArrival"`
	DistanceKm       float64   `json:"distanceKm"`
	CruiseSpeedKmh   float64   `json:"cruiseSpeedKmh"`
	FlightMinutes    int       `json:"flightMinutes"`
	TaxiOutMinutes   int       `json:"taxiOutMinutes"`
	TaxiInMinutes    int       `json:"taxiInMinutes"`
}

// ArrivalForecastService estimates block arrival times from great-circle
// distance, cruise speed and taxi times. The lookup tables are read-only and
// shared across requests.
type ArrivalForecastService struct {
	coordinates CoordinateResolver
	tables      *common.LookupTables
	metrics     *metrics.MetricsRegistry
}

func NewArrivalForecastService(
	coordinates CoordinateResolver,
	tables *common.LookupTables,
	metricsReg *metrics.MetricsRegistry,
) *ArrivalForecastService {
	if tables == nil {
		tables = &common.LookupTables{}
	}
	return &ArrivalForecastService{
		coordinates: coordinates,
		tables:      tables,
		metrics:     metricsReg,
	}
}

// EstimateArrival returns false when either airport cannot be resolved. That
// includes lookup failures, which are logged but not returned.
func (s *ArrivalForecastService) EstimateArrival(
	ctx context.Context,
	departureIATA, arrivalIATA, aircraftModel string,
	departureTime time.Time,
) (*ArrivalEstimate, bool) {
	from, to, err := s.resolvePair(ctx, departureIATA, arrivalIATA)
	if err != nil {
		s.metrics.ArrivalEstimate("unavailable")
		logging.Warn("Arrival estimate unavailable",
			"departure", departureIATA,
			"arrival", arrivalIATA,
			"error", err.Error(),
		)
		return nil, false
	}

	distance := common.DistanceKm(*from, *to)
	speed, known := s.tables.Speeds.CruiseSpeed(aircraftModel)
	if !known {
		logging.Debug("Aircraft model not in speed table, using default", "model", aircraftModel, "speed_kmh", speed)
	}

	flightMinutes := int(math.Round(distance / speed * 60))
	taxiOut := s.tables.Taxi.TaxiOut(from.IATA)
	taxiIn := s.tables.Taxi.TaxiIn(to.IATA)
	total := time.Duration(taxiOut+flightMinutes+taxiIn) * time.Minute

	s.metrics.ArrivalEstimate("computed")
	return &ArrivalEstimate{
		EstimatedArrival: departureTime.UTC().Add(total),
		DistanceKm:       math.Round(distance*100) / 100,
		CruiseSpeedKmh:   speed,
		FlightMinutes:    flightMinutes,
		TaxiOutMinutes:   taxiOut,
		TaxiInMinutes:    taxiIn,
	}, true
}

func (s *ArrivalForecastService) resolvePair(ctx context.Context, departureIATA, arrivalIATA string) (*common.AirportCoordinate, *common.AirportCoordinate, error) {
	var from, to *common.AirportCoordinate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.resolve(gctx, departureIATA)
		from = c
		return err
	})
	g.Go(func() error {
		c, err := s.resolve(gctx, arrivalIATA)
		to = c
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (s *ArrivalForecastService) resolve(ctx context.Context, iata string) (*common.AirportCoordinate, error) {
	coord, err := s.coordinates.ResolveAirportCoordinates(ctx, iata)
	if err != nil {
		return nil, err
	}
	if coord == nil {
		return nil, fmt.Errorf("%w: %s", errAirportNotFound, iata)
	}
	resolved := *coord
	if resolved.IATA == "" {
		resolved.IATA = common.NormalizeIATA(iata)
	}
	return &resolved, nil
}
