package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/constants"
	"flightdesk/dispatch/internal/logging"
	"flightdesk/dispatch/internal/metrics"
	"flightdesk/dispatch/internal/models/gorm"

	"golang.org/x/sync/singleflight"
)

const (
	airportCoordinateTTL = time.Hour
	airportLookupTimeout = 5 * time.Second
)

var errUnknownAirport = errors.New("unknown airport")

// AirportLookup finds an airport by IATA code, returning nil when unknown.
type AirportLookup interface {
	FindByIATA(ctx context.Context, iata string) (*gorm.Airport, error)
}

// AirportCoordinateService resolves IATA codes to coordinates through the
// cache. Concurrent misses for the same code share one database lookup, which
// is not cancelled when the caller that started it goes away.
type AirportCoordinateService struct {
	airports AirportLookup
	cache    common.CacheInterface
	metrics  *metrics.MetricsRegistry
	group    singleflight.Group
}

func NewAirportCoordinateService(
	airports AirportLookup,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *AirportCoordinateService {
	return &AirportCoordinateService{
		airports: airports,
		cache:    cache,
		metrics:  metricsReg,
	}
}

// ResolveAirportCoordinates returns nil, nil for an unknown code. Unknown codes
// are not cached, so an airport added later is found on the next call.
func (s *AirportCoordinateService) ResolveAirportCoordinates(ctx context.Context, iata string) (*common.AirportCoordinate, error) {
	code := common.NormalizeIATA(iata)
	if code == "" {
		return nil, nil
	}
	key := cacheKey(code)

	if cached, found := s.cache.Get(key); found {
		if coord, ok := common.CachedValue[common.AirportCoordinate](cached); ok {
			s.metrics.CacheHit(string(constants.CachePrefixAirportCoordinate))
			return &coord, nil
		}
	}
	s.metrics.CacheMiss(string(constants.CachePrefixAirportCoordinate))

	// The shared lookup outlives any one caller; each caller waits on its own ctx.
	ch := s.group.DoChan(key, func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), airportLookupTimeout)
		defer cancel()
		return s.cache.GetOrSet(key, airportCoordinateTTL, func() (any, error) {
			return s.load(lookupCtx, code)
		})
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if errors.Is(res.Err, errUnknownAirport) {
			logging.Debug("Airport not found", "iata", code)
			return nil, nil
		}
		if res.Err != nil {
			return nil, res.Err
		}
		coord, ok := common.CachedValue[common.AirportCoordinate](res.Val)
		if !ok {
			return nil, fmt.Errorf("unexpected cached value for airport %s", code)
		}
		return &coord, nil
	}
}

// load reads one airport from the database. An unknown code is returned as
// errUnknownAirport so GetOrSet does not cache it.
func (s *AirportCoordinateService) load(ctx context.Context, code string) (any, error) {
	airport, err := s.airports.FindByIATA(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up airport %s: %w", code, err)
	}
	if airport == nil {
		return nil, errUnknownAirport
	}
	return common.AirportCoordinate{
		IATA:      code,
		Latitude:  airport.Latitude,
		Longitude: airport.Longitude,
	}, nil
}

// Invalidate drops the cached coordinates for iata.
func (s *AirportCoordinateService) Invalidate(iata string) {
	s.cache.Delete(cacheKey(common.NormalizeIATA(iata)))
}

func cacheKey(code string) string {
	return string(constants.CachePrefixAirportCoordinate) + code
}
