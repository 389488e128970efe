package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/metrics"
	"flightdesk/dispatch/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	istanbul  = common.AirportCoordinate{IATA: "IST", Latitude: 41.2753, Longitude: 28.7519}
	frankfurt = common.AirportCoordinate{IATA: "FRA", Latitude: 50.0333, Longitude: 8.5706}
	kennedy   = common.AirportCoordinate{IATA: "JFK", Latitude: 40.6413, Longitude: -73.7781}
	heathrow  = common.AirportCoordinate{IATA: "LHR", Latitude: 51.4700, Longitude: -0.4543}

	departure = time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)
)

func testTables() *common.LookupTables {
	return &common.LookupTables{
		Speeds: common.NewAircraftSpeedTable(map[string]float64{
			"Boeing 737-800": 842,
			"Reference 840":  840,
		}),
		Taxi: common.NewTaxiTimeTable(map[string]common.TaxiTime{
			"default": {TaxiOut: 15, TaxiIn: 7},
			"JFK":     {TaxiOut: 24, TaxiIn: 10},
			"LHR":     {TaxiOut: 21, TaxiIn: 9},
		}),
	}
}

func TestEstimateArrival_IstanbulFrankfurt(t *testing.T) {
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	svc := NewArrivalForecastService(coordinatesOf(istanbul, frankfurt), testTables(), reg)

	est, ok := svc.EstimateArrival(context.Background(), "IST", "FRA", "Unknown Jet", departure)
	require.True(t, ok)

	// 1837.35 km at 840 km/h is 131.24 min; 15 + 131 + 7 = 153 min.
	assert.InDelta(t, 1837.35, est.DistanceKm, 0.01)
	assert.Equal(t, 840.0, est.CruiseSpeedKmh)
	assert.Equal(t, 131, est.FlightMinutes)
	assert.Equal(t, 15, est.TaxiOutMinutes)
	assert.Equal(t, 7, est.TaxiInMinutes)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 3, 0, 0, time.UTC), est.EstimatedArrival)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.ArrivalEstimatesTotal.WithLabelValues("computed")))
}

func TestEstimateArrival_UnknownModelMatchesDefaultSpeed(t *testing.T) {
	svc := NewArrivalForecastService(coordinatesOf(istanbul, frankfurt), testTables(), nil)

	unknown, ok := svc.EstimateArrival(context.Background(), "IST", "FRA", "Not A Plane", departure)
	require.True(t, ok)
	explicit, ok := svc.EstimateArrival(context.Background(), "IST", "FRA", "Reference 840", departure)
	require.True(t, ok)

	assert.Equal(t, explicit.EstimatedArrival, unknown.EstimatedArrival)
}

func TestEstimateArrival_UsesTableEntries(t *testing.T) {
	svc := NewArrivalForecastService(coordinatesOf(kennedy, heathrow), testTables(), nil)

	est, ok := svc.EstimateArrival(context.Background(), "jfk", "lhr", "Boeing 737-800", departure)
	require.True(t, ok)

	// 5540.01 km at 842 km/h is 394.78 min.
	assert.Equal(t, 842.0, est.CruiseSpeedKmh)
	assert.Equal(t, 395, est.FlightMinutes)
	assert.Equal(t, 24, est.TaxiOutMinutes)
	assert.Equal(t, 9, est.TaxiInMinutes)
	assert.Equal(t, departure.Add(428*time.Minute), est.EstimatedArrival)
}

func TestEstimateArrival_EmptyTablesUseLiteralDefaults(t *testing.T) {
	svc := NewArrivalForecastService(coordinatesOf(istanbul, frankfurt), &common.LookupTables{
		Speeds: common.NewAircraftSpeedTable(nil),
		Taxi:   common.NewTaxiTimeTable(nil),
	}, nil)

	est, ok := svc.EstimateArrival(context.Background(), "IST", "FRA", "Boeing 737-800", departure)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 3, 0, 0, time.UTC), est.EstimatedArrival)
}

func TestEstimateArrival_Unavailable(t *testing.T) {
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())

	t.Run("unknown airport", func(t *testing.T) {
		svc := NewArrivalForecastService(coordinatesOf(istanbul), testTables(), reg)
		est, ok := svc.EstimateArrival(context.Background(), "IST", "XXX", "", departure)
		assert.False(t, ok)
		assert.Nil(t, est)
	})

	t.Run("lookup failure", func(t *testing.T) {
		resolver := &mockCoordinateResolver{resolveFunc: func(context.Context, string) (*common.AirportCoordinate, error) {
			return nil, errors.New("db down")
		}}
		svc := NewArrivalForecastService(resolver, testTables(), reg)
		_, ok := svc.EstimateArrival(context.Background(), "IST", "FRA", "", departure)
		assert.False(t, ok)
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(reg.ArrivalEstimatesTotal.WithLabelValues("unavailable")))
}

func TestAirportCoordinateService_CachesHits(t *testing.T) {
	lookup := &mockAirportLookup{airports: map[string]*gorm.Airport{
		"IST": {IATA: "IST", Latitude: istanbul.Latitude, Longitude: istanbul.Longitude},
	}}
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	svc := NewAirportCoordinateService(lookup, common.NewCacheService(600, 600), reg)
	ctx := context.Background()

	first, err := svc.ResolveAirportCoordinates(ctx, "ist")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, istanbul, *first)

	second, err := svc.ResolveAirportCoordinates(ctx, "IST")
	require.NoError(t, err)
	assert.Equal(t, istanbul, *second)
	assert.Equal(t, 1, lookup.calls)

	svc.Invalidate("ist")
	_, err = svc.ResolveAirportCoordinates(ctx, "IST")
	require.NoError(t, err)
	assert.Equal(t, 2, lookup.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.CacheHitsTotal.WithLabelValues("AIRPORT_COORD_")))
}

func TestAirportCoordinateService_NotFoundIsNotCached(t *testing.T) {
	lookup := &mockAirportLookup{airports: map[string]*gorm.Airport{}}
	svc := NewAirportCoordinateService(lookup, common.NewCacheService(600, 600), nil)
	ctx := context.Background()

	coord, err := svc.ResolveAirportCoordinates(ctx, "ZZZ")
	require.NoError(t, err)
	assert.Nil(t, coord)

	lookup.airports["ZZZ"] = &gorm.Airport{IATA: "ZZZ", Latitude: 1, Longitude: 2}
	coord, err = svc.ResolveAirportCoordinates(ctx, "ZZZ")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.Equal(t, 2, lookup.calls)
}

func TestAirportCoordinateService_LookupError(t *testing.T) {
	lookup := &mockAirportLookup{err: errors.New("timeout")}
	svc := NewAirportCoordinateService(lookup, common.NewCacheService(600, 600), nil)

	_, err := svc.ResolveAirportCoordinates(context.Background(), "IST")
	assert.Error(t, err)
}

func TestAirportCoordinateService_SharedLookupSurvivesCallerCancel(t *testing.T) {
	lookup := &mockAirportLookup{
		airports: map[string]*gorm.Airport{
			"IST": {IATA: "IST", Latitude: istanbul.Latitude, Longitude: istanbul.Longitude},
		},
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	svc := NewAirportCoordinateService(lookup, common.NewCacheService(600, 600), nil)

	type result struct {
		coord *common.AirportCoordinate
		err   error
	}
	resolve := func(ctx context.Context, out chan<- result) {
		coord, err := svc.ResolveAirportCoordinates(ctx, "IST")
		out <- result{coord, err}
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	first := make(chan result, 1)
	go resolve(ctxA, first)

	select {
	case <-lookup.started:
	case <-time.After(time.Second):
		t.Fatal("lookup never started")
	}

	second := make(chan result, 1)
	go resolve(context.Background(), second)
	time.Sleep(20 * time.Millisecond)

	cancelA()
	a := <-first
	assert.ErrorIs(t, a.err, context.Canceled)

	close(lookup.release)
	select {
	case b := <-second:
		require.NoError(t, b.err)
		require.NotNil(t, b.coord)
		assert.Equal(t, istanbul, *b.coord)
	case <-time.After(time.Second):
		t.Fatal("second caller never returned")
	}

	cached, err := svc.ResolveAirportCoordinates(context.Background(), "IST")
	require.NoError(t, err)
	assert.Equal(t, istanbul, *cached)
}
