package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry_IsolatedRegistries(t *testing.T) {
	// Two registries on separate registerers must not collide.
	a := NewMetricsRegistry(prometheus.NewRegistry())
	b := NewMetricsRegistry(prometheus.NewRegistry())

	a.FlightValidation("create", "rejected")
	a.FlightValidation("create", "rejected")
	b.FlightValidation("create", "accepted")

	assert.Equal(t, 2.0, testutil.ToFloat64(a.FlightValidationsTotal.WithLabelValues("create", "rejected")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.FlightValidationsTotal.WithLabelValues("create", "rejected")))
}

func TestMetricsRegistry_Helpers(t *testing.T) {
	m := NewMetricsRegistry(prometheus.NewRegistry())

	m.ObserveQuery("aircraft_conflicts", time.Now())
	m.CacheHit("airport_coord")
	m.CacheMiss("airport_coord")
	m.ArrivalEstimate("computed")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("aircraft_conflicts")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues("airport_coord")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMissesTotal.WithLabelValues("airport_coord")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ArrivalEstimatesTotal.WithLabelValues("computed")))
}

func TestMetricsRegistry_NilSafe(t *testing.T) {
	var m *MetricsRegistry
	assert.NotPanics(t, func() {
		m.ObserveQuery("q", time.Now())
		m.CacheHit("p")
		m.CacheMiss("p")
		m.FlightValidation("create", "accepted")
		m.ArrivalEstimate("unavailable")
	})
}
