package repositories

import (
	"context"
	"fmt"
	"time"

	"flightdesk/dispatch/internal/constants"
	"flightdesk/dispatch/internal/metrics"
	"flightdesk/dispatch/internal/scheduling"

	"github.com/jmoiron/sqlx"
)

// ReservationRepository answers overlap questions against persisted flights.
// It is a pure read: a count of zero only means no conflicting flight was
// visible when the query ran.
type ReservationRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewReservationRepository(db *sqlx.DB, metricsReg *metrics.MetricsRegistry) *ReservationRepository {
	return &ReservationRepository{db: db, metrics: metricsReg}
}

// CountConflicting returns how many existing flights holding resourceID
// overlap window, ignoring excludeFlightID when given.
func (r *ReservationRepository) CountConflicting(
	ctx context.Context,
	kind scheduling.ResourceKind,
	resourceID uint,
	window scheduling.TimeWindow,
	excludeFlightID *uint,
) (int64, error) {
	var query string
	switch kind {
	case scheduling.ResourceAircraft:
		query = constants.CountConflictingAircraftFlights
	case scheduling.ResourceCrew:
		query = constants.CountConflictingCrewFlights
	default:
		return 0, fmt.Errorf("unknown resource kind %q", kind)
	}

	args := []interface{}{resourceID, window.End.UTC(), window.Start.UTC()}
	if excludeFlightID != nil {
		query += constants.ExcludeFlightClause
		args = append(args, *excludeFlightID)
	}

	started := time.Now()
	defer r.metrics.ObserveQuery(string(kind)+"_conflicts", started)

	var count int64
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count %s conflicts: %w", kind, err)
	}
	return count, nil
}
