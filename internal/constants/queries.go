package constants

// Reservation overlap queries. Written with ? placeholders and rebound for the
// active driver. An existing flight conflicts when it departs before the
// proposed window ends and arrives after it starts.
const (
	CountConflictingAircraftFlights = `
	SELECT COUNT(*) FROM flights f
	WHERE f.aircraft_id = ? AND f.departure_time < ? AND f.arrival_time > ?
	`

	CountConflictingCrewFlights = `
	SELECT COUNT(*) FROM flights f
	JOIN flight_crew_members fc ON fc.flight_id = f.id
	WHERE fc.crew_member_id = ? AND f.departure_time < ? AND f.arrival_time > ?
	`

	ExcludeFlightClause = ` AND f.id <> ?`
)
