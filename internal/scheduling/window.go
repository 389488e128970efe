// Package scheduling holds the flight scheduling rules: reservation overlap,
// crew composition, flight time/route checks and the ordered evaluation that
// composes them. Nothing in here performs I/O.
package scheduling

import "time"

// TimeWindow is the span a flight occupies, from departure to arrival.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeWindow returns the window normalised to UTC.
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start.UTC(), End: end.UTC()}
}

// Valid reports whether End is strictly after Start.
func (w TimeWindow) Valid() bool {
	return w.End.After(w.Start)
}

// Overlaps reports whether two windows intersect. Endpoints are open: a window
// ending at t does not overlap one starting at t.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

// ResourceKind distinguishes what a reservation holds.
type ResourceKind string

const (
	ResourceAircraft ResourceKind = "aircraft"
	ResourceCrew     ResourceKind = "crew"
)

// ParseResourceKind accepts "aircraft" or "crew".
func ParseResourceKind(s string) (ResourceKind, bool) {
	switch ResourceKind(s) {
	case ResourceAircraft, ResourceCrew:
		return ResourceKind(s), true
	}
	return "", false
}

// Reservation is an existing flight's claim on an aircraft or crew member.
type Reservation struct {
	FlightID   uint
	ResourceID uint
	Window     TimeWindow
}

// ConflictsWith reports whether r blocks the proposed window for the same
// resource. A reservation belonging to excludeFlightID never conflicts.
func (r Reservation) ConflictsWith(resourceID uint, proposed TimeWindow, excludeFlightID *uint) bool {
	if r.ResourceID != resourceID {
		return false
	}
	if excludeFlightID != nil && r.FlightID == *excludeFlightID {
		return false
	}
	return r.Window.Overlaps(proposed)
}
