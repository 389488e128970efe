package scheduling

import "time"

// FlightProposal is a flight as submitted for creation or update, before it
// is persisted.
type FlightProposal struct {
	FlightNumber       string
	DepartureTime      time.Time
	ArrivalTime        time.Time
	AircraftID         uint
	DepartureAirportID uint
	ArrivalAirportID   uint
	CrewMemberIDs      []uint
}

// Window is the reservation the proposal would hold.
func (p FlightProposal) Window() TimeWindow {
	return NewTimeWindow(p.DepartureTime, p.ArrivalTime)
}
