package scheduling

import "time"

// CheckTimesAndRoute applies, in order: arrival strictly after departure,
// departure strictly after now, and distinct departure/arrival airports.
// The first broken rule is reported.
func CheckTimesAndRoute(departure, arrival time.Time, departureAirportID, arrivalAirportID uint, now time.Time) Result {
	if !arrival.After(departure) {
		return Fail(MsgArrivalBeforeDeparture)
	}
	if !departure.After(now) {
		return Fail(MsgDepartureInPast)
	}
	if departureAirportID == arrivalAirportID {
		return Fail(MsgSameAirports)
	}
	return Pass()
}
