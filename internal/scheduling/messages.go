package scheduling

import "fmt"

const (
	MsgArrivalBeforeDeparture = "Arrival must be after departure."
	MsgDepartureInPast        = "Departure must be in the future."
	MsgSameAirports           = "Departure and arrival airports cannot be the same."

	MsgCrewEmpty       = "must have at least 1 Pilot and 1 CoPilot"
	MsgPilotRequired   = "at least 1 Pilot required"
	MsgCoPilotRequired = "at least 1 CoPilot required"

	MsgAircraftUnavailable = "Aircraft is not available for the selected time window."
)

// CrewUnavailableMessage names the first crew member found double-booked.
func CrewUnavailableMessage(name string) string {
	return fmt.Sprintf("Crew member %s is not available for the selected time window.", name)
}
