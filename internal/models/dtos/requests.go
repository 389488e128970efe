package dtos

import (
	"strings"
	"time"

	"flightdesk/dispatch/internal/scheduling"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request DTO against its validate tags.
func Validate(req any) error {
	return validate.Struct(req)
}

type AircraftRequest struct {
	Registration string `json:"registration" validate:"required,max=10"`
	Model        string `json:"model" validate:"required,max=100"`
	Manufacturer string `json:"manufacturer" validate:"max=100"`
	SeatCapacity int    `json:"seatCapacity" validate:"gte=0,lte=1000"`
}

type AirportRequest struct {
	IATA      string  `json:"iataCode" validate:"required,len=3,alpha"`
	ICAO      string  `json:"icaoCode" validate:"omitempty,len=4,alphanum"`
	Name      string  `json:"name" validate:"required"`
	City      string  `json:"city" validate:"max=100"`
	Country   string  `json:"country" validate:"max=100"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Timezone  string  `json:"timezone" validate:"max=50"`
}

type CrewMemberRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=pilot copilot flightattendant"`
}

// Normalize lower-cases the role so "Pilot" and "PILOT" are accepted.
func (r *CrewMemberRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	if role, ok := scheduling.ParseCrewRole(r.Role); ok {
		r.Role = string(role)
	}
}

// FlightRequest is the body of POST /flights and PUT /flights/{id}. An empty
// or missing crew list is accepted here and rejected by flight validation.
type FlightRequest struct {
	FlightNumber       string    `json:"flightNumber" validate:"required,max=10"`
	DepartureTime      time.Time `json:"departureTime" validate:"required"`
	ArrivalTime        time.Time `json:"arrivalTime" validate:"required"`
	AircraftID         uint      `json:"aircraftId" validate:"required"`
	DepartureAirportID uint      `json:"departureAirportId" validate:"required"`
	ArrivalAirportID   uint      `json:"arrivalAirportId" validate:"required"`
	CrewMemberIDs      []uint    `json:"crewMemberIds" validate:"dive,gt=0"`
}

func (r FlightRequest) Proposal() scheduling.FlightProposal {
	return scheduling.FlightProposal{
		FlightNumber:       strings.ToUpper(strings.TrimSpace(r.FlightNumber)),
		DepartureTime:      r.DepartureTime.UTC(),
		ArrivalTime:        r.ArrivalTime.UTC(),
		AircraftID:         r.AircraftID,
		DepartureAirportID: r.DepartureAirportID,
		ArrivalAirportID:   r.ArrivalAirportID,
		CrewMemberIDs:      r.CrewMemberIDs,
	}
}
