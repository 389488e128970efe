package dtos

import (
	"time"

	"flightdesk/dispatch/internal/models/gorm"
)

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type AircraftResponse struct {
	ID           uint   `json:"id"`
	Registration string `json:"registration"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer,omitempty"`
	SeatCapacity int    `json:"seatCapacity"`
}

type AirportResponse struct {
	ID        uint    `json:"id"`
	IATA      string  `json:"iataCode"`
	ICAO      string  `json:"icaoCode,omitempty"`
	Name      string  `json:"name"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

type CrewMemberResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type FlightResponse struct {
	ID               uint                 `json:"id"`
	FlightNumber     string               `json:"flightNumber"`
	DepartureTime    time.Time            `json:"departureTime"`
	ArrivalTime      time.Time            `json:"arrivalTime"`
	Aircraft         AircraftResponse     `json:"aircraft"`
	DepartureAirport AirportResponse      `json:"departureAirport"`
	ArrivalAirport   AirportResponse      `json:"arrivalAirport"`
	Crew             []CrewMemberResponse `json:"crew"`
}

type AvailabilityResponse struct {
	Kind       string    `json:"kind"`
	ResourceID uint      `json:"resourceId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Available  bool      `json:"available"`
}

type AirportSyncResponse struct {
	Imported int   `json:"imported"`
	Total    int64 `json:"total"`
}

func NewAircraftResponse(a gorm.Aircraft) AircraftResponse {
	return AircraftResponse{
		ID:           a.ID,
		Registration: a.Registration,
		Model:        a.Model,
		Manufacturer: a.Manufacturer,
		SeatCapacity: a.SeatCapacity,
	}
}

func NewAirportResponse(a gorm.Airport) AirportResponse {
	return AirportResponse{
		ID:        a.ID,
		IATA:      a.IATA,
		ICAO:      a.ICAO,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Timezone:  a.Timezone,
	}
}

func NewCrewMemberResponse(c gorm.CrewMember) CrewMemberResponse {
	return CrewMemberResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Role:      c.Role,
	}
}

func NewFlightResponse(f gorm.Flight) FlightResponse {
	crew := make([]CrewMemberResponse, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, NewCrewMemberResponse(c))
	}
	return FlightResponse{
		ID:               f.ID,
		FlightNumber:     f.FlightNumber,
		DepartureTime:    f.DepartureTime.UTC(),
		ArrivalTime:      f.ArrivalTime.UTC(),
		Aircraft:         NewAircraftResponse(f.Aircraft),
		DepartureAirport: NewAirportResponse(f.DepartureAirport),
		ArrivalAirport:   NewAirportResponse(f.ArrivalAirport),
		Crew:             crew,
	}
}

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	UpSince  time.Time                `json:"up_since"`
	Uptime   string                   `json:"uptime"`
}
