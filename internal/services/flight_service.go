package services

import (
	"context"
	"errors"
	"fmt"

	"flightdesk/dispatch/internal/logging"
	"flightdesk/dispatch/internal/models/gorm"
	"flightdesk/dispatch/internal/scheduling"
)

// ErrFlightNotFound is returned when updating a flight that does not exist.
var ErrFlightNotFound = errors.New("flight not found")

// FlightStore persists flights together with their crew rows.
type FlightStore interface {
	FindByID(ctx context.Context, id uint) (*gorm.Flight, error)
	Create(ctx context.Context, flight *gorm.Flight, crewIDs []uint) error
	Update(ctx context.Context, flight *gorm.Flight, crewIDs []uint) error
}

// FlightService saves flights that pass validation. A rejected proposal is
// returned as a failed Result and nothing is written.
type FlightService struct {
	flights   FlightStore
	crew      CrewResolver
	validator *FlightValidationService
}

func NewFlightService(flights FlightStore, crew CrewResolver, validator *FlightValidationService) *FlightService {
	return &FlightService{
		flights:   flights,
		crew:      crew,
		validator: validator,
	}
}

// Schedule validates p for creation and inserts it.
func (s *FlightService) Schedule(ctx context.Context, p scheduling.FlightProposal) (*gorm.Flight, scheduling.Result, error) {
	res, err := s.validator.ValidateForCreation(ctx, p)
	if err != nil || !res.OK {
		return nil, res, err
	}

	crewIDs, err := s.rosterIDs(ctx, p.CrewMemberIDs)
	if err != nil {
		return nil, scheduling.Result{}, err
	}

	flight := &gorm.Flight{}
	applyProposal(flight, p)
	if err := s.flights.Create(ctx, flight, crewIDs); err != nil {
		return nil, scheduling.Result{}, err
	}

	logging.Info("Flight scheduled",
		"flight_id", flight.ID,
		"flight_number", flight.FlightNumber,
		"aircraft_id", flight.AircraftID,
		"crew", len(crewIDs),
	)
	return s.reload(ctx, flight.ID, res)
}

// Reschedule validates p as an update of flightID, so the flight does not
// conflict with itself, and saves it.
func (s *FlightService) Reschedule(ctx context.Context, flightID uint, p scheduling.FlightProposal) (*gorm.Flight, scheduling.Result, error) {
	existing, err := s.flights.FindByID(ctx, flightID)
	if err != nil {
		return nil, scheduling.Result{}, err
	}
	if existing == nil {
		return nil, scheduling.Result{}, ErrFlightNotFound
	}

	res, err := s.validator.ValidateForUpdate(ctx, flightID, p)
	if err != nil || !res.OK {
		return nil, res, err
	}

	crewIDs, err := s.rosterIDs(ctx, p.CrewMemberIDs)
	if err != nil {
		return nil, scheduling.Result{}, err
	}

	applyProposal(existing, p)
	if err := s.flights.Update(ctx, existing, crewIDs); err != nil {
		return nil, scheduling.Result{}, err
	}

	logging.Info("Flight rescheduled",
		"flight_id", existing.ID,
		"flight_number", existing.FlightNumber,
		"aircraft_id", existing.AircraftID,
		"crew", len(crewIDs),
	)
	return s.reload(ctx, existing.ID, res)
}

// rosterIDs keeps only ids with a crew record, matching what validation saw.
func (s *FlightService) rosterIDs(ctx context.Context, ids []uint) ([]uint, error) {
	members, err := s.crew.ResolveCrewMembers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roster: %w", err)
	}
	out := make([]uint, 0, len(members))
	for _, m := range members {
		out = append(out, m.ID)
	}
	return out, nil
}

func (s *FlightService) reload(ctx context.Context, id uint, res scheduling.Result) (*gorm.Flight, scheduling.Result, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		return nil, scheduling.Result{}, err
	}
	if flight == nil {
		return nil, scheduling.Result{}, ErrFlightNotFound
	}
	return flight, res, nil
}

func applyProposal(flight *gorm.Flight, p scheduling.FlightProposal) {
	flight.FlightNumber = p.FlightNumber
	flight.DepartureTime = p.DepartureTime.UTC()
	flight.ArrivalTime = p.ArrivalTime.UTC()
	flight.AircraftID = p.AircraftID
	flight.DepartureAirportID = p.DepartureAirportID
	flight.ArrivalAirportID = p.ArrivalAirportID
}
