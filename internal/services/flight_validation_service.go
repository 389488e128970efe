package services

import (
	"context"
	"time"

	"flightdesk/dispatch/internal/logging"
	"flightdesk/dispatch/internal/metrics"
	"flightdesk/dispatch/internal/scheduling"
)

const (
	operationCreate = "create"
	operationUpdate = "update"
)

// FlightValidationService decides whether a proposed flight may be saved. It
// never writes; the caller persists the flight once a proposal passes.
type FlightValidationService struct {
	availability *AvailabilityService
	crew         *CrewCompositionService
	metrics      *metrics.MetricsRegistry
	now          func() time.Time
}

// NewFlightValidationService creates a validator using the wall clock
func NewFlightValidationService(
	availability *AvailabilityService,
	crew *CrewCompositionService,
	metricsReg *metrics.MetricsRegistry,
) *FlightValidationService {
	return &FlightValidationService{
		availability: availability,
		crew:         crew,
		metrics:      metricsReg,
		now:          time.Now,
	}
}

// WithClock returns a copy that reads the current time from now.
func (s *FlightValidationService) WithClock(now func() time.Time) *FlightValidationService {
	clone := *s
	clone.now = now
	return &clone
}

// ValidateForCreation runs, in order: times and route, crew composition,
// aircraft availability, then each crew member's availability in roster
// order. The first failing step's reason is returned.
func (s *FlightValidationService) ValidateForCreation(ctx context.Context, p scheduling.FlightProposal) (scheduling.Result, error) {
	return s.validate(ctx, operationCreate, p, nil)
}

// ValidateForUpdate is ValidateForCreation with flightID's own reservations
// ignored by the availability checks.
func (s *FlightValidationService) ValidateForUpdate(ctx context.Context, flightID uint, p scheduling.FlightProposal) (scheduling.Result, error) {
	return s.validate(ctx, operationUpdate, p, &flightID)
}

func (s *FlightValidationService) validate(ctx context.Context, operation string, p scheduling.FlightProposal, excludeFlightID *uint) (scheduling.Result, error) {
	window := p.Window()

	// filled by the composition step, read by the crew availability step
	var roster []scheduling.CrewMember

	res, err := scheduling.Evaluate(ctx,
		func(context.Context) (scheduling.Result, error) {
			return scheduling.CheckTimesAndRoute(p.DepartureTime, p.ArrivalTime, p.DepartureAirportID, p.ArrivalAirportID, s.now()), nil
		},
		func(ctx context.Context) (scheduling.Result, error) {
			res, members, err := s.crew.resolveAndCheck(ctx, p.CrewMemberIDs)
			roster = members
			return res, err
		},
		func(ctx context.Context) (scheduling.Result, error) {
			free, err := s.availability.IsAvailable(ctx, scheduling.ResourceAircraft, p.AircraftID, window, excludeFlightID)
			if err != nil {
				return scheduling.Result{}, err
			}
			if !free {
				return scheduling.Fail(scheduling.MsgAircraftUnavailable), nil
			}
			return scheduling.Pass(), nil
		},
		func(ctx context.Context) (scheduling.Result, error) {
			return s.checkCrewAvailability(ctx, p.CrewMemberIDs, roster, window, excludeFlightID)
		},
	)
	if err != nil {
		s.metrics.FlightValidation(operation, "error")
		logging.Error("Flight validation failed",
			"operation", operation,
			"flight_number", p.FlightNumber,
			"error", err.Error(),
		)
		return scheduling.Result{}, err
	}

	if !res.OK {
		s.metrics.FlightValidation(operation, "rejected")
		logging.Info("Flight proposal rejected",
			"operation", operation,
			"flight_number", p.FlightNumber,
			"reason", res.Reason,
		)
		return res, nil
	}

	s.metrics.FlightValidation(operation, "accepted")
	return res, nil
}

// checkCrewAvailability walks crewIDs in the order given and stops at the
// first member already flying during window.
func (s *FlightValidationService) checkCrewAvailability(
	ctx context.Context,
	crewIDs []uint,
	roster []scheduling.CrewMember,
	window scheduling.TimeWindow,
	excludeFlightID *uint,
) (scheduling.Result, error) {
	names := make(map[uint]string, len(roster))
	for _, m := range roster {
		names[m.ID] = m.DisplayName()
	}

	for _, id := range crewIDs {
		if err := ctx.Err(); err != nil {
			return scheduling.Result{}, err
		}
		free, err := s.availability.IsAvailable(ctx, scheduling.ResourceCrew, id, window, excludeFlightID)
		if err != nil {
			return scheduling.Result{}, err
		}
		if free {
			continue
		}
		name, ok := names[id]
		if !ok {
			name = scheduling.CrewFallbackName(id)
		}
		return scheduling.Fail(scheduling.CrewUnavailableMessage(name)), nil
	}
	return scheduling.Pass(), nil
}
