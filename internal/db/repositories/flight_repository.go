package repositories

import (
	"context"
	"errors"
	"fmt"

	"flightdesk/dispatch/internal/models/gorm"
	"flightdesk/dispatch/internal/scheduling"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlightRepository struct {
	db *gormlib.DB
}

// NewFlightRepository creates a new GORM-based flight repository
func NewFlightRepository(db *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

func (r *FlightRepository) withDetails(ctx context.Context) *gormlib.DB {
	return r.db.WithContext(ctx).
		Preload("Aircraft").
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Preload("Crew", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("crew_members.id")
		})
}

// FindByID loads a flight with its aircraft, airports and crew. Returns nil,
// nil when the flight does not exist.
func (r *FlightRepository) FindByID(ctx context.Context, id uint) (*gorm.Flight, error) {
	var flight gorm.Flight

	err := r.withDetails(ctx).First(&flight, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &flight, nil
}

// Exists reports whether a flight with id is stored.
func (r *FlightRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Flight{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List returns flights ordered by departure. When window is set only flights
// overlapping it are returned.
func (r *FlightRepository) List(ctx context.Context, window *scheduling.TimeWindow) ([]gorm.Flight, error) {
	var flights []gorm.Flight

	q := r.withDetails(ctx).Order("departure_time, id")
	if window != nil {
		q = q.Where("departure_time < ? AND arrival_time > ?", window.End.UTC(), window.Start.UTC())
	}
	if err := q.Find(&flights).Error; err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

// Create inserts the flight and its crew rows in one transaction.
func (r *FlightRepository) Create(ctx context.Context, flight *gorm.Flight, crewIDs []uint) error {
	normalizeTimes(flight)
	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Omit(clause.Associations).Create(flight).Error; err != nil {
			return err
		}
		return insertCrewRows(tx, flight.ID, crewIDs)
	})
	return translateScheduleError(err)
}

// Update saves the flight's fields and replaces its crew rows in one transaction.
func (r *FlightRepository) Update(ctx context.Context, flight *gorm.Flight, crewIDs []uint) error {
	normalizeTimes(flight)
	err := r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Omit(clause.Associations).Save(flight).Error; err != nil {
			return err
		}
		if err := tx.Where("flight_id = ?", flight.ID).Delete(&gorm.FlightCrewMember{}).Error; err != nil {
			return err
		}
		return insertCrewRows(tx, flight.ID, crewIDs)
	})
	return translateScheduleError(err)
}

// Delete removes a flight and its crew rows.
func (r *FlightRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Where("flight_id = ?", id).Delete(&gorm.FlightCrewMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&gorm.Flight{}, id).Error
	})
}

func insertCrewRows(tx *gormlib.DB, flightID uint, crewIDs []uint) error {
	if len(crewIDs) == 0 {
		return nil
	}
	rows := make([]gorm.FlightCrewMember, 0, len(crewIDs))
	seen := make(map[uint]bool, len(crewIDs))
	for _, id := range crewIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, gorm.FlightCrewMember{FlightID: flightID, CrewMemberID: id})
	}
	return tx.Create(&rows).Error
}

func normalizeTimes(flight *gorm.Flight) {
	flight.DepartureTime = flight.DepartureTime.UTC()
	flight.ArrivalTime = flight.ArrivalTime.UTC()
}
