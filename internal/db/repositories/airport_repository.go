package repositories

import (
	"context"
	"errors"

	"flightdesk/dispatch/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByID returns nil, nil when the airport does not exist
func (r *AirportRepository) FindByID(ctx context.Context, id uint) (*gorm.Airport, error) {
	var airport gorm.Airport

	err := r.db.WithContext(ctx).First(&airport, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &airport, nil
}

// FindByIATA finds an airport by IATA code (case-insensitive)
func (r *AirportRepository) FindByIATA(ctx context.Context, iata string) (*gorm.Airport, error) {
	var airport gorm.Airport

	err := r.db.WithContext(ctx).
		Where("UPPER(iata) = UPPER(?)", iata).
		First(&airport).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &airport, nil
}

// List returns all airports ordered by IATA code
func (r *AirportRepository) List(ctx context.Context) ([]gorm.Airport, error) {
	var airports []gorm.Airport
	err := r.db.WithContext(ctx).Order("iata").Find(&airports).Error
	return airports, err
}

func (r *AirportRepository) Create(ctx context.Context, airport *gorm.Airport) error {
	return r.db.WithContext(ctx).Create(airport).Error
}

func (r *AirportRepository) Update(ctx context.Context, airport *gorm.Airport) error {
	return r.db.WithContext(ctx).Save(airport).Error
}

// Delete removes an airport unless a flight departs from or arrives at it
func (r *AirportRepository) Delete(ctx context.Context, id uint) error {
	var refs int64
	err := r.db.WithContext(ctx).Model(&gorm.Flight{}).
		Where("departure_airport_id = ? OR arrival_airport_id = ?", id, id).
		Count(&refs).Error
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}
	return r.db.WithContext(ctx).Delete(&gorm.Airport{}, id).Error
}

// UpsertBatch inserts airports, updating existing rows matched on IATA code
func (r *AirportRepository) UpsertBatch(ctx context.Context, airports []gorm.Airport) error {
	if len(airports) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "iata"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"icao",
				"name",
				"city",
				"country",
				"latitude",
				"longitude",
				"timezone",
				"updated_at",
			}),
		}).
		CreateInBatches(airports, 100).Error
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Airport{}).Count(&count).Error
	return count, err
}
