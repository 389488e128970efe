package repositories

import (
	"context"
	"errors"

	"flightdesk/dispatch/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

type AircraftRepository struct {
	db *gormlib.DB
}

// NewAircraftRepository creates a new GORM-based aircraft repository
func NewAircraftRepository(db *gormlib.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// FindByID returns nil, nil when the aircraft does not exist
func (r *AircraftRepository) FindByID(ctx context.Context, id uint) (*gorm.Aircraft, error) {
	var aircraft gorm.Aircraft

	err := r.db.WithContext(ctx).First(&aircraft, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &aircraft, nil
}

// List returns the fleet ordered by registration
func (r *AircraftRepository) List(ctx context.Context) ([]gorm.Aircraft, error) {
	var fleet []gorm.Aircraft
	err := r.db.WithContext(ctx).Order("registration").Find(&fleet).Error
	return fleet, err
}

func (r *AircraftRepository) Create(ctx context.Context, aircraft *gorm.Aircraft) error {
	return r.db.WithContext(ctx).Create(aircraft).Error
}

func (r *AircraftRepository) Update(ctx context.Context, aircraft *gorm.Aircraft) error {
	return r.db.WithContext(ctx).Save(aircraft).Error
}

// Delete removes an aircraft unless a flight is scheduled on it
func (r *AircraftRepository) Delete(ctx context.Context, id uint) error {
	var refs int64
	if err := r.db.WithContext(ctx).Model(&gorm.Flight{}).Where("aircraft_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}
	return r.db.WithContext(ctx).Delete(&gorm.Aircraft{}, id).Error
}
