package db

import (
	"fmt"

	"flightdesk/dispatch/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// postgresConstraints close the check-then-act window of availability checks
// for aircraft: two flights on the same aircraft may not hold overlapping
// open intervals, whatever the application decided.
var postgresConstraints = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'flights_aircraft_no_overlap') THEN
			ALTER TABLE flights ADD CONSTRAINT flights_aircraft_no_overlap
				EXCLUDE USING gist (aircraft_id WITH =, tstzrange(departure_time, arrival_time, '()') WITH &&);
		END IF;
	END $$`,
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gormlib.DB) error {
	if err := db.SetupJoinTable(&gorm.Flight{}, "Crew", &gorm.FlightCrewMember{}); err != nil {
		return fmt.Errorf("failed to set up flight crew join table: %w", err)
	}

	if err := db.AutoMigrate(
		&gorm.Airport{},
		&gorm.Aircraft{},
		&gorm.CrewMember{},
		&gorm.Flight{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, stmt := range postgresConstraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply postgres constraint: %w", err)
		}
	}
	return nil
}
