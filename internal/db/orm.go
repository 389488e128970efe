package db

import (
	"fmt"

	"flightdesk/dispatch/internal/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

// GormConfig is shared by the Postgres connection and test databases so that
// driver errors are translated the same way (gorm.ErrDuplicatedKey etc.).
func GormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), GormConfig())

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	logging.Info("Connected to Postgres via GORM")
	return db, nil
}
