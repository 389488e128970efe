// Package dbtest provides an in-memory SQLite database with the dispatch
// schema for tests.
package dbtest

import (
	"testing"

	"flightdesk/dispatch/internal/db"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a migrated in-memory database as both a GORM handle and an
// sqlx handle sharing one connection.
func Open(t testing.TB) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	// Every new connection to :memory: is a fresh empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return gdb, sqlx.NewDb(sqlDB, "sqlite3")
}
