package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrInUse is returned when deleting an entity still referenced by flights.
	ErrInUse = errors.New("record is referenced by existing flights")

	// ErrScheduleConflict is returned when the database rejects an overlapping
	// aircraft reservation that slipped past the availability check.
	ErrScheduleConflict = errors.New("aircraft already reserved for an overlapping window")
)

const pgExclusionViolation = "23P01"

func translateScheduleError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
		return ErrScheduleConflict
	}
	return err
}
