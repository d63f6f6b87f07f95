package database

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNoRows is the backend-agnostic missing-row sentinel IsNoRows checks
// against alongside the driver-specific ones.
var ErrNoRows = errors.New("no rows in result set")

// IsNoRows reports whether err is a missing-row condition from either
// backend. ScheduleRepository.FindByID/FindByUserAndDate use it to turn "no
// such schedule" into (nil, nil) rather than a propagated driver error.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, ErrNoRows)
}
