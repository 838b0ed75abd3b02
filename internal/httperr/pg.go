package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsUniqueViolation reports whether err is a Postgres unique or exclusion
// constraint failure. The booking path relies on the partial unique index
// on (barber_id, appointment_date) to close the check-then-insert race and
// translates this into a ConflictError.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgExclusionViolation
	}
	return false
}
