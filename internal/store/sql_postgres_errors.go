package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ConstraintViolation is the result type returned by [ClassifyConstraint].
// It tells repository code which well-known integrity constraint a failed
// statement tripped, so the failure can be mapped to the right sentinel
// error (and ultimately to the right HTTP status) instead of a generic 500.
type ConstraintViolation int

const (
	// NoViolation indicates that the error is not a recognised integrity
	// constraint violation. This is the default for nil errors, driver
	// errors without a PostgreSQL code, and all non-class-23 codes.
	NoViolation ConstraintViolation = iota

	// UniqueViolation indicates a unique_violation (23505): the statement
	// attempted to insert or update a row that duplicates a unique key,
	// e.g. an already-taken username or email.
	UniqueViolation

	// ForeignKeyViolation indicates a foreign_key_violation (23503): the
	// statement referenced a row that does not exist, e.g. inserting a
	// record for a user deleted concurrently.
	ForeignKeyViolation
)

// ClassifyConstraint attempts to unwrap err as a *pgconn.PgError and maps
// its PostgreSQL error code to a [ConstraintViolation].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyConstraint(err error) ConstraintViolation {
	if err == nil {
		return NoViolation
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NoViolation
	}

	switch pgErr.Code {
	// Class 23 — integrity constraint violations
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	}

	return NoViolation
}
