package config

import "errors"

var (
	// ErrMissingTokenSignKey is returned when no JWT signing secret was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrMissingDatabaseDSN is returned when no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
