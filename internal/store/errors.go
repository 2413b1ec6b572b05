package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT or UPDATE on the users
	// table trips the unique constraint on username or email.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrRecordOwnerMissing is returned when inserting a registro fails the
	// foreign-key check on usuario_id, meaning the owning user no longer
	// exists in the database.
	ErrRecordOwnerMissing = errors.New("record owner does not exist")
)
