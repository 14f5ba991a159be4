package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against them.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a new
	// account fails because the email is already registered. The unique
	// index on the users table is the source of truth: concurrent signups
	// with the same email race safely and exactly one of them gets this
	// error.
	ErrEmailAlreadyExists = errors.New("email is already in use")

	// ErrUserNotFound is returned when a lookup or update targets an
	// account that does not exist in the database.
	ErrUserNotFound = errors.New("no user was found")
)
