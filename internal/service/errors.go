package service

import "errors"

var (
	// ErrMissingCredentials is returned by credential verification when the
	// email or password field is absent from the request. Unlike a failed
	// match this is a client-correctable 400-class condition.
	ErrMissingCredentials = errors.New("missing email or password")

	// ErrTokenCreationFailed is returned when signing a session token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
