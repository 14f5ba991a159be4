package http

import "errors"

// Sentinel errors used by the authentication strategies when extracting
// credentials from the incoming request. Callers can match against them
// with [errors.Is].
var (
	// ErrInvalidRequestBody is returned by the local strategy when the
	// request body cannot be decoded as a JSON credentials object.
	ErrInvalidRequestBody = errors.New("invalid JSON request body")

	// ErrNoSessionCookie is returned by the cookie strategy when the
	// incoming request carries no session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie present")
)
