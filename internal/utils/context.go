// Package utils provides general-purpose helper utilities
// used across different parts of the application: type-safe context keys,
// password hashing, constant-time comparison, HTTP response writing,
// JWT token generation and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/ebazar/auth-service/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated, sanitized user
// is stored in the request context by the authentication middleware.
var PrincipalCtxKey = contextKey("principal")

// SessionTokenCtxKey is the key under which the freshly issued session token
// is stored in the request context by the credential (local) authenticator,
// so the login handler can set the session cookie without re-issuing it.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetPrincipalFromContext retrieves the authenticated user from the context.
//
// Returns the sanitized user and an ok flag:
//   - ok == true  — a principal was attached by the authentication middleware
//   - ok == false — the request is unauthenticated or the value has an
//     unexpected type
func GetPrincipalFromContext(ctx context.Context) (models.PublicUser, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.PublicUser)
	return principal, ok
}

// GetSessionTokenFromContext retrieves the session token issued during
// credential verification from the context.
func GetSessionTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(models.Token)
	return token, ok
}
