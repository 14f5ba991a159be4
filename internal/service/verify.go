package service

import "github.com/ebazar/auth-service/models"

// VerifyResult is the explicit three-way outcome of a credential check:
//
//   - infrastructure failure — the (VerifyResult, error) pair carries a
//     non-nil error and the result is meaningless;
//   - no match — Matched is false and Reason explains why for the logs
//     (the reason is never sent to the client, which always sees the same
//     low-information rejection);
//   - match — Matched is true, Principal holds the sanitized identity and,
//     for credential verification, Token holds the freshly issued session
//     token.
//
// Each caller must inspect the outcome explicitly; there is no error value
// that conflates "wrong password" with "database down".
type VerifyResult struct {
	// Principal is the sanitized identity of the matched account.
	// Valid only when Matched is true.
	Principal models.PublicUser

	// Token is the session token issued on a successful credential match.
	// The token-based verifier leaves it at the parsed token instead.
	Token models.Token

	// Matched reports whether verification succeeded.
	Matched bool

	// Reason is a short operator-facing explanation of a failed match.
	Reason string
}

// Match builds a successful verification result.
func Match(principal models.PublicUser, token models.Token) VerifyResult {
	return VerifyResult{Principal: principal, Token: token, Matched: true}
}

// NoMatch builds a failed verification result with an internal reason.
func NoMatch(reason string) VerifyResult {
	return VerifyResult{Reason: reason}
}
