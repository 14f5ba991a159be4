package service

import (
	"context"

	"github.com/ebazar/auth-service/models"
)

// AuthService is the authentication core: account creation, credential
// verification, session-token lifecycle, and password recovery.
type AuthService interface {
	// SignUp validates the request, hashes the password with a fresh salt,
	// persists the account (role defaulted to user), and returns the stored
	// record.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// VerifyLocal checks submitted email/password credentials and, on a
	// match, issues a session token. Absent credentials fail with
	// [ErrMissingCredentials]; an unknown email and a wrong password both
	// produce an indistinguishable no-match result.
	VerifyLocal(ctx context.Context, creds models.Credentials) (VerifyResult, error)

	// VerifyToken validates a session token and re-resolves the identity it
	// names against the store. A bad token and a vanished identity both
	// produce an indistinguishable no-match result.
	VerifyToken(ctx context.Context, tokenString string) (VerifyResult, error)

	// CreateToken issues a signed session token bound to the user's id.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ResetPassword validates the new password against the signup policy,
	// generates a fresh salt, and atomically replaces the stored
	// credential pair. Callers must have authorized the reset beforehand
	// (OTP verification happens outside this core).
	ResetPassword(ctx context.Context, userID, newPassword string) error

	// SendOTP checks that the email belongs to a known account and hands
	// the one-time password to the mail collaborator for delivery.
	SendOTP(ctx context.Context, email, otp string) error
}
