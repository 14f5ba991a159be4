// Package adapter contains clients for external collaborators of the auth
// core. The only collaborator today is the mail gateway that delivers
// one-time passwords during password recovery.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/otp_sender_mock.go -package=mock

import "context"

// OTPSender delivers a one-time password to an account's email address.
// The auth core treats delivery as opaque: it neither generates the OTP nor
// verifies it, it only hands the message to the collaborator.
type OTPSender interface {
	SendOTP(ctx context.Context, email, otp string) error
}
