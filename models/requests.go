package models

import "encoding/json"

// SignUpRequest is the payload accepted by the signup endpoint.
// Password travels in plain text over the transport and is hashed before it
// ever reaches the store.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Optional profile attributes copied verbatim onto the new account.
	Name      string          `json:"name,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Address   json.RawMessage `json:"address,omitempty"`
	Addresses json.RawMessage `json:"addresses,omitempty"`
	Image     json.RawMessage `json:"image,omitempty"`

	// Role is honoured only when explicitly provided; otherwise the account
	// is created with [RoleUser].
	Role string `json:"role,omitempty"`
}

// Credentials is the payload accepted by the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SendOTPRequest is the payload accepted by the send-OTP endpoint.
// The one-time password itself is generated by the caller; the server only
// checks the address belongs to a known account and forwards the message to
// the mail gateway.
type SendOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"OTP"`
}

// ResetPasswordRequest is the payload accepted by the password-reset
// endpoint. The target account is addressed by the URL path, not the body.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}
