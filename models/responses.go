package models

// Message is a generic acknowledgement payload used by endpoints that have
// nothing more specific to return (OTP delivery, password reset).
type Message struct {
	Message string `json:"message"`
}

// LoggedOut is the body returned by the logout endpoint. The null identity
// marker mirrors the cleared session cookie.
type LoggedOut struct {
	ID *string `json:"id"`
}
