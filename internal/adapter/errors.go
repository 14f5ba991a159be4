package adapter

import "errors"

var (
	// ErrOTPDeliveryFailed is returned when the mail gateway rejects the
	// message or cannot be reached. The caller reports a generic failure to
	// the client; the wrapped cause stays in the logs.
	ErrOTPDeliveryFailed = errors.New("error occurred in sending email")
)
