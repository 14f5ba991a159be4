package validators

import "errors"

// Validation errors produced by credential validation. All of them are
// client-correctable: the HTTP boundary maps every one of them to 400.
// Callers match with [errors.Is].
var (
	// ErrEmailRequired is returned when the email field is empty.
	ErrEmailRequired = errors.New("email is required")

	// ErrEmailInvalid is returned when the email is not syntactically valid.
	ErrEmailInvalid = errors.New("email must be a valid email address")

	// ErrPasswordRequired is returned when the password field is empty.
	ErrPasswordRequired = errors.New("password is required")

	// ErrPasswordTooShort is returned when the password is shorter than
	// [MinPasswordLength] characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

	// ErrPasswordNeedsLetter is returned when the password contains no letter.
	ErrPasswordNeedsLetter = errors.New("password must contain at least one letter")

	// ErrPasswordNeedsDigit is returned when the password contains no digit.
	ErrPasswordNeedsDigit = errors.New("password must contain at least one number")
)
