// Package validators implements input validation for the authentication
// flows: email syntax and the password policy shared by signup and password
// reset. Each rule has its own sentinel error so the transport layer can
// return a message the client can act on.
package validators

import (
	"regexp"
	"unicode"
)

// MinPasswordLength is the minimum accepted password length in characters.
const MinPasswordLength = 8

// emailPattern accepts addresses of the form local@domain.tld. It is a
// syntax gate, not a deliverability check; the unique index on the users
// table is the final arbiter of identity collisions.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks that email is non-empty and syntactically valid.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}

	return nil
}

// ValidatePassword checks the password policy: at least [MinPasswordLength]
// characters, at least one letter, and at least one digit. The same policy
// applies to signup and password reset.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter {
		return ErrPasswordNeedsLetter
	}
	if !hasDigit {
		return ErrPasswordNeedsDigit
	}

	return nil
}

// ValidateCredentials validates email and password together, returning the
// first violated rule.
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}

	return ValidatePassword(password)
}
