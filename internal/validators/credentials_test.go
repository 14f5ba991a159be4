package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "valid", email: "a@b.com", wantErr: nil},
		{name: "valid with subdomain", email: "user@mail.example.org", wantErr: nil},
		{name: "empty", email: "", wantErr: ErrEmailRequired},
		{name: "no at sign", email: "ab.com", wantErr: ErrEmailInvalid},
		{name: "no domain dot", email: "a@bcom", wantErr: ErrEmailInvalid},
		{name: "whitespace", email: "a @b.com", wantErr: ErrEmailInvalid},
		{name: "double at", email: "a@@b.com", wantErr: ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "abcd1234", wantErr: nil},
		{name: "valid mixed", password: "N3wpassword", wantErr: nil},
		{name: "empty", password: "", wantErr: ErrPasswordRequired},
		{name: "seven chars", password: "short12", wantErr: ErrPasswordTooShort},
		{name: "digits only", password: "12345678", wantErr: ErrPasswordNeedsLetter},
		{name: "letters only", password: "abcdefgh", wantErr: ErrPasswordNeedsDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, ValidateCredentials("a@b.com", "abcd1234"))
	assert.ErrorIs(t, ValidateCredentials("", "abcd1234"), ErrEmailRequired)
	assert.ErrorIs(t, ValidateCredentials("a@b.com", "short1"), ErrPasswordTooShort)
}
