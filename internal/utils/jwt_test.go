package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "ebazar-auth"
	testSignKey = "test-sign-key"
	testUserID  = "018f3a9e-7c2b-7d3e-9a1b-2c3d4e5f6a7b"
)

// TestGenerateJWTToken_RoundTrip verifies that a freshly issued token parses
// back to the same user identifier.
func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
}

// TestGenerateJWTToken_InvalidParams verifies parameter validation.
func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		userID  string
		signKey string
	}{
		{name: "empty issuer", issuer: "", userID: testUserID, signKey: testSignKey},
		{name: "empty user id", issuer: testIssuer, userID: "", signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, userID: testUserID, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.signKey)
			assert.Error(t, err)
		})
	}
}

// TestValidateAndParseJWTToken_TamperedToken verifies that flipping a single
// byte anywhere in the compact serialization is rejected.
func TestValidateAndParseJWTToken_TamperedToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, testSignKey)
	require.NoError(t, err)

	raw := token.SignedString
	// Mutate one character of the payload segment.
	payloadStart := strings.Index(raw, ".") + 1
	mutated := []byte(raw)
	if mutated[payloadStart] == 'A' {
		mutated[payloadStart] = 'B'
	} else {
		mutated[payloadStart] = 'A'
	}

	_, err = ValidateAndParseJWTToken(string(mutated), testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongKey verifies signature enforcement.
func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongIssuer verifies the issuer claim check.
func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("some-other-service", testUserID, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Malformed verifies that garbage input fails.
func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.jwt", testSignKey, testIssuer)
	assert.Error(t, err)
}
