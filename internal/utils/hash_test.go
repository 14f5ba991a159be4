package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashPassword_Deterministic verifies that hashing the same password with
// the same salt twice yields identical bytes.
func TestHashPassword_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	first := HashPassword("abcd1234", salt)
	second := HashPassword("abcd1234", salt)

	require.Len(t, first, HashKeyLength)
	assert.Equal(t, first, second)
}

// TestHashPassword_SaltChangesVerifier verifies that the same password hashed
// with a different salt produces a different verifier.
func TestHashPassword_SaltChangesVerifier(t *testing.T) {
	first := HashPassword("abcd1234", []byte("0123456789abcdef"))
	second := HashPassword("abcd1234", []byte("fedcba9876543210"))

	assert.NotEqual(t, first, second)
}

// TestHashPassword_PasswordChangesVerifier verifies that different passwords
// with the same salt produce different verifiers.
func TestHashPassword_PasswordChangesVerifier(t *testing.T) {
	salt := []byte("0123456789abcdef")

	assert.NotEqual(t, HashPassword("abcd1234", salt), HashPassword("wrong1234", salt))
}

// TestGenerateSalt verifies salt length and that consecutive salts differ.
func TestGenerateSalt(t *testing.T) {
	first, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, first, SaltLength)

	second, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestSecureCompare exercises the constant-time comparison on equal inputs
// and on inputs differing at the first byte, the last byte, and in length.
// Mismatch position must not change the outcome.
func TestSecureCompare(t *testing.T) {
	base := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	firstByteOff := append([]byte{}, base...)
	firstByteOff[0] = 'b'

	lastByteOff := append([]byte{}, base...)
	lastByteOff[len(lastByteOff)-1] = 'b'

	tests := []struct {
		name string
		a, b []byte
		want bool
	}{
		{name: "equal", a: base, b: append([]byte{}, base...), want: true},
		{name: "first byte differs", a: base, b: firstByteOff, want: false},
		{name: "last byte differs", a: base, b: lastByteOff, want: false},
		{name: "different length", a: base, b: base[:len(base)-1], want: false},
		{name: "both empty", a: []byte{}, b: []byte{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureCompare(tt.a, tt.b))
		})
	}
}
