package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Key-derivation parameters for password hashing. These are server-side
// constants, never taken from request input. Changing them invalidates all
// stored verifiers, so treat them as part of the persisted data format.
const (
	// HashIterations is the PBKDF2 iteration count. Deliberately expensive
	// to slow down offline brute-force attempts against a leaked database.
	HashIterations = 310000

	// HashKeyLength is the length of the derived verifier in bytes.
	HashKeyLength = 32

	// SaltLength is the number of random bytes generated per account.
	SaltLength = 16
)

// HashPassword derives the stored password verifier from a plain-text
// password and a per-account salt using PBKDF2-SHA256.
//
// The function is pure: identical inputs always produce identical output,
// and it performs no I/O. Callers are responsible for supplying a salt
// produced by [GenerateSalt].
func HashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, HashIterations, HashKeyLength, sha256.New)
}

// GenerateSalt returns [SaltLength] fresh random bytes from the operating
// system's CSPRNG. A new salt must be generated for every account creation
// and every password reset; salts are never reused.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("error generating random salt: %w", err)
	}

	return salt, nil
}

// SecureCompare reports whether two byte slices are equal using a
// constant-time comparison. Unlike bytes.Equal it does not short-circuit on
// the first mismatching byte, so the comparison time leaks nothing about
// how long the matching prefix is.
//
// Inputs of different lengths compare unequal; for password verifiers both
// sides are always [HashKeyLength] bytes.
func SecureCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
