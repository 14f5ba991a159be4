package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUser_Sanitize verifies that the sanitized projection keeps identity and
// profile attributes and carries no credential material.
func TestUser_Sanitize(t *testing.T) {
	u := User{
		UserID:       "e7b8a9a2-0b1c-4f6d-9a8e-0d3c2b1a4f5e",
		Email:        "a@b.com",
		PasswordHash: []byte{0x01, 0x02},
		PasswordSalt: []byte{0x03, 0x04},
		Role:         RoleUser,
		Name:         "Alice",
		Phone:        "5551234",
		Address:      json.RawMessage(`{"city":"Riga"}`),
	}

	public := u.Sanitize()

	assert.Equal(t, u.UserID, public.ID)
	assert.Equal(t, u.Email, public.Email)
	assert.Equal(t, RoleUser, public.Role)
	assert.Equal(t, u.Name, public.Name)
	assert.Equal(t, u.Phone, public.Phone)
	assert.Equal(t, u.Address, public.Address)
}

// TestUser_SanitizedJSONHasNoSecrets serializes the sanitized view and checks
// that no credential-related key can appear in the output.
func TestUser_SanitizedJSONHasNoSecrets(t *testing.T) {
	u := User{
		UserID:       "id-1",
		Email:        "a@b.com",
		PasswordHash: []byte("hash-bytes"),
		PasswordSalt: []byte("salt-bytes"),
		Role:         RoleAdmin,
	}

	raw, err := json.Marshal(u.Sanitize())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "password_hash")
	assert.NotContains(t, fields, "password_salt")
	assert.NotContains(t, fields, "salt")
	assert.NotContains(t, fields, "hash")
}

// TestUser_DirectJSONHasNoSecrets guards the User struct tags themselves:
// even if a User is serialized directly, hash and salt never appear.
func TestUser_DirectJSONHasNoSecrets(t *testing.T) {
	u := User{
		UserID:       "id-2",
		Email:        "a@b.com",
		PasswordHash: []byte("hash-bytes"),
		PasswordSalt: []byte("salt-bytes"),
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "hash-bytes")
	assert.NotContains(t, string(raw), "salt-bytes")
	assert.NotContains(t, string(raw), "id-2")
}
