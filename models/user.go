package models

import (
	"encoding/json"
	"time"
)

// Roles assignable to a user account. Role governs downstream authorization
// decisions made by other services; the auth core only stores and returns it.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a persisted account capable of authenticating.
// It carries both identity attributes and credential material.
// PasswordHash and PasswordSalt must never leave the server process;
// use [User.Sanitize] before serializing a user for a client.
type User struct {
	// UserID is the opaque unique identifier assigned at creation.
	// Immutable for the lifetime of the account.
	UserID string `json:"-"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash is the PBKDF2-derived verifier computed from the
	// plain-text password and PasswordSalt. Never stored or compared in
	// plain text and never serialized.
	PasswordHash []byte `json:"-"`

	// PasswordSalt is the per-account random salt. Regenerated on every
	// password reset; never serialized.
	PasswordSalt []byte `json:"-"`

	// Role is the authorization category of the account, one of
	// [RoleUser] or [RoleAdmin]. Defaults to [RoleUser] at signup.
	Role string `json:"role"`

	// Profile attributes. Mutable and not security-relevant.
	Name      string          `json:"name,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Address   json.RawMessage `json:"address,omitempty"`
	Addresses json.RawMessage `json:"addresses,omitempty"`
	Image     json.RawMessage `json:"image,omitempty"`

	// CreatedAt is the account creation timestamp, assigned by the store.
	CreatedAt time.Time `json:"-"`
}

// PublicUser is the sanitized projection of a [User] that is safe to return
// to clients. It deliberately has no fields for credential material, so a
// leak through this type is impossible by construction.
type PublicUser struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Name      string          `json:"name,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Address   json.RawMessage `json:"address,omitempty"`
	Addresses json.RawMessage `json:"addresses,omitempty"`
	Image     json.RawMessage `json:"image,omitempty"`
}

// Sanitize returns the outward-facing view of the user with all secret
// material stripped.
func (u User) Sanitize() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.Name,
		Phone:     u.Phone,
		Address:   u.Address,
		Addresses: u.Addresses,
		Image:     u.Image,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
