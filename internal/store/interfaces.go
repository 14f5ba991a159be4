package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/ebazar/auth-service/models"
)

// UserRepository is the persistence boundary of the authentication core.
//
// Implementations must guarantee that credential material (hash and salt)
// is written atomically: a user record never exists with one of the pair
// missing or stale.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] when the email is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email, or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given identifier, or
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateCredentials replaces the password hash and salt of an existing
	// account in a single atomic write, leaving all other fields untouched.
	// Returns [ErrUserNotFound] when the account no longer exists.
	UpdateCredentials(ctx context.Context, userID string, passwordHash, passwordSalt []byte) error
}
