package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ebazar/auth-service/internal/logger"
	"github.com/ebazar/auth-service/internal/utils"
	"github.com/ebazar/auth-service/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and credential rotation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The identifier is generated here so the caller never supplies one; the
// INSERT returns all columns via a RETURNING clause, so the caller receives
// the canonical database representation of the new account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, user.Email, user.PasswordHash, user.PasswordSalt, user.Role,
		user.Name, user.Phone, []byte(user.Address), []byte(user.Addresses), []byte(user.Image))

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the account registered under the given email.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the account with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpdateCredentials replaces the password hash and salt of an existing
// account. Both columns are written by a single UPDATE, so a concurrent
// reader can never observe a new hash with an old salt.
//
// Error handling:
//   - Zero affected rows (account vanished) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateCredentials(ctx context.Context, userID string, passwordHash, passwordSalt []byte) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateCredentials, userID, passwordHash, passwordSalt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredentials").Msg("error: credentials update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredentials").Msg("error: rows affected unavailable")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// scanUser reads one user row. Nullable profile columns are normalised to
// their Go zero values.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var name, phone sql.NullString
	var address, addresses, image []byte

	if err := row.Scan(
		&user.UserID, &user.Email, &user.PasswordHash, &user.PasswordSalt, &user.Role,
		&name, &phone, &address, &addresses, &image, &user.CreatedAt,
	); err != nil {
		return models.User{}, err
	}

	user.Name = name.String
	user.Phone = phone.String
	user.Address = json.RawMessage(address)
	user.Addresses = json.RawMessage(addresses)
	user.Image = json.RawMessage(image)

	return user, nil
}
