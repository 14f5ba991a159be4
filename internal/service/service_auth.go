package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebazar/auth-service/internal/adapter"
	"github.com/ebazar/auth-service/internal/config"
	"github.com/ebazar/auth-service/internal/logger"
	"github.com/ebazar/auth-service/internal/store"
	"github.com/ebazar/auth-service/internal/utils"
	"github.com/ebazar/auth-service/internal/validators"
	"github.com/ebazar/auth-service/models"
)

// authService is the concrete implementation of [AuthService].
// It handles account signup, credential verification, JWT session-token
// lifecycle, and password recovery using a UserRepository for persistence,
// PBKDF2-SHA256 for password hashing, and an OTPSender for recovery mail.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// otpSender delivers one-time passwords during password recovery.
	otpSender adapter.OTPSender

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected on parse.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new [AuthService] wired to the given
// repository and OTP sender, with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, otpSender adapter.OTPSender, cfg config.Auth, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		userRepository: userRepository,
		otpSender:      otpSender,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// SignUp creates a new account.
//
// It validates the email syntax and the password policy, derives the stored
// verifier from a freshly generated salt, and delegates persistence to the
// UserRepository. Role defaults to [models.RoleUser] unless the request
// names one explicitly. Salt and hash are handed to the store together, so
// no partially credentialed account can ever be persisted.
//
// Returns the persisted account (with a server-assigned UserID) or:
//   - a validators sentinel if the email or password violates policy.
//   - a wrapped [store.ErrEmailAlreadyExists] if the email is taken.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCredentials(req.Email, req.Password); err != nil {
		log.Err(err).Str("email", req.Email).Msg("signup validation failed")
		return models.User{}, err
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: utils.HashPassword(req.Password, salt),
		PasswordSalt: salt,
		Role:         role,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Addresses:    req.Addresses,
		Image:        req.Image,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// VerifyLocal authenticates submitted email/password credentials.
//
// It looks the account up by email, recomputes the candidate verifier with
// the stored salt, and compares it to the stored verifier in constant time.
// An unknown email and a failed comparison yield the same no-match result;
// only the internal Reason (and the logs) distinguish them, so the response
// cannot be used to enumerate registered addresses.
//
// On a match it issues a session token and returns the sanitized identity.
func (a *authService) VerifyLocal(ctx context.Context, creds models.Credentials) (VerifyResult, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return VerifyResult{}, ErrMissingCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", creds.Email).Msg("login attempt for unknown email")
			return NoMatch("no such user email"), nil
		}

		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return VerifyResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	candidateHash := utils.HashPassword(creds.Password, foundUser.PasswordSalt)
	if !utils.SecureCompare(candidateHash, foundUser.PasswordHash) {
		log.Warn().Str("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return NoMatch("invalid credentials"), nil
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("creation of token failed")
		return VerifyResult{}, err
	}

	return Match(foundUser.Sanitize(), token), nil
}

// VerifyToken validates a session token string and re-resolves the identity
// it names.
//
// Any parse or signature failure, and an identity that no longer exists in
// the store, all collapse into the same no-match result so that a caller
// holding a stale token learns nothing about account existence.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (VerifyResult, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return NoMatch("token is invalid"), nil
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("id", token.UserID).Msg("token names a vanished identity")
			return NoMatch("identity no longer exists"), nil
		}

		log.Err(err).Str("id", token.UserID).Msg("user search by id failed")
		return VerifyResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return Match(foundUser.Sanitize(), token), nil
}

// CreateToken issues a signed session token for the given account.
//
// The token is signed with the configured tokenSignKey and carries the
// configured tokenIssuer as the "iss" claim. It carries no expiry claim:
// the transport layer bounds the session's lifetime via the cookie.
//
// Returns the token model on success or a wrapped [ErrTokenCreationFailed].
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResetPassword replaces an account's credential pair with one derived from
// newPassword and a fresh salt.
//
// The caller is trusted to have authorized the reset (the OTP exchange
// happens before this call); the method itself requires no knowledge of the
// previous password.
//
// Returns:
//   - a validators sentinel if newPassword violates the signup policy.
//   - a wrapped [store.ErrUserNotFound] if the account vanished.
func (a *authService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidatePassword(newPassword); err != nil {
		log.Err(err).Str("id", userID).Msg("reset password validation failed")
		return err
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return fmt.Errorf("salt generation failed: %w", err)
	}

	hash := utils.HashPassword(newPassword, salt)

	if err := a.userRepository.UpdateCredentials(ctx, userID, hash, salt); err != nil {
		log.Err(err).Str("id", userID).Msg("credentials update ended with error")
		return fmt.Errorf("credentials update ended with error: %w", err)
	}

	return nil
}

// SendOTP verifies that email belongs to a known account and delegates
// delivery of the one-time password to the mail collaborator.
//
// Returns a wrapped [store.ErrUserNotFound] when the email is unknown; the
// recovery endpoint deliberately reveals address existence so the client can
// tell the user to check the address they typed.
func (a *authService) SendOTP(ctx context.Context, email, otp string) error {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("otp requested for unknown email")
		return fmt.Errorf("otp user lookup failed: %w", err)
	}

	if err := a.otpSender.SendOTP(ctx, foundUser.Email, otp); err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("otp delivery failed")
		return err
	}

	return nil
}
