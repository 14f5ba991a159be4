package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ebazar/auth-service/internal/logger"
	"github.com/ebazar/auth-service/internal/store"
	"github.com/ebazar/auth-service/internal/utils"
	"github.com/ebazar/auth-service/internal/validators"
	"github.com/ebazar/auth-service/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		switch {
		case isValidationError(err):
			log.Err(err).Msg("signup data rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("id", registeredUser.UserID).Msg("user successfully signed up")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, registeredUser.Sanitize(), http.StatusCreated)
}

// login runs after the local strategy middleware: at this point the
// principal is verified and the token is already issued, so the handler
// only establishes the session and echoes the identity.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context after authentication")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, ok := utils.GetSessionTokenFromContext(r.Context())
	if !ok {
		log.Error().Msg("no session token in context after authentication")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("id", principal.ID).Msg("user successfully logged in")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, principal, http.StatusOK)
}

// check runs after the cookie strategy middleware and echoes the verified
// identity, letting a client re-hydrate its session state on page load.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context after authentication")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}

// logout drops the session cookie. It succeeds whether or not the request
// carried a valid session: logging out twice is not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.LoggedOut{ID: nil}, http.StatusOK)
}

func (h *Handler) sendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.OTP == "" {
		log.Warn().Msg("otp request without email or code")
		http.Error(w, "email and OTP are required", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.SendOTP(ctx, req.Email, req.OTP); err != nil {
		status := statusFromError(err)
		switch status {
		case http.StatusNotFound:
			log.Err(err).Str("email", req.Email).Msg("otp requested for unknown email")
			http.Error(w, "no account with this email", http.StatusNotFound)
		default:
			log.Err(err).Str("email", req.Email).Msg("otp delivery failed")
			http.Error(w, http.StatusText(status), status)
		}
		return
	}

	utils.WriteJSON(w, models.Message{Message: "OTP sent"}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")
	if userID == "" {
		http.Error(w, "user id is required", http.StatusBadRequest)
		return
	}

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResetPassword(ctx, userID, req.Password); err != nil {
		switch {
		case isValidationError(err):
			log.Err(err).Str("id", userID).Msg("new password rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("id", userID).Msg("reset for unknown user")
			http.Error(w, "no such user", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", userID).Msg("unexpected error occurred during password reset")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", userID).Msg("password successfully reset")

	utils.WriteJSON(w, models.Message{Message: "password updated"}, http.StatusOK)
}

// isValidationError reports whether err is one of the credential-policy
// sentinels from the validators package.
func isValidationError(err error) bool {
	return errors.Is(err, validators.ErrEmailRequired) ||
		errors.Is(err, validators.ErrEmailInvalid) ||
		errors.Is(err, validators.ErrPasswordRequired) ||
		errors.Is(err, validators.ErrPasswordTooShort) ||
		errors.Is(err, validators.ErrPasswordNeedsLetter) ||
		errors.Is(err, validators.ErrPasswordNeedsDigit)
}
