package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ebazar/auth-service/internal/service"
	"github.com/ebazar/auth-service/models"
)

// authStrategy extracts credentials of one particular kind from an incoming
// request and verifies them against the service layer.
//
// A strategy distinguishes three outcomes:
//   - an error — the credentials could not be extracted or verified at all
//     (malformed request, missing fields, infrastructure failure);
//   - a no-match result — the credentials were well-formed but name no
//     valid identity;
//   - a match — Principal and Token on the result are populated.
type authStrategy func(r *http.Request) (service.VerifyResult, error)

// localStrategy authenticates email/password credentials submitted as the
// JSON request body.
func (h *Handler) localStrategy(r *http.Request) (service.VerifyResult, error) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return service.VerifyResult{}, errors.Join(ErrInvalidRequestBody, err)
	}

	return h.services.AuthService.VerifyLocal(r.Context(), creds)
}

// jwtCookieStrategy authenticates the signed session token carried by the
// session cookie.
func (h *Handler) jwtCookieStrategy(r *http.Request) (service.VerifyResult, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return service.VerifyResult{}, ErrNoSessionCookie
	}

	return h.services.AuthService.VerifyToken(r.Context(), cookie.Value)
}
