package http

import (
	"net/http"
	"time"

	"github.com/ebazar/auth-service/models"
)

// sessionCookieName is the cookie that carries the signed session token.
const sessionCookieName = "jwt"

// setSessionCookie attaches the signed session token to the response.
//
// The cookie is HttpOnly so browser scripts cannot read the token, and its
// Expires attribute is the only thing bounding the session lifetime: the
// token itself carries no expiry claim.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie overwrites the session cookie with an already expired
// empty one, instructing the browser to drop it.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
