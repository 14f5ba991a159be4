package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ebazar/auth-service/internal/logger"
	"github.com/ebazar/auth-service/internal/service"
	"github.com/ebazar/auth-service/internal/utils"
)

// authenticate is an HTTP middleware constructor that enforces
// authentication via the given strategy.
//
// On a match it stores the verified principal under
// [utils.PrincipalCtxKey] and the session token under
// [utils.SessionTokenCtxKey] in the request context before delegating to
// the next handler, so downstream handlers never re-verify credentials.
//
// Rejections:
//   - HTTP 400 Bad Request when the request carries no usable credentials
//     at all ([service.ErrMissingCredentials], [ErrInvalidRequestBody]).
//   - HTTP 401 Unauthorized for every no-match outcome. The response body
//     is the same generic message regardless of the internal reason, so
//     the endpoint cannot be used to probe which emails are registered.
//   - HTTP 500 for infrastructure failures during verification.
func (h *Handler) authenticate(strategy authStrategy) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			result, err := strategy(r)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrMissingCredentials), errors.Is(err, ErrInvalidRequestBody):
					log.Err(err).Msg("request carries no usable credentials")
					http.Error(w, "email and password are required", http.StatusBadRequest)
					return
				case errors.Is(err, ErrNoSessionCookie):
					log.Debug().Err(err).Msg("no session cookie")
					http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
					return
				default:
					log.Err(err).Msg("verification failed with unexpected error")
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
			}

			if !result.Matched {
				// the reason stays in the logs, the client gets a uniform 401
				log.Warn().Str("reason", result.Reason).Msg("authentication rejected")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, utils.PrincipalCtxKey, result.Principal)
			ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, result.Token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
