package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ebazar/auth-service/internal/service"
	"github.com/ebazar/auth-service/internal/utils"
	"github.com/ebazar/auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeAuthenticate runs the authenticate middleware with a stub strategy
// and reports the recorded response plus whether next was reached.
func executeAuthenticate(h *Handler, strategy authStrategy) (*httptest.ResponseRecorder, bool, *http.Request) {
	var nextCalled bool
	var capturedReq *http.Request

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.authenticate(strategy)(next)
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr, nextCalled, capturedReq
}

func TestAuthenticate_MatchAttachesPrincipalAndToken(t *testing.T) {
	principal := models.PublicUser{ID: "user-1", Email: "alice@example.com"}
	token := stubToken("signed.jwt.token")

	strategy := func(_ *http.Request) (service.VerifyResult, error) {
		return service.Match(principal, token), nil
	}

	rr, nextCalled, capturedReq := executeAuthenticate(newTestHandler(), strategy)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, nextCalled)

	gotPrincipal, ok := utils.GetPrincipalFromContext(capturedReq.Context())
	require.True(t, ok)
	assert.Equal(t, principal, gotPrincipal)

	gotToken, ok := utils.GetSessionTokenFromContext(capturedReq.Context())
	require.True(t, ok)
	assert.Equal(t, token.SignedString, gotToken.SignedString)
}

func TestAuthenticate_NoMatchIsGeneric401(t *testing.T) {
	// internal reasons must not leak into the response body
	for _, reason := range []string{"no such user email", "invalid credentials", "token is invalid"} {
		strategy := func(_ *http.Request) (service.VerifyResult, error) {
			return service.NoMatch(reason), nil
		}

		rr, nextCalled, _ := executeAuthenticate(newTestHandler(), strategy)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
		assert.NotContains(t, rr.Body.String(), reason)
	}
}

func TestAuthenticate_MissingCredentialsIs400(t *testing.T) {
	strategy := func(_ *http.Request) (service.VerifyResult, error) {
		return service.VerifyResult{}, service.ErrMissingCredentials
	}

	rr, nextCalled, _ := executeAuthenticate(newTestHandler(), strategy)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, nextCalled)
}

func TestAuthenticate_NoSessionCookieIs401(t *testing.T) {
	strategy := func(_ *http.Request) (service.VerifyResult, error) {
		return service.VerifyResult{}, ErrNoSessionCookie
	}

	rr, nextCalled, _ := executeAuthenticate(newTestHandler(), strategy)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, nextCalled)
}

func TestAuthenticate_StrategyFailureIs500(t *testing.T) {
	strategy := func(_ *http.Request) (service.VerifyResult, error) {
		return service.VerifyResult{}, errors.New("connection refused")
	}

	rr, nextCalled, _ := executeAuthenticate(newTestHandler(), strategy)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, nextCalled)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}
