package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---- Route registration ----

func TestInit_RoutesRegistered(t *testing.T) {
	router := newHandlerWithAuth(t, &mockAuthService{}).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/signup"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/auth/check"},
		{http.MethodGet, "/api/auth/logout"},
		{http.MethodPost, "/api/auth/sendOTP"},
		{http.MethodPatch, "/api/auth/resetpassword/user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code,
				"method should be allowed: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected route: 401 without a session cookie ----

func TestInit_CheckRequiresSession(t *testing.T) {
	router := newHandlerWithAuth(t, &mockAuthService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ---- Trace ID: every response carries the header ----

func TestInit_ResponsesCarryTraceID(t *testing.T) {
	router := newHandlerWithAuth(t, &mockAuthService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
