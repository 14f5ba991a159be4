package http

import (
	"errors"
	"net/http"

	"github.com/ebazar/auth-service/internal/adapter"
	"github.com/ebazar/auth-service/internal/service"
	"github.com/ebazar/auth-service/internal/store"
	"github.com/ebazar/auth-service/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrEmailRequired:       http.StatusBadRequest,
	validators.ErrEmailInvalid:        http.StatusBadRequest,
	validators.ErrPasswordRequired:    http.StatusBadRequest,
	validators.ErrPasswordTooShort:    http.StatusBadRequest,
	validators.ErrPasswordNeedsLetter: http.StatusBadRequest,
	validators.ErrPasswordNeedsDigit:  http.StatusBadRequest,

	service.ErrMissingCredentials:  http.StatusBadRequest,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,

	adapter.ErrOTPDeliveryFailed: http.StatusBadGateway,

	ErrInvalidRequestBody: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
