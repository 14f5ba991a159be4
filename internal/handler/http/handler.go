package http

import (
	"time"

	"github.com/ebazar/auth-service/internal/config"
	"github.com/ebazar/auth-service/internal/logger"
	"github.com/ebazar/auth-service/internal/service"
)

type Handler struct {
	services *service.Services

	// sessionDuration bounds the lifetime of the session cookie.
	sessionDuration time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}
