package service

import (
	"github.com/ebazar/auth-service/internal/adapter"
	"github.com/ebazar/auth-service/internal/config"
	"github.com/ebazar/auth-service/internal/logger"
	"github.com/ebazar/auth-service/internal/store"
)

// Services aggregates the business-logic layer of the application.
type Services struct {
	AuthService
}

// NewServices wires every service to its collaborators.
func NewServices(storages *store.Storages, otpSender adapter.OTPSender, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, otpSender, cfg, logger),
	}
}
