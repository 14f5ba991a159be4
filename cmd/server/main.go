package main

import (
	"context"
	"fmt"

	"github.com/ebazar/auth-service/internal/adapter"
	"github.com/ebazar/auth-service/internal/config"
	httphandler "github.com/ebazar/auth-service/internal/handler/http"
	"github.com/ebazar/auth-service/internal/logger"
	"github.com/ebazar/auth-service/internal/server"
	"github.com/ebazar/auth-service/internal/service"
	"github.com/ebazar/auth-service/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ebazar-auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	otpSender := adapter.NewMailGateway(cfg.Mail, log)
	services := service.NewServices(storages, otpSender, cfg.Auth, log)
	handler := httphandler.NewHandler(services, cfg.Auth, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
