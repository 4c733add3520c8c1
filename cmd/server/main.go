package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-config/internal/adapter"
	"github.com/MKhiriev/go-chat-config/internal/catalog"
	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/handler"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/server"
	"github.com/MKhiriev/go-chat-config/internal/service"
	"github.com/MKhiriev/go-chat-config/internal/store"
	"github.com/MKhiriev/go-chat-config/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-chat-config-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repositories, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer func() {
		if err := repositories.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	cat := catalog.Platform()
	if err = service.VerifySchema(ctx, cat, repositories.ApplicationConfigRepository); err != nil {
		log.Fatal().Err(err).Msg("configuration catalog does not match database schema")
	}

	companyRegistry, err := adapter.NewCompanyRegistry(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating company registry client")
	}

	services, err := service.NewServices(cat, repositories, companyRegistry, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	go workers.NewWorkers(cfg.Workers, repositories, log).Run(ctx)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
