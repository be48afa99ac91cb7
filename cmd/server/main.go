package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/paroquia-on/server/internal/adapter"
	"github.com/paroquia-on/server/internal/config"
	"github.com/paroquia-on/server/internal/handler"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/server"
	"github.com/paroquia-on/server/internal/service"
	"github.com/paroquia-on/server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("paroquia-on-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	// The suggestion endpoint is optional: without a configured base URL the
	// action service reports it unavailable instead of failing startup.
	suggester, err := adapter.NewHTTPSuggestAdapter(cfg.Suggest, log)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotConfigured) {
			log.Fatal().Err(err).Msg("error creating suggestion adapter")
		}
		log.Info().Msg("objective suggestion service is not configured")
	}

	services := service.NewServices(storages, suggester, *cfg, log)
	handlers := handler.NewHandlers(services, log)

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
