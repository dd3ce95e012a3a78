package main

import (
	"context"
	"net/http"
	"os"

	"stratasample/adapters/api"
	"stratasample/adapters/postgres"
	"stratasample/adapters/rng"
	"stratasample/app"
	"stratasample/internal"
	"stratasample/internal/config"
	"stratasample/internal/testkit"
	"stratasample/ports"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logger := internal.DefaultLogger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	var ledger ports.LedgerPort
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database: %v", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.Migrate(context.Background(), db); err != nil {
			logger.Error("failed to migrate: %v", err)
			os.Exit(1)
		}
		ledger = postgres.NewAuditLedger(db)
		logger.Info("audit ledger: postgres")
	} else {
		ledger = testkit.NewInMemoryLedger()
		logger.Warn("DATABASE_URL not set, audit records are held in memory only")
	}

	service := app.NewRunService(rng.New(), ledger)
	server := api.NewServer(service, ledger)

	addr := ":" + cfg.Server.Port
	logger.Info("listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}
