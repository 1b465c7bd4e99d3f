package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpapi "github.com/dataspace-hub/dataspace-hub/internal/api/http"
	appidentity "github.com/dataspace-hub/dataspace-hub/internal/application/identity"
	"github.com/dataspace-hub/dataspace-hub/internal/application/monitor"
	policyengine "github.com/dataspace-hub/dataspace-hub/internal/application/policy"
	"github.com/dataspace-hub/dataspace-hub/internal/application/protocol"
	"github.com/dataspace-hub/dataspace-hub/internal/application/validation"
	"github.com/dataspace-hub/dataspace-hub/internal/config"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
	"github.com/dataspace-hub/dataspace-hub/internal/infrastructure/memory"
	"github.com/dataspace-hub/dataspace-hub/internal/infrastructure/postgres"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()

	var store negotiation.Store
	switch cfg.StoreBackend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db error: %v", err)
		}
		defer pool.Close()
		if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migration error: %v", err)
		}
		store = postgres.NewNegotiationStore(pool, cfg.LeaseTTL)
	case "memory":
		store = memory.NewStore(cfg.LeaseTTL)
	}

	catalog := memory.NewCatalog()
	if cfg.CatalogFile != "" {
		if err := catalog.LoadFile(cfg.CatalogFile); err != nil {
			log.Fatalf("catalog error: %v", err)
		}
	}

	// services
	identitySvc := appidentity.NewService(cfg.TokenSecret, logger)
	engine := policyengine.NewEngine(logger)
	validator := validation.NewService(catalog, engine, logger)

	observable := protocol.NewObservable(logger)
	observable.RegisterListener(monitor.NewListener(logger))

	protocolSvc := protocol.NewService(store, identitySvc, validator, catalog, observable, logger)

	// API server
	apiServer := httpapi.NewServer(protocolSvc, logger)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// background loop: periodic gauge of live negotiations
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			ns, err := protocolSvc.GetNegotiations(context.Background(), negotiation.QuerySpec{Limit: 1000})
			if err != nil {
				logger.Warn().Err(err).Msg("negotiation gauge failed")
				continue
			}
			active := 0
			for _, n := range ns {
				if !n.State.IsTerminal() {
					active++
				}
			}
			logger.Info().Int("total", len(ns)).Int("active", active).Msg("negotiation gauge")
		}
	}()

	// start server
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Str("participant", cfg.ParticipantID).Msg("connector started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
}
