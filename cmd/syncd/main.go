// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command syncd runs the worldsync daemon: a synchronization manager
// driven over the HTTP control API, with an optional SQLite event journal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/handler"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/metrics"
	"github.com/MKhiriev/worldsync/internal/server"
	"github.com/MKhiriev/worldsync/internal/service"
	"github.com/MKhiriev/worldsync/internal/store"
	"github.com/MKhiriev/worldsync/internal/transport"
	"github.com/MKhiriev/worldsync/internal/workers"
	"github.com/MKhiriev/worldsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build.String())

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewLogger("syncd", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	metrics.Register()

	manager, err := service.NewManager(newTransportFactory(cfg.Sync, log), cfg.Sync, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating synchronization manager")
	}

	var (
		storages *store.Storages
		db       *store.DB
	)
	if cfg.Storage.DB.DSN != "" {
		db, err = store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error opening event journal")
		}
		storages = store.NewStorages(db, log)

		manager.OnSynchronizerAdded(func(s *service.Synchronizer) {
			service.NewJournalingEntityManager(storages.JournalRepository, s, log).Attach()
		})
	} else {
		log.Info().Msg("event journal disabled")
	}

	services, err := service.NewServices(manager, storages, cfg, build, log, service.NewControlValidationService())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers()
	if storages != nil {
		background = workers.NewWorkers(workers.NewPeriodicJob("journal-prune", cfg.Workers.PruneInterval, func(ctx context.Context) error {
			_, err := services.JournalService.Prune(ctx)
			return err
		}, log))
	}
	background.Start(context.Background())

	// hooks run in reverse: workers stop, then the manager, then the database
	if db != nil {
		srv.OnShutdown(func() {
			if err := db.Close(); err != nil {
				log.Err(err).Msg("error closing event journal")
			}
		})
	}
	srv.OnShutdown(manager.Close)
	srv.OnShutdown(background.Stop)

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("syncd stopped")
}

// newTransportFactory selects the broker transport named by cfg.Backend.
func newTransportFactory(cfg config.Sync, log *logger.Logger) transport.Factory {
	if cfg.Backend == config.BackendMemory {
		log.Warn().Msg("using the in-process broker; synchronizers only reach each other")
		return transport.NewBroker().Factory()
	}

	return transport.NewMQTTFactory(transport.MQTTOptions{
		ClientIDPrefix:     cfg.ClientIDPrefix,
		KeepAlive:          cfg.KeepAlive,
		ConnectTimeout:     cfg.ConnectTimeout,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		WebSocketPath:      cfg.WebSocketPath,
	}, log)
}
