package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pmarkota/mystery-back/internal/config"
	"github.com/pmarkota/mystery-back/internal/handler"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/notify"
	"github.com/pmarkota/mystery-back/internal/server"
	"github.com/pmarkota/mystery-back/internal/service"
	"github.com/pmarkota/mystery-back/internal/store"
	"github.com/pmarkota/mystery-back/internal/workers"
)

const startupTimeout = 30 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mystery-back")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storages, err := store.NewStorages(startupCtx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	// confirmation emails are fire-and-forget; when disabled, confirmations
	// are discarded without a queue
	var notifier service.SelectionNotifier = workers.NoopNotifier{}
	var dispatcher *workers.NotificationDispatcher
	if cfg.Notify.Enabled {
		mailer := notify.NewMailer(cfg.Notify, log)
		dispatcher = workers.NewNotificationDispatcher(mailer, cfg.Notify.QueueSize, log)
		notifier = dispatcher
		workers.NewWorkers(dispatcher).Run()
	}

	services := service.NewServices(*storages, *cfg, notifier, log)

	if err := services.AuthService.BootstrapAdmin(startupCtx); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping admin account")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if dispatcher != nil {
		drainCtx, drainCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer drainCancel()
		if err := dispatcher.Shutdown(drainCtx); err != nil {
			log.Err(err).Msg("notification queue did not drain in time")
		}
	}
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
