package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/HamsterHaven_Go/internal/bootstrap"
	"github.com/osse101/HamsterHaven_Go/internal/config"
	"github.com/osse101/HamsterHaven_Go/internal/habitat"
	"github.com/osse101/HamsterHaven_Go/internal/server"
	"github.com/osse101/HamsterHaven_Go/internal/worker"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the habitat and serve the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := bootstrap.OpenStores(ctx, cfg)
	if err != nil {
		return err
	}

	bus := bootstrap.InitializeEventSystem()
	workers := worker.NewPool(cfg.SaveWorkers, cfg.SaveQueueSize)
	workers.Start()
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:  bus,
		History:   stores.History,
		Jobs:      workers,
		ProfileID: cfg.ProfileID,
	})

	var rng *rand.Rand
	if cfg.RandomSeed != 0 {
		rng = rand.New(rand.NewPCG(cfg.RandomSeed, cfg.RandomSeed))
	}
	hab := habitat.New(habitat.Options{
		ProfileID:     cfg.ProfileID,
		Bus:           bus,
		Rng:           rng,
		AutosaveEvery: cfg.AutosaveFrames,
	})
	runner := habitat.NewRunner(hab, habitat.RunnerOptions{
		Store:        stores.Profile,
		Jobs:         workers,
		TickInterval: cfg.TickInterval,
	})
	runner.Load(ctx)

	// The runner outlives the signal so the server can drain first
	runCtx, stopRunner := context.WithCancel(context.WithoutCancel(ctx))
	defer stopRunner()
	go runner.Run(runCtx)

	srv := server.NewServer(server.Options{
		Port:    cfg.Port,
		APIKey:  cfg.APIKey,
		Version: cfg.Version,
		Runner:  runner,
		Store:   stores.Profile,
	})
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		StopRunner: stopRunner,
		RunnerDone: runner.Done(),
		Workers:    workers,
		Stores:     stores,
	})
	return err
}
