package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HamsterHaven_Go/internal/server"
	"github.com/osse101/HamsterHaven_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	// StopRunner cancels the habitat runner's context
	StopRunner func()
	// RunnerDone is closed once the habitat runner wrote its final save
	RunnerDone <-chan struct{}
	Workers    *worker.Pool
	Stores     *Stores
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new commands)
//  2. Habitat runner (cancel it, then wait for the final save)
//  3. Save workers (drain queued autosaves and run history)
//  4. Stores (close database connections)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.StopRunner != nil {
		components.StopRunner()
	}
	if components.RunnerDone != nil {
		slog.Info(LogMsgWaitingForRunner)
		select {
		case <-components.RunnerDone:
		case <-ctx.Done():
			slog.Error(LogMsgRunnerShutdownTimeout, "error", ctx.Err())
		}
	}

	if components.Workers != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		components.Workers.Stop()
	}

	if components.Stores != nil {
		components.Stores.Close()
	}

	slog.Info(LogMsgServerStopped)
}
