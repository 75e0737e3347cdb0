package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matkaworks/matka-backend/internal/server"
	"github.com/matkaworks/matka-backend/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server         *server.Server
	RolloverWorker *worker.RolloverWorker
	DBPool         *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Rollover worker (cancel pending timers, wait for in-flight rollovers)
// 3. Database pool (after all writers have stopped)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.RolloverWorker != nil {
		if err := components.RolloverWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRolloverWorkerShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
		slog.Info(LogMsgDatabasePoolClosed)
	}

	slog.Info(LogMsgShutdownComplete)
}
