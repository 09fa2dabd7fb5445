package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/itemforge/internal/player"
	"github.com/osse101/itemforge/internal/scheduler"
	"github.com/osse101/itemforge/internal/server"
	"github.com/osse101/itemforge/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Players   *player.Registry
}

// GracefulShutdown stops the HTTP server first so no request sees a cleared
// cache, then the reload scheduler and its pool, then drops cached players.
// Errors are logged, not returned.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Scheduler before pool so no tick enqueues onto a stopped pool
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
		slog.Debug(LogMsgWorkersStopped)
	}

	if components.Players != nil {
		components.Players.Clear()
		slog.Debug(LogMsgPlayerCacheCleared)
	}

	slog.Info(LogMsgServerStopped)
}
