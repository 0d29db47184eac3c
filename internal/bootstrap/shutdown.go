package bootstrap

import (
	"context"
	"log/slog"

	"github.com/calenfir/bazaar/internal/event"
	"github.com/calenfir/bazaar/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Event publisher (close the dead-letter file once in-flight trades drain)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Close(); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
