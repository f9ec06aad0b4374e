package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/mudcraft/internal/recipe"
)

// Stopper is anything that shuts down within a deadline
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds the components that need graceful shutdown.
// Server may be nil when HTTP is disabled.
type ShutdownComponents struct {
	Server  Stopper
	Recipes *recipe.Store
}

// GracefulShutdown stops the HTTP server, then reports recipes that were
// edited but never written back. Errors are logged and do not stop the
// sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Recipes != nil {
		if changed := components.Recipes.Changed(); len(changed) > 0 {
			slog.Warn(LogMsgUnsavedRecipes, "vnums", changed)
		}
	}

	slog.Info(LogMsgServerStopped)
}
