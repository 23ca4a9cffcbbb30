package main

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"
)

// stopGrace bounds how long fx may spend running OnStop hooks after a signal.
const stopGrace = 30 * time.Second

// run starts the container and blocks until a signal arrives or the app
// shuts itself down. A non-zero exit code is returned on failure.
func run(ctx context.Context, app *fx.App) int {
	if err := app.Start(ctx); err != nil {
		slog.Error("storefront failed to start", slog.Any("error", err))
		return 1
	}

	select {
	case <-ctx.Done():
		slog.Info("storefront received stop signal")
	case sig := <-app.Done():
		slog.Info("storefront shutting down", slog.String("signal", sig.String()))
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), stopGrace)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("storefront failed to stop cleanly", slog.Any("error", err))
		return 1
	}
	return 0
}
