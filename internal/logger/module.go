package logger

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module provides the JSON logger and installs it as the slog default so
// package-level slog calls share its level and sink.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(func(l *slog.Logger) { slog.SetDefault(l) }),
)
