package config

import "go.uber.org/fx"

// Module loads *Config once from the environment (and .env when present).
var Module = fx.Options(
	fx.Provide(Load),
)
