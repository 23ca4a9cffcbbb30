package store

import "go.uber.org/fx"

// Module provides the typed store over the configured document backend.
var Module = fx.Provide(New)
