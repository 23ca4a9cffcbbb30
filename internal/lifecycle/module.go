package lifecycle

import "go.uber.org/fx"

// Module provides a wall-clock Engine.
var Module = fx.Provide(func() *Engine { return New(nil) })
