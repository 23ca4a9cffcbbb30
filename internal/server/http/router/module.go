package router

import "go.uber.org/fx"

// Module provides the gin engine with every storefront route mounted.
var Module = fx.Options(
	fx.Provide(Setup),
)
