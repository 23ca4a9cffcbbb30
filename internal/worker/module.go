package worker

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/usecase"
)

const (
	defaultWorkers   = 2
	defaultQueueSize = 64
)

// Module puts the dispatcher in front of the notifier tagged `name:"admin"`.
var Module = fx.Options(
	fx.Provide(
		newDispatcher,
		func(d *Dispatcher) usecase.Notifier { return d },
	),
	fx.Invoke(registerLifecycle),
)

type dispatcherParams struct {
	fx.In

	Target usecase.Notifier `name:"admin"`
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Target, defaultWorkers, defaultQueueSize, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, d *Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			d.Start(context.WithoutCancel(ctx))
			return nil
		},
		OnStop: d.Stop,
	})
}
