package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/config"
	"github.com/dzinstall/storefront/internal/server/http/handlers"
	"github.com/dzinstall/storefront/internal/usecase"
)

// Module wires the facade, the HTTP server and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStorefrontFacade,
		func(f *StorefrontFacade) handlers.StorefrontFacade { return f },
		func(a *usecase.AccountUseCase) Bootstrapper { return a },
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

// readHeaderTimeout bounds how long a client may dribble request headers.
const readHeaderTimeout = 5 * time.Second

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// Bootstrapper prepares persistent data before the server accepts traffic.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, opts usecase.BootstrapOptions) error
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Accounts   Bootstrapper
	Config     *config.Config
}

func bootstrapOptions(cfg *config.Config) usecase.BootstrapOptions {
	return usecase.BootstrapOptions{
		AdminPhone:    cfg.AdminPhone,
		AdminPassword: cfg.AdminPassword,
		SeedPassword:  cfg.SeedPassword,
	}
}

// registerLifecycle seeds data, binds the listen address synchronously so a
// bad address fails fx start, then serves in the background. A serve error
// after start asks fx to shut the whole app down.
func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Accounts.Bootstrap(ctx, bootstrapOptions(p.Config)); err != nil {
				return fmt.Errorf("bootstrap data: %w", err)
			}

			ln, err := net.Listen("tcp", p.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", p.Server.Addr, err)
			}
			p.Logger.Info("storefront listening",
				slog.String("addr", ln.Addr().String()),
				slog.String("storage", p.Config.StorageDriver),
			)

			go func() {
				if err := p.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.Any("error", err))
					_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
				defer cancel()
			}

			if err := p.Server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown http server: %w", err)
			}
			p.Logger.Info("storefront stopped")
			return nil
		},
	})
}
