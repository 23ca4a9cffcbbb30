package di

import (
	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/adapter/assistant"
	"github.com/dzinstall/storefront/internal/adapter/telegram"
	"github.com/dzinstall/storefront/internal/app"
	"github.com/dzinstall/storefront/internal/config"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/logger"
	"github.com/dzinstall/storefront/internal/pkg/auth"
	"github.com/dzinstall/storefront/internal/server/http/router"
	"github.com/dzinstall/storefront/internal/storage"
	"github.com/dzinstall/storefront/internal/store"
	"github.com/dzinstall/storefront/internal/usecase"
	"github.com/dzinstall/storefront/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		store.Module,
		lifecycle.Module,
		assistant.Module,
		telegram.Module,
		worker.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
