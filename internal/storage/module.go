package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/config"
	"github.com/dzinstall/storefront/internal/domain/repository"
	"github.com/dzinstall/storefront/internal/storage/dynamo"
	"github.com/dzinstall/storefront/internal/storage/memory"
	"github.com/dzinstall/storefront/internal/storage/postgres"
)

// Module wires the document store selected by STORAGE_DRIVER.
var Module = fx.Options(
	fx.Provide(newDocumentStore),
	fx.Invoke(registerLifecycle),
)

var (
	openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (repository.DocumentStore, error) {
		return postgres.New(ctx, dsn, logger)
	}
	openDynamo = func(ctx context.Context, opts dynamo.Options, logger *slog.Logger) (repository.DocumentStore, error) {
		return dynamo.New(ctx, opts, logger)
	}
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newDocumentStore(p storeParams) (repository.DocumentStore, error) {
	logger := p.Logger.With(slog.String("driver", p.Config.StorageDriver))

	var (
		store repository.DocumentStore
		err   error
	)
	switch p.Config.StorageDriver {
	case config.DriverMemory, "":
		store = memory.New()
	case config.DriverPostgres:
		store, err = openPostgres(p.Ctx, p.Config.DatabaseURI, logger)
	case config.DriverDynamoDB:
		store, err = openDynamo(p.Ctx, dynamo.Options{
			Table:    p.Config.DynamoTable,
			Region:   p.Config.AWSRegion,
			Endpoint: p.Config.DynamoEndpoint,
		}, logger)
	default:
		err = fmt.Errorf("unknown storage driver %q", p.Config.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", p.Config.StorageDriver, err)
	}

	logger.Info("document store ready")
	return store, nil
}

func registerLifecycle(lc fx.Lifecycle, store repository.DocumentStore) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			store.Close()
			return nil
		},
	})
}
