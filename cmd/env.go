package cmd

import (
	"context"
	"fmt"

	"pokemasdb/core/config"
	"pokemasdb/core/database"
	"pokemasdb/core/logger"
	"pokemasdb/core/registry"
	"pokemasdb/core/source"
	"pokemasdb/core/storage"

	"go.uber.org/zap"
)

// env is the configuration and logger shared by every command.
type env struct {
	cfg  *config.Config
	logg *zap.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &env{cfg: cfg, logg: logg}, nil
}

// openSource connects whatever the given driver needs and returns the source.
func (e *env) openSource(ctx context.Context, driver string) (source.Source, error) {
	srcCfg := e.cfg.Source
	srcCfg.Driver = driver

	switch driver {
	case source.DriverStorage:
		client, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return source.New(srcCfg, client, e.cfg.Storage.Bucket, nil)
	case source.DriverDatabase:
		db, err := database.Connect(e.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		src := source.NewDatabase(db)
		if err := src.Check(ctx); err != nil {
			return nil, err
		}
		return src, nil
	default:
		return source.New(srcCfg, nil, "", nil)
	}
}

// openSink returns the mirror destination for driver, creating its schema
// or bucket as needed.
func (e *env) openSink(ctx context.Context, driver string) (source.Sink, error) {
	switch driver {
	case source.DriverStorage:
		client, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return source.NewStorage(client, e.cfg.Storage.Bucket, e.cfg.Source.Prefix), nil
	case source.DriverDatabase:
		db, err := database.Connect(e.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		sink := source.NewDatabase(db)
		if err := sink.Migrate(ctx); err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("cannot mirror into %q: expected %s or %s", driver, source.DriverStorage, source.DriverDatabase)
	}
}

// newRegistry opens the configured source and wraps it in a registry.
func (e *env) newRegistry(ctx context.Context) (*registry.Registry, error) {
	src, err := e.openSource(ctx, e.cfg.Source.Driver)
	if err != nil {
		return nil, err
	}
	return registry.New(src, e.logg, registry.WithConcurrency(e.cfg.Source.Concurrency)), nil
}
