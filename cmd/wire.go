package cmd

import (
	"context"
	"fmt"
	"io"

	catalogview "github.com/bnema/libcat/internal/adapters/render/catalog"
	seedtoml "github.com/bnema/libcat/internal/adapters/seed/toml"
	"github.com/bnema/libcat/internal/application"
	"github.com/bnema/libcat/internal/config"
	"github.com/bnema/libcat/internal/logging"
	"github.com/bnema/libcat/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	catalog  *application.Catalog
	renderer func(catalogview.View, catalogview.RenderOptions) (string, error)
	logger   *zap.Logger
}

// wireApp builds the catalog for one command run. logOutput is the command's
// error stream, so it must be called once the command streams are set.
func wireApp(ctx context.Context, logOutput io.Writer) (*app, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log, logOutput)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	source, err := seedtoml.NewSource(cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("wire catalog seed source: %w", err)
	}

	catalog := application.NewCatalog(ports.SystemClock{}, logger)
	if _, err := catalog.ImportFrom(ctx, source); err != nil {
		return nil, fmt.Errorf("seed catalog from %s: %w", source.Path(), err)
	}

	return &app{
		catalog:  catalog,
		renderer: catalogview.Render,
		logger:   logger,
	}, nil
}

// close flushes buffered log entries. Sync errors on terminals are ignored.
func (a *app) close() {
	if a.logger == nil {
		return
	}
	_ = a.logger.Sync()
}
