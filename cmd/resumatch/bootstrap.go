package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/resumatch/candidate-search/internal/app"
	"github.com/resumatch/candidate-search/internal/infrastructure/config"
	"github.com/resumatch/candidate-search/pkg/logger"
)

// bootstrap loads configuration, initialises logging and wires the app.
// Commands other than serve log to stderr so their output stays clean.
func bootstrap(ctx context.Context, quiet bool) (*app.App, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	opts := logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "resumatch",
	}
	if quiet {
		opts.Output = os.Stderr
		opts.Level = "warn"
	}
	log := logger.Init(opts)

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		_ = a.Close(ctx)
		return nil, log, err
	}
	return a, log, nil
}
