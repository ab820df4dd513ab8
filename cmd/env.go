package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plasma-forge/ellingham-cli/internal/registry"
	"github.com/plasma-forge/ellingham-cli/internal/store"
	"github.com/plasma-forge/ellingham-cli/internal/thermo"
)

// appEnv bundles the long-lived subsystems a command needs.
type appEnv struct {
	Registry *registry.Registry
	Store    store.Store
	Eval     *thermo.Evaluator
}

// initEnv opens the configured store, loads the compound registry and
// constructs the evaluator. Commands defer Close.
func initEnv(ctx context.Context) (*appEnv, error) {
	env := &appEnv{
		Eval: thermo.New(thermo.Options{
			LogRatioBound:        cfg.Eval.LogRatioBound,
			HighlyFavorableBelow: cfg.Eval.HighlyFavorableBelow,
			FavorableBelow:       cfg.Eval.FavorableBelow,
			MarginalBelow:        cfg.Eval.MarginalBelow,
		}),
	}

	opts := []registry.Option{}
	if cfg.Dataset.File != "" {
		opts = append(opts, registry.WithDatasetFile(cfg.Dataset.File))
	}

	if cfg.Store.Driver != "" && cfg.Store.Driver != "none" {
		s, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return nil, err
		}
		env.Store = s
		opts = append(opts, registry.WithStore(s))
	}

	reg, err := registry.New(ctx, opts...)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.Registry = reg

	return env, nil
}

// fieldRadiusFlags reads the field and radius flags in their display units
// (MV/m, um), falling back to the configured process defaults when unset.
func fieldRadiusFlags(cmd *cobra.Command) (fieldMV, radiusUm float64) {
	fieldMV, _ = cmd.Flags().GetFloat64("field")
	radiusUm, _ = cmd.Flags().GetFloat64("radius")
	if fieldMV == 0 {
		fieldMV = cfg.Process.FieldVm / 1e6
	}
	if radiusUm == 0 {
		radiusUm = cfg.Process.RadiusM * 1e6
	}
	return fieldMV, radiusUm
}

func (e *appEnv) Close() {
	if e.Store != nil {
		if err := e.Store.Close(); err != nil {
			zap.L().Warn("store close failed", zap.Error(err))
		}
	}
}
