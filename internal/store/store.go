// Package store persists user-registered custom compounds. The reference
// dataset is compiled in; only custom records ever reach a store.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/plasma-forge/ellingham-cli/internal/config"
	"github.com/plasma-forge/ellingham-cli/internal/model"
)

// Store defines the persistence interface for custom compounds.
type Store interface {
	Load(ctx context.Context) ([]model.CompoundRecord, error)
	Save(ctx context.Context, rec model.CompoundRecord) error
	SaveAll(ctx context.Context, recs []model.CompoundRecord) error
	Delete(ctx context.Context, name string) error

	Migrate(ctx context.Context) error
	Close() error
}

// Open constructs the store selected by configuration and runs migrations.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case "sqlite":
		s, err = NewSQLite(cfg.DSN)
	case "postgres":
		s, err = NewPostgres(ctx, cfg.DSN)
	case "json":
		s, err = NewJSONFile(cfg.Path)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
