package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/plasma-forge/ellingham-cli/internal/db"
	"github.com/plasma-forge/ellingham-cli/internal/model"
)

// PostgresStore implements Store using pgxpool. It is the right choice when
// several workstations share one set of custom compounds.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"load_compounds":  `SELECT record FROM custom_compounds ORDER BY name`,
	"save_compound":   `INSERT INTO custom_compounds (id, name, record, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (name) DO UPDATE SET record = $3, updated_at = $5`,
	"delete_compound": `DELETE FROM custom_compounds WHERE name = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	pgxCfg.MaxConns = 4
	pgxCfg.MinConns = 1
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresWithPool wraps an existing pool. Used by tests to substitute a
// mock pool.
func NewPostgresWithPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS custom_compounds (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	record     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_custom_compounds_name ON custom_compounds(name);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	err := s.pool.Ping(ctx)
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]model.CompoundRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT record FROM custom_compounds ORDER BY name`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: load custom compounds")
	}
	defer rows.Close()

	var records []model.CompoundRecord
	for rows.Next() {
		var recordJSON []byte
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, eris.Wrap(err, "postgres: scan custom compound")
		}
		var rec model.CompoundRecord
		if err := json.Unmarshal(recordJSON, &rec); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal custom compound")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "postgres: load iterate")
}

func (s *PostgresStore) Save(ctx context.Context, rec model.CompoundRecord) error {
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal custom compound")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO custom_compounds (id, name, record, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (name) DO UPDATE SET record = $3, updated_at = $5`,
		uuid.New().String(), rec.Name, recordJSON, rec.CreatedAt, rec.UpdatedAt,
	)
	return eris.Wrapf(err, "postgres: save custom compound %s", rec.Name)
}

// SaveAll upserts a batch of records in one round trip.
func (s *PostgresStore) SaveAll(ctx context.Context, recs []model.CompoundRecord) error {
	if len(recs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(recs))
	for _, rec := range recs {
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		rec.UpdatedAt = now
		recordJSON, err := json.Marshal(rec)
		if err != nil {
			return eris.Wrapf(err, "postgres: marshal custom compound %s", rec.Name)
		}
		rows = append(rows, []any{uuid.New().String(), rec.Name, recordJSON, rec.CreatedAt, rec.UpdatedAt})
	}

	_, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "custom_compounds",
		Columns:      []string{"id", "name", "record", "created_at", "updated_at"},
		ConflictKeys: []string{"name"},
	}, rows)
	return eris.Wrap(err, "postgres: save all custom compounds")
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM custom_compounds WHERE name = $1`, name,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete custom compound %s", name)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(model.ErrCompoundNotFound, "%q", name)
	}
	return nil
}
