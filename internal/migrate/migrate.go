// Package migrate applies embedded SQL migrations on startup.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/and161185/ecoscan/migrations"
)

// Up runs all pending server migrations against the Postgres dsn.
func Up(ctx context.Context, dsn string, log *zap.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = Apply(ctx, db, goose.DialectPostgres, migrations.FS, log)
	return err
}

// Apply runs pending migrations from fsys against db and returns the resulting
// schema version. Goose's provider API is used so that the server schema and
// the client's SQLite schema never share goose's package-level state.
func Apply(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS, log *zap.Logger) (int64, error) {
	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migrate: provider: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrate: up: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied",
			zap.String("dialect", string(dialect)),
			zap.Int64("version", r.Source.Version),
			zap.Duration("dur", r.Duration),
		)
	}
	return p.GetDBVersion(ctx)
}
