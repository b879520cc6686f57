// Package mirror is the client's read-only SQLite copy of remote records.
// The server stays the system of record; the mirror only serves reads while
// offline and the first paint of a cache-then-network read.
package mirror

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/migrate"
	"github.com/and161185/ecoscan/internal/model"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Mirror wraps the local database.
type Mirror struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the mirror at path and migrates it.
func Open(ctx context.Context, path string, log *zap.Logger) (*Mirror, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("mirror: open: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("mirror: wal: %w", err)
	}
	sub, err := fs.Sub(schemaFS, "schema")
	if err != nil {
		db.Close()
		return nil, err
	}
	if _, err := migrate.Apply(ctx, db, goose.DialectSQLite3, sub, log); err != nil {
		db.Close()
		return nil, err
	}
	return &Mirror{db: db, now: time.Now}, nil
}

// Close releases the database.
func (m *Mirror) Close() error { return m.db.Close() }

// PutPoints replaces the cached record for p.UserID.
func (m *Mirror) PutPoints(ctx context.Context, p model.UserPoints) error {
	hist, err := json.Marshal(p.History)
	if err != nil {
		return err
	}
	_, err = m.db.ExecContext(ctx, `
		INSERT INTO points (user_id, total, history, fetched_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET total = excluded.total, history = excluded.history, fetched_at = excluded.fetched_at
	`, p.UserID, p.Total, string(hist), m.now().Unix())
	if err != nil {
		return fmt.Errorf("mirror: put points[%s]: %w", p.UserID, err)
	}
	return nil
}

// Points returns the cached record and when it was fetched, or errs.ErrNotFound.
func (m *Mirror) Points(ctx context.Context, userID string) (*model.UserPoints, time.Time, error) {
	var (
		p    = model.UserPoints{UserID: userID}
		hist string
		at   int64
	)
	err := m.db.QueryRowContext(ctx, `SELECT total, history, fetched_at FROM points WHERE user_id = ?`, userID).
		Scan(&p.Total, &hist, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, errs.ErrNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("mirror: get points[%s]: %w", userID, err)
	}
	if err := json.Unmarshal([]byte(hist), &p.History); err != nil {
		return nil, time.Time{}, errs.ErrNotFound
	}
	return &p, time.Unix(at, 0), nil
}

// PutLocations caches the collection points returned for a type filter.
func (m *Mirror) PutLocations(ctx context.Context, wasteType string, pts []model.CollectionPoint) error {
	raw, err := json.Marshal(pts)
	if err != nil {
		return err
	}
	_, err = m.db.ExecContext(ctx, `
		INSERT INTO locations (waste_type, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(waste_type) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, wasteType, string(raw), m.now().Unix())
	if err != nil {
		return fmt.Errorf("mirror: put locations[%s]: %w", wasteType, err)
	}
	return nil
}

// Locations returns cached collection points for a type filter, or errs.ErrNotFound.
func (m *Mirror) Locations(ctx context.Context, wasteType string) ([]model.CollectionPoint, error) {
	var raw string
	err := m.db.QueryRowContext(ctx, `SELECT payload FROM locations WHERE waste_type = ?`, wasteType).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mirror: get locations[%s]: %w", wasteType, err)
	}
	var pts []model.CollectionPoint
	if err := json.Unmarshal([]byte(raw), &pts); err != nil {
		return nil, errs.ErrNotFound
	}
	return pts, nil
}

// Clear drops every cached record, e.g. on logout.
func (m *Mirror) Clear(ctx context.Context) error {
	for _, q := range []string{`DELETE FROM points`, `DELETE FROM locations`} {
		if _, err := m.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("mirror: clear: %w", err)
		}
	}
	return nil
}
