package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
	"github.com/and161185/ecoscan/internal/repository"
)

// LocationRepo implements LocationRepository.
type LocationRepo struct{ db *DB }

// NewLocationRepo constructs a location repository.
func NewLocationRepo(db *DB) *LocationRepo { return &LocationRepo{db: db} }

// List selects collection points, optionally filtered by accepted waste type.
func (r *LocationRepo) List(ctx context.Context, wasteType string) ([]model.CollectionPoint, error) {
	const q = `
SELECT id, name, address, latitude, longitude, types
FROM locations
WHERE $1 = '' OR $1 = ANY(types)
ORDER BY id ASC`
	rows, err := r.db.Pool.Query(ctx, q, wasteType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.CollectionPoint{}
	for rows.Next() {
		var cp model.CollectionPoint
		if err = rows.Scan(&cp.ID, &cp.Name, &cp.Address, &cp.Latitude, &cp.Longitude, &cp.Types); err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, rows.Err()
}

// CounterRepo implements CounterRepository over event_counters and scan_clicks.
type CounterRepo struct{ db *DB }

// NewCounterRepo constructs a counter repository.
func NewCounterRepo(db *DB) *CounterRepo { return &CounterRepo{db: db} }

func counterTable(kind repository.CounterKind) (string, error) {
	switch kind {
	case repository.CounterEvent:
		return "event_counters", nil
	case repository.CounterScanClick:
		return "scan_clicks", nil
	default:
		return "", fmt.Errorf("counter kind %q: %w", kind, errs.ErrInvalidInput)
	}
}

// Increment atomically adds one to the named counter, creating it on first use.
func (r *CounterRepo) Increment(ctx context.Context, kind repository.CounterKind, name string) (int64, error) {
	table, err := counterTable(kind)
	if err != nil {
		return 0, err
	}
	q := `
INSERT INTO ` + table + ` (name, count, updated_at)
VALUES ($1, 1, now())
ON CONFLICT (name) DO UPDATE SET count = ` + table + `.count + 1, updated_at = now()
RETURNING count`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q, name).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Get reads the named counter; unknown counters read as zero.
func (r *CounterRepo) Get(ctx context.Context, kind repository.CounterKind, name string) (int64, error) {
	table, err := counterTable(kind)
	if err != nil {
		return 0, err
	}
	q := `SELECT count FROM ` + table + ` WHERE name=$1`
	var n int64
	err = r.db.Pool.QueryRow(ctx, q, name).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

// ProfileRepo implements ProfileRepository over user_profiles.
type ProfileRepo struct{ db *DB }

// NewProfileRepo constructs a profile repository.
func NewProfileRepo(db *DB) *ProfileRepo { return &ProfileRepo{db: db} }

// Upsert inserts or replaces a profile.
func (r *ProfileRepo) Upsert(ctx context.Context, p *model.Profile) error {
	const q = `
INSERT INTO user_profiles (email, sub, name, nickname, picture, email_verified, city, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (email) DO UPDATE SET
  sub = EXCLUDED.sub, name = EXCLUDED.name, nickname = EXCLUDED.nickname,
  picture = EXCLUDED.picture, email_verified = EXCLUDED.email_verified,
  city = EXCLUDED.city, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Pool.Exec(ctx, q, p.Email, p.Subject, p.Name, p.Nickname, p.Picture, p.EmailVerified, p.City, p.UpdatedAt)
	return err
}

// Get selects a profile by email.
func (r *ProfileRepo) Get(ctx context.Context, email string) (*model.Profile, error) {
	const q = `
SELECT email, sub, name, nickname, picture, email_verified, city, updated_at
FROM user_profiles WHERE email=$1`
	var p model.Profile
	err := r.db.Pool.QueryRow(ctx, q, email).
		Scan(&p.Email, &p.Subject, &p.Name, &p.Nickname, &p.Picture, &p.EmailVerified, &p.City, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
