package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
)

// ScanRepo implements ScanRepository using the scans table.
type ScanRepo struct{ db *DB }

// NewScanRepo constructs a scan event repository.
func NewScanRepo(db *DB) *ScanRepo { return &ScanRepo{db: db} }

// Append inserts a scan event. A repeated ID maps to errs.ErrAlreadyExists.
func (r *ScanRepo) Append(ctx context.Context, ev *model.ScanEvent) error {
	const q = `
INSERT INTO scans (id, user_id, waste_type, guidance, duration_ms, image_key)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q, ev.ID, ev.UserID, ev.Type, ev.Guidance, ev.Duration.Milliseconds(), ev.ImageKey)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get loads one event by ID.
func (r *ScanRepo) Get(ctx context.Context, id uuid.UUID) (*model.ScanEvent, error) {
	const q = `
SELECT user_id, waste_type, guidance, duration_ms, image_key, created_at
FROM scans
WHERE id=$1`
	ev := model.ScanEvent{ID: id}
	var durMs int64
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&ev.UserID, &ev.Type, &ev.Guidance, &durMs, &ev.ImageKey, &ev.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ev.Duration = time.Duration(durMs) * time.Millisecond
	return &ev, nil
}

// ListByUser returns up to limit events, newest first.
func (r *ScanRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.ScanEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
SELECT id, user_id, waste_type, duration_ms, image_key, created_at
FROM scans
WHERE user_id=$1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.db.Pool.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ScanEvent
	for rows.Next() {
		var (
			id    uuid.UUID
			ev    model.ScanEvent
			durMs int64
			ts    time.Time
		)
		if err = rows.Scan(&id, &ev.UserID, &ev.Type, &durMs, &ev.ImageKey, &ts); err != nil {
			return nil, err
		}
		ev.ID = id
		ev.Duration = time.Duration(durMs) * time.Millisecond
		ev.CreatedAt = ts
		out = append(out, ev)
	}
	return out, rows.Err()
}
