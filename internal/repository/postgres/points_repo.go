package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
)

// PointsRepo implements PointsRepository using the users table.
type PointsRepo struct{ db *DB }

// NewPointsRepo constructs a points repository.
func NewPointsRepo(db *DB) *PointsRepo { return &PointsRepo{db: db} }

// Get selects a points record by email.
func (r *PointsRepo) Get(ctx context.Context, userID string) (*model.UserPoints, error) {
	const q = `
SELECT email, total, history
FROM users WHERE email=$1`
	var (
		p   model.UserPoints
		raw []byte
	)
	if err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&p.UserID, &p.Total, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	p.History = decodeHistory(raw)
	return &p, nil
}

// Create inserts a new points record.
func (r *PointsRepo) Create(ctx context.Context, p *model.UserPoints) error {
	const q = `
INSERT INTO users (email, total, history)
VALUES ($1, $2, $3)`
	history := p.History
	if history == nil {
		history = []model.HistoryEntry{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	_, err = r.db.Pool.Exec(ctx, q, p.UserID, p.Total, raw)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Award writes the new total and appends entry to history in one statement.
func (r *PointsRepo) Award(ctx context.Context, userID string, newTotal int, entry model.HistoryEntry) error {
	const q = `
UPDATE users
SET total = $2, history = history || $3::jsonb, updated_at = now()
WHERE email = $1`
	raw, err := json.Marshal([]model.HistoryEntry{entry})
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	tag, err := r.db.Pool.Exec(ctx, q, userID, newTotal, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// decodeHistory decodes entries one by one and drops any with a missing or
// mistyped field, an unparsable date, or non-positive points.
func decodeHistory(raw []byte) []model.HistoryEntry {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []model.HistoryEntry{}
	}
	out := make([]model.HistoryEntry, 0, len(items))
	for _, it := range items {
		var e struct {
			Date   *string `json:"date"`
			Points *int    `json:"points"`
		}
		if err := json.Unmarshal(it, &e); err != nil || e.Date == nil || e.Points == nil {
			continue
		}
		if _, err := time.Parse(model.DateLayout, *e.Date); err != nil || *e.Points <= 0 {
			continue
		}
		out = append(out, model.HistoryEntry{Date: *e.Date, Points: *e.Points})
	}
	return out
}
