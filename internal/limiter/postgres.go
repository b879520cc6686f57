package limiter

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PG is a PostgreSQL-backed limiter with a fixed window and lockout.
type PG struct {
	pool     pgxQuerier
	window   time.Duration
	maxScans int
	blockFor time.Duration
}

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a PostgreSQL-backed limiter. *pgxpool.Pool satisfies the querier.
func NewPG(q pgxQuerier, window time.Duration, maxScans int, blockFor time.Duration) *PG {
	return &PG{pool: q, window: window, maxScans: maxScans, blockFor: blockFor}
}

// Allow reports whether scanning is currently allowed and a retry-after duration.
func (l *PG) Allow(ctx context.Context, userID string) (bool, time.Duration, error) {
	const q = `SELECT blocked_until FROM scan_limiter WHERE user_id=$1`
	var blockedUntil time.Time
	err := l.pool.QueryRow(ctx, q, userID).Scan(&blockedUntil)
	switch err {
	case nil:
		if blockedUntil.After(time.Now()) {
			return false, time.Until(blockedUntil), nil
		}
		return true, 0, nil
	case pgx.ErrNoRows:
		return true, 0, nil
	default:
		return false, 0, err
	}
}

// Hit counts one scan in the current window; blocks once maxScans is reached.
func (l *PG) Hit(ctx context.Context, userID string) (bool, time.Duration, error) {
	now := time.Now()

	const q = `
INSERT INTO scan_limiter (user_id, hits, window_start, blocked_until, updated_at)
VALUES ($1, 1, now(), 'epoch', now())
ON CONFLICT (user_id) DO UPDATE
SET
  hits = CASE WHEN now() - scan_limiter.window_start > $2::interval THEN 1 ELSE scan_limiter.hits + 1 END,
  window_start = CASE WHEN now() - scan_limiter.window_start > $2::interval THEN now() ELSE scan_limiter.window_start END,
  updated_at = now()
RETURNING hits`
	var hits int
	if err := l.pool.QueryRow(ctx, q, userID, l.window).Scan(&hits); err != nil {
		return false, 0, err
	}
	if hits >= l.maxScans {
		blockUntil := now.Add(l.blockFor)
		const upd = `UPDATE scan_limiter SET blocked_until=$2 WHERE user_id=$1`
		if _, err := l.pool.Exec(ctx, upd, userID, blockUntil); err != nil {
			return false, 0, err
		}
		return true, l.blockFor, nil
	}
	return false, 0, nil
}
