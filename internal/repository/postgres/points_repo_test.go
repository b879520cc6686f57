package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func TestPointsRepo_Get(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPointsRepo(db)
	ctx := context.Background()

	hist := []byte(`[{"date":"2025-01-01","points":50},{"date":"2025-01-02","points":50}]`)
	mock.ExpectQuery(`SELECT email, total, history FROM users WHERE email=\$1`).
		WithArgs("a@b.c").
		WillReturnRows(pgxmock.NewRows([]string{"email", "total", "history"}).AddRow("a@b.c", 100, hist))
	p, err := r.Get(ctx, "a@b.c")
	require.NoError(t, err)
	require.Equal(t, 100, p.Total)
	require.Equal(t, []model.HistoryEntry{{Date: "2025-01-01", Points: 50}, {Date: "2025-01-02", Points: 50}}, p.History)

	mock.ExpectQuery(`SELECT email, total, history FROM users WHERE email=\$1`).
		WithArgs("x@y.z").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, "x@y.z")
	require.ErrorIs(t, err, errs.ErrNotFound)

	mock.ExpectQuery(`SELECT email, total, history FROM users WHERE email=\$1`).
		WithArgs("x@y.z").
		WillReturnError(errors.New("conn reset"))
	_, err = r.Get(ctx, "x@y.z")
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPointsRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPointsRepo(db)
	ctx := context.Background()
	p := &model.UserPoints{UserID: "a@b.c", Total: 50, History: []model.HistoryEntry{{Date: "2025-01-03", Points: 50}}}

	mock.ExpectExec(`INSERT INTO users \(email, total, history\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs("a@b.c", 50, []byte(`[{"date":"2025-01-03","points":50}]`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, p))

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("a@b.c", 50, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(ctx, p), errs.ErrAlreadyExists)
}

func TestPointsRepo_Award(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPointsRepo(db)
	ctx := context.Background()
	entry := model.HistoryEntry{Date: "2025-01-03", Points: 50}

	mock.ExpectExec(`UPDATE users SET total = \$2, history = history \|\| \$3::jsonb, updated_at = now\(\) WHERE email = \$1`).
		WithArgs("a@b.c", 150, []byte(`[{"date":"2025-01-03","points":50}]`)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.Award(ctx, "a@b.c", 150, entry))

	mock.ExpectExec(`UPDATE users`).
		WithArgs("gone@b.c", 50, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.Award(ctx, "gone@b.c", 50, entry), errs.ErrNotFound)
}

func TestDecodeHistory_FailsClosed(t *testing.T) {
	t.Parallel()
	raw := []byte(`[
		{"date":"2025-01-01","points":50},
		{"date":"2025-01-01","points":50},
		{"date":"yesterday","points":50},
		{"date":"2025-01-02","points":"fifty"},
		{"points":50},
		{"date":"2025-01-03","points":0},
		42
	]`)
	got := decodeHistory(raw)
	require.Equal(t, []model.HistoryEntry{{Date: "2025-01-01", Points: 50}, {Date: "2025-01-01", Points: 50}}, got)

	require.Empty(t, decodeHistory([]byte(`{"not":"a list"}`)))
	require.Empty(t, decodeHistory(nil))
}
