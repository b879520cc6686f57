package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
)

func TestScoreboard(t *testing.T) {
	rec := &model.UserPoints{UserID: "a@b.c", Total: 150, History: []model.HistoryEntry{
		{Date: "2025-01-01", Points: 50}, {Date: "2025-01-02", Points: 50}, {Date: "2025-01-02", Points: 50},
	}}
	s := NewPointsService(&fakePoints{rec: rec}, &fakeScans{})
	sb, err := s.Scoreboard(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Equal(t, 150, sb.Points.Total)
	require.Equal(t, 2, sb.Streak)
	require.Equal(t, 2, sb.UniqueDays)
}

func TestScoreboard_NoRecordIsEmpty(t *testing.T) {
	s := NewPointsService(&fakePoints{}, &fakeScans{})
	sb, err := s.Scoreboard(context.Background(), "new@b.c")
	require.NoError(t, err)
	require.Equal(t, "new@b.c", sb.Points.UserID)
	require.Zero(t, sb.Points.Total)
	require.NotNil(t, sb.Points.History)
	require.Zero(t, sb.Streak)
}

func TestScoreboard_Errors(t *testing.T) {
	s := NewPointsService(&fakePoints{err: errors.New("db")}, &fakeScans{})
	_, err := s.Scoreboard(context.Background(), "a@b.c")
	require.Error(t, err)

	_, err = s.Scoreboard(context.Background(), "")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestRecentScans(t *testing.T) {
	sc := &fakeScans{out: []model.ScanEvent{{UserID: "a@b.c", Type: "Paper"}}}
	s := NewPointsService(&fakePoints{}, sc)
	evs, err := s.RecentScans(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Len(t, evs, 1)
	require.Equal(t, RecentScansLimit, sc.limit)
}
