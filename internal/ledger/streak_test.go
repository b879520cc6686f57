package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/ecoscan/internal/model"
)

func h(dates ...string) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, len(dates))
	for _, d := range dates {
		out = append(out, model.HistoryEntry{Date: d, Points: 50})
	}
	return out
}

func TestStreak(t *testing.T) {
	cases := []struct {
		name string
		in   []model.HistoryEntry
		want int
	}{
		{"empty", nil, 0},
		{"single", h("2025-01-01"), 1},
		{"consecutive", h("2025-01-01", "2025-01-02", "2025-01-03"), 3},
		{"duplicates count once", h("2025-01-01", "2025-01-02", "2025-01-02", "2025-01-03"), 3},
		{"gap breaks", h("2025-01-01", "2025-01-03", "2025-01-04"), 2},
		{"unsorted input", h("2025-01-04", "2025-01-02", "2025-01-03"), 3},
		{"month boundary", h("2025-01-31", "2025-02-01"), 2},
		{"invalid dates ignored", h("2025-01-01", "bogus", "2025-01-02"), 2},
		{"non-positive ignored", []model.HistoryEntry{
			{Date: "2025-01-01", Points: 50}, {Date: "2025-01-02", Points: 0}, {Date: "2025-01-03", Points: 50},
		}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Streak(tc.in))
		})
	}
}

func TestUniqueDays(t *testing.T) {
	require.Equal(t, 0, UniqueDays(nil))
	require.Equal(t, 2, UniqueDays(h("2025-01-01", "2025-01-01", "2025-01-05")))
}

func TestScoreboard(t *testing.T) {
	p := model.UserPoints{UserID: "a@b.c", Total: 150, History: h("2025-01-01", "2025-01-02", "2025-01-02")}
	sb := Scoreboard(p)
	require.Equal(t, 2, sb.Streak)
	require.Equal(t, 2, sb.UniqueDays)
	require.Equal(t, 150, sb.Points.Total)
}
