package ledger

import (
	"sort"
	"time"

	"github.com/and161185/ecoscan/internal/model"
)

// days returns the distinct valid dates with positive points, newest first.
func days(history []model.HistoryEntry) []time.Time {
	seen := make(map[string]struct{}, len(history))
	out := make([]time.Time, 0, len(history))
	for _, h := range history {
		if h.Points <= 0 {
			continue
		}
		if _, ok := seen[h.Date]; ok {
			continue
		}
		d, err := time.Parse(model.DateLayout, h.Date)
		if err != nil {
			continue
		}
		seen[h.Date] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out
}

// UniqueDays counts distinct calendar days with at least one positive entry.
func UniqueDays(history []model.HistoryEntry) int { return len(days(history)) }

// Streak counts consecutive calendar days ending at the most recent entry.
// Several entries on one day count once; any gap longer than a day ends it.
func Streak(history []model.HistoryEntry) int {
	ds := days(history)
	if len(ds) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(ds); i++ {
		if !ds[i-1].AddDate(0, 0, -1).Equal(ds[i]) {
			break
		}
		n++
	}
	return n
}
