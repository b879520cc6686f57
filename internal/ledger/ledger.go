// Package ledger credits points for detected scans.
//
// A credit is two sequential document operations: the scan event is appended
// to the event log, then the per-user points record is created or updated.
// The update is a read-then-write of total; concurrent scans by the same user
// can lose an update. Failures are logged and never retried or rolled back.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
	"github.com/and161185/ecoscan/internal/repository"
)

// Reward is the fixed number of points per detected scan.
const Reward = 50

// Notifier receives the points record after every successful award.
type Notifier interface {
	Notify(userID string, p model.UserPoints)
}

// Ledger records scans and awards points.
type Ledger struct {
	scans    repository.ScanRepository
	points   repository.PointsRepository
	notifier Notifier
	now      func() time.Time
	loc      *time.Location
	log      *zap.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(l *Ledger) { l.now = now } }

// WithLocation sets the zone used to derive the calendar day of an award.
func WithLocation(loc *time.Location) Option { return func(l *Ledger) { l.loc = loc } }

// WithNotifier registers a receiver for updated records.
func WithNotifier(n Notifier) Option { return func(l *Ledger) { l.notifier = n } }

// New constructs a Ledger.
func New(scans repository.ScanRepository, points repository.PointsRepository, log *zap.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		scans:  scans,
		points: points,
		now:    time.Now,
		loc:    time.Local,
		log:    log,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Today returns the current calendar day in the ledger's zone.
func (l *Ledger) Today() string { return l.now().In(l.loc).Format(model.DateLayout) }

// RecordScan appends ev to the event log and, only if that succeeded, awards
// Reward points for today. It returns the resulting record and whether points
// were credited. A replayed event ID is not credited twice.
func (l *Ledger) RecordScan(ctx context.Context, ev model.ScanEvent) (*model.UserPoints, bool) {
	log := l.log.With(zap.String("user", ev.UserID), zap.String("scan_id", ev.ID.String()))

	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = l.now()
	}
	if err := l.scans.Append(ctx, &ev); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			log.Info("scan already recorded, award skipped")
		} else {
			log.Error("append scan event failed", zap.Error(err))
		}
		return nil, false
	}

	entry := model.HistoryEntry{Date: l.Today(), Points: Reward}
	rec, err := l.award(ctx, ev.UserID, entry)
	if err != nil {
		log.Error("award points failed", zap.Error(err))
		return nil, false
	}
	log.Info("points awarded", zap.Int("total", rec.Total), zap.String("date", entry.Date))

	if l.notifier != nil {
		l.notifier.Notify(ev.UserID, *rec)
	}
	return rec, true
}

// Recorded returns a previously recorded event and the user's current
// points record. Both are nil when the event ID was never recorded; the
// record is nil when the user has none yet.
func (l *Ledger) Recorded(ctx context.Context, id uuid.UUID) (*model.ScanEvent, *model.UserPoints, error) {
	ev, err := l.scans.Get(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	rec, err := l.points.Get(ctx, ev.UserID)
	if errors.Is(err, errs.ErrNotFound) {
		return ev, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return ev, rec, nil
}

func (l *Ledger) award(ctx context.Context, userID string, entry model.HistoryEntry) (*model.UserPoints, error) {
	cur, err := l.points.Get(ctx, userID)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		rec := &model.UserPoints{UserID: userID, Total: entry.Points, History: []model.HistoryEntry{entry}}
		if err := l.points.Create(ctx, rec); err != nil {
			return nil, err
		}
		return rec, nil
	case err != nil:
		return nil, err
	}

	total := cur.Total + entry.Points
	if err := l.points.Award(ctx, userID, total, entry); err != nil {
		return nil, err
	}
	hist := make([]model.HistoryEntry, 0, len(cur.History)+1)
	hist = append(hist, cur.History...)
	hist = append(hist, entry)
	return &model.UserPoints{UserID: userID, Total: total, History: hist}, nil
}

// Scoreboard summarizes p for display.
func Scoreboard(p model.UserPoints) model.Scoreboard {
	return model.Scoreboard{Points: p, Streak: Streak(p.History), UniqueDays: UniqueDays(p.History)}
}
