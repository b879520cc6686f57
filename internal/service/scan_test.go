package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
)

var img64 = base64.StdEncoding.EncodeToString([]byte("fake jpeg"))

func detected(name string) model.ScanOutcome {
	return model.ScanOutcome{Kind: model.OutcomeDetected, Type: &model.WasteType{Name: name}, Guidance: "Blue bin.", Elapsed: 4 * time.Second}
}

func TestScan_Detected_CreditsAndArchives(t *testing.T) {
	run := &fakeRunner{out: detected("Plastic Bottle")}
	rec := &fakeRecorder{out: &model.UserPoints{UserID: "a@b.c", Total: 50}, ok: true}
	arc := &fakeArchive{key: "scans/k.jpg"}
	cnt := &fakeCounters{}
	lim := &fakeLimiter{allowOK: true}
	s := NewScanService(run, rec, arc, cnt, lim, zap.NewNop())
	id := uuid.Must(uuid.NewV4())

	res, err := s.Scan(context.Background(), "a@b.c", ScanRequest{ScanID: id, ImageBase64: img64})
	require.NoError(t, err)
	require.True(t, res.Credited)
	require.Equal(t, 50, res.Points.Total)
	require.Equal(t, img64, run.img)
	require.Equal(t, 1, lim.hits)
	require.Equal(t, []string{"scan_click:Plastic Bottle"}, cnt.incs)
	require.Len(t, rec.events, 1)
	require.Equal(t, model.ScanEvent{ID: id, UserID: "a@b.c", Type: "Plastic Bottle", Guidance: "Blue bin.", Duration: 4 * time.Second, ImageKey: "scans/k.jpg"}, rec.events[0])
}

func TestScan_NonDetected_LeavesLedgerAlone(t *testing.T) {
	for _, kind := range []model.OutcomeKind{model.OutcomeNoMatch, model.OutcomeTimedOut, model.OutcomeOfflineInterrupted} {
		run := &fakeRunner{out: model.ScanOutcome{Kind: kind}}
		rec := &fakeRecorder{}
		arc := &fakeArchive{}
		cnt := &fakeCounters{}
		s := NewScanService(run, rec, arc, cnt, nil, zap.NewNop())

		res, err := s.Scan(context.Background(), "a@b.c", ScanRequest{ScanID: uuid.Must(uuid.NewV4()), ImageBase64: img64})
		require.NoError(t, err, kind)
		require.Equal(t, kind, res.Outcome.Kind)
		require.False(t, res.Credited)
		require.Empty(t, rec.events, kind)
		require.Empty(t, arc.ids, kind)
		require.Empty(t, cnt.incs, kind)
	}
}

func TestScan_SideEffectFailuresDoNotChangeOutcome(t *testing.T) {
	rec := &fakeRecorder{ok: true, out: &model.UserPoints{Total: 50}}
	s := NewScanService(&fakeRunner{out: detected("Paper")}, rec,
		&fakeArchive{err: errors.New("s3 down")}, &fakeCounters{err: errors.New("pg down")}, nil, zap.NewNop())

	res, err := s.Scan(context.Background(), "a@b.c", ScanRequest{ScanID: uuid.Must(uuid.NewV4()), ImageBase64: img64})
	require.NoError(t, err)
	require.True(t, res.Outcome.Detected())
	require.Len(t, rec.events, 1)
	require.Empty(t, rec.events[0].ImageKey)
}

func TestScan_Validation(t *testing.T) {
	run := &fakeRunner{}
	s := NewScanService(run, &fakeRecorder{}, nil, nil, nil, zap.NewNop())
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	_, err := s.Scan(ctx, "", ScanRequest{ScanID: id, ImageBase64: img64})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = s.Scan(ctx, "a@b.c", ScanRequest{ImageBase64: img64})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	_, err = s.Scan(ctx, "a@b.c", ScanRequest{ScanID: id})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	_, err = s.Scan(ctx, "a@b.c", ScanRequest{ScanID: id, ImageBase64: "%%%not-base64"})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.Zero(t, run.calls)
}

func TestScan_Throttled(t *testing.T) {
	run := &fakeRunner{}
	s := NewScanService(run, &fakeRecorder{}, nil, nil, &fakeLimiter{allowOK: false}, zap.NewNop())
	_, err := s.Scan(context.Background(), "a@b.c", ScanRequest{ScanID: uuid.Must(uuid.NewV4()), ImageBase64: img64})
	require.ErrorIs(t, err, errs.ErrRateLimited)
	require.Zero(t, run.calls)

	s = NewScanService(run, &fakeRecorder{}, nil, nil, &fakeLimiter{allowErr: errors.New("db")}, zap.NewNop())
	_, err = s.Scan(context.Background(), "a@b.c", ScanRequest{ScanID: uuid.Must(uuid.NewV4()), ImageBase64: img64})
	require.Error(t, err)
	require.Zero(t, run.calls)
}

func TestScan_ReplayedIDRunsNothingTwice(t *testing.T) {
	run := &fakeRunner{out: detected("Paper")}
	rec := &fakeRecorder{out: &model.UserPoints{UserID: "a@b.c", Total: 50}, ok: true}
	arc := &fakeArchive{key: "scans/k.jpg"}
	cnt := &fakeCounters{}
	lim := &fakeLimiter{allowOK: true}
	s := NewScanService(run, rec, arc, cnt, lim, zap.NewNop())
	ctx := context.Background()
	req := ScanRequest{ScanID: uuid.Must(uuid.NewV4()), ImageBase64: img64}

	first, err := s.Scan(ctx, "a@b.c", req)
	require.NoError(t, err)
	require.True(t, first.Credited)

	again, err := s.Scan(ctx, "a@b.c", req)
	require.NoError(t, err)
	require.False(t, again.Credited)
	require.True(t, again.Outcome.Detected())
	require.Equal(t, "Paper", again.Outcome.Type.Name)
	require.Equal(t, "paper", again.Outcome.Type.Icon)
	require.Equal(t, "Blue bin.", again.Outcome.Guidance)
	require.Equal(t, 4*time.Second, again.Outcome.Elapsed)
	require.Equal(t, 50, again.Points.Total)

	require.Equal(t, 1, run.calls)
	require.Equal(t, 1, lim.hits)
	require.Len(t, arc.ids, 1)
	require.Len(t, cnt.incs, 1)
	require.Len(t, rec.events, 1)

	_, err = s.Scan(ctx, "other@b.c", req)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	require.Equal(t, 1, run.calls)
}

func TestScan_NotCreditedSkipsCounter(t *testing.T) {
	cnt := &fakeCounters{}
	s := NewScanService(&fakeRunner{out: detected("Paper")}, &fakeRecorder{ok: false}, nil, cnt, nil, zap.NewNop())

	res, err := s.Scan(context.Background(), "a@b.c", ScanRequest{ScanID: uuid.Must(uuid.NewV4()), ImageBase64: img64})
	require.NoError(t, err)
	require.False(t, res.Credited)
	require.Empty(t, cnt.incs)
}

func TestScan_LookupFailureStopsBeforePipeline(t *testing.T) {
	run := &fakeRunner{out: detected("Paper")}
	lim := &fakeLimiter{allowOK: true}
	s := NewScanService(run, &fakeRecorder{lookupErr: errors.New("pg down")}, nil, nil, lim, zap.NewNop())

	_, err := s.Scan(context.Background(), "a@b.c", ScanRequest{ScanID: uuid.Must(uuid.NewV4()), ImageBase64: img64})
	require.Error(t, err)
	require.Zero(t, run.calls)
	require.Zero(t, lim.hits)
}
