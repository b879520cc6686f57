package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
	"github.com/and161185/ecoscan/internal/repository"
)

type fakeRunner struct {
	out   model.ScanOutcome
	calls int
	img   string
}

func (f *fakeRunner) Run(_ context.Context, img string) model.ScanOutcome {
	f.calls++
	f.img = img
	return f.out
}

type fakeRecorder struct {
	events    []model.ScanEvent
	out       *model.UserPoints
	ok        bool
	lookupErr error
}

func (f *fakeRecorder) RecordScan(_ context.Context, ev model.ScanEvent) (*model.UserPoints, bool) {
	f.events = append(f.events, ev)
	return f.out, f.ok
}

// Recorded finds events this fake credited.
func (f *fakeRecorder) Recorded(_ context.Context, id uuid.UUID) (*model.ScanEvent, *model.UserPoints, error) {
	if f.lookupErr != nil {
		return nil, nil, f.lookupErr
	}
	if !f.ok {
		return nil, nil, nil
	}
	for i := range f.events {
		if f.events[i].ID == id {
			ev := f.events[i]
			return &ev, f.out, nil
		}
	}
	return nil, nil, nil
}

type fakeArchive struct {
	key string
	err error
	ids []uuid.UUID
}

func (f *fakeArchive) Put(_ context.Context, id uuid.UUID, _ []byte) (string, error) {
	f.ids = append(f.ids, id)
	return f.key, f.err
}

type fakeCounters struct {
	incs []string
	err  error
}

var _ repository.CounterRepository = (*fakeCounters)(nil)

func (f *fakeCounters) Increment(_ context.Context, kind repository.CounterKind, name string) (int64, error) {
	f.incs = append(f.incs, string(kind)+":"+name)
	return int64(len(f.incs)), f.err
}
func (f *fakeCounters) Get(context.Context, repository.CounterKind, string) (int64, error) {
	return 0, nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error
	hits     int
}

func (f *fakeLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return f.allowOK, time.Minute, f.allowErr
}
func (f *fakeLimiter) Hit(context.Context, string) (bool, time.Duration, error) {
	f.hits++
	return false, 0, nil
}

type fakePoints struct {
	rec *model.UserPoints
	err error
}

var _ repository.PointsRepository = (*fakePoints)(nil)

func (f *fakePoints) Get(context.Context, string) (*model.UserPoints, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.rec == nil {
		return nil, errs.ErrNotFound
	}
	return f.rec, nil
}
func (f *fakePoints) Create(context.Context, *model.UserPoints) error { return nil }
func (f *fakePoints) Award(context.Context, string, int, model.HistoryEntry) error {
	return nil
}

type fakeScans struct {
	out   []model.ScanEvent
	limit int
}

func (f *fakeScans) Append(context.Context, *model.ScanEvent) error { return nil }
func (f *fakeScans) Get(context.Context, uuid.UUID) (*model.ScanEvent, error) {
	return nil, errs.ErrNotFound
}
func (f *fakeScans) ListByUser(_ context.Context, _ string, limit int) ([]model.ScanEvent, error) {
	f.limit = limit
	return f.out, nil
}

type fakeLocations struct {
	filter string
	out    []model.CollectionPoint
}

func (f *fakeLocations) List(_ context.Context, wasteType string) ([]model.CollectionPoint, error) {
	f.filter = wasteType
	return f.out, nil
}

type fakeProfiles struct {
	saved *model.Profile
}

func (f *fakeProfiles) Upsert(_ context.Context, p *model.Profile) error {
	cp := *p
	f.saved = &cp
	return nil
}
func (f *fakeProfiles) Get(_ context.Context, email string) (*model.Profile, error) {
	if f.saved == nil || f.saved.Email != email {
		return nil, errs.ErrNotFound
	}
	return f.saved, nil
}
