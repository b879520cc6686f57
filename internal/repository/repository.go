// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/ecoscan/internal/model"
)

// PointsRepository provides access to per-user points records (the "users" documents).
type PointsRepository interface {
	// Get loads a record by email. Returns errs.ErrNotFound if absent.
	Get(ctx context.Context, userID string) (*model.UserPoints, error)
	// Create inserts a new record. Returns errs.ErrAlreadyExists on duplicate key.
	Create(ctx context.Context, p *model.UserPoints) error
	// Award sets total and appends one history entry in a single update.
	Award(ctx context.Context, userID string, newTotal int, entry model.HistoryEntry) error
}

// ScanRepository is the append-only scan event log.
type ScanRepository interface {
	// Append stores an event. Returns errs.ErrAlreadyExists if the event ID was seen before.
	Append(ctx context.Context, ev *model.ScanEvent) error
	// Get returns one event. Returns errs.ErrNotFound if the ID was never recorded.
	Get(ctx context.Context, id uuid.UUID) (*model.ScanEvent, error)
	// ListByUser returns the most recent events first.
	ListByUser(ctx context.Context, userID string, limit int) ([]model.ScanEvent, error)
}

// LocationRepository lists collection points.
type LocationRepository interface {
	// List returns points accepting wasteType, or all points when wasteType is empty.
	List(ctx context.Context, wasteType string) ([]model.CollectionPoint, error)
}

// CounterKind selects a counter family.
type CounterKind string

const (
	// CounterEvent counts app usage events.
	CounterEvent CounterKind = "event"
	// CounterScanClick counts per-type scan result clicks.
	CounterScanClick CounterKind = "scan_click"
)

// CounterRepository increments named counters atomically.
type CounterRepository interface {
	// Increment adds one and returns the new value.
	Increment(ctx context.Context, kind CounterKind, name string) (int64, error)
	// Get returns the current value (0 if never incremented).
	Get(ctx context.Context, kind CounterKind, name string) (int64, error)
}

// ProfileRepository stores user profile extras.
type ProfileRepository interface {
	// Upsert inserts or replaces a profile keyed by email.
	Upsert(ctx context.Context, p *model.Profile) error
	// Get loads a profile by email. Returns errs.ErrNotFound if absent.
	Get(ctx context.Context, email string) (*model.Profile, error)
}
