// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DateLayout is the calendar-day format used by history entries.
const DateLayout = "2006-01-02"

// WasteType is a single catalog entry the classifier chooses among.
type WasteType struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// OutcomeKind enumerates terminal scan states.
type OutcomeKind string

const (
	OutcomeDetected           OutcomeKind = "detected"
	OutcomeNoMatch            OutcomeKind = "no_match"
	OutcomeTimedOut           OutcomeKind = "timed_out"
	OutcomeOfflineInterrupted OutcomeKind = "offline_interrupted"
)

// ScanOutcome is the single terminal result of a scan attempt.
// Type and Guidance are set only when Kind == OutcomeDetected.
type ScanOutcome struct {
	Kind     OutcomeKind   `json:"kind"`
	Type     *WasteType    `json:"type,omitempty"`
	Guidance string        `json:"guidance,omitempty"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Detected reports whether the outcome carries a catalog match.
func (o ScanOutcome) Detected() bool { return o.Kind == OutcomeDetected && o.Type != nil }

// HistoryEntry is one dated point award. Multiple entries may share a date.
type HistoryEntry struct {
	Date   string `json:"date"` // YYYY-MM-DD, local calendar day
	Points int    `json:"points"`
}

// UserPoints is the per-user points record keyed by email.
type UserPoints struct {
	UserID  string         `json:"user_id"`
	Total   int            `json:"total"`
	History []HistoryEntry `json:"history"`
}

// ScanEvent is an append-only record of a successful detection.
type ScanEvent struct {
	ID        uuid.UUID     // client-generated, unique per submission
	UserID    string        // email
	Type      string        // detected catalog type name
	Guidance  string        // disposal guidance returned with the detection
	Duration  time.Duration // capture-to-outcome
	ImageKey  string        // archive key, empty if not archived
	CreatedAt time.Time
}

// PendingCapture is an image kept locally because a scan could not run.
type PendingCapture struct {
	FileName   string    `json:"fileName"`
	CapturedAt time.Time `json:"date"`
}

// CollectionPoint is a place accepting some waste types.
type CollectionPoint struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Types     []string `json:"types"`
}

// Profile combines identity claims with user-editable extras.
type Profile struct {
	Subject       string    `json:"sub"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Name          string    `json:"name"`
	Nickname      string    `json:"nickname"`
	Picture       string    `json:"picture"`
	UpdatedAt     time.Time `json:"updated_at"`
	City          string    `json:"city,omitempty"`
}

// Scoreboard summarizes a points record for display.
type Scoreboard struct {
	Points     UserPoints `json:"points"`
	Streak     int        `json:"streak"`
	UniqueDays int        `json:"unique_days"`
}
