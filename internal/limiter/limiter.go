// Package limiter throttles scan submissions per user so a single account
// cannot drain the classification endpoint quota.
package limiter

import (
	"context"
	"time"
)

// Limiter controls scan attempts and temporary lockouts.
type Limiter interface {
	// Allow reports whether a scan is currently allowed and an optional retry-after.
	Allow(ctx context.Context, userID string) (bool, time.Duration, error)
	// Hit records one scan; may place a temporary block once the window quota is used up.
	Hit(ctx context.Context, userID string) (bool, time.Duration, error)
}

// Nop never throttles.
type Nop struct{}

func (Nop) Allow(context.Context, string) (bool, time.Duration, error) { return true, 0, nil }
func (Nop) Hit(context.Context, string) (bool, time.Duration, error) { return false, 0, nil }
