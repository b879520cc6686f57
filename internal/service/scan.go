// Package service contains application services for scans, points, and
// the supporting directory data (locations, counters, profiles).
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/ecoscan/internal/archive"
	"github.com/and161185/ecoscan/internal/catalog"
	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/limiter"
	"github.com/and161185/ecoscan/internal/model"
	"github.com/and161185/ecoscan/internal/repository"
)

// MaxImageBytes bounds a decoded scan image.
const MaxImageBytes = 8 << 20

// Runner executes the classification pipeline for one image.
type Runner interface {
	Run(ctx context.Context, imageBase64 string) model.ScanOutcome
}

// Recorder credits detected scans and finds ones already credited.
type Recorder interface {
	RecordScan(ctx context.Context, ev model.ScanEvent) (*model.UserPoints, bool)
	// Recorded returns nil, nil, nil for an ID that was never recorded.
	Recorded(ctx context.Context, id uuid.UUID) (*model.ScanEvent, *model.UserPoints, error)
}

// ScanRequest is one client submission. ScanID makes resubmission safe.
type ScanRequest struct {
	ScanID      uuid.UUID
	ImageBase64 string
}

// ScanResult is the terminal outcome plus the ledger effect, if any.
type ScanResult struct {
	Outcome  model.ScanOutcome
	Points   *model.UserPoints
	Credited bool
}

// ScanService runs scans for authenticated users.
type ScanService interface {
	// Scan classifies the image and, on detection, credits the user.
	Scan(ctx context.Context, userID string, req ScanRequest) (ScanResult, error)
}

type ScanServiceImpl struct {
	pipeline Runner
	ledger   Recorder
	archive  archive.Archiver
	counters repository.CounterRepository
	lim      limiter.Limiter
	catalog  *catalog.Catalog
	log      *zap.Logger
}

// ScanOption configures a ScanServiceImpl.
type ScanOption func(*ScanServiceImpl)

// WithCatalog sets the catalog used to rebuild replayed outcomes.
// Defaults to catalog.Default.
func WithCatalog(c *catalog.Catalog) ScanOption {
	return func(s *ScanServiceImpl) { s.catalog = c }
}

// NewScanService constructs ScanService with required dependencies.
func NewScanService(p Runner, l Recorder, a archive.Archiver, c repository.CounterRepository, lim limiter.Limiter, log *zap.Logger, opts ...ScanOption) *ScanServiceImpl {
	if a == nil {
		a = archive.Nop{}
	}
	if lim == nil {
		lim = limiter.Nop{}
	}
	s := &ScanServiceImpl{pipeline: p, ledger: l, archive: a, counters: c, lim: lim, catalog: catalog.Default, log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Scan validates input, applies the per-user throttle and runs the pipeline.
// Only a detected outcome reaches the ledger. A scan ID that was already
// recorded returns the recorded outcome without running anything again.
// Archive and counter failures are logged and do not change the outcome.
func (s *ScanServiceImpl) Scan(ctx context.Context, userID string, req ScanRequest) (ScanResult, error) {
	if userID == "" {
		return ScanResult{}, errs.ErrUnauthorized
	}
	if req.ScanID == uuid.Nil {
		return ScanResult{}, fmt.Errorf("validation: empty scan id: %w", errs.ErrInvalidInput)
	}
	img, err := decodeImage(req.ImageBase64)
	if err != nil {
		return ScanResult{}, err
	}

	prev, rec, err := s.ledger.Recorded(ctx, req.ScanID)
	if err != nil {
		return ScanResult{}, fmt.Errorf("lookup scan: %w", err)
	}
	if prev != nil {
		if prev.UserID != userID {
			return ScanResult{}, fmt.Errorf("scan %s: %w", req.ScanID, errs.ErrAlreadyExists)
		}
		s.log.Info("scan replayed", zap.String("user", userID), zap.String("scan_id", req.ScanID.String()))
		return ScanResult{Outcome: s.replayed(prev), Points: rec}, nil
	}

	allowed, _, err := s.lim.Allow(ctx, userID)
	if err != nil {
		return ScanResult{}, err
	}
	if !allowed {
		return ScanResult{}, errs.ErrRateLimited
	}
	if _, _, err := s.lim.Hit(ctx, userID); err != nil {
		s.log.Warn("limiter hit failed", zap.String("user", userID), zap.Error(err))
	}

	out := s.pipeline.Run(ctx, req.ImageBase64)
	res := ScanResult{Outcome: out}
	if !out.Detected() {
		return res, nil
	}

	// Credit even if the client hangs up once it has the outcome.
	bg := context.WithoutCancel(ctx)

	key, err := s.archive.Put(bg, req.ScanID, img)
	if err != nil {
		s.log.Warn("archive scan image failed", zap.String("scan_id", req.ScanID.String()), zap.Error(err))
	}

	res.Points, res.Credited = s.ledger.RecordScan(bg, model.ScanEvent{
		ID:       req.ScanID,
		UserID:   userID,
		Type:     out.Type.Name,
		Guidance: out.Guidance,
		Duration: out.Elapsed,
		ImageKey: key,
	})
	if res.Credited && s.counters != nil {
		if _, err := s.counters.Increment(bg, repository.CounterScanClick, out.Type.Name); err != nil {
			s.log.Warn("scan click counter failed", zap.String("type", out.Type.Name), zap.Error(err))
		}
	}
	return res, nil
}

// replayed rebuilds the detected outcome of a recorded event.
func (s *ScanServiceImpl) replayed(ev *model.ScanEvent) model.ScanOutcome {
	wt := model.WasteType{Name: ev.Type}
	if s.catalog != nil {
		if known, ok := s.catalog.Lookup(ev.Type); ok {
			wt = known
		}
	}
	return model.ScanOutcome{Kind: model.OutcomeDetected, Type: &wt, Guidance: ev.Guidance, Elapsed: ev.Duration}
}

func decodeImage(b64 string) ([]byte, error) {
	b64 = strings.TrimSpace(b64)
	if b64 == "" {
		return nil, fmt.Errorf("validation: empty image: %w", errs.ErrInvalidInput)
	}
	if base64.StdEncoding.DecodedLen(len(b64)) > MaxImageBytes+3 {
		return nil, fmt.Errorf("validation: image too large: %w", errs.ErrInvalidInput)
	}
	img, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("validation: image is not base64: %w", errors.Join(errs.ErrInvalidInput, err))
	}
	return img, nil
}
