package service

import (
	"context"
	"errors"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/ledger"
	"github.com/and161185/ecoscan/internal/model"
	"github.com/and161185/ecoscan/internal/repository"
)

// RecentScansLimit bounds the scan list returned with the scoreboard.
const RecentScansLimit = 10

// PointsService reads points records.
type PointsService interface {
	// Scoreboard returns total, history, streak and unique days. Users who
	// never scored get an empty record.
	Scoreboard(ctx context.Context, userID string) (model.Scoreboard, error)
	// RecentScans returns the latest scan events, newest first.
	RecentScans(ctx context.Context, userID string) ([]model.ScanEvent, error)
}

type PointsServiceImpl struct {
	points repository.PointsRepository
	scans  repository.ScanRepository
}

// NewPointsService constructs PointsService.
func NewPointsService(points repository.PointsRepository, scans repository.ScanRepository) *PointsServiceImpl {
	return &PointsServiceImpl{points: points, scans: scans}
}

func (s *PointsServiceImpl) Scoreboard(ctx context.Context, userID string) (model.Scoreboard, error) {
	if userID == "" {
		return model.Scoreboard{}, errs.ErrUnauthorized
	}
	p, err := s.points.Get(ctx, userID)
	if errors.Is(err, errs.ErrNotFound) {
		return ledger.Scoreboard(model.UserPoints{UserID: userID, History: []model.HistoryEntry{}}), nil
	}
	if err != nil {
		return model.Scoreboard{}, err
	}
	return ledger.Scoreboard(*p), nil
}

func (s *PointsServiceImpl) RecentScans(ctx context.Context, userID string) ([]model.ScanEvent, error) {
	if userID == "" {
		return nil, errs.ErrUnauthorized
	}
	return s.scans.ListByUser(ctx, userID, RecentScansLimit)
}
