// Package grpcserver exposes the EcoScan gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/ecoscan/gen/go/ecoscan/v1"
	"github.com/and161185/ecoscan/internal/convert"
	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/service"
)

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedEcoScanServer

	scans  service.ScanService
	points service.PointsService
	dir    service.DirectoryService
}

var _ pb.EcoScanServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(scans service.ScanService, points service.PointsService, dir service.DirectoryService) *Server {
	return &Server{scans: scans, points: points, dir: dir}
}

// toStatus maps domain errors onto gRPC codes.
func toStatus(op string, err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "no auth")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, errs.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, op)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, op)
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

func caller(ctx context.Context) (string, error) {
	email, ok := EmailFromCtx(ctx)
	if !ok || email == "" {
		return "", status.Error(codes.Unauthenticated, "no auth")
	}
	return email, nil
}

// Scan runs one scan. Outcomes other than detected are data, not errors.
func (s *Server) Scan(ctx context.Context, req *pb.ScanRequest) (*pb.ScanResponse, error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(req.ScanId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad scan id")
	}
	res, err := s.scans.Scan(ctx, email, service.ScanRequest{ScanID: id, ImageBase64: req.ImageBase64})
	if err != nil {
		return nil, toStatus("scan", err)
	}
	return convert.ToWireScan(res.Outcome, res.Points, res.Credited), nil
}

// GetPoints returns the scoreboard and recent scans.
func (s *Server) GetPoints(ctx context.Context, _ *pb.GetPointsRequest) (*pb.GetPointsResponse, error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	sb, err := s.points.Scoreboard(ctx, email)
	if err != nil {
		return nil, toStatus("get points", err)
	}
	recent, err := s.points.RecentScans(ctx, email)
	if err != nil {
		return nil, toStatus("recent scans", err)
	}
	return convert.ToWireScoreboard(sb, recent), nil
}

// ListTypes returns the waste type catalog.
func (s *Server) ListTypes(ctx context.Context, _ *pb.ListTypesRequest) (*pb.ListTypesResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	return &pb.ListTypesResponse{Types: convert.ToWireWasteTypes(s.dir.Types())}, nil
}

// ListLocations returns collection points, optionally filtered by type.
func (s *Server) ListLocations(ctx context.Context, req *pb.ListLocationsRequest) (*pb.ListLocationsResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	pts, err := s.dir.Locations(ctx, req.WasteType)
	if err != nil {
		return nil, toStatus("list locations", err)
	}
	return &pb.ListLocationsResponse{Locations: convert.ToWireLocations(pts)}, nil
}

// BumpCounter increments a usage counter.
func (s *Server) BumpCounter(ctx context.Context, req *pb.BumpCounterRequest) (*pb.BumpCounterResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	n, err := s.dir.BumpCounter(ctx, req.Name)
	if err != nil {
		return nil, toStatus("bump counter", err)
	}
	return &pb.BumpCounterResponse{Count: n}, nil
}

// SaveProfile stores the token's identity claims plus the request extras.
func (s *Server) SaveProfile(ctx context.Context, req *pb.SaveProfileRequest) (*pb.SaveProfileResponse, error) {
	claims, ok := ClaimsFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	p := claims.Profile()
	p.City = req.City
	if err := s.dir.SaveProfile(ctx, p); err != nil {
		return nil, toStatus("save profile", err)
	}
	saved, err := s.dir.Profile(ctx, p.Email)
	if err != nil {
		return nil, toStatus("save profile", err)
	}
	return &pb.SaveProfileResponse{Profile: convert.ToWireProfile(saved)}, nil
}

// GetProfile loads the caller's stored profile.
func (s *Server) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.dir.Profile(ctx, email)
	if err != nil {
		return nil, toStatus("get profile", err)
	}
	return &pb.GetProfileResponse{Profile: convert.ToWireProfile(p)}, nil
}
