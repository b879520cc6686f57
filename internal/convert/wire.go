// Package convert maps domain models to ecoscan.v1 wire messages and back.
package convert

import (
	"time"

	pb "github.com/and161185/ecoscan/gen/go/ecoscan/v1"
	"github.com/and161185/ecoscan/internal/model"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTS(t *timestamppb.Timestamp) time.Time {
	if t == nil || t.CheckValid() != nil {
		return time.Time{}
	}
	return t.AsTime()
}

func fromDur(d *durationpb.Duration) time.Duration {
	if d == nil || d.CheckValid() != nil {
		return 0
	}
	return d.AsDuration()
}

var outcomes = map[model.OutcomeKind]pb.Outcome{
	model.OutcomeDetected:           pb.Outcome_OUTCOME_DETECTED,
	model.OutcomeNoMatch:            pb.Outcome_OUTCOME_NO_MATCH,
	model.OutcomeTimedOut:           pb.Outcome_OUTCOME_TIMED_OUT,
	model.OutcomeOfflineInterrupted: pb.Outcome_OUTCOME_OFFLINE_INTERRUPTED,
}

// ToWireOutcome maps an outcome kind; unknown kinds map to OUTCOME_UNSPECIFIED.
func ToWireOutcome(k model.OutcomeKind) pb.Outcome {
	return outcomes[k]
}

// FromWireOutcome maps a wire outcome back; OUTCOME_UNSPECIFIED gives "".
func FromWireOutcome(o pb.Outcome) model.OutcomeKind {
	for k, v := range outcomes {
		if v == o {
			return k
		}
	}
	return ""
}

// --- catalog ---

// ToWireWasteType converts a catalog entry; nil stays nil.
func ToWireWasteType(w *model.WasteType) *pb.WasteType {
	if w == nil {
		return nil
	}
	return &pb.WasteType{Name: w.Name, Icon: w.Icon}
}

// ToWireWasteTypes converts the catalog listing.
func ToWireWasteTypes(in []model.WasteType) []*pb.WasteType {
	out := make([]*pb.WasteType, 0, len(in))
	for i := range in {
		out = append(out, ToWireWasteType(&in[i]))
	}
	return out
}

// --- points ---

// ToWirePoints converts a points record.
func ToWirePoints(p *model.UserPoints) *pb.UserPoints {
	if p == nil {
		return nil
	}
	hist := make([]*pb.HistoryEntry, 0, len(p.History))
	for _, h := range p.History {
		hist = append(hist, &pb.HistoryEntry{Date: h.Date, Points: int32(h.Points)})
	}
	return &pb.UserPoints{UserId: p.UserID, Total: int32(p.Total), History: hist}
}

// FromWirePoints converts a wire record back; nil entries are skipped.
func FromWirePoints(p *pb.UserPoints) model.UserPoints {
	if p == nil {
		return model.UserPoints{History: []model.HistoryEntry{}}
	}
	hist := make([]model.HistoryEntry, 0, len(p.History))
	for _, h := range p.History {
		if h == nil {
			continue
		}
		hist = append(hist, model.HistoryEntry{Date: h.Date, Points: int(h.Points)})
	}
	return model.UserPoints{UserID: p.UserId, Total: int(p.Total), History: hist}
}

// ToWireScoreboard builds a GetPoints response.
func ToWireScoreboard(sb model.Scoreboard, recent []model.ScanEvent) *pb.GetPointsResponse {
	evs := make([]*pb.ScanEvent, 0, len(recent))
	for _, e := range recent {
		evs = append(evs, &pb.ScanEvent{
			Id:        e.ID.String(),
			Type:      e.Type,
			Duration:  durationpb.New(e.Duration),
			CreatedAt: ts(e.CreatedAt),
		})
	}
	return &pb.GetPointsResponse{
		Points:      ToWirePoints(&sb.Points),
		Streak:      int32(sb.Streak),
		UniqueDays:  int32(sb.UniqueDays),
		RecentScans: evs,
	}
}

// --- scan ---

// ToWireScan converts a scan outcome and its ledger effect.
func ToWireScan(o model.ScanOutcome, points *model.UserPoints, credited bool) *pb.ScanResponse {
	return &pb.ScanResponse{
		Outcome:  ToWireOutcome(o.Kind),
		Type:     ToWireWasteType(o.Type),
		Guidance: o.Guidance,
		Elapsed:  durationpb.New(o.Elapsed),
		Credited: credited,
		Points:   ToWirePoints(points),
	}
}

// FromWireScan recovers the outcome from a response.
func FromWireScan(r *pb.ScanResponse) model.ScanOutcome {
	o := model.ScanOutcome{
		Kind:     FromWireOutcome(r.GetOutcome()),
		Guidance: r.GetGuidance(),
		Elapsed:  fromDur(r.GetElapsed()),
	}
	if t := r.GetType(); t != nil {
		o.Type = &model.WasteType{Name: t.GetName(), Icon: t.GetIcon()}
	}
	return o
}

// --- locations ---

// ToWireLocations converts collection points.
func ToWireLocations(in []model.CollectionPoint) []*pb.CollectionPoint {
	out := make([]*pb.CollectionPoint, 0, len(in))
	for _, c := range in {
		out = append(out, &pb.CollectionPoint{
			Id: c.ID, Name: c.Name, Address: c.Address,
			Latitude: c.Latitude, Longitude: c.Longitude, Types: c.Types,
		})
	}
	return out
}

// FromWireLocations converts collection points back.
func FromWireLocations(in []*pb.CollectionPoint) []model.CollectionPoint {
	out := make([]model.CollectionPoint, 0, len(in))
	for _, c := range in {
		if c == nil {
			continue
		}
		out = append(out, model.CollectionPoint{
			ID: c.Id, Name: c.Name, Address: c.Address,
			Latitude: c.Latitude, Longitude: c.Longitude, Types: c.Types,
		})
	}
	return out
}

// --- profile ---

// ToWireProfile converts a profile.
func ToWireProfile(p *model.Profile) *pb.Profile {
	if p == nil {
		return nil
	}
	return &pb.Profile{
		Sub: p.Subject, Email: p.Email, EmailVerified: p.EmailVerified,
		Name: p.Name, Nickname: p.Nickname, Picture: p.Picture,
		UpdatedAt: ts(p.UpdatedAt), City: p.City,
	}
}

// FromWireProfile converts a profile back.
func FromWireProfile(p *pb.Profile) model.Profile {
	if p == nil {
		return model.Profile{}
	}
	return model.Profile{
		Subject: p.Sub, Email: p.Email, EmailVerified: p.EmailVerified,
		Name: p.Name, Nickname: p.Nickname, Picture: p.Picture,
		UpdatedAt: fromTS(p.UpdatedAt), City: p.City,
	}
}
