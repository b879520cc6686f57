package convert

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	pb "github.com/and161185/ecoscan/gen/go/ecoscan/v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"github.com/and161185/ecoscan/internal/model"
)

func TestPoints_NilAndEntries(t *testing.T) {
	t.Parallel()

	if ToWirePoints(nil) != nil {
		t.Fatalf("nil domain record must give nil wire")
	}
	back := FromWirePoints(nil)
	if back.History == nil || back.Total != 0 {
		t.Fatalf("nil wire must give empty record, got %+v", back)
	}

	w := &pb.UserPoints{UserId: "a@b.c", Total: 100, History: []*pb.HistoryEntry{
		{Date: "2025-01-01", Points: 50}, nil, {Date: "2025-01-02", Points: 50},
	}}
	got := FromWirePoints(w)
	if got.Total != 100 || len(got.History) != 2 || got.History[1].Date != "2025-01-02" {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestScan_Outcomes(t *testing.T) {
	t.Parallel()

	det := model.ScanOutcome{
		Kind: model.OutcomeDetected, Type: &model.WasteType{Name: "Battery", Icon: "battery"},
		Guidance: "Hazardous bin.", Elapsed: 1500 * time.Millisecond,
	}
	r := ToWireScan(det, &model.UserPoints{UserID: "a@b.c", Total: 50}, true)
	if r.Outcome != pb.Outcome_OUTCOME_DETECTED || r.Type.Name != "Battery" || r.Elapsed.AsDuration() != 1500*time.Millisecond || !r.Credited || r.Points.Total != 50 {
		t.Fatalf("unexpected wire %+v", r)
	}
	back := FromWireScan(r)
	if !back.Detected() || back.Elapsed != 1500*time.Millisecond || back.Guidance != "Hazardous bin." {
		t.Fatalf("unexpected back %+v", back)
	}

	nm := ToWireScan(model.ScanOutcome{Kind: model.OutcomeNoMatch}, nil, false)
	if nm.Outcome != pb.Outcome_OUTCOME_NO_MATCH || nm.Type != nil || nm.Points != nil {
		t.Fatalf("no-match must carry no type/points: %+v", nm)
	}
	if FromWireScan(nm).Detected() {
		t.Fatalf("no-match is not detected")
	}
}

func TestScoreboard(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	at := time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC)
	resp := ToWireScoreboard(
		model.Scoreboard{Points: model.UserPoints{UserID: "a@b.c", Total: 50}, Streak: 1, UniqueDays: 1},
		[]model.ScanEvent{{ID: id, Type: "Paper", Duration: 2 * time.Second, CreatedAt: at}},
	)
	if resp.Streak != 1 || resp.UniqueDays != 1 || len(resp.RecentScans) != 1 {
		t.Fatalf("unexpected %+v", resp)
	}
	ev := resp.RecentScans[0]
	if ev.Id != id.String() || ev.Duration.AsDuration() != 2*time.Second || !ev.CreatedAt.AsTime().Equal(at) {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestLocationsAndProfile(t *testing.T) {
	t.Parallel()

	pts := []model.CollectionPoint{{ID: 7, Name: "Depot", Latitude: 1.5, Longitude: 2.5, Types: []string{"Paper"}}}
	back := FromWireLocations(append(ToWireLocations(pts), nil))
	if len(back) != 1 || back[0].ID != 7 || back[0].Types[0] != "Paper" {
		t.Fatalf("unexpected %+v", back)
	}

	p := model.Profile{Subject: "s", Email: "a@b.c", City: "Oslo", UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	if got := FromWireProfile(ToWireProfile(&p)); got != p {
		t.Fatalf("profile mismatch: %+v vs %+v", got, p)
	}
	if ToWireProfile(nil) != nil {
		t.Fatalf("nil profile must give nil wire")
	}
	if got := FromWireProfile(&pb.Profile{UpdatedAt: &timestamppb.Timestamp{Seconds: -1 << 62}}); !got.UpdatedAt.IsZero() {
		t.Fatalf("bad timestamp must decode to zero")
	}

	if n := len(ToWireWasteTypes([]model.WasteType{{Name: "A"}, {Name: "B"}})); n != 2 {
		t.Fatalf("types len=%d", n)
	}
}

func TestOutcome_Mapping(t *testing.T) {
	t.Parallel()

	for _, k := range []model.OutcomeKind{
		model.OutcomeDetected, model.OutcomeNoMatch, model.OutcomeTimedOut, model.OutcomeOfflineInterrupted,
	} {
		w := ToWireOutcome(k)
		if w == pb.Outcome_OUTCOME_UNSPECIFIED {
			t.Fatalf("%s mapped to unspecified", k)
		}
		if back := FromWireOutcome(w); back != k {
			t.Fatalf("%s came back as %s", k, back)
		}
	}
	if FromWireOutcome(pb.Outcome_OUTCOME_UNSPECIFIED) != "" {
		t.Fatalf("unspecified must map to empty kind")
	}
}

func TestScan_SurvivesProtoEncoding(t *testing.T) {
	t.Parallel()

	det := model.ScanOutcome{
		Kind: model.OutcomeDetected, Type: &model.WasteType{Name: "Glass", Icon: "glass"},
		Guidance: "Green bin.", Elapsed: 900 * time.Millisecond,
	}
	raw, err := proto.Marshal(ToWireScan(det, &model.UserPoints{UserID: "a@b.c", Total: 50}, true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var r pb.ScanResponse
	if err := proto.Unmarshal(raw, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	back := FromWireScan(&r)
	if !back.Detected() || back.Type.Name != "Glass" || back.Elapsed != 900*time.Millisecond || r.GetPoints().GetTotal() != 50 {
		t.Fatalf("unexpected %+v / %+v", back, &r)
	}
}
