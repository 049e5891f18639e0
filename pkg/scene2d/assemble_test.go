package scene2d

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/spec"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func networkSpec() *spec.WheelSpec {
	return &spec.WheelSpec{
		SpecVersion: "0.1.0",
		Wheel:       spec.WheelDef{Variant: "vital-network"},
		Entities: []radial.ScoredEntity{
			{ID: "heart", Category: "cardiovascular", Score: 100, Trend: 2},
			{ID: "glucose", Category: "metabolic", Score: 0},
			{ID: "vo2", Category: "fitness", Score: 50},
		},
		Connections: []radial.Connection{
			{FromID: "heart", ToID: "liver", Strength: 0.5},
		},
	}
}

func wheelSpec() *spec.WheelSpec {
	return &spec.WheelSpec{
		SpecVersion: "0.1.0",
		Wheel:       spec.WheelDef{Variant: "health-wheel"},
		Entities: []radial.ScoredEntity{
			{ID: "heart", Category: "cardiovascular", Score: 100},
			{ID: "glucose", Category: "metabolic", Score: 50},
			{ID: "crp", Category: "inflammatory", Score: 20},
			{ID: "sleep", Category: "sleep", Score: 80},
		},
	}
}

func TestAssembleProducesScene(t *testing.T) {
	sc, report := Assemble(networkSpec(), Frame{})
	if sc == nil {
		t.Fatal("expected non-nil scene")
	}
	if !report.Valid {
		t.Fatalf("unexpected errors: %+v", report.Errors)
	}
	if len(sc.Markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(sc.Markers))
	}
	if len(sc.Wedges) != 0 {
		t.Errorf("marker variant should not produce wedges, got %d", len(sc.Wedges))
	}
}

func TestAssembleMetadata(t *testing.T) {
	sc, _ := Assemble(networkSpec(), Frame{TimeMs: 10000})
	md := sc.Metadata
	if md.Variant != "vital-network" {
		t.Errorf("variant = %q", md.Variant)
	}
	if md.Mode != "markers" {
		t.Errorf("mode = %q", md.Mode)
	}
	if md.EntityCount != 3 {
		t.Errorf("entity_count = %d", md.EntityCount)
	}
	if !approxEqual(md.RotationRadians, 0.5, 1e-12) {
		t.Errorf("rotation = %v, want 0.5", md.RotationRadians)
	}
	if md.SceneID == "" || md.GeneratedAt == "" {
		t.Error("scene_id and generated_at must be set")
	}

	other, _ := Assemble(networkSpec(), Frame{TimeMs: 10000})
	if other.Metadata.SceneID == md.SceneID {
		t.Error("each pass should get its own scene id")
	}
}

func TestAssembleMarkers(t *testing.T) {
	sc, _ := Assemble(networkSpec(), Frame{Highlight: []string{"glucose"}})

	heart := sc.Markers[0]
	if !approxEqual(heart.Position[0], 180, 1e-9) || !approxEqual(heart.Position[1], 0, 1e-9) {
		t.Errorf("heart at %v, want (180,0)", heart.Position)
	}
	if heart.Band != "excellent" {
		t.Errorf("heart band = %q", heart.Band)
	}

	glucose := sc.Markers[1]
	if !approxEqual(glucose.Distance, 60, 1e-9) {
		t.Errorf("glucose distance = %v, want 60", glucose.Distance)
	}
	if !approxEqual(glucose.AngleDegrees, 120, 1e-9) {
		t.Errorf("glucose angle = %v, want 120", glucose.AngleDegrees)
	}
	if !glucose.Highlighted || heart.Highlighted {
		t.Error("only glucose should be highlighted")
	}
	for _, m := range sc.Markers {
		if m.Color == "" {
			t.Errorf("marker %s has no color", m.ID)
		}
	}
}

func TestAssembleConnectors(t *testing.T) {
	sc, report := Assemble(networkSpec(), Frame{Highlight: []string{"vo2"}})

	// cardiovascular-metabolic, cardiovascular-fitness, fitness-metabolic
	if len(sc.Connectors) != 3 {
		t.Fatalf("expected 3 connectors, got %d: %+v", len(sc.Connectors), sc.Connectors)
	}
	for _, c := range sc.Connectors {
		if !strings.HasPrefix(c.Path, "M ") || !strings.Contains(c.Path, " Q ") {
			t.Errorf("connector %s-%s has unexpected path %q", c.FromID, c.ToID, c.Path)
		}
		touchesVO2 := c.FromID == "vo2" || c.ToID == "vo2"
		if c.Highlighted != touchesVO2 {
			t.Errorf("connector %s-%s highlighted = %v", c.FromID, c.ToID, c.Highlighted)
		}
		if c.Opacity > 1 {
			t.Errorf("opacity %v exceeds 1", c.Opacity)
		}
	}

	if len(report.Info) != 1 {
		t.Fatalf("expected 1 info for the dangling connection, got %+v", report.Info)
	}
	if report.Info[0].ActualValue != 1 {
		t.Errorf("dropped count = %v", report.Info[0].ActualValue)
	}
	if sc.Metadata.ConnectionsDropped != 1 {
		t.Errorf("connections_dropped = %d", sc.Metadata.ConnectionsDropped)
	}
}

func TestAssembleConnectorsHidden(t *testing.T) {
	s := networkSpec()
	hide := false
	s.Wheel.Connectors.Show = &hide
	sc, report := Assemble(s, Frame{})
	if len(sc.Connectors) != 0 {
		t.Errorf("expected no connectors, got %d", len(sc.Connectors))
	}
	if len(report.Info) != 0 {
		t.Errorf("no connections are routed, so none are dropped: %+v", report.Info)
	}
}

func TestAssembleWedges(t *testing.T) {
	sc, report := Assemble(wheelSpec(), Frame{})
	if !report.Valid {
		t.Fatalf("unexpected errors: %+v", report.Errors)
	}
	if len(sc.Wedges) != 4 {
		t.Fatalf("expected 4 wedges, got %d", len(sc.Wedges))
	}

	first := sc.Wedges[0]
	if first.StartAngle != -90 || first.EndAngle != 0 {
		t.Errorf("first wedge spans [%v,%v], want [-90,0]", first.StartAngle, first.EndAngle)
	}
	if first.OuterRadius != 180 || first.InnerRadius != 60 {
		t.Errorf("first wedge radii = %v/%v", first.InnerRadius, first.OuterRadius)
	}
	if !strings.HasPrefix(first.Path, "M 0 -60 A 60 60 0 0 1 60 0") {
		t.Errorf("unexpected wedge path %q", first.Path)
	}

	for i := 1; i < len(sc.Wedges); i++ {
		if sc.Wedges[i].StartAngle != sc.Wedges[i-1].EndAngle {
			t.Errorf("wedge %d does not start where wedge %d ends", i, i-1)
		}
	}

	var inner bool
	for _, g := range sc.Guides {
		if g.Name == "inner" && g.Radius == 60 {
			inner = true
		}
	}
	if !inner {
		t.Error("wedge variant should draw the inner guide")
	}
}

func TestAssembleProgress(t *testing.T) {
	sc, _ := Assemble(wheelSpec(), Frame{})
	if !approxEqual(sc.Progress.Score, 62.5, 1e-9) {
		t.Errorf("progress score = %v, want 62.5", sc.Progress.Score)
	}
	if sc.Progress.Band != "good" {
		t.Errorf("progress band = %q", sc.Progress.Band)
	}
	if sc.Progress.Path == "" {
		t.Error("progress path is empty")
	}
}

func TestAssembleUnknownVariant(t *testing.T) {
	s := networkSpec()
	s.Wheel.Variant = "donut"
	sc, report := Assemble(s, Frame{})
	if sc != nil {
		t.Error("expected nil scene")
	}
	if report.Valid || len(report.Errors) != 1 {
		t.Errorf("expected one error, got %+v", report)
	}
}

func TestAssembleEmpty(t *testing.T) {
	s := networkSpec()
	s.Entities = nil
	sc, _ := Assemble(s, Frame{})
	if len(sc.Markers) != 0 || len(sc.Connectors) != 0 {
		t.Error("empty wheel should have no markers or connectors")
	}
	if len(sc.Guides) == 0 {
		t.Error("guides are drawn even for an empty wheel")
	}
}

func TestEntityAtMarkers(t *testing.T) {
	sc, _ := Assemble(networkSpec(), Frame{})
	if id, ok := sc.EntityAt(geo.Pt(178, 2)); !ok || id != "heart" {
		t.Errorf("EntityAt near heart = %q, %v", id, ok)
	}
	if _, ok := sc.EntityAt(geo.Pt(0, 0)); ok {
		t.Error("center should not hit a marker")
	}
}

func TestEntityAtWedges(t *testing.T) {
	sc, _ := Assemble(wheelSpec(), Frame{})
	pt := geo.Polar(geo.Origin, geo.DegToRad(-45), 65)
	if id, ok := sc.EntityAt(pt); !ok || id != "heart" {
		t.Errorf("EntityAt in first wedge = %q, %v", id, ok)
	}
	if _, ok := sc.EntityAt(geo.Pt(0, 50)); ok {
		t.Error("the hole inside the inner radius should not hit")
	}
}

func TestWedgeLabelAnchorsInsideWedge(t *testing.T) {
	sc, _ := Assemble(wheelSpec(), Frame{})
	for i, w := range sc.Wedges {
		anchor := geo.Pt(w.LabelAnchor[0], w.LabelAnchor[1])
		if id, ok := sc.EntityAt(anchor); !ok || id != w.ID {
			t.Errorf("wedge %d label anchor hits %q, %v; want %q", i, id, ok, w.ID)
		}
		if approxEqual(anchor.X, sc.Markers[i].Position[0], 1e-6) && approxEqual(anchor.Y, sc.Markers[i].Position[1], 1e-6) {
			t.Errorf("wedge %d label anchor sits on the slot edge", i)
		}
	}

	// heart spans -90..0 from 60 to 180: the anchor is at -45 degrees, radius 120.
	want := geo.Polar(geo.Origin, geo.DegToRad(-45), 120)
	got := sc.Wedges[0].LabelAnchor
	if !approxEqual(got[0], want.X, 1e-9) || !approxEqual(got[1], want.Y, 1e-9) {
		t.Errorf("heart label anchor = %v, want (%f,%f)", got, want.X, want.Y)
	}
}

func TestSceneJSON(t *testing.T) {
	sc, _ := Assemble(networkSpec(), Frame{})
	data, err := json.Marshal(sc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"metadata"`, `"markers"`, `"connectors"`, `"wedges":[]`, `"summary"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("scene JSON missing %s", key)
		}
	}
}
