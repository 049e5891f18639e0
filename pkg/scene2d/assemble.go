package scene2d

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/analytics"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/spec"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/validation"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/variants"
)

// Frame carries the caller-owned state of one layout pass.
type Frame struct {
	TimeMs    float64  // render-loop clock, drives continuous rotation
	Highlight []string // hovered or selected entity ids
}

// Progress ring proportions relative to the innermost layout radius.
const (
	progressRadiusFrac    = 0.7
	progressThicknessFrac = 0.2
)

// Assemble runs one layout pass for a wheel spec and converts the result
// into a 2D scene. The report is invalid only when the spec's variant
// cannot be resolved; dropped connections are recorded as info.
func Assemble(s *spec.WheelSpec, frame Frame) (*Scene, *validation.Report) {
	report := validation.NewReport()

	v, err := variants.Resolve(s)
	if err != nil {
		report.AddError(validation.Result{
			Level:       validation.LevelLayout,
			Message:     err.Error(),
			SpecPath:    "wheel.variant",
			ActualValue: s.Wheel.Variant,
		})
		return nil, report
	}

	highlighted := make(map[string]bool, len(frame.Highlight))
	for _, id := range frame.Highlight {
		highlighted[id] = true
	}

	placed := radial.Place(s.Entities, v.Layout, v.Policy, frame.TimeMs)
	rotation := radial.RotationOffset(frame.TimeMs, v.Layout.RotationSpeed)
	center := v.Layout.Center()

	sc := &Scene{
		Metadata:   assembleMetadata(s, v, frame, rotation),
		ViewBox:    assembleViewBox(v),
		Guides:     assembleGuides(v),
		Markers:    assembleMarkers(v, placed, highlighted),
		Wedges:     []Wedge{},
		Connectors: []Connector{},
		Summary:    analytics.Summarize(s.Entities),
		center:     center,
		hitSlop:    v.MarkerRadius,
		placed:     placed,
	}

	if v.Mode == variants.ModeWedges {
		sc.Wedges, sc.segments = assembleWedges(s.Entities, v, rotation, highlighted)
	}

	if v.ShowConnectors {
		conns := connectionsFor(s)
		opts := v.Route
		opts.Highlighted = highlighted
		routed := radial.Route(conns, radial.Index(placed), opts)
		sc.Connectors = assembleConnectors(routed, v)
		sc.adjacency = radial.Adjacency(routed)
		if dropped := len(conns) - len(routed); dropped > 0 {
			sc.Metadata.ConnectionsDropped = dropped
			report.AddInfo(validation.Result{
				Level:       validation.LevelLayout,
				Message:     fmt.Sprintf("%d connection(s) reference entities missing from the layout and were not drawn", dropped),
				SpecPath:    "connections",
				ActualValue: dropped,
			})
		}
	}

	sc.Progress = assembleProgress(v, sc.Summary)
	return sc, report
}

// connectionsFor resolves the correlation table (defaults merged with the
// spec's overrides) against the entity set and appends explicit connections.
func connectionsFor(s *spec.WheelSpec) []radial.Connection {
	table := radial.DefaultTable.Merge(s.CorrelationTable())
	conns := table.Connections(s.Entities)
	return append(conns, s.Connections...)
}

func assembleMetadata(s *spec.WheelSpec, v variants.Variant, frame Frame, rotation float64) Metadata {
	return Metadata{
		SceneID:         uuid.NewString(),
		Variant:         v.Name,
		Title:           v.Title,
		Mode:            string(v.Mode),
		EntityCount:     len(s.Entities),
		TimeMs:          frame.TimeMs,
		RotationRadians: rotation,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

func assembleViewBox(v variants.Variant) [4]float64 {
	return geo.SquareAround(geo.Pt(v.Layout.CenterX, v.Layout.CenterY), v.ViewSize/2).ViewBox()
}

func assembleGuides(v variants.Variant) []Guide {
	c := [2]float64{v.Layout.CenterX, v.Layout.CenterY}
	guides := []Guide{
		{Name: "min", Center: c, Radius: v.Layout.MinRadius, Color: v.Palette.Guide},
		{Name: "max", Center: c, Radius: v.Layout.MaxRadius, Color: v.Palette.Guide},
	}
	if v.Mode == variants.ModeWedges && v.Layout.InnerRadius > 0 {
		guides = append(guides, Guide{Name: "inner", Center: c, Radius: v.Layout.InnerRadius, Color: v.Palette.Guide})
	}
	return guides
}

func assembleMarkers(v variants.Variant, placed []radial.PlacedEntity, highlighted map[string]bool) []Marker {
	markers := make([]Marker, 0, len(placed))
	for i, p := range placed {
		e := p.Entity
		markers = append(markers, Marker{
			ID:           e.ID,
			Category:     e.Category,
			Label:        e.Label,
			Score:        e.Score,
			Trend:        e.Trend,
			Band:         string(analytics.BandFor(e.Score)),
			Position:     [2]float64{p.X, p.Y},
			Size:         v.MarkerRadius,
			Distance:     p.Radius,
			AngleDegrees: p.AngleDegrees,
			Color:        v.Palette.ColorFor(e.Category, i),
			Highlighted:  highlighted[e.ID],
		})
	}
	return markers
}

func assembleWedges(entities []radial.ScoredEntity, v variants.Variant, rotation float64, highlighted map[string]bool) ([]Wedge, []radial.SegmentGeometry) {
	spans := radial.Spans(entities, v.Policy)
	offset := v.Layout.StartAngle + geo.RadToDeg(rotation)
	center := v.Layout.Center()

	wedges := make([]Wedge, 0, len(entities))
	segments := make([]radial.SegmentGeometry, 0, len(entities))
	for i, e := range entities {
		g := radial.BuildSegmentPathAt(center,
			spans[i].Start+offset, spans[i].End+offset,
			v.Layout.InnerRadius, radial.MapRadius(e.Score, v.Layout))
		segments = append(segments, g)
		anchor := radial.Project(spans[i].Mid()+offset, (g.InnerRadius+g.OuterRadius)/2, center, 0)
		wedges = append(wedges, Wedge{
			ID:           e.ID,
			Category:     e.Category,
			Label:        e.Label,
			Score:        e.Score,
			Path:         g.Path,
			StartAngle:   g.StartAngle,
			EndAngle:     g.EndAngle,
			InnerRadius:  g.InnerRadius,
			OuterRadius:  g.OuterRadius,
			LargeArcFlag: g.LargeArcFlag,
			LabelAnchor:  [2]float64{anchor.X, anchor.Y},
			Color:        v.Palette.ColorFor(e.Category, i),
			Highlighted:  highlighted[e.ID],
		})
	}
	return wedges, segments
}

func assembleConnectors(routed []radial.RoutedConnection, v variants.Variant) []Connector {
	out := make([]Connector, 0, len(routed))
	for _, r := range routed {
		out = append(out, Connector{
			FromID:      r.FromID,
			ToID:        r.ToID,
			Strength:    r.Strength,
			Path:        r.Path,
			StrokeWidth: r.StrokeWidth,
			Opacity:     r.Opacity,
			Color:       v.Palette.Connector,
			Highlighted: r.Highlighted,
		})
	}
	return out
}

func assembleProgress(v variants.Variant, sum analytics.Summary) Progress {
	base := v.Layout.InnerRadius
	if base <= 0 {
		base = v.Layout.MinRadius
	}
	g := radial.BuildProgressRing(v.Layout.Center(), sum.Mean,
		base*progressRadiusFrac, base*progressThicknessFrac)
	return Progress{
		Score: sum.Mean,
		Band:  string(sum.Band),
		Path:  g.Path,
	}
}

// EntityAt returns the id of the entity under pt: the containing wedge in
// wedge mode, otherwise the nearest marker within its drawn size.
func (sc *Scene) EntityAt(pt geo.Point2D) (string, bool) {
	if len(sc.segments) > 0 {
		if i := radial.SegmentAt(pt, sc.center, sc.segments); i >= 0 {
			return sc.Wedges[i].ID, true
		}
		return "", false
	}
	p, ok := radial.NearestMarker(pt, sc.placed, sc.hitSlop)
	if !ok {
		return "", false
	}
	return p.Entity.ID, true
}

// Related returns the ids connected to id by a drawn connector.
func (sc *Scene) Related(id string) []string {
	return append([]string{}, sc.adjacency[id]...)
}
