package radial

import (
	"math"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
)

// DefaultCurvature bends connectors away from the straight chord.
const DefaultCurvature = 0.2

// RouteOptions controls connector geometry and visual weight.
type RouteOptions struct {
	Center         geo.Point2D
	Curvature      float64
	WidthScale     float64 // stroke width at strength 1
	OpacityScale   float64 // opacity at strength 1
	HighlightBoost float64 // multiplier when an endpoint is highlighted; <= 0 means 1
	Highlighted    map[string]bool
}

// DefaultRouteOptions returns the weights most variants share.
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{
		Curvature:      DefaultCurvature,
		WidthScale:     3,
		OpacityScale:   0.6,
		HighlightBoost: 1.5,
	}
}

// Route turns connections into quadratic connector curves between placed
// entities. Connections naming an id that is not in placed are dropped
// without error, and input order is preserved for the rest.
func Route(connections []Connection, placed map[string]PlacedEntity, opts RouteOptions) []RoutedConnection {
	routed := make([]RoutedConnection, 0, len(connections))
	boost := opts.HighlightBoost
	if boost <= 0 || math.IsNaN(boost) {
		boost = 1
	}

	for _, c := range connections {
		from, ok := placed[c.FromID]
		if !ok {
			continue
		}
		to, ok := placed[c.ToID]
		if !ok {
			continue
		}

		strength := clampUnit(c.Strength)
		a, b := from.Point(), to.Point()
		ctrl := controlPoint(a, b, opts.Center, opts.Curvature)

		width := strength * opts.WidthScale
		opacity := strength * opts.OpacityScale
		highlighted := opts.Highlighted[c.FromID] || opts.Highlighted[c.ToID]
		if highlighted {
			width *= boost
			opacity *= boost
		}

		routed = append(routed, RoutedConnection{
			FromID:      c.FromID,
			ToID:        c.ToID,
			Strength:    strength,
			From:        a,
			Control:     ctrl,
			To:          b,
			StrokeWidth: width,
			Opacity:     clampUnit(opacity),
			Highlighted: highlighted,
			Path:        Path{}.MoveTo(a).QuadTo(ctrl, b).String(),
		})
	}
	return routed
}

// controlPoint offsets the chord midpoint by curvature, working in
// coordinates relative to center: (mx + my*k, my - mx*k).
func controlPoint(a, b, center geo.Point2D, k float64) geo.Point2D {
	mid := geo.MidPoint(a, b).Sub(center)
	return geo.Point2D{
		X: mid.X + mid.Y*k,
		Y: mid.Y - mid.X*k,
	}.Add(center)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
