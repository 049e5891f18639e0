package radial

import (
	"math"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
)

// ProgressStartAngle is 12 o'clock in SVG coordinates, where progress rings start.
const ProgressStartAngle = -90.0

// BuildSegmentPath builds a wedge centered on the origin.
func BuildSegmentPath(startAngle, endAngle, innerRadius, outerRadius float64) SegmentGeometry {
	return BuildSegmentPathAt(geo.Origin, startAngle, endAngle, innerRadius, outerRadius)
}

// BuildSegmentPathAt builds the closed path of a ring wedge between two
// angles (degrees) and two radii around center.
//
// The path runs inner-start, arc to inner-end, line to outer-end, arc back to
// outer-start, close. The large-arc flag is set only when the sweep is
// strictly greater than 180 degrees. An inner radius of 0 gives a pie slice
// and a sweep of 360 or more gives a full ring drawn as two subpaths.
func BuildSegmentPathAt(center geo.Point2D, startAngle, endAngle, innerRadius, outerRadius float64) SegmentGeometry {
	startAngle, endAngle = sanitizeAngles(startAngle, endAngle)
	innerRadius, outerRadius = sanitizeRadii(innerRadius, outerRadius)

	sweep := endAngle - startAngle
	large := 0
	if sweep > 180 {
		large = 1
	}

	var path Path
	switch {
	case sweep >= 360:
		path = fullRing(center, startAngle, innerRadius, outerRadius)
	case innerRadius == 0:
		path = Path{}.
			MoveTo(center).
			LineTo(Project(endAngle, outerRadius, center, 0)).
			ArcTo(outerRadius, large, 0, Project(startAngle, outerRadius, center, 0)).
			Close()
	default:
		path = Path{}.
			MoveTo(Project(startAngle, innerRadius, center, 0)).
			ArcTo(innerRadius, large, 1, Project(endAngle, innerRadius, center, 0)).
			LineTo(Project(endAngle, outerRadius, center, 0)).
			ArcTo(outerRadius, large, 0, Project(startAngle, outerRadius, center, 0)).
			Close()
	}

	return SegmentGeometry{
		StartAngle:   startAngle,
		EndAngle:     endAngle,
		InnerRadius:  innerRadius,
		OuterRadius:  outerRadius,
		LargeArcFlag: large,
		Commands:     path,
		Path:         path.String(),
	}
}

// fullRing draws a closed annulus. An SVG arc whose endpoints coincide is
// not rendered, so each circle is split into two half arcs. The inner
// circle winds the other way so it cuts a hole under the nonzero fill rule.
func fullRing(center geo.Point2D, start, inner, outer float64) Path {
	half := start + 180
	path := Path{}.
		MoveTo(Project(start, outer, center, 0)).
		ArcTo(outer, 0, 1, Project(half, outer, center, 0)).
		ArcTo(outer, 0, 1, Project(start, outer, center, 0)).
		Close()
	if inner > 0 {
		path = path.
			MoveTo(Project(start, inner, center, 0)).
			ArcTo(inner, 0, 0, Project(half, inner, center, 0)).
			ArcTo(inner, 0, 0, Project(start, inner, center, 0)).
			Close()
	}
	return path
}

// BuildProgressRing builds the score ring used by dashboard cards: a band of
// the given thickness centered on radius, filled clockwise from 12 o'clock
// in proportion to score/100.
func BuildProgressRing(center geo.Point2D, score, radius, thickness float64) SegmentGeometry {
	half := math.Abs(thickness) / 2
	sweep := clampScore(score) / MaxScore * 360
	return BuildSegmentPathAt(center, ProgressStartAngle, ProgressStartAngle+sweep, radius-half, radius+half)
}

func sanitizeAngles(start, end float64) (float64, float64) {
	if math.IsNaN(start) || math.IsInf(start, 0) {
		start = 0
	}
	if math.IsNaN(end) || math.IsInf(end, 0) {
		end = start
	}
	if end < start {
		start, end = end, start
	}
	return start, end
}

func sanitizeRadii(inner, outer float64) (float64, float64) {
	if math.IsNaN(inner) || math.IsInf(inner, 0) || inner < 0 {
		inner = 0
	}
	if math.IsNaN(outer) || math.IsInf(outer, 0) || outer < 0 {
		outer = 0
	}
	if inner > outer {
		inner, outer = outer, inner
	}
	return inner, outer
}
