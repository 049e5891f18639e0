package radial

import (
	"math"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
)

// SegmentAt returns the index of the first segment around center that
// contains pt, or -1.
func SegmentAt(pt, center geo.Point2D, segments []SegmentGeometry) int {
	rel := pt.Sub(center)
	r := rel.Length()
	angle := geo.RadToDeg(rel.Angle())

	for i, s := range segments {
		if r < s.InnerRadius || r > s.OuterRadius {
			continue
		}
		sweep := s.EndAngle - s.StartAngle
		if sweep >= 360 {
			return i
		}
		if geo.NormalizeDeg(angle-s.StartAngle) < sweep {
			return i
		}
	}
	return -1
}

// NearestMarker returns the placed entity closest to pt within tolerance.
func NearestMarker(pt geo.Point2D, placed []PlacedEntity, tolerance float64) (PlacedEntity, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range placed {
		d := pt.Distance(p.Point())
		if d <= tolerance && d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return PlacedEntity{}, false
	}
	return placed[best], true
}
