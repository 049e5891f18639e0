package radial

import (
	"math"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
)

// Project converts a polar position to a point offset from center.
// rotationOffset (radians) is added after the degree-to-radian conversion.
func Project(angleDegrees, radius float64, center geo.Point2D, rotationOffset float64) geo.Point2D {
	return geo.Polar(center, geo.DegToRad(angleDegrees)+rotationOffset, radius)
}

// RotationOffset returns the drift in radians after timeMs at speed
// radians per millisecond. The clock belongs to the caller's render loop.
func RotationOffset(timeMs, speed float64) float64 {
	if math.IsNaN(timeMs) || math.IsNaN(speed) {
		return 0
	}
	return timeMs * speed
}

// Place runs one layout pass: every entity gets a slot angle from policy,
// a radius from its score and a projected position. The input slice is
// not modified.
func Place(entities []ScoredEntity, cfg LayoutConfig, policy Policy, timeMs float64) []PlacedEntity {
	spans := Spans(entities, policy)
	offset := RotationOffset(timeMs, cfg.RotationSpeed)
	center := cfg.Center()

	placed := make([]PlacedEntity, len(entities))
	for i, e := range entities {
		angle := slotAngle(spans[i], policy) + cfg.StartAngle
		r := MapRadius(e.Score, cfg)
		pt := Project(angle, r, center, offset)
		placed[i] = PlacedEntity{
			Entity:       e,
			AngleDegrees: angle,
			AngleRadians: geo.DegToRad(angle) + offset,
			Radius:       r,
			X:            pt.X,
			Y:            pt.Y,
		}
	}
	return placed
}

// slotAngle picks the marker angle for a span. Equal spacing uses the slot
// start so that angle(i) = i*360/N; weighted slots use their midpoint.
func slotAngle(s Span, policy Policy) float64 {
	if policy == PolicyScore || policy == PolicyInverseScore {
		return s.Mid()
	}
	return s.Start
}

// Index builds the id lookup consumed by Route. Later duplicates win.
func Index(placed []PlacedEntity) map[string]PlacedEntity {
	idx := make(map[string]PlacedEntity, len(placed))
	for _, p := range placed {
		idx[p.Entity.ID] = p
	}
	return idx
}
