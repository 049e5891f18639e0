// Package radial computes placement and connective geometry for circular
// dashboard visualizations. Every function is a pure computation over its
// inputs; animation time and hover state are supplied by the caller.
package radial

import "github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"

// Score bounds accepted by radius mapping.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// ScoredEntity is an item placed on a radial layout.
type ScoredEntity struct {
	ID       string  `json:"id" yaml:"id" validate:"required"`
	Category string  `json:"category" yaml:"category" validate:"required"`
	Label    string  `json:"label,omitempty" yaml:"label"`
	Score    float64 `json:"score" yaml:"score"`
	Trend    float64 `json:"trend" yaml:"trend"` // passed through for rendering
}

// LayoutConfig holds engine parameters for one visualization.
type LayoutConfig struct {
	CenterX       float64 `json:"center_x" yaml:"center_x"`
	CenterY       float64 `json:"center_y" yaml:"center_y"`
	MinRadius     float64 `json:"min_radius" yaml:"min_radius"`
	MaxRadius     float64 `json:"max_radius" yaml:"max_radius"`
	InnerRadius   float64 `json:"inner_radius" yaml:"inner_radius"`
	RotationSpeed float64 `json:"rotation_speed" yaml:"rotation_speed"` // radians per ms, 0 = static
	StartAngle    float64 `json:"start_angle" yaml:"start_angle"`       // degrees added to every slot
}

// Center returns the layout center as a point.
func (c LayoutConfig) Center() geo.Point2D {
	return geo.Pt(c.CenterX, c.CenterY)
}

// PlacedEntity is the projected position of one entity for a single pass.
type PlacedEntity struct {
	Entity       ScoredEntity `json:"entity"`
	AngleDegrees float64      `json:"angle_degrees"`
	AngleRadians float64      `json:"angle_radians"` // includes rotation offset
	Radius       float64      `json:"radius"`
	X            float64      `json:"x"`
	Y            float64      `json:"y"`
}

// Point returns the placed position.
func (p PlacedEntity) Point() geo.Point2D {
	return geo.Pt(p.X, p.Y)
}

// Connection is a weighted relationship between two entity ids.
type Connection struct {
	FromID   string  `json:"from_id" yaml:"from"`
	ToID     string  `json:"to_id" yaml:"to"`
	Strength float64 `json:"strength" yaml:"strength"`
}

// RoutedConnection is a connection whose endpoints were both placed.
type RoutedConnection struct {
	FromID      string      `json:"from_id"`
	ToID        string      `json:"to_id"`
	Strength    float64     `json:"strength"`
	From        geo.Point2D `json:"from"`
	Control     geo.Point2D `json:"control"`
	To          geo.Point2D `json:"to"`
	StrokeWidth float64     `json:"stroke_width"`
	Opacity     float64     `json:"opacity"`
	Highlighted bool        `json:"highlighted"`
	Path        string      `json:"path"`
}

// SegmentGeometry describes one wedge of a ring layout.
type SegmentGeometry struct {
	StartAngle   float64 `json:"start_angle"` // degrees
	EndAngle     float64 `json:"end_angle"`   // degrees
	InnerRadius  float64 `json:"inner_radius"`
	OuterRadius  float64 `json:"outer_radius"`
	LargeArcFlag int     `json:"large_arc_flag"`
	Commands     Path    `json:"-"`
	Path         string  `json:"path"`
}

// Span is the angular slot assigned to an entity, in degrees.
type Span struct {
	ID    string  `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Sweep returns the angular width of the span.
func (s Span) Sweep() float64 {
	return s.End - s.Start
}

// Mid returns the angle halfway through the span.
func (s Span) Mid() float64 {
	return (s.Start + s.End) / 2
}
