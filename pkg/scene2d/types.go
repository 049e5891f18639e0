package scene2d

import (
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/analytics"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
)

// Scene is one layout pass of a radial visualization, ready for an SVG renderer.
type Scene struct {
	Metadata   Metadata          `json:"metadata"`
	ViewBox    [4]float64        `json:"view_box"` // min-x, min-y, width, height
	Guides     []Guide           `json:"guides"`
	Markers    []Marker          `json:"markers"`
	Wedges     []Wedge           `json:"wedges"`
	Connectors []Connector       `json:"connectors"`
	Progress   Progress          `json:"progress"`
	Summary    analytics.Summary `json:"summary"`

	center    geo.Point2D
	hitSlop   float64
	placed    []radial.PlacedEntity
	segments  []radial.SegmentGeometry
	adjacency map[string][]string
}

// Metadata holds scene-level data.
type Metadata struct {
	SceneID            string  `json:"scene_id"`
	Variant            string  `json:"variant"`
	Title              string  `json:"title"`
	Mode               string  `json:"mode"`
	EntityCount        int     `json:"entity_count"`
	ConnectionsDropped int     `json:"connections_dropped"`
	TimeMs             float64 `json:"time_ms"`
	RotationRadians    float64 `json:"rotation_radians"`
	GeneratedAt        string  `json:"generated_at"`
}

// Guide is a decorative reference circle.
type Guide struct {
	Name   string     `json:"name"`
	Center [2]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Color  string     `json:"color"`
}

// Marker is a point-style entity.
type Marker struct {
	ID           string     `json:"id"`
	Category     string     `json:"category"`
	Label        string     `json:"label,omitempty"`
	Score        float64    `json:"score"`
	Trend        float64    `json:"trend"`
	Band         string     `json:"band"`
	Position     [2]float64 `json:"position"`
	Size         float64    `json:"size"`
	Distance     float64    `json:"distance"`
	AngleDegrees float64    `json:"angle_degrees"`
	Color        string     `json:"color"`
	Highlighted  bool       `json:"highlighted"`
}

// Wedge is a ring segment for one entity.
type Wedge struct {
	ID           string     `json:"id"`
	Category     string     `json:"category"`
	Label        string     `json:"label,omitempty"`
	Score        float64    `json:"score"`
	Path         string     `json:"path"`
	StartAngle   float64    `json:"start_angle"`
	EndAngle     float64    `json:"end_angle"`
	InnerRadius  float64    `json:"inner_radius"`
	OuterRadius  float64    `json:"outer_radius"`
	LargeArcFlag int        `json:"large_arc_flag"`
	LabelAnchor  [2]float64 `json:"label_anchor"` // mid angle, mid radius
	Color        string     `json:"color"`
	Highlighted  bool       `json:"highlighted"`
}

// Connector is a curved relationship line.
type Connector struct {
	FromID      string  `json:"from_id"`
	ToID        string  `json:"to_id"`
	Strength    float64 `json:"strength"`
	Path        string  `json:"path"`
	StrokeWidth float64 `json:"stroke_width"`
	Opacity     float64 `json:"opacity"`
	Color       string  `json:"color"`
	Highlighted bool    `json:"highlighted"`
}

// Progress is the overall score ring drawn in the middle of the wheel.
type Progress struct {
	Score float64 `json:"score"`
	Band  string  `json:"band"`
	Path  string  `json:"path"`
}
