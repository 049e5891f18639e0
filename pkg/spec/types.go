package spec

import "github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"

// WheelSpec is the top-level description of one radial visualization.
type WheelSpec struct {
	SpecVersion  string                       `yaml:"spec_version" json:"spec_version" validate:"required"`
	Wheel        WheelDef                     `yaml:"wheel" json:"wheel"`
	Entities     []radial.ScoredEntity        `yaml:"entities" json:"entities" validate:"dive"`
	Correlations map[string][]radial.Relation `yaml:"correlations,omitempty" json:"correlations,omitempty"`
	Connections  []radial.Connection          `yaml:"connections,omitempty" json:"connections,omitempty"`
}

// WheelDef selects the visualization variant and overrides its defaults.
type WheelDef struct {
	Variant      string         `yaml:"variant" json:"variant" validate:"required"`
	Title        string         `yaml:"title" json:"title"`
	Distribution string         `yaml:"distribution" json:"distribution"`
	Layout       LayoutOverride `yaml:"layout" json:"layout"`
	Connectors   ConnectorDef   `yaml:"connectors" json:"connectors"`
}

// LayoutOverride holds optional replacements for a variant's layout config.
// Nil fields keep the variant default.
type LayoutOverride struct {
	CenterX       *float64 `yaml:"center_x" json:"center_x,omitempty"`
	CenterY       *float64 `yaml:"center_y" json:"center_y,omitempty"`
	MinRadius     *float64 `yaml:"min_radius" json:"min_radius,omitempty" validate:"omitempty,gte=0"`
	MaxRadius     *float64 `yaml:"max_radius" json:"max_radius,omitempty" validate:"omitempty,gt=0"`
	InnerRadius   *float64 `yaml:"inner_radius" json:"inner_radius,omitempty" validate:"omitempty,gte=0"`
	RotationSpeed *float64 `yaml:"rotation_speed" json:"rotation_speed,omitempty"`
	StartAngle    *float64 `yaml:"start_angle" json:"start_angle,omitempty"`
}

// ConnectorDef holds optional connector overrides.
type ConnectorDef struct {
	Show           *bool    `yaml:"show" json:"show,omitempty"`
	Curvature      *float64 `yaml:"curvature" json:"curvature,omitempty"`
	WidthScale     *float64 `yaml:"width_scale" json:"width_scale,omitempty" validate:"omitempty,gte=0"`
	OpacityScale   *float64 `yaml:"opacity_scale" json:"opacity_scale,omitempty" validate:"omitempty,gte=0,lte=1"`
	HighlightBoost *float64 `yaml:"highlight_boost" json:"highlight_boost,omitempty" validate:"omitempty,gt=0"`
}

// CorrelationTable returns the spec's correlation overrides as a radial table.
func (s *WheelSpec) CorrelationTable() radial.Table {
	if len(s.Correlations) == 0 {
		return nil
	}
	return radial.Table(s.Correlations)
}

// EntityByID returns the entity with the given id, or nil if not found.
func (s *WheelSpec) EntityByID(id string) *radial.ScoredEntity {
	for i := range s.Entities {
		if s.Entities[i].ID == id {
			return &s.Entities[i]
		}
	}
	return nil
}
