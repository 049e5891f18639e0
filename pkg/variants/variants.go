// Package variants defines the dashboard's radial visualizations as
// configuration over the shared radial engine.
package variants

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/spec"
)

// Mode selects how entities are drawn.
type Mode string

const (
	ModeWedges  Mode = "wedges"
	ModeMarkers Mode = "markers"
)

// Variant names.
const (
	HealthWheel    = "health-wheel"
	VitalNetwork   = "vital-network"
	HarmonyCircles = "harmony-circles"
	MainDashboard  = "main-dashboard"
	Constellation  = "constellation"
)

// Variant is a complete visualization configuration.
type Variant struct {
	Name           string              `json:"name"`
	Title          string              `json:"title"`
	Mode           Mode                `json:"mode"`
	Policy         radial.Policy       `json:"policy"`
	Layout         radial.LayoutConfig `json:"layout"`
	Route          radial.RouteOptions `json:"-"`
	ShowConnectors bool                `json:"show_connectors"`
	MarkerRadius   float64             `json:"marker_radius"`
	ViewSize       float64             `json:"view_size"` // side of the square viewBox centered on the layout
	Palette        Palette             `json:"palette"`
}

var presets = map[string]Variant{
	HealthWheel: {
		Name:   HealthWheel,
		Title:  "Health Wheel",
		Mode:   ModeWedges,
		Policy: radial.PolicyEqual,
		Layout: radial.LayoutConfig{MinRadius: 70, MaxRadius: 180, InnerRadius: 60, StartAngle: -90},
		Route: radial.RouteOptions{
			Curvature: 0.2, WidthScale: 3, OpacityScale: 0.5, HighlightBoost: 1.5,
		},
		MarkerRadius: 6,
		ViewSize:     400,
		Palette:      defaultPalette,
	},
	VitalNetwork: {
		Name:   VitalNetwork,
		Title:  "Vital Wheel Network",
		Mode:   ModeMarkers,
		Policy: radial.PolicyEqual,
		Layout: radial.LayoutConfig{MinRadius: 60, MaxRadius: 180, RotationSpeed: 0.00005},
		Route: radial.RouteOptions{
			Curvature: 0.3, WidthScale: 4, OpacityScale: 0.6, HighlightBoost: 1.8,
		},
		ShowConnectors: true,
		MarkerRadius:   14,
		ViewSize:       420,
		Palette:        defaultPalette,
	},
	HarmonyCircles: {
		Name:   HarmonyCircles,
		Title:  "Harmony Circles",
		Mode:   ModeMarkers,
		Policy: radial.PolicyEqual,
		Layout: radial.LayoutConfig{MinRadius: 40, MaxRadius: 140},
		Route: radial.RouteOptions{
			Curvature: 0.25, WidthScale: 2, OpacityScale: 0.4, HighlightBoost: 2,
		},
		ShowConnectors: true,
		MarkerRadius:   22,
		ViewSize:       340,
		Palette:        pastelPalette,
	},
	MainDashboard: {
		Name:   MainDashboard,
		Title:  "Health Overview",
		Mode:   ModeMarkers,
		Policy: radial.PolicyEqual,
		Layout: radial.LayoutConfig{MinRadius: 80, MaxRadius: 200, StartAngle: -90, RotationSpeed: 0.00002},
		Route: radial.RouteOptions{
			Curvature: 0.2, WidthScale: 3, OpacityScale: 0.5, HighlightBoost: 1.5,
		},
		ShowConnectors: true,
		MarkerRadius:   16,
		ViewSize:       480,
		Palette:        defaultPalette,
	},
	Constellation: {
		Name:   Constellation,
		Title:  "Health Constellation",
		Mode:   ModeMarkers,
		Policy: radial.PolicyEqual,
		Layout: radial.LayoutConfig{MinRadius: 50, MaxRadius: 190, RotationSpeed: 0.0001},
		Route: radial.RouteOptions{
			Curvature: 0.2, WidthScale: 1.5, OpacityScale: 0.7, HighlightBoost: 2,
		},
		ShowConnectors: true,
		MarkerRadius:   8,
		ViewSize:       440,
		Palette:        starPalette,
	},
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Variant, bool) {
	v, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return v, ok
}

// Resolve applies a spec's overrides on top of its variant preset.
func Resolve(s *spec.WheelSpec) (Variant, error) {
	v, ok := Lookup(s.Wheel.Variant)
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q (known: %s)", s.Wheel.Variant, strings.Join(Names(), ", "))
	}

	if s.Wheel.Title != "" {
		v.Title = s.Wheel.Title
	}
	if s.Wheel.Distribution != "" {
		policy, err := radial.ParsePolicy(s.Wheel.Distribution)
		if err != nil {
			return Variant{}, err
		}
		v.Policy = policy
	}

	lo := s.Wheel.Layout
	override(&v.Layout.CenterX, lo.CenterX)
	override(&v.Layout.CenterY, lo.CenterY)
	override(&v.Layout.MinRadius, lo.MinRadius)
	override(&v.Layout.MaxRadius, lo.MaxRadius)
	override(&v.Layout.InnerRadius, lo.InnerRadius)
	override(&v.Layout.RotationSpeed, lo.RotationSpeed)
	override(&v.Layout.StartAngle, lo.StartAngle)

	c := s.Wheel.Connectors
	if c.Show != nil {
		v.ShowConnectors = *c.Show
	}
	override(&v.Route.Curvature, c.Curvature)
	override(&v.Route.WidthScale, c.WidthScale)
	override(&v.Route.OpacityScale, c.OpacityScale)
	override(&v.Route.HighlightBoost, c.HighlightBoost)

	v.Route.Center = v.Layout.Center()
	return v, nil
}

func override(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
