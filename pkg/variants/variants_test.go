package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/spec"
)

func ptr[T any](v T) *T { return &v }

func TestNames(t *testing.T) {
	assert.Equal(t, []string{Constellation, HarmonyCircles, HealthWheel, MainDashboard, VitalNetwork}, Names())
}

func TestPresetsAreConsistent(t *testing.T) {
	for _, name := range Names() {
		v, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, v.Name)
		assert.Less(t, v.Layout.MinRadius, v.Layout.MaxRadius, name)
		assert.LessOrEqual(t, v.Layout.MaxRadius+v.MarkerRadius, v.ViewSize/2, "%s fits its viewBox", name)
		assert.Positive(t, v.Route.HighlightBoost, name)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	v, ok := Lookup("  Health-Wheel ")
	require.True(t, ok)
	assert.Equal(t, ModeWedges, v.Mode)

	_, ok = Lookup("pie")
	assert.False(t, ok)
}

func TestResolveAppliesOverrides(t *testing.T) {
	s := &spec.WheelSpec{
		Wheel: spec.WheelDef{
			Variant:      VitalNetwork,
			Title:        "Mine",
			Distribution: "score",
			Layout: spec.LayoutOverride{
				CenterX:       ptr(10.0),
				MinRadius:     ptr(30.0),
				RotationSpeed: ptr(0.0),
			},
			Connectors: spec.ConnectorDef{
				Show:      ptr(false),
				Curvature: ptr(0.1),
			},
		},
	}
	v, err := Resolve(s)
	require.NoError(t, err)

	assert.Equal(t, "Mine", v.Title)
	assert.Equal(t, radial.PolicyScore, v.Policy)
	assert.Equal(t, 10.0, v.Layout.CenterX)
	assert.Equal(t, 30.0, v.Layout.MinRadius)
	assert.Equal(t, 180.0, v.Layout.MaxRadius, "unset fields keep the preset")
	assert.Equal(t, 0.0, v.Layout.RotationSpeed)
	assert.False(t, v.ShowConnectors)
	assert.Equal(t, 0.1, v.Route.Curvature)
	assert.Equal(t, 10.0, v.Route.Center.X)

	preset, _ := Lookup(VitalNetwork)
	assert.Equal(t, 60.0, preset.Layout.MinRadius, "resolving must not modify the preset")
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve(&spec.WheelSpec{Wheel: spec.WheelDef{Variant: "donut"}})
	assert.ErrorContains(t, err, "unknown variant")

	_, err = Resolve(&spec.WheelSpec{Wheel: spec.WheelDef{Variant: HealthWheel, Distribution: "random"}})
	assert.ErrorContains(t, err, "distribution")
}

func TestPaletteColorFor(t *testing.T) {
	assert.Equal(t, "#ef4444", defaultPalette.ColorFor("Cardiovascular", 0))
	assert.Equal(t, defaultPalette.Cycle[1], defaultPalette.ColorFor("liver", 1))
	assert.Equal(t, defaultPalette.Cycle[1], defaultPalette.ColorFor("liver", 5))
	assert.Equal(t, "#888888", Palette{}.ColorFor("x", 3))
}
