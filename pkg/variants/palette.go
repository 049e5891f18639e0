package variants

import "github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"

// Palette assigns fill colors to categories.
type Palette struct {
	Categories map[string]string `json:"categories"`
	Cycle      []string          `json:"cycle"` // used for categories without an explicit color
	Connector  string            `json:"connector"`
	Guide      string            `json:"guide"`
}

// ColorFor returns the color of a category; unknown categories take the
// cycle color at index i.
func (p Palette) ColorFor(category string, i int) string {
	if c, ok := p.Categories[radial.NormalizeCategory(category)]; ok {
		return c
	}
	if len(p.Cycle) == 0 {
		return "#888888"
	}
	if i < 0 {
		i = -i
	}
	return p.Cycle[i%len(p.Cycle)]
}

var defaultPalette = Palette{
	Categories: map[string]string{
		"cardiovascular": "#ef4444",
		"metabolic":      "#f59e0b",
		"inflammatory":   "#f97316",
		"hormonal":       "#a855f7",
		"nutritional":    "#22c55e",
		"immune":         "#14b8a6",
		"gut":            "#84cc16",
		"cognitive":      "#6366f1",
		"sleep":          "#3b82f6",
		"stress":         "#ec4899",
		"fitness":        "#10b981",
	},
	Cycle:     []string{"#0ea5e9", "#8b5cf6", "#f43f5e", "#eab308"},
	Connector: "#64748b",
	Guide:     "#e2e8f0",
}

var pastelPalette = Palette{
	Cycle:     []string{"#fda4af", "#fcd34d", "#86efac", "#93c5fd", "#c4b5fd", "#f9a8d4"},
	Connector: "#94a3b8",
	Guide:     "#f1f5f9",
}

var starPalette = Palette{
	Cycle:     []string{"#fef3c7", "#e0f2fe", "#ede9fe", "#fce7f3"},
	Connector: "#cbd5e1",
	Guide:     "#1e293b",
}
