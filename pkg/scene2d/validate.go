package scene2d

import (
	"fmt"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/validation"
)

// ValidateScene performs structural checks on an assembled scene.
// It checks id integrity, connector endpoints, view enclosure, marker
// overlap, wedge sweep and isolated entities.
func ValidateScene(sc *Scene) *validation.Report {
	r := validation.NewReport()

	if sc == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelLayout,
			Message: "scene is nil",
		})
		return r
	}

	validateMarkerIDs(sc, r)
	validateConnectorEndpoints(sc, r)
	validateViewEnclosure(sc, r)
	validateOverlaps(sc, r)
	validateWedgeSweeps(sc, r)
	validateIsolated(sc, r)

	return r
}

func validateMarkerIDs(sc *Scene, r *validation.Report) {
	seen := make(map[string]int, len(sc.Markers))
	for i, m := range sc.Markers {
		if prev, exists := seen[m.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelLayout,
				Message:     fmt.Sprintf("duplicate marker id %q at indices %d and %d", m.ID, prev, i),
				SpecPath:    fmt.Sprintf("markers[%d].id", i),
				ActualValue: m.ID,
			})
			continue
		}
		seen[m.ID] = i
	}
}

func validateConnectorEndpoints(sc *Scene, r *validation.Report) {
	ids := make(map[string]bool, len(sc.Markers))
	for _, m := range sc.Markers {
		ids[m.ID] = true
	}
	for i, c := range sc.Connectors {
		for _, id := range []string{c.FromID, c.ToID} {
			if !ids[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelLayout,
					Message:     fmt.Sprintf("connector %d references non-existent marker %q", i, id),
					SpecPath:    fmt.Sprintf("connectors[%d]", i),
					ActualValue: id,
					Expected:    "existing marker id",
				})
			}
		}
	}
}

func validateViewEnclosure(sc *Scene, r *validation.Report) {
	view := geo.RectFromViewBox(sc.ViewBox).Expand(0.5)

	for _, m := range sc.Markers {
		x, y, s := m.Position[0], m.Position[1], m.Size
		if !view.ContainsCircle(geo.Pt(x, y), s) {
			r.AddWarning(validation.Result{
				Level:       validation.LevelLayout,
				Message:     fmt.Sprintf("marker %q at (%.1f, %.1f) extends outside the view box", m.ID, x, y),
				SpecPath:    "view_box",
				ActualValue: fmt.Sprintf("%.1f,%.1f r=%.1f", x, y, s),
				Suggestions: []string{"Lower max_radius or pick a variant with a larger view"},
			})
			break
		}
	}
}

func validateOverlaps(sc *Scene, r *validation.Report) {
	if len(sc.Wedges) > 0 {
		return
	}
	pairs := radial.Overlaps(sc.placed, sc.hitSlop)
	if len(pairs) == 0 {
		return
	}
	r.AddInfo(validation.Result{
		Level:       validation.LevelLayout,
		Message:     fmt.Sprintf("%d marker pair(s) overlap, first %s/%s", len(pairs), pairs[0][0], pairs[0][1]),
		SpecPath:    "markers",
		ActualValue: len(pairs),
	})
}

func validateWedgeSweeps(sc *Scene, r *validation.Report) {
	for i, w := range sc.Wedges {
		if w.EndAngle-w.StartAngle <= 0 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelLayout,
				Message:     fmt.Sprintf("wedge %q has no angular extent and will not be visible", w.ID),
				SpecPath:    fmt.Sprintf("wedges[%d]", i),
				ActualValue: fmt.Sprintf("%.2f..%.2f", w.StartAngle, w.EndAngle),
				Expected:    "end_angle > start_angle",
			})
		}
	}
}

func validateIsolated(sc *Scene, r *validation.Report) {
	if len(sc.Connectors) == 0 {
		return
	}
	for _, m := range sc.Markers {
		if len(sc.adjacency[m.ID]) == 0 {
			r.AddInfo(validation.Result{
				Level:       validation.LevelLayout,
				Message:     fmt.Sprintf("entity %q has no correlated entities in this wheel", m.ID),
				SpecPath:    "correlations",
				ActualValue: m.Category,
			})
		}
	}
}
