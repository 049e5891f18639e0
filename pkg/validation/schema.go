package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/spec"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/variants"
)

// MaxDashboardEntities is the entity count the visualizations are designed for.
const MaxDashboardEntities = 15

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report spec paths using the YAML field names users write.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateSchema performs schema validation on a parsed WheelSpec.
// It checks structural correctness before any layout computation.
func ValidateSchema(s *spec.WheelSpec) *Report {
	r := NewReport()

	validateStruct(s, r)
	validateVariant(s, r)
	validateEntities(s, r)
	validateRadii(s, r)
	validateCorrelations(s, r)
	validateCategories(s, r)
	validateConnections(s, r)
	r.Sort()

	return r
}

func validateStruct(s *spec.WheelSpec, r *Report) {
	err := validate.Struct(s)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		r.AddError(Result{Level: LevelSchema, Message: err.Error()})
		return
	}
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		expected := fe.Tag()
		if fe.Param() != "" {
			expected = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s failed %q validation", path, fe.Tag()),
			SpecPath:    path,
			ActualValue: fe.Value(),
			Expected:    expected,
		})
	}
}

func validateVariant(s *spec.WheelSpec, r *Report) {
	if s.Wheel.Variant != "" {
		if _, ok := variants.Lookup(s.Wheel.Variant); !ok {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("unknown variant %q", s.Wheel.Variant),
				SpecPath:    "wheel.variant",
				ActualValue: s.Wheel.Variant,
				Expected:    strings.Join(variants.Names(), " | "),
			})
		}
	}

	if _, err := radial.ParsePolicy(s.Wheel.Distribution); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			SpecPath:    "wheel.distribution",
			ActualValue: s.Wheel.Distribution,
			Expected:    "equal | score | inverse_score",
		})
	}
}

func validateEntities(s *spec.WheelSpec, r *Report) {
	if len(s.Entities) == 0 {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "wheel has no entities; the layout will be empty",
			SpecPath: "entities",
		})
		return
	}
	if len(s.Entities) > MaxDashboardEntities {
		r.AddInfo(Result{
			Level:       LevelLayout,
			Message:     fmt.Sprintf("%d entities exceeds the %d the visualizations are sized for; labels may overlap", len(s.Entities), MaxDashboardEntities),
			SpecPath:    "entities",
			ActualValue: len(s.Entities),
		})
	}

	seen := make(map[string]int, len(s.Entities))
	for i, e := range s.Entities {
		path := fmt.Sprintf("entities[%d]", i)
		if e.ID != "" {
			if first, dup := seen[e.ID]; dup {
				r.AddError(Result{
					Level:        LevelSchema,
					Message:      fmt.Sprintf("duplicate entity id %q", e.ID),
					SpecPath:     path + ".id",
					ActualValue:  e.ID,
					ConflictWith: fmt.Sprintf("entities[%d]", first),
				})
			} else {
				seen[e.ID] = i
			}
		}

		if math.IsNaN(e.Score) || e.Score < radial.MinScore || e.Score > radial.MaxScore {
			r.AddWarning(Result{
				Level:       LevelLayout,
				Message:     fmt.Sprintf("entity %q score is outside [0,100] and will be clamped", e.ID),
				SpecPath:    path + ".score",
				ActualValue: e.Score,
				Expected:    "0 - 100",
			})
		}
	}
}

func validateRadii(s *spec.WheelSpec, r *Report) {
	v, err := variants.Resolve(s)
	if err != nil {
		// Reported by validateVariant.
		return
	}
	l := v.Layout
	if l.MinRadius > l.MaxRadius {
		r.AddError(Result{
			Level:       LevelLayout,
			Message:     fmt.Sprintf("min_radius (%.0f) must not exceed max_radius (%.0f)", l.MinRadius, l.MaxRadius),
			SpecPath:    "wheel.layout.min_radius",
			ActualValue: l.MinRadius,
			Expected:    fmt.Sprintf("<= %.0f", l.MaxRadius),
		})
	}
	if v.Mode == variants.ModeWedges && l.InnerRadius > l.MinRadius {
		r.AddWarning(Result{
			Level:       LevelLayout,
			Message:     fmt.Sprintf("inner_radius (%.0f) is beyond min_radius (%.0f); low scores will draw inverted wedges", l.InnerRadius, l.MinRadius),
			SpecPath:    "wheel.layout.inner_radius",
			ActualValue: l.InnerRadius,
			Suggestions: []string{"Set inner_radius at or below min_radius"},
		})
	}
	if v.Layout.MaxRadius+v.MarkerRadius > v.ViewSize/2 {
		r.AddWarning(Result{
			Level:       LevelLayout,
			Message:     fmt.Sprintf("max_radius (%.0f) places markers outside the %.0f unit view", l.MaxRadius, v.ViewSize),
			SpecPath:    "wheel.layout.max_radius",
			ActualValue: l.MaxRadius,
			Expected:    fmt.Sprintf("<= %.0f", v.ViewSize/2-v.MarkerRadius),
		})
	}
}

func validateCorrelations(s *spec.WheelSpec, r *Report) {
	for category, rels := range s.Correlations {
		for i, rel := range rels {
			path := fmt.Sprintf("correlations.%s[%d]", category, i)
			if rel.Target == "" {
				r.AddError(Result{
					Level:    LevelSchema,
					Message:  fmt.Sprintf("correlation %s has no target", path),
					SpecPath: path + ".target",
				})
			}
			if math.IsNaN(rel.Strength) || rel.Strength < 0 || rel.Strength > 1 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("correlation strength must be within [0,1] (got %v)", rel.Strength),
					SpecPath:    path + ".strength",
					ActualValue: rel.Strength,
					Expected:    "0 - 1",
				})
			}
		}
	}
}

// validateCategories flags categories the correlation table never mentions.
// Entities in them can only be linked through explicit connections.
func validateCategories(s *spec.WheelSpec, r *Report) {
	table := radial.DefaultTable.Merge(s.CorrelationTable())
	known := make(map[string]bool)
	for _, c := range table.Categories() {
		known[c] = true
		for _, rel := range table[c] {
			known[radial.NormalizeCategory(rel.Target)] = true
		}
	}

	reported := make(map[string]bool)
	for i, e := range s.Entities {
		key := radial.NormalizeCategory(e.Category)
		if key == "" || known[key] || reported[key] {
			continue
		}
		reported[key] = true
		r.AddInfo(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("category %q has no correlations; entity %q gets no correlation connectors", e.Category, e.ID),
			SpecPath:    fmt.Sprintf("entities[%d].category", i),
			ActualValue: e.Category,
			Suggestions: []string{"Add a correlations entry for this category"},
		})
	}
}

func validateConnections(s *spec.WheelSpec, r *Report) {
	ids := make(map[string]bool, len(s.Entities))
	for _, e := range s.Entities {
		ids[e.ID] = true
	}
	for i, c := range s.Connections {
		for _, id := range []string{c.FromID, c.ToID} {
			if !ids[id] {
				r.AddWarning(Result{
					Level:       LevelLayout,
					Message:     fmt.Sprintf("connection %d references unknown entity %q and will not be drawn", i, id),
					SpecPath:    fmt.Sprintf("connections[%d]", i),
					ActualValue: id,
				})
			}
		}
	}
}
