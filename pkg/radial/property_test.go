package radial

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
)

func entitiesN(n int) []ScoredEntity {
	out := make([]ScoredEntity, n)
	for i := range out {
		out[i] = ScoredEntity{ID: fmt.Sprintf("e%d", i), Score: float64((i * 37) % 101)}
	}
	return out
}

func angularDistance(a, b float64) float64 {
	d := math.Abs(geo.NormalizeDeg(a) - geo.NormalizeDeg(b))
	return math.Min(d, 360-d)
}

// TestLayoutInvariants checks the geometric invariants the renderers rely on.
func TestLayoutInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	cfg := testConfig()

	properties.Property("angles are distinct, evenly spaced and cover the circle", prop.ForAll(
		func(n int) bool {
			es := entitiesN(n)
			angles := Distribute(es)
			if len(angles) != n {
				return false
			}
			step := 360 / float64(n)
			for i := 0; i < n; i++ {
				got := angles[es[i].ID]
				if math.Abs(got-float64(i)*step) > 1e-9 {
					return false
				}
				if i > 0 && math.Abs(got-angles[es[i-1].ID]-step) > 1e-9 {
					return false
				}
			}
			last := angles[es[n-1].ID]
			return math.Abs(last+step-360) < 1e-9
		},
		gen.IntRange(1, 64),
	))

	properties.Property("spans tile the full circle under every policy", prop.ForAll(
		func(n int, policyIdx int) bool {
			policy := []Policy{PolicyEqual, PolicyScore, PolicyInverseScore}[policyIdx]
			spans := Spans(entitiesN(n), policy)
			prev := 0.0
			for _, s := range spans {
				if s.Start != prev || s.End < s.Start {
					return false
				}
				prev = s.End
			}
			return prev == 360
		},
		gen.IntRange(1, 32),
		gen.IntRange(0, 2),
	))

	properties.Property("radius is monotonic in score", prop.ForAll(
		func(s1, s2 float64) bool {
			if s1 > s2 {
				s1, s2 = s2, s1
			}
			return MapRadius(s1, cfg) <= MapRadius(s2, cfg)
		},
		gen.Float64Range(-50, 150),
		gen.Float64Range(-50, 150),
	))

	properties.Property("radius stays within bounds", prop.ForAll(
		func(score float64) bool {
			r := MapRadius(score, cfg)
			return r >= cfg.MinRadius && r <= cfg.MaxRadius
		},
		gen.Float64(),
	))

	properties.Property("projection round-trips radius and angle", prop.ForAll(
		func(angle, radius, cx, cy float64) bool {
			center := geo.Pt(cx, cy)
			p := Project(angle, radius, center, 0)
			rel := p.Sub(center)
			if math.Abs(rel.Length()-radius) > 1e-9*math.Max(1, radius)+1e-9 {
				return false
			}
			back := geo.RadToDeg(math.Atan2(rel.Y, rel.X))
			return angularDistance(back, angle) < 1e-6
		},
		gen.Float64Range(0, 360),
		gen.Float64Range(1, 1000),
		gen.Float64Range(-500, 500),
		gen.Float64Range(-500, 500),
	))

	properties.Property("large arc flag follows the sweep", prop.ForAll(
		func(start, sweep float64) bool {
			g := BuildSegmentPath(start, start+sweep, 30, 90)
			actual := g.EndAngle - g.StartAngle
			if math.Abs(actual-180) < 1e-9 {
				return true
			}
			want := 0
			if actual > 180 {
				want = 1
			}
			return g.LargeArcFlag == want
		},
		gen.Float64Range(-720, 720),
		gen.Float64Range(0, 359.9),
	))

	properties.Property("layout passes are bit-identical for identical input", prop.ForAll(
		func(n int, timeMs float64) bool {
			es := entitiesN(n)
			c := cfg
			c.RotationSpeed = 0.001
			a := Place(es, c, PolicyEqual, timeMs)
			b := Place(es, c, PolicyEqual, timeMs)
			return reflect.DeepEqual(a, b) &&
				reflect.DeepEqual(Distribute(es), Distribute(es)) &&
				MapRadius(es[0].Score, c) == MapRadius(es[0].Score, c)
		},
		gen.IntRange(1, 20),
		gen.Float64Range(0, 1e6),
	))

	properties.Property("routing never keeps a dangling connection", prop.ForAll(
		func(n int, missing int) bool {
			es := entitiesN(n)
			placed := Index(Place(es, cfg, PolicyEqual, 0))
			conns := []Connection{{FromID: es[0].ID, ToID: es[n-1].ID, Strength: 0.5}}
			for i := 0; i < missing; i++ {
				conns = append(conns, Connection{FromID: es[0].ID, ToID: fmt.Sprintf("ghost%d", i), Strength: 1})
			}
			routed := Route(conns, placed, DefaultRouteOptions())
			return len(routed) == 1 && routed[0].ToID == es[n-1].ID
		},
		gen.IntRange(1, 15),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}
