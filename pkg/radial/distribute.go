package radial

import (
	"fmt"
	"math"
	"strings"
)

// Policy selects how angular room is divided between entities.
type Policy string

const (
	// PolicyEqual gives every entity the same 360/N slot.
	PolicyEqual Policy = "equal"
	// PolicyScore gives higher-scoring entities wider slots.
	PolicyScore Policy = "score"
	// PolicyInverseScore gives lower-scoring entities wider slots.
	PolicyInverseScore Policy = "inverse_score"
)

// minWeight keeps zero-scored entities visible under weighted policies.
const minWeight = 1.0

// ParsePolicy converts a config string to a Policy. The empty string is equal spacing.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PolicyEqual:
		return PolicyEqual, nil
	case PolicyScore, PolicyInverseScore:
		return p, nil
	default:
		return PolicyEqual, fmt.Errorf("unknown distribution policy %q", s)
	}
}

// Distribute assigns each entity an evenly spaced angle in degrees:
// angle(i) = i * 360/N. The result depends only on input order.
func Distribute(entities []ScoredEntity) map[string]float64 {
	angles := make(map[string]float64, len(entities))
	if len(entities) == 0 {
		return angles
	}
	step := 360 / float64(len(entities))
	for i, e := range entities {
		angles[e.ID] = float64(i) * step
	}
	return angles
}

// Spans returns the ordered angular slot of every entity. Slots are
// contiguous, start at 0 and together cover exactly 360 degrees.
func Spans(entities []ScoredEntity, policy Policy) []Span {
	n := len(entities)
	if n == 0 {
		return []Span{}
	}

	weights := make([]float64, n)
	total := 0.0
	for i, e := range entities {
		weights[i] = spanWeight(e.Score, policy)
		total += weights[i]
	}
	if (policy != PolicyScore && policy != PolicyInverseScore) ||
		total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return equalSpans(entities)
	}

	spans := make([]Span, n)
	start := 0.0
	for i, e := range entities {
		end := start + weights[i]/total*360
		if i == n-1 {
			end = 360
		}
		spans[i] = Span{ID: e.ID, Start: start, End: end}
		start = end
	}
	return spans
}

// equalSpans computes every bound as i*step, so slot starts match
// Distribute exactly.
func equalSpans(entities []ScoredEntity) []Span {
	n := len(entities)
	step := 360 / float64(n)
	spans := make([]Span, n)
	for i, e := range entities {
		end := float64(i+1) * step
		if i == n-1 {
			end = 360
		}
		spans[i] = Span{ID: e.ID, Start: float64(i) * step, End: end}
	}
	return spans
}

func spanWeight(score float64, policy Policy) float64 {
	switch policy {
	case PolicyScore:
		return minWeight + clampScore(score)
	case PolicyInverseScore:
		return minWeight + MaxScore - clampScore(score)
	default:
		return 1
	}
}
