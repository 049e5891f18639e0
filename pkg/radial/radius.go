package radial

import "math"

// MapRadius maps a score linearly onto [cfg.MinRadius, cfg.MaxRadius].
// Scores outside [0,100] are clamped first and NaN is treated as 0, so the
// result never leaves the configured bounds.
func MapRadius(score float64, cfg LayoutConfig) float64 {
	s := clampScore(score)
	return cfg.MinRadius + (s/MaxScore)*(cfg.MaxRadius-cfg.MinRadius)
}

func clampScore(score float64) float64 {
	if math.IsNaN(score) {
		return MinScore
	}
	return math.Max(MinScore, math.Min(MaxScore, score))
}
