package analytics

import (
	"math"
	"sort"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
)

// Band is a qualitative label for a score.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

// Band thresholds (inclusive lower bounds).
const (
	excellentFrom = 80.0
	goodFrom      = 60.0
	fairFrom      = 40.0
)

// TrendDeadband is the absolute delta treated as no change.
const TrendDeadband = 0.5

// CategoryScore holds the mean score of one category.
type CategoryScore struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Band     Band    `json:"band"`
}

// Summary is the headline data shown beside a wheel.
type Summary struct {
	Count      int             `json:"count"`
	Mean       float64         `json:"mean"`
	Min        float64         `json:"min"`
	Max        float64         `json:"max"`
	Band       Band            `json:"band"`
	Improving  int             `json:"improving"`
	Declining  int             `json:"declining"`
	Stable     int             `json:"stable"`
	Categories []CategoryScore `json:"categories"`
}

// BandFor returns the band of a score after clamping it to [0,100].
func BandFor(score float64) Band {
	s := clamp(score)
	switch {
	case s >= excellentFrom:
		return BandExcellent
	case s >= goodFrom:
		return BandGood
	case s >= fairFrom:
		return BandFair
	default:
		return BandPoor
	}
}

// Summarize computes score statistics over entities. Scores are clamped the
// same way the layout clamps them. An empty input yields a zero summary in
// the poor band.
func Summarize(entities []radial.ScoredEntity) Summary {
	sum := Summary{Band: BandPoor, Categories: []CategoryScore{}}
	if len(entities) == 0 {
		return sum
	}

	sum.Min = math.Inf(1)
	sum.Max = math.Inf(-1)
	total := 0.0

	type acc struct {
		n     int
		total float64
	}
	cats := make(map[string]*acc)

	for _, e := range entities {
		s := clamp(e.Score)
		total += s
		sum.Min = math.Min(sum.Min, s)
		sum.Max = math.Max(sum.Max, s)

		switch {
		case e.Trend > TrendDeadband:
			sum.Improving++
		case e.Trend < -TrendDeadband:
			sum.Declining++
		default:
			sum.Stable++
		}

		key := radial.NormalizeCategory(e.Category)
		a, ok := cats[key]
		if !ok {
			a = &acc{}
			cats[key] = a
		}
		a.n++
		a.total += s
	}

	sum.Count = len(entities)
	sum.Mean = total / float64(len(entities))
	sum.Band = BandFor(sum.Mean)

	for name, a := range cats {
		mean := a.total / float64(a.n)
		sum.Categories = append(sum.Categories, CategoryScore{
			Category: name,
			Count:    a.n,
			Mean:     mean,
			Band:     BandFor(mean),
		})
	}
	sort.Slice(sum.Categories, func(i, j int) bool {
		return sum.Categories[i].Category < sum.Categories[j].Category
	})
	return sum
}

func clamp(score float64) float64 {
	if math.IsNaN(score) {
		return radial.MinScore
	}
	return math.Max(radial.MinScore, math.Min(radial.MaxScore, score))
}
