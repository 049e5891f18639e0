package radial

import (
	"sort"
	"strings"
)

// Relation is one entry of the correlation table.
type Relation struct {
	Target   string  `json:"target" yaml:"target"`
	Strength float64 `json:"strength" yaml:"strength"`
}

// Table maps a lowercase category to the categories it correlates with.
type Table map[string][]Relation

// DefaultTable is the consolidated relationship map shared by every
// visualization variant.
var DefaultTable = Table{
	"cardiovascular": {
		{Target: "metabolic", Strength: 0.8},
		{Target: "inflammatory", Strength: 0.7},
		{Target: "fitness", Strength: 0.75},
		{Target: "sleep", Strength: 0.5},
	},
	"metabolic": {
		{Target: "cardiovascular", Strength: 0.8},
		{Target: "hormonal", Strength: 0.7},
		{Target: "nutritional", Strength: 0.85},
	},
	"inflammatory": {
		{Target: "cardiovascular", Strength: 0.7},
		{Target: "immune", Strength: 0.9},
		{Target: "gut", Strength: 0.6},
	},
	"hormonal": {
		{Target: "metabolic", Strength: 0.7},
		{Target: "sleep", Strength: 0.6},
		{Target: "stress", Strength: 0.75},
	},
	"nutritional": {
		{Target: "metabolic", Strength: 0.85},
		{Target: "gut", Strength: 0.7},
		{Target: "immune", Strength: 0.5},
	},
	"immune": {
		{Target: "inflammatory", Strength: 0.9},
		{Target: "gut", Strength: 0.65},
	},
	"gut": {
		{Target: "immune", Strength: 0.65},
		{Target: "nutritional", Strength: 0.7},
		{Target: "cognitive", Strength: 0.4},
	},
	"cognitive": {
		{Target: "sleep", Strength: 0.8},
		{Target: "stress", Strength: 0.6},
	},
	"sleep": {
		{Target: "cognitive", Strength: 0.8},
		{Target: "hormonal", Strength: 0.6},
		{Target: "stress", Strength: 0.7},
	},
	"stress": {
		{Target: "hormonal", Strength: 0.75},
		{Target: "sleep", Strength: 0.7},
		{Target: "cardiovascular", Strength: 0.55},
	},
	"fitness": {
		{Target: "cardiovascular", Strength: 0.75},
		{Target: "metabolic", Strength: 0.6},
	},
}

// RelatedCategories returns the relations of category, matched
// case-insensitively. Unknown categories yield an empty list.
func (t Table) RelatedCategories(category string) []Relation {
	rels := t[NormalizeCategory(category)]
	out := make([]Relation, len(rels))
	copy(out, rels)
	return out
}

// Merge returns a new table with override entries replacing whole category
// lists of t.
func (t Table) Merge(override Table) Table {
	merged := make(Table, len(t)+len(override))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range override {
		merged[NormalizeCategory(k)] = v
	}
	return merged
}

// Connections resolves the table against an entity set. A target category
// resolves to the first entity in input order whose category key matches
// exactly. Self links are skipped, unresolved targets are dropped, and
// each unordered pair appears once with its strongest strength.
func (t Table) Connections(entities []ScoredEntity) []Connection {
	byCategory := make(map[string]string, len(entities))
	for _, e := range entities {
		key := NormalizeCategory(e.Category)
		if _, seen := byCategory[key]; !seen {
			byCategory[key] = e.ID
		}
	}

	type pair struct{ a, b string }
	index := make(map[pair]int)
	var conns []Connection

	for _, e := range entities {
		for _, rel := range t.RelatedCategories(e.Category) {
			targetID, ok := byCategory[NormalizeCategory(rel.Target)]
			if !ok || targetID == e.ID {
				continue
			}
			key := pair{e.ID, targetID}
			if targetID < e.ID {
				key = pair{targetID, e.ID}
			}
			if i, dup := index[key]; dup {
				if rel.Strength > conns[i].Strength {
					conns[i].Strength = rel.Strength
				}
				continue
			}
			index[key] = len(conns)
			conns = append(conns, Connection{FromID: e.ID, ToID: targetID, Strength: rel.Strength})
		}
	}
	return conns
}

// Categories returns the table's keys in sorted order.
func (t Table) Categories() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeCategory returns the lookup key for a category: trimmed and
// lowercased. Every category comparison goes through it.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
