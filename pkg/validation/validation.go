// Package validation collects findings about wheel specs and layout passes.
// Problems are gathered into a Report instead of failing fast, so a caller
// sees every issue with a spec at once.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Level indicates which stage produced the result.
type Level string

const (
	LevelSchema Level = "schema" // parsed spec, before any layout
	LevelLayout Level = "layout" // a layout pass or the scene it produced
)

// Severity indicates how critical a result is. Only errors invalidate a report.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single finding, addressed by the spec path it concerns.
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	SpecPath     string   `json:"spec_path"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

func (r Result) String() string {
	if r.SpecPath == "" {
		return fmt.Sprintf("%s: %s", r.Severity, r.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", r.Severity, r.Message, r.SpecPath)
}

// Report is the complete validation output.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge appends another report's results. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Sort orders each severity by spec path, keeping insertion order for
// results on the same path. Checks that walk maps call this so output
// is stable.
func (r *Report) Sort() {
	for _, rs := range [][]Result{r.Errors, r.Warnings, r.Info} {
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].SpecPath < rs[j].SpecPath })
	}
}

// Count returns the number of results with the given severity.
func (r *Report) Count(s Severity) int {
	switch s {
	case SeverityError:
		return len(r.Errors)
	case SeverityWarning:
		return len(r.Warnings)
	case SeverityInfo:
		return len(r.Info)
	}
	return 0
}

// Err returns nil for a valid report, otherwise an error listing every
// error result.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, errors.New(e.String()))
	}
	if len(errs) == 0 {
		return errors.New("validation failed")
	}
	return errors.Join(errs...)
}

func (r *Report) updateSummary() {
	r.Summary = strings.Join([]string{
		plural(len(r.Errors), "error", "errors"),
		plural(len(r.Warnings), "warning", "warnings"),
		fmt.Sprintf("%d info", len(r.Info)),
	}, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
