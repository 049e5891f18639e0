package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	r := NewReport()
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Info)
	assert.Equal(t, "0 errors, 0 warnings, 0 info", r.Summary)
	assert.NoError(t, r.Err())
}

func TestAddError(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Level: LevelSchema, Message: "bad value", SpecPath: "wheel.variant"})

	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, SeverityError, r.Errors[0].Severity)
	assert.Equal(t, "1 error, 0 warnings, 0 info", r.Summary)
	assert.EqualError(t, r.Err(), "error: bad value (wheel.variant)")
}

func TestWarningsAndInfoKeepReportValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelLayout, Message: "heads up"})
	r.AddInfo(Result{Level: LevelLayout, Message: "fyi"})

	assert.True(t, r.Valid)
	assert.Equal(t, SeverityWarning, r.Warnings[0].Severity)
	assert.Equal(t, SeverityInfo, r.Info[0].Severity)
	assert.Equal(t, 1, r.Count(SeverityWarning))
	assert.Equal(t, 1, r.Count(SeverityInfo))
	assert.Equal(t, 0, r.Count(SeverityError))
	assert.NoError(t, r.Err())
}

func TestMerge(t *testing.T) {
	r1 := NewReport()
	r1.AddWarning(Result{Level: LevelSchema, Message: "warn1"})

	r2 := NewReport()
	r2.AddError(Result{Level: LevelLayout, Message: "err1"})
	r2.AddWarning(Result{Level: LevelLayout, Message: "warn2"})
	r2.AddInfo(Result{Level: LevelLayout, Message: "info1"})

	r1.Merge(r2)
	r1.Merge(nil)

	assert.False(t, r1.Valid, "merged report should be invalid when other has errors")
	assert.Len(t, r1.Errors, 1)
	assert.Len(t, r1.Warnings, 2)
	assert.Len(t, r1.Info, 1)
	assert.Equal(t, "1 error, 2 warnings, 1 info", r1.Summary)
}

func TestMergeValidKeepsValid(t *testing.T) {
	r1 := NewReport()
	r1.Merge(NewReport())
	assert.True(t, r1.Valid)
}

func TestSort(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Message: "c", SpecPath: "correlations.sleep[0]"})
	r.AddError(Result{Message: "a1", SpecPath: "correlations.cognitive[1]"})
	r.AddError(Result{Message: "a0", SpecPath: "correlations.cognitive[1]"})
	r.Sort()

	var got []string
	for _, e := range r.Errors {
		got = append(got, e.Message)
	}
	assert.Equal(t, []string{"a1", "a0", "c"}, got)
}

func TestErrJoinsAllErrors(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Message: "first"})
	r.AddError(Result{Message: "second", SpecPath: "entities[1].id"})
	assert.EqualError(t, r.Err(), "error: first\nerror: second (entities[1].id)")
}
