package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/radial"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/scene2d"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/spec"
)

func assemble(t *testing.T, variant string) *scene2d.Scene {
	t.Helper()
	return assembleEntities(t, variant, []radial.ScoredEntity{
		{ID: "heart", Category: "cardiovascular", Label: "Heart", Score: 82},
		{ID: "glucose", Category: "metabolic", Score: 64},
		{ID: "sleep", Category: "sleep", Label: "Sleep", Score: 40},
	})
}

func assembleEntities(t *testing.T, variant string, entities []radial.ScoredEntity) *scene2d.Scene {
	t.Helper()
	s := &spec.WheelSpec{
		SpecVersion: "0.1.0",
		Wheel:       spec.WheelDef{Variant: variant, Title: "Checkup & Trends"},
		Entities:    entities,
	}
	sc, report := scene2d.Assemble(s, scene2d.Frame{Highlight: []string{"heart"}})
	require.True(t, report.Valid, "%+v", report.Errors)
	return sc
}

func TestSVGMarkers(t *testing.T) {
	sc := assemble(t, "vital-network")
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, sc, DefaultOptions()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"), "document should start with an XML prolog")
	assert.Contains(t, out, `viewBox="-210.000 -210.000 420.000 420.000"`)
	assert.Contains(t, out, "Checkup &amp; Trends")
	assert.Equal(t, 3, strings.Count(out, `id="marker-`))
	assert.Contains(t, out, `id="connectors"`)
	assert.Contains(t, out, ">Heart<")
	assert.Contains(t, out, ">glucose<", "unlabeled markers fall back to their id")
	assert.NotContains(t, out, `id="wedges"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestSVGWedges(t *testing.T) {
	sc := assemble(t, "health-wheel")
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, sc, Options{Background: "#fafafa"}))
	out := buf.String()

	assert.Equal(t, 3, strings.Count(out, `id="wedge-`))
	assert.Contains(t, out, sc.Wedges[0].Path)
	assert.Contains(t, out, "fill:#fafafa")
	assert.NotContains(t, out, `id="marker-`)
	assert.NotContains(t, out, ">Heart<", "labels are off")
}

func TestSVGMarkerCentresKeepPrecision(t *testing.T) {
	sc := assemble(t, "vital-network")
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, sc, DefaultOptions()))

	for _, m := range sc.Markers {
		assert.Contains(t, buf.String(), fmt.Sprintf(`cx="%.3f" cy="%.3f"`, m.Position[0], m.Position[1]),
			"marker %s should not be snapped to integers", m.ID)
	}
}

func TestSVGWedgeLabelsAtAnchors(t *testing.T) {
	sc := assemble(t, "health-wheel")
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, sc, DefaultOptions()))
	out := buf.String()

	for _, w := range sc.Wedges {
		assert.Contains(t, out, fmt.Sprintf(`x="%.3f" y="%.3f"`, w.LabelAnchor[0], w.LabelAnchor[1]+3))
	}
	assert.Contains(t, out, ">Heart<")
	assert.Contains(t, out, ">glucose<")
}

// attributes returns the attribute names and id values of every element
// with the given tag.
func attributes(t *testing.T, doc []byte, tag string) (names []string, ids []string) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return names, ids
		}
		require.NoError(t, err, "rendered document should be well-formed XML")
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != tag {
			continue
		}
		for _, a := range se.Attr {
			names = append(names, a.Name.Local)
			if a.Name.Local == "id" {
				ids = append(ids, a.Value)
			}
		}
	}
}

func TestSVGEscapesEntityIDs(t *testing.T) {
	const hostile = `x" onmouseover="alert(1)`
	cases := []struct {
		variant string
		tag     string
		prefix  string
	}{
		{"vital-network", "circle", "marker-"},
		{"health-wheel", "path", "wedge-"},
	}
	for _, c := range cases {
		t.Run(c.variant, func(t *testing.T) {
			sc := assembleEntities(t, c.variant, []radial.ScoredEntity{
				{ID: hostile, Category: "cardiovascular", Score: 70},
				{ID: "glucose", Category: "metabolic", Score: 40},
			})
			var buf bytes.Buffer
			require.NoError(t, SVG(&buf, sc, DefaultOptions()))

			names, ids := attributes(t, buf.Bytes(), c.tag)
			assert.NotContains(t, names, "onmouseover")
			assert.Contains(t, ids, c.prefix+hostile)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGWriteError(t *testing.T) {
	sc := assemble(t, "constellation")
	err := SVG(failingWriter{}, sc, DefaultOptions())
	assert.EqualError(t, err, "disk full")
}
