// Package render draws assembled scenes as standalone SVG documents.
package render

import (
	"fmt"
	"html"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/scene2d"
)

// Options controls optional decoration.
type Options struct {
	Labels     bool
	Background string // empty for transparent
	FontFamily string
}

// DefaultOptions returns labels on a transparent background.
func DefaultOptions() Options {
	return Options{Labels: true, FontFamily: "system-ui,sans-serif"}
}

// decimals matches the precision of the engine's path data, so connector
// ends land exactly on marker centres.
const decimals = 3

// errWriter remembers the first write error so drawing code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// SVG writes sc as an SVG document. Layers are drawn back to front:
// guides, wedges, connectors, progress ring, markers, labels.
func SVG(w io.Writer, sc *scene2d.Scene, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = decimals

	vb := sc.ViewBox
	canvas.StartviewUnit(finite(vb[2]), finite(vb[3]), "px", finite(vb[0]), finite(vb[1]), finite(vb[2]), finite(vb[3]))
	canvas.Title(sc.Metadata.Title)

	if opts.Background != "" {
		canvas.Rect(finite(vb[0]), finite(vb[1]), finite(vb[2]), finite(vb[3]), "fill:"+opts.Background)
	}

	canvas.Gid("guides")
	for _, g := range sc.Guides {
		canvas.Circle(finite(g.Center[0]), finite(g.Center[1]), finite(g.Radius),
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:1;stroke-dasharray:4 4", g.Color))
	}
	canvas.Gend()

	if len(sc.Wedges) > 0 {
		canvas.Gid("wedges")
		for _, wd := range sc.Wedges {
			style := fmt.Sprintf("fill:%s;fill-opacity:%s;stroke:#ffffff;stroke-width:1", wd.Color, opacity(0.85, wd.Highlighted))
			canvas.Path(wd.Path, style, idAttr("wedge-", wd.ID))
		}
		canvas.Gend()
	}

	if len(sc.Connectors) > 0 {
		canvas.Gid("connectors")
		for _, c := range sc.Connectors {
			canvas.Path(c.Path, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.2f;stroke-opacity:%.2f;stroke-linecap:round",
				c.Color, c.StrokeWidth, c.Opacity))
		}
		canvas.Gend()
	}

	if sc.Progress.Path != "" {
		canvas.Path(sc.Progress.Path, "fill:#4caf50;fill-opacity:0.9", `id="progress"`)
	}

	if len(sc.Wedges) == 0 {
		canvas.Gid("markers")
		for _, m := range sc.Markers {
			style := fmt.Sprintf("fill:%s;fill-opacity:%s", m.Color, opacity(0.9, m.Highlighted))
			if m.Highlighted {
				style += ";stroke:#ffffff;stroke-width:2"
			}
			canvas.Circle(finite(m.Position[0]), finite(m.Position[1]), finite(m.Size), style,
				idAttr("marker-", m.ID))
		}
		canvas.Gend()
	}

	if opts.Labels {
		drawLabels(canvas, sc, opts)
	}

	canvas.End()
	return ew.err
}

func drawLabels(canvas *svg.SVG, sc *scene2d.Scene, opts Options) {
	font := opts.FontFamily
	if font == "" {
		font = "sans-serif"
	}
	canvas.Gstyle(fmt.Sprintf("font-family:%s;font-size:10px;fill:#333333;text-anchor:middle", font))
	if len(sc.Wedges) > 0 {
		for _, w := range sc.Wedges {
			canvas.Text(finite(w.LabelAnchor[0]), finite(w.LabelAnchor[1])+3, labelText(w.Label, w.ID))
		}
	} else {
		for _, m := range sc.Markers {
			canvas.Text(finite(m.Position[0]), finite(m.Position[1]-m.Size-4), labelText(m.Label, m.ID))
		}
	}
	cx := finite(sc.ViewBox[0] + sc.ViewBox[2]/2)
	cy := finite(sc.ViewBox[1] + sc.ViewBox[3]/2)
	canvas.Text(cx, cy+4, fmt.Sprintf("%.0f", sc.Progress.Score), "font-size:16px;font-weight:600")
	canvas.Gend()
}

func opacity(base float64, highlighted bool) string {
	if highlighted {
		return "1"
	}
	return fmt.Sprintf("%.2f", base)
}

func labelText(label, id string) string {
	if label == "" {
		return id
	}
	return label
}

// idAttr builds an id attribute. Entity ids come from user specs, so the
// value is escaped.
func idAttr(prefix, id string) string {
	return `id="` + html.EscapeString(prefix+id) + `"`
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
