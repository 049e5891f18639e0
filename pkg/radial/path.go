package radial

import (
	"math"
	"strconv"
	"strings"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
)

// Op is an SVG path command letter.
type Op byte

const (
	OpMove      Op = 'M'
	OpLine      Op = 'L'
	OpArc       Op = 'A'
	OpQuadratic Op = 'Q'
	OpClose     Op = 'Z'
)

// Command is a single absolute path command with its numeric arguments.
type Command struct {
	Op   Op        `json:"op"`
	Args []float64 `json:"args,omitempty"`
}

// Path is an ordered list of path commands. Renderers that are not SVG based
// can walk the commands directly instead of parsing the string form.
type Path []Command

// precision is the number of decimals kept when serializing coordinates.
const precision = 3

// MoveTo appends an M command.
func (p Path) MoveTo(pt geo.Point2D) Path {
	return append(p, Command{Op: OpMove, Args: []float64{pt.X, pt.Y}})
}

// LineTo appends an L command.
func (p Path) LineTo(pt geo.Point2D) Path {
	return append(p, Command{Op: OpLine, Args: []float64{pt.X, pt.Y}})
}

// ArcTo appends a circular A command with no x-axis rotation.
func (p Path) ArcTo(r float64, largeArc, sweep int, pt geo.Point2D) Path {
	return append(p, Command{Op: OpArc, Args: []float64{r, r, 0, float64(largeArc), float64(sweep), pt.X, pt.Y}})
}

// QuadTo appends a Q command.
func (p Path) QuadTo(ctrl, pt geo.Point2D) Path {
	return append(p, Command{Op: OpQuadratic, Args: []float64{ctrl.X, ctrl.Y, pt.X, pt.Y}})
}

// Close appends a Z command.
func (p Path) Close() Path {
	return append(p, Command{Op: OpClose})
}

// String serializes the path as SVG path data, e.g. "M 50 0 A 50 50 0 0 1 0 50 Z".
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(c.Op))
		for _, a := range c.Args {
			b.WriteByte(' ')
			b.WriteString(formatNumber(a))
		}
	}
	return b.String()
}

// formatNumber rounds to a fixed precision so that trigonometric noise such
// as cos(90°) = 6e-17 serializes as "0", and never emits "-0".
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	scale := math.Pow(10, precision)
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
