package geo

import "math"

// Rect is an axis-aligned box in SVG user space.
type Rect struct {
	Min Point2D
	Max Point2D
}

// RectFromViewBox converts an SVG viewBox (minX, minY, width, height).
func RectFromViewBox(vb [4]float64) Rect {
	return Rect{
		Min: Pt(vb[0], vb[1]),
		Max: Pt(vb[0]+vb[2], vb[1]+vb[3]),
	}
}

// SquareAround returns the square of half-width half centred on c.
func SquareAround(c Point2D, half float64) Rect {
	return Rect{Min: Pt(c.X-half, c.Y-half), Max: Pt(c.X+half, c.Y+half)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the box.
func (r Rect) Center() Point2D { return MidPoint(r.Min, r.Max) }

// ViewBox returns r as an SVG viewBox.
func (r Rect) ViewBox() [4]float64 {
	return [4]float64{r.Min.X, r.Min.Y, r.Width(), r.Height()}
}

// Expand grows the box by d on every side. A negative d shrinks it.
func (r Rect) Expand(d float64) Rect {
	return Rect{Min: Pt(r.Min.X-d, r.Min.Y-d), Max: Pt(r.Max.X+d, r.Max.Y+d)}
}

// Contains reports whether pt lies inside the box or on its edge.
func (r Rect) Contains(pt Point2D) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// ContainsCircle reports whether the disc at c with the given radius fits
// entirely inside the box.
func (r Rect) ContainsCircle(c Point2D, radius float64) bool {
	return r.Expand(-math.Max(radius, 0)).Contains(c)
}
