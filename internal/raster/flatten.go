package raster

import "math"

// Tolerance is the maximum distance from a curve for flattening.
const Tolerance = 0.1

// PathElement represents an element in a path (internal copy to avoid
// import cycle).
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Subpath is one flattened run of a path: a polyline plus whether the
// run was explicitly closed.
type Subpath struct {
	Points []Point
	Closed bool
}

// Flatten converts a path with curves into polyline subpaths. A MoveTo
// begins a new subpath; Close marks the current subpath closed without
// duplicating its first point.
func Flatten(elements []PathElement) []Subpath {
	var subpaths []Subpath
	var current Point
	var start Point
	var points []Point

	flush := func(closed bool) {
		if len(points) > 0 {
			subpaths = append(subpaths, Subpath{Points: points, Closed: closed})
		}
		points = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			current = e.Point
			start = e.Point
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case CubicTo:
			flat := flattenCubic(current, e.Control1, e.Control2, e.Point, Tolerance)
			points = append(points, flat...)
			current = e.Point

		case Close:
			current = start
			flush(true)
			points = append(points, start)
		}
	}
	flush(false)

	// A Close immediately followed by nothing leaves a stray
	// single-point subpath; drop those.
	out := subpaths[:0]
	for _, sp := range subpaths {
		if len(sp.Points) >= 2 {
			out = append(out, sp)
		}
	}
	return out
}

// flattenCubic recursively subdivides a cubic Bezier into line segments.
// The returned points exclude p0.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64) []Point {
	var points []Point
	flattenCubicRec(p0, p1, p2, p3, tolerance, &points)
	points = append(points, p3)
	return points
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if d1 <= tolerance && d2 <= tolerance {
		return
	}

	// de Casteljau subdivision at t = 0.5
	p01 := midpoint(p0, p1)
	p12 := midpoint(p1, p2)
	p23 := midpoint(p2, p3)
	p012 := midpoint(p01, p12)
	p123 := midpoint(p12, p23)
	mid := midpoint(p012, p123)

	flattenCubicRec(p0, p01, p012, mid, tolerance, points)
	*points = append(*points, mid)
	flattenCubicRec(mid, p123, p23, p3, tolerance, points)
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// distanceToLine returns the distance from p to the line through a and b.
func distanceToLine(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return math.Sqrt((p.X-a.X)*(p.X-a.X) + (p.Y-a.Y)*(p.Y-a.Y))
	}
	return math.Abs((p.X-a.X)*dy-(p.Y-a.Y)*dx) / length
}
