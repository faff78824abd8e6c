package stroke

import "math"

// Point represents a 2D point or vector (internal copy to avoid import
// cycle).
type Point struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the sum of two vectors.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns the vector scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the vector length.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns the vector rotated 90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// LineCap specifies the shape of stroke endpoints (internal copy).
type LineCap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt LineCap = iota
	// CapRound ends the stroke with a half disk.
	CapRound
	// CapSquare extends the stroke half a width past the endpoint.
	CapSquare
)

// LineJoin specifies the shape of stroke corners (internal copy).
type LineJoin int

const (
	// JoinMiter joins corners with a sharp point, limited by MiterLimit.
	JoinMiter LineJoin = iota
	// JoinRound joins corners with a circular arc.
	JoinRound
	// JoinBevel joins corners with a flat edge.
	JoinBevel
)

// Style describes how a polyline is expanded into an outline.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns the stroke style used when none is configured.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 10,
	}
}

// Expander converts polylines into sets of closed contours that cover
// the stroked area. Each segment, cap, and join is emitted as its own
// contour with a uniform orientation, so filling all contours together
// with the non-zero winding rule produces their union; overlap between
// neighboring stamps is harmless by construction.
type Expander struct {
	style     Style
	tolerance float64
}

// NewExpander creates an expander for the given style.
func NewExpander(style Style) *Expander {
	if style.Width <= 0 {
		style.Width = 1
	}
	if style.MiterLimit <= 0 {
		style.MiterLimit = 10
	}
	return &Expander{style: style, tolerance: 0.25}
}

// SetTolerance adjusts the maximum deviation of round caps and joins
// from a true circle, in pixels.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand strokes one polyline. closed joins the last point back to the
// first instead of applying caps. Zero-length input, including a
// polyline of coincident points, produces no contours.
func (e *Expander) Expand(points []Point, closed bool) [][]Point {
	pts := dedupe(points)
	if closed && len(pts) > 1 && distance(pts[0], pts[len(pts)-1]) < 1e-9 {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return nil
	}

	half := e.style.Width / 2
	n := len(pts)
	var contours [][]Point

	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		contours = append(contours, orient(segmentQuad(pts[i], pts[(i+1)%n], half)))
	}

	if closed {
		for i := 0; i < n; i++ {
			contours = e.appendJoin(contours, pts[(i-1+n)%n], pts[i], pts[(i+1)%n], half)
		}
		return contours
	}

	for i := 1; i < n-1; i++ {
		contours = e.appendJoin(contours, pts[i-1], pts[i], pts[i+1], half)
	}

	switch e.style.Cap {
	case CapRound:
		contours = append(contours,
			orient(e.disk(pts[0], half)),
			orient(e.disk(pts[n-1], half)))
	case CapSquare:
		contours = append(contours,
			orient(squareCap(pts[0], pts[1], half)),
			orient(squareCap(pts[n-1], pts[n-2], half)))
	}
	return contours
}

// appendJoin stamps the corner at v between segments prev->v and v->next.
func (e *Expander) appendJoin(contours [][]Point, prev, v, next Point, half float64) [][]Point {
	if e.style.Join == JoinRound {
		return append(contours, orient(e.disk(v, half)))
	}

	d1 := v.Sub(prev).Normalize()
	d2 := next.Sub(v).Normalize()
	cross := d1.Cross(d2)
	if math.Abs(cross) < 1e-9 {
		// Collinear continuation or full reversal: the segment quads
		// already cover the corner.
		return contours
	}

	// The gap between the segment quads sits on the outer side of the
	// turn, opposite the cross product sign.
	side := -1.0
	if cross < 0 {
		side = 1.0
	}
	p1 := v.Add(d1.Perp().Scale(side * half))
	p2 := v.Add(d2.Perp().Scale(side * half))

	if e.style.Join == JoinMiter {
		if tip, ok := miterTip(p1, d1, p2, d2); ok {
			if distance(tip, v) <= e.style.MiterLimit*half {
				return append(contours, orient([]Point{v, p1, tip, p2}))
			}
		}
	}
	return append(contours, orient([]Point{v, p1, p2}))
}

// segmentQuad returns the rectangle covering one stroked segment.
func segmentQuad(a, b Point, half float64) []Point {
	m := b.Sub(a).Normalize().Perp().Scale(half)
	return []Point{a.Add(m), b.Add(m), b.Sub(m), a.Sub(m)}
}

// squareCap returns the rectangle extending half a width past end,
// away from inner.
func squareCap(end, inner Point, half float64) []Point {
	d := end.Sub(inner).Normalize().Scale(half)
	m := d.Perp()
	return []Point{
		end.Add(m),
		end.Add(m).Add(d),
		end.Sub(m).Add(d),
		end.Sub(m),
	}
}

// disk returns a polygonal approximation of a filled circle. The number
// of sides keeps the sagitta within the expander tolerance.
func (e *Expander) disk(c Point, r float64) []Point {
	sides := 8
	if r > e.tolerance {
		step := 2 * math.Acos(1-e.tolerance/r)
		if n := int(math.Ceil(2 * math.Pi / step)); n > sides {
			sides = n
		}
	}
	pts := make([]Point, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

// miterTip intersects the two outer stroke edges. ok is false when the
// edges are parallel.
func miterTip(p1, d1, p2, d2 Point) (Point, bool) {
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-9 {
		return Point{}, false
	}
	t := p2.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Scale(t)), true
}

// orient normalizes a contour to clockwise winding (negative shoelace
// area) so every stamp contributes the same sign under the non-zero
// rule. The contour is reversed in place when needed.
func orient(contour []Point) []Point {
	var area float64
	for i := range contour {
		j := (i + 1) % len(contour)
		area += contour[i].X*contour[j].Y - contour[j].X*contour[i].Y
	}
	if area > 0 {
		for i, j := 0, len(contour)-1; i < j; i, j = i+1, j-1 {
			contour[i], contour[j] = contour[j], contour[i]
		}
	}
	return contour
}

// dedupe drops consecutive points closer than a hair apart.
func dedupe(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if distance(p, out[len(out)-1]) >= 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

func distance(a, b Point) float64 {
	return a.Sub(b).Length()
}
