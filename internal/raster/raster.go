// Package raster provides scanline rasterization for the drawing engine.
package raster

import (
	"math"
	"sort"
)

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Pixmap is an interface for writing pixels (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Rasterizer performs scanline rasterization of closed contours.
// Contours are sampled at pixel centers: pixel (x, y) is inside when
// the point (x+0.5, y+0.5) is inside the filled region.
type Rasterizer struct {
	width     int
	height    int
	edges     []Edge
	crossings []crossing
}

// crossing is an edge intersection with the current scanline.
type crossing struct {
	x   float64
	dir int
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
	}
}

// Fill rasterizes a set of closed contours onto a pixmap. Contours that
// do not end where they start are closed implicitly. Horizontal and
// zero-length edges are skipped; they never affect winding.
func (r *Rasterizer) Fill(pixmap Pixmap, contours [][]Point, fillRule FillRule, color RGBA) {
	r.edges = r.edges[:0]
	for _, contour := range contours {
		r.appendEdges(contour)
	}
	if len(r.edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range r.edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	yMinInt := int(math.Floor(yMin))
	yMaxInt := int(math.Ceil(yMax))
	if yMinInt < 0 {
		yMinInt = 0
	}
	if yMaxInt > pixmap.Height() {
		yMaxInt = pixmap.Height()
	}

	for y := yMinInt; y < yMaxInt; y++ {
		scanY := float64(y) + 0.5
		r.scanline(pixmap, scanY, y, fillRule, color)
	}
}

// appendEdges converts one contour into scanline edges.
func (r *Rasterizer) appendEdges(contour []Point) {
	if len(contour) < 2 {
		return
	}
	for i := 0; i < len(contour); i++ {
		p0 := contour[i]
		p1 := contour[(i+1)%len(contour)]
		if math.Abs(p1.Y-p0.Y) < 1e-9 {
			continue
		}
		r.edges = append(r.edges, NewEdge(p0, p1))
	}
}

// scanline fills the spans crossed by a single scanline.
func (r *Rasterizer) scanline(pixmap Pixmap, scanY float64, y int, fillRule FillRule, color RGBA) {
	r.crossings = r.crossings[:0]
	for i := range r.edges {
		e := &r.edges[i]
		if e.y0 <= scanY && scanY < e.y1 {
			r.crossings = append(r.crossings, crossing{x: e.XAtY(scanY), dir: e.dir})
		}
	}
	if len(r.crossings) < 2 {
		return
	}

	sort.Slice(r.crossings, func(i, j int) bool {
		return r.crossings[i].x < r.crossings[j].x
	})

	if fillRule == FillRuleNonZero {
		winding := 0
		var x1 float64
		for _, c := range r.crossings {
			if winding == 0 {
				x1 = c.x
			}
			winding += c.dir
			if winding == 0 {
				r.fillSpan(pixmap, x1, c.x, y, color)
			}
		}
	} else {
		for i := 0; i+1 < len(r.crossings); i += 2 {
			r.fillSpan(pixmap, r.crossings[i].x, r.crossings[i+1].x, y, color)
		}
	}
}

// SpanFiller is an optional interface that pixmaps can implement for
// optimized span filling.
type SpanFiller interface {
	FillSpan(x1, x2, y int, c RGBA)
}

// fillSpan fills the pixels whose centers lie in [x1, x2).
func (r *Rasterizer) fillSpan(pixmap Pixmap, x1, x2 float64, y int, color RGBA) {
	if y < 0 || y >= pixmap.Height() {
		return
	}

	xStart := int(math.Ceil(x1 - 0.5))
	xEnd := int(math.Ceil(x2 - 0.5))
	if xStart < 0 {
		xStart = 0
	}
	if xEnd > pixmap.Width() {
		xEnd = pixmap.Width()
	}
	if xStart >= xEnd {
		return
	}

	if spanFiller, ok := pixmap.(SpanFiller); ok {
		spanFiller.FillSpan(xStart, xEnd, y, color)
		return
	}

	for x := xStart; x < xEnd; x++ {
		pixmap.SetPixel(x, y, color)
	}
}
