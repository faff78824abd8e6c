package easel

import (
	"github.com/easelkit/easel/internal/raster"
	"github.com/easelkit/easel/internal/stroke"
)

// SoftwareRenderer is a CPU-based scanline rasterizer. It renders hard
// pixel edges sampled at pixel centers, which keeps committed strokes
// byte-reproducible for snapshot round-trips.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

// pixmapAdapter adapts easel.Pixmap to the raster interfaces.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

func (p *pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	p.pixmap.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (p *pixmapAdapter) GetPixel(x, y int) raster.RGBA {
	c := p.pixmap.GetPixel(x, y)
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FillSpan implements the raster.SpanFiller fast path with direct byte
// writes.
func (p *pixmapAdapter) FillSpan(x1, x2, y int, c raster.RGBA) {
	if y < 0 || y >= p.pixmap.height {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.pixmap.width {
		x2 = p.pixmap.width
	}
	if x1 >= x2 {
		return
	}
	r := uint8(clamp255(c.R*255 + 0.5))
	g := uint8(clamp255(c.G*255 + 0.5))
	b := uint8(clamp255(c.B*255 + 0.5))
	a := uint8(clamp255(c.A*255 + 0.5))
	row := p.pixmap.data[(y*p.pixmap.width+x1)*4 : (y*p.pixmap.width+x2)*4]
	for i := 0; i < len(row); i += 4 {
		row[i+0] = r
		row[i+1] = g
		row[i+2] = b
		row[i+3] = a
	}
}

// convertPath converts easel.Path elements to raster path elements for
// flattening.
func convertPath(p *Path) []raster.PathElement {
	var elements []raster.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, raster.MoveTo{Point: raster.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, raster.LineTo{Point: raster.Point{X: e.Point.X, Y: e.Point.Y}})
		case CubicTo:
			elements = append(elements, raster.CubicTo{
				Control1: raster.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: raster.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    raster.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, raster.Close{})
		}
	}
	return elements
}

// Fill implements Renderer.Fill.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	subpaths := raster.Flatten(convertPath(p))
	if len(subpaths) == 0 {
		return nil
	}

	contours := make([][]raster.Point, 0, len(subpaths))
	for _, sp := range subpaths {
		contours = append(contours, sp.Points)
	}

	fillRule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}

	adapter := &pixmapAdapter{pixmap: pixmap}
	r.rasterizer.Fill(adapter, contours, fillRule, raster.RGBA{
		R: paint.Color.R,
		G: paint.Color.G,
		B: paint.Color.B,
		A: paint.Color.A,
	})
	return nil
}

// Stroke implements Renderer.Stroke. The path is flattened, each
// subpath expanded into outline contours, and the contours filled with
// the non-zero rule.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	subpaths := raster.Flatten(convertPath(p))
	if len(subpaths) == 0 {
		return nil
	}

	expander := stroke.NewExpander(strokeStyle(paint))

	var contours [][]raster.Point
	for _, sp := range subpaths {
		pts := make([]stroke.Point, len(sp.Points))
		for i, q := range sp.Points {
			pts[i] = stroke.Point{X: q.X, Y: q.Y}
		}
		for _, c := range expander.Expand(pts, sp.Closed) {
			contour := make([]raster.Point, len(c))
			for i, q := range c {
				contour[i] = raster.Point{X: q.X, Y: q.Y}
			}
			contours = append(contours, contour)
		}
	}
	if len(contours) == 0 {
		return nil
	}

	adapter := &pixmapAdapter{pixmap: pixmap}
	r.rasterizer.Fill(adapter, contours, raster.FillRuleNonZero, raster.RGBA{
		R: paint.Color.R,
		G: paint.Color.G,
		B: paint.Color.B,
		A: paint.Color.A,
	})
	return nil
}

// strokeStyle maps paint stroke parameters onto the expander style.
func strokeStyle(paint *Paint) stroke.Style {
	style := stroke.Style{
		Width:      paint.LineWidth,
		MiterLimit: paint.MiterLimit,
	}
	switch paint.LineCap {
	case LineCapRound:
		style.Cap = stroke.CapRound
	case LineCapSquare:
		style.Cap = stroke.CapSquare
	default:
		style.Cap = stroke.CapButt
	}
	switch paint.LineJoin {
	case LineJoinRound:
		style.Join = stroke.JoinRound
	case LineJoinBevel:
		style.Join = stroke.JoinBevel
	default:
		style.Join = stroke.JoinMiter
	}
	return style
}
