package raster

import "testing"

// testPixmap is a plain pixel grid for assertions.
type testPixmap struct {
	w, h int
	pix  []RGBA
}

func newTestPixmap(w, h int) *testPixmap {
	return &testPixmap{w: w, h: h, pix: make([]RGBA, w*h)}
}

func (p *testPixmap) Width() int  { return p.w }
func (p *testPixmap) Height() int { return p.h }

func (p *testPixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return
	}
	p.pix[y*p.w+x] = c
}

func (p *testPixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return RGBA{}
	}
	return p.pix[y*p.w+x]
}

var red = RGBA{R: 1, A: 1}

func square(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// TestFillSquare checks exact pixel-center coverage of an axis-aligned
// square.
func TestFillSquare(t *testing.T) {
	pm := newTestPixmap(10, 10)
	r := NewRasterizer(10, 10)
	r.Fill(pm, [][]Point{square(2, 3, 5, 4)}, FillRuleNonZero, red)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 7 && y >= 3 && y < 7
			got := pm.GetPixel(x, y)
			if inside && got != red {
				t.Fatalf("pixel (%d,%d) = %v, want filled", x, y, got)
			}
			if !inside && got.A != 0 {
				t.Fatalf("pixel (%d,%d) filled outside the square", x, y)
			}
		}
	}
}

// TestFillClipsToBounds fills a contour extending past every edge.
func TestFillClipsToBounds(t *testing.T) {
	pm := newTestPixmap(6, 6)
	r := NewRasterizer(6, 6)
	r.Fill(pm, [][]Point{square(-10, -10, 30, 30)}, FillRuleNonZero, red)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if pm.GetPixel(x, y) != red {
				t.Fatalf("pixel (%d,%d) not filled by an oversized contour", x, y)
			}
		}
	}
}

// TestFillRules fills nested squares wound the same way: non-zero
// fills through, even-odd leaves a hole.
func TestFillRules(t *testing.T) {
	contours := [][]Point{square(1, 1, 8, 8), square(3, 3, 4, 4)}

	nz := newTestPixmap(10, 10)
	r := NewRasterizer(10, 10)
	r.Fill(nz, contours, FillRuleNonZero, red)
	if nz.GetPixel(5, 5).A == 0 {
		t.Error("non-zero rule left a hole in same-winding nesting")
	}

	eo := newTestPixmap(10, 10)
	r.Fill(eo, contours, FillRuleEvenOdd, red)
	if eo.GetPixel(5, 5).A != 0 {
		t.Error("even-odd rule filled the nested square")
	}
	if eo.GetPixel(2, 5).A == 0 {
		t.Error("even-odd rule missed the outer ring")
	}
}

// TestFillOppositeWindingCancels reverses the inner square so non-zero
// also produces a hole.
func TestFillOppositeWindingCancels(t *testing.T) {
	inner := square(3, 3, 4, 4)
	for i, j := 0, len(inner)-1; i < j; i, j = i+1, j-1 {
		inner[i], inner[j] = inner[j], inner[i]
	}
	contours := [][]Point{square(1, 1, 8, 8), inner}

	pm := newTestPixmap(10, 10)
	NewRasterizer(10, 10).Fill(pm, contours, FillRuleNonZero, red)
	if pm.GetPixel(5, 5).A != 0 {
		t.Error("opposite winding did not cancel under non-zero rule")
	}
}

// TestFillDegenerateContours verifies empty, single-point, and
// horizontal-only contours paint nothing.
func TestFillDegenerateContours(t *testing.T) {
	pm := newTestPixmap(8, 8)
	r := NewRasterizer(8, 8)
	r.Fill(pm, [][]Point{
		{},
		{{4, 4}},
		{{1, 4}, {6, 4}}, // horizontal line, zero area
	}, FillRuleNonZero, red)

	for i, c := range pm.pix {
		if c.A != 0 {
			t.Fatalf("degenerate contour painted pixel %d", i)
		}
	}
}

// TestFillTriangle spot-checks a non-rectangular contour.
func TestFillTriangle(t *testing.T) {
	pm := newTestPixmap(12, 12)
	r := NewRasterizer(12, 12)
	r.Fill(pm, [][]Point{{{1, 10}, {11, 10}, {6, 1}}}, FillRuleNonZero, red)

	if pm.GetPixel(6, 8).A == 0 {
		t.Error("triangle interior not filled")
	}
	if pm.GetPixel(1, 2).A != 0 {
		t.Error("pixel outside the triangle filled")
	}
}
