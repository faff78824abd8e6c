package raster

import "testing"

var (
	black = RGBA{A: 1}
	green = RGBA{G: 1, A: 1}
)

// TestFloodFillBounded fills inside a closed box and checks nothing
// escapes.
func TestFloodFillBounded(t *testing.T) {
	pm := newTestPixmap(10, 10)
	for i := 2; i <= 7; i++ {
		pm.SetPixel(i, 2, black)
		pm.SetPixel(i, 7, black)
		pm.SetPixel(2, i, black)
		pm.SetPixel(7, i, black)
	}

	FloodFill(pm, 4, 4, green)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := pm.GetPixel(x, y)
			switch {
			case x > 2 && x < 7 && y > 2 && y < 7:
				if got != green {
					t.Fatalf("interior pixel (%d,%d) = %v, want green", x, y, got)
				}
			case x >= 2 && x <= 7 && y >= 2 && y <= 7:
				if got != black {
					t.Fatalf("wall pixel (%d,%d) = %v, want black", x, y, got)
				}
			default:
				if got.A != 0 {
					t.Fatalf("exterior pixel (%d,%d) filled", x, y)
				}
			}
		}
	}
}

// TestFloodFillDiagonalBlocked verifies the fill is 4-connected: a
// diagonal wall stops it.
func TestFloodFillDiagonalBlocked(t *testing.T) {
	pm := newTestPixmap(6, 6)
	for i := 0; i < 6; i++ {
		pm.SetPixel(i, i, black)
	}

	FloodFill(pm, 4, 1, green)

	if pm.GetPixel(4, 1) != green {
		t.Fatal("seed side not filled")
	}
	if pm.GetPixel(1, 4).A != 0 {
		t.Fatal("fill crossed the diagonal wall; 8-connected leak")
	}
	if pm.GetPixel(3, 3) != black {
		t.Fatal("wall overwritten")
	}
}

// TestFloodFillNoOps covers out-of-bounds seeds and filling with the
// target's own color.
func TestFloodFillNoOps(t *testing.T) {
	pm := newTestPixmap(4, 4)
	pm.SetPixel(1, 1, black)

	FloodFill(pm, -1, 0, green)
	FloodFill(pm, 4, 0, green)
	FloodFill(pm, 1, 1, black) // same color, nothing to do

	if pm.GetPixel(0, 0).A != 0 {
		t.Error("out-of-bounds seed filled pixels")
	}
	if pm.GetPixel(1, 1) != black {
		t.Error("same-color fill changed the seed pixel")
	}
}

// TestFloodFillQuantizedMatch seeds on a color that differs only below
// 8-bit precision and expects one region.
func TestFloodFillQuantizedMatch(t *testing.T) {
	pm := newTestPixmap(3, 1)
	pm.SetPixel(0, 0, RGBA{R: 0.5, A: 1})
	pm.SetPixel(1, 0, RGBA{R: 0.5000001, A: 1})
	pm.SetPixel(2, 0, RGBA{R: 0.5, A: 1})

	FloodFill(pm, 0, 0, green)

	for x := 0; x < 3; x++ {
		if pm.GetPixel(x, 0) != green {
			t.Fatalf("pixel (%d,0) not filled; quantized match split the region", x)
		}
	}
}
