package easel

import (
	"image/color"
	"testing"
)

// TestHex covers every accepted format plus the opaque-black fallback.
func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000000", RGBA{0, 0, 0, 1}},
		{"#ffffff", RGBA{1, 1, 1, 1}},
		{"#FF0000", RGBA{1, 0, 0, 1}},
		{"ff0000", RGBA{1, 0, 0, 1}},
		{"#f00", RGBA{1, 0, 0, 1}},
		{"#f00f", RGBA{1, 0, 0, 1}},
		{"#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"#8040c0", RGBA{128.0 / 255, 64.0 / 255, 192.0 / 255, 1}},
		// Fallback: unrecognized input is opaque black.
		{"", RGBA{0, 0, 0, 1}},
		{"#12345", RGBA{0, 0, 0, 1}},
		{"not-a-color", RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in)
			if !approxColor(got, tt.want) {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func approxColor(a, b RGBA) bool {
	const eps = 1e-9
	abs := func(x float64) float64 {
		if x < 0 {
			return -x
		}
		return x
	}
	return abs(a.R-b.R) < eps && abs(a.G-b.G) < eps && abs(a.B-b.B) < eps && abs(a.A-b.A) < eps
}

// TestColorConversionRoundTrip converts through color.Color and back.
func TestColorConversionRoundTrip(t *testing.T) {
	in := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	out := FromColor(in.Color())

	q := func(v float64) uint8 { return uint8(clamp255(v * 255)) }
	if q(out.R) != q(in.R) || q(out.G) != q(in.G) || q(out.B) != q(in.B) || q(out.A) != q(in.A) {
		t.Errorf("round trip: got %v, want %v", out, in)
	}
}

// TestFromColorZeroAlpha verifies fully transparent input maps to the
// zero value instead of dividing by zero.
func TestFromColorZeroAlpha(t *testing.T) {
	got := FromColor(color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	if got != (RGBA{}) {
		t.Errorf("FromColor(alpha=0) = %v, want zero value", got)
	}
}
