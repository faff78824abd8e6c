package raster

// ReadPixmap extends Pixmap with pixel reads, needed by flood fill.
type ReadPixmap interface {
	Pixmap
	GetPixel(x, y int) RGBA
}

// FloodFill replaces the 4-connected region of pixels matching the color
// at the seed with the given color. Colors are compared after
// quantization to 8 bits per channel, matching the pixel storage, so
// float rounding can never split a region. A seed outside the pixmap or
// a fill color equal to the target is a no-op.
func FloodFill(pixmap ReadPixmap, x, y int, color RGBA) {
	w, h := pixmap.Width(), pixmap.Height()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}

	target := quantize(pixmap.GetPixel(x, y))
	if target == quantize(color) {
		return
	}

	matches := func(px, py int) bool {
		return quantize(pixmap.GetPixel(px, py)) == target
	}

	type seed struct{ x, y int }
	stack := []seed{{x, y}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !matches(s.x, s.y) {
			continue
		}

		// Expand the run to both sides, then fill it.
		x1 := s.x
		for x1 > 0 && matches(x1-1, s.y) {
			x1--
		}
		x2 := s.x
		for x2 < w-1 && matches(x2+1, s.y) {
			x2++
		}
		for px := x1; px <= x2; px++ {
			pixmap.SetPixel(px, s.y, color)
		}

		// Seed the rows above and below once per contiguous run.
		for _, ny := range [2]int{s.y - 1, s.y + 1} {
			if ny < 0 || ny >= h {
				continue
			}
			inRun := false
			for px := x1; px <= x2; px++ {
				if matches(px, ny) {
					if !inRun {
						stack = append(stack, seed{px, ny})
						inRun = true
					}
				} else {
					inRun = false
				}
			}
		}
	}
}

// quantize converts a color to its 8-bit storage form.
func quantize(c RGBA) [4]uint8 {
	return [4]uint8{
		uint8(clampByte(c.R*255 + 0.5)),
		uint8(clampByte(c.G*255 + 0.5)),
		uint8(clampByte(c.B*255 + 0.5)),
		uint8(clampByte(c.A*255 + 0.5)),
	}
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
