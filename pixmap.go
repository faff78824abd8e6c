package easel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// ErrSizeMismatch is returned when an operation requires two pixmaps of
// identical dimensions.
var ErrSizeMismatch = errors.New("easel: pixmap size mismatch")

// Pixmap represents a rectangular pixel buffer. Pixels are stored as
// straight (non-premultiplied) RGBA, 4 bytes per pixel, so encoding to
// PNG and back reproduces the buffer byte for byte.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (straight RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R*255 + 0.5))
	p.data[i+1] = uint8(clamp255(c.G*255 + 0.5))
	p.data[i+2] = uint8(clamp255(c.B*255 + 0.5))
	p.data[i+3] = uint8(clamp255(c.A*255 + 0.5))
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds reads return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R*255 + 0.5))
	g := uint8(clamp255(c.G*255 + 0.5))
	b := uint8(clamp255(c.B*255 + 0.5))
	a := uint8(clamp255(c.A*255 + 0.5))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ClearRect resets every pixel in the given rectangle to fully
// transparent. The rectangle is clamped to the pixmap bounds; pixels
// outside it are untouched.
func (p *Pixmap) ClearRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, p.width), min(y+h, p.height)
	for py := y0; py < y1; py++ {
		row := p.data[(py*p.width+x0)*4 : (py*p.width+x1)*4]
		for i := range row {
			row[i] = 0
		}
	}
}

// CopyFrom replaces this pixmap's pixels with those of src.
// Both pixmaps must have identical dimensions.
func (p *Pixmap) CopyFrom(src *Pixmap) error {
	if p.width != src.width || p.height != src.height {
		return fmt.Errorf("easel: copy %dx%d into %dx%d pixmap: %w",
			src.width, src.height, p.width, p.height, ErrSizeMismatch)
	}
	copy(p.data, src.data)
	return nil
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := NewPixmap(p.width, p.height)
	copy(q.data, p.data)
	return q
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory
// with the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*width*4:(y+1)*width*4], src.Pix[si:si+width*4])
		}
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("easel: encode PNG: %w", err)
	}
	return nil
}

// DecodePNG reads a PNG image from r into a new pixmap.
func DecodePNG(r io.Reader) (*Pixmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("easel: decode PNG: %w", err)
	}
	return FromImage(img), nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return p.EncodePNG(f)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
