package easel

import (
	"bytes"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Composite flattens all visible layers bottom-up into a single pixmap
// using source-over blending. Each layer's composite opacity scales its
// alpha; hidden layers are skipped. The editing view is unaffected --
// compositing exists for export and thumbnails only.
func (e *Engine) Composite() *Pixmap {
	out := NewPixmap(e.width, e.height)
	for _, l := range e.layers.layers {
		if !l.visible || l.opacity <= 0 {
			continue
		}
		blendOver(out, l.buffer, l.opacity)
	}
	return out
}

// ExportCompositePNG encodes the flattened visible layers as a PNG.
func (e *Engine) ExportCompositePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Composite().EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LayerThumbnail renders a downscaled preview of one layer's buffer,
// fitting it inside maxW x maxH while preserving aspect ratio. Chromes
// use it for layer panels.
func (e *Engine) LayerThumbnail(index, maxW, maxH int) (*Pixmap, error) {
	l, err := e.layers.layer(index)
	if err != nil {
		return nil, err
	}
	if maxW <= 0 || maxH <= 0 {
		return nil, fmt.Errorf("easel: thumbnail bounds %dx%d must be positive", maxW, maxH)
	}

	w, h := fitInside(e.width, e.height, maxW, maxH)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), l.buffer.ToImage(), l.buffer.Bounds(), xdraw.Src, nil)

	pm := NewPixmap(w, h)
	copy(pm.data, dst.Pix)
	return pm, nil
}

// fitInside scales (w, h) down to fit in (maxW, maxH), keeping aspect
// ratio and never returning a zero dimension.
func fitInside(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	sx := float64(maxW) / float64(w)
	sy := float64(maxH) / float64(h)
	s := sx
	if sy < s {
		s = sy
	}
	ow := int(float64(w) * s)
	oh := int(float64(h) * s)
	if ow < 1 {
		ow = 1
	}
	if oh < 1 {
		oh = 1
	}
	return ow, oh
}

// blendOver composites src over dst with the given extra opacity, in
// straight alpha. Both pixmaps must share dimensions; layers always do.
func blendOver(dst, src *Pixmap, opacity float64) {
	for i := 0; i < len(dst.data); i += 4 {
		sa := float64(src.data[i+3]) / 255 * opacity
		if sa <= 0 {
			continue
		}
		da := float64(dst.data[i+3]) / 255
		oa := sa + da*(1-sa)
		if oa <= 0 {
			continue
		}
		for c := 0; c < 3; c++ {
			s := float64(src.data[i+c]) / 255
			d := float64(dst.data[i+c]) / 255
			dst.data[i+c] = uint8(clamp255((s*sa+d*da*(1-sa))/oa*255 + 0.5))
		}
		dst.data[i+3] = uint8(clamp255(oa * 255))
	}
}
