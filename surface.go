package easel

// surface owns the visible pixmap. Presentation is a full redraw: the
// active layer's buffer replaces the prior visible content entirely,
// optionally followed by a transient preview stroke that exists only on
// the surface, never in a layer or snapshot.
type surface struct {
	pixmap   *Pixmap
	renderer Renderer
	revision uint64
}

func newSurface(width, height int, renderer Renderer) *surface {
	return &surface{
		pixmap:   NewPixmap(width, height),
		renderer: renderer,
	}
}

// present replaces the visible content with the given buffer.
func (s *surface) present(buffer *Pixmap) {
	// Same engine, same dimensions; the copy cannot fail.
	_ = s.pixmap.CopyFrom(buffer)
	s.revision++
}

// presentWithPreview replaces the visible content with the buffer and
// strokes the in-progress shape on top. The preview goes through the
// same renderer and paint as a commit would, so it is indistinguishable
// from the committed result.
func (s *surface) presentWithPreview(buffer *Pixmap, path *Path, paint *Paint) {
	_ = s.pixmap.CopyFrom(buffer)
	if err := s.renderer.Stroke(s.pixmap, path, paint); err != nil {
		Logger().Warn("easel: preview stroke failed", "err", err)
	}
	s.revision++
}
