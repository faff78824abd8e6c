package easel

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default software rendering, unlimited history
//	e := easel.NewEngine(800, 600)
//
//	// Bounded history and a custom renderer (dependency injection)
//	e := easel.NewEngine(800, 600,
//	    easel.WithMaxHistory(100),
//	    easel.WithRenderer(myRenderer))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	renderer      Renderer
	maxHistory    int
	surfaceOrigin Point
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		renderer:   nil, // Will be set to SoftwareRenderer if nil
		maxHistory: 0,   // Unlimited
	}
}

// WithRenderer sets a custom renderer for the Engine.
// Use this for dependency injection of alternative rasterizers.
func WithRenderer(r Renderer) EngineOption {
	return func(o *engineOptions) {
		o.renderer = r
	}
}

// WithMaxHistory bounds the undo depth of every layer. When a gesture
// commit would exceed n entries, the oldest entry is dropped. n <= 0
// means unlimited.
func WithMaxHistory(n int) EngineOption {
	return func(o *engineOptions) {
		o.maxHistory = n
	}
}

// WithSurfaceOrigin sets the screen-space position of the surface's
// top-left corner, used to translate mouse and touch client coordinates
// into surface-local coordinates. Chromes whose surface does not sit at
// the window origin call this once at layout time (and again when the
// surface moves).
func WithSurfaceOrigin(x, y float64) EngineOption {
	return func(o *engineOptions) {
		o.surfaceOrigin = Pt(x, y)
	}
}
