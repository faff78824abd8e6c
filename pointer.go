package easel

// PointerSource identifies the kind of device behind a pointer event.
// The source is resolved once, when the chrome constructs the event;
// nothing downstream ever probes the event shape again.
type PointerSource int

const (
	// SourceMouse is a single-point mouse (or pen emulating one).
	SourceMouse PointerSource = iota
	// SourceTouch is a possibly multi-point touch surface.
	SourceTouch
)

// PointerEvent is the raw input a chrome forwards into the engine.
// All coordinates are in screen space; the engine translates them by
// the configured surface origin.
//
// For SourceMouse only Client is meaningful. For SourceTouch, Touches
// holds the currently active touch points and Changed the touches that
// ended with this event; a touch that has ended is no longer in
// Touches, which is why completion events carry it in Changed.
type PointerEvent struct {
	Source  PointerSource
	Client  Point
	Touches []Point
	Changed []Point
}

// MouseEvent builds a mouse pointer event at the given screen position.
func MouseEvent(x, y float64) PointerEvent {
	return PointerEvent{Source: SourceMouse, Client: Pt(x, y)}
}

// TouchEvent builds a touch start/move event from the active touch
// points.
func TouchEvent(active ...Point) PointerEvent {
	return PointerEvent{Source: SourceTouch, Touches: active}
}

// TouchEndEvent builds a touch completion event from the touches that
// just ended.
func TouchEndEvent(changed ...Point) PointerEvent {
	return PointerEvent{Source: SourceTouch, Changed: changed}
}

// pointerPhase tells the normalizer which coordinate list applies.
type pointerPhase int

const (
	phaseDown pointerPhase = iota
	phaseMove
	phaseUp
	phaseLeave
)

// normalizePointer maps a raw pointer event to surface-local
// coordinates. Mouse events use the client position; touch start/move
// events use the first active touch; touch completions use the first
// just-ended touch. When the event carries no usable coordinates, the
// gesture anchor is returned for an active gesture, (0,0) otherwise.
// Pure coordinate mapping; no side effects.
func normalizePointer(ev PointerEvent, phase pointerPhase, origin Point, anchor Point, active bool) Point {
	if ev.Source == SourceMouse {
		return ev.Client.Sub(origin)
	}

	switch phase {
	case phaseUp, phaseLeave:
		if len(ev.Changed) > 0 {
			return ev.Changed[0].Sub(origin)
		}
	default:
		if len(ev.Touches) > 0 {
			return ev.Touches[0].Sub(origin)
		}
	}

	if active {
		return anchor
	}
	return Point{}
}
