package easel

import (
	"bytes"
	"math"

	"github.com/easelkit/easel/internal/raster"
)

// Brush size bounds accepted by SetBrushSize. Values outside the range
// are clamped, never rejected.
const (
	MinBrushSize = 1
	MaxBrushSize = 30
)

// Engine is an interactive raster drawing surface: a layered canvas
// painted through a small command surface by whatever chrome hosts it.
// All drawing state lives here; there are no package-level mutable
// globals.
//
// An Engine must be driven from a single goroutine. Pointer events,
// commands, and restores all execute synchronously, so command effects
// are fully applied, in order, by the time each method returns.
type Engine struct {
	width  int
	height int

	renderer Renderer
	layers   *layerStore
	surface  *surface

	tool      Tool
	color     RGBA
	brushSize int

	maxHistory int
	origin     Point

	gesture gestureState
}

// gestureState is the transient tool state between pointer-down and
// pointer-up/leave. The tool is latched at press; color and brush size
// are deliberately not, so they can change mid-stroke.
type gestureState struct {
	active bool
	tool   Tool
	anchor Point
	last   Point
}

// NewEngine creates an engine with one empty layer, the brush tool,
// opaque black, and brush size 5.
func NewEngine(width, height int, opts ...EngineOption) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	renderer := o.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer(width, height)
	}

	return &Engine{
		width:      width,
		height:     height,
		renderer:   renderer,
		layers:     newLayerStore(width, height, o.maxHistory),
		surface:    newSurface(width, height, renderer),
		tool:       ToolBrush,
		color:      Black,
		brushSize:  5,
		maxHistory: o.maxHistory,
		origin:     o.surfaceOrigin,
	}
}

// Width returns the surface width in pixels.
func (e *Engine) Width() int { return e.width }

// Height returns the surface height in pixels.
func (e *Engine) Height() int { return e.height }

// SetTool selects the tool applied to the next gesture. A gesture
// already in progress keeps the tool it started with.
func (e *Engine) SetTool(t Tool) {
	e.tool = t
	Logger().Debug("easel: tool selected", "tool", t.String())
}

// ActiveTool returns the currently selected tool.
func (e *Engine) ActiveTool() Tool { return e.tool }

// SetColor sets the drawing color from a hex string ("#RGB", "#RGBA",
// "#RRGGBB", "#RRGGBBAA"). Unrecognized input falls back to opaque
// black. Brush gestures re-read the color on every move, so a change
// lands mid-stroke.
func (e *Engine) SetColor(hex string) {
	e.color = Hex(hex)
}

// Color returns the current drawing color.
func (e *Engine) Color() RGBA { return e.color }

// SetBrushSize sets the stroke width in pixels, clamped to
// [MinBrushSize, MaxBrushSize]. Brush gestures re-read the size on
// every move; the eraser square tracks it too.
func (e *Engine) SetBrushSize(n int) {
	if n < MinBrushSize {
		n = MinBrushSize
	}
	if n > MaxBrushSize {
		n = MaxBrushSize
	}
	e.brushSize = n
}

// BrushSize returns the current stroke width.
func (e *Engine) BrushSize() int { return e.brushSize }

// SetSurfaceOrigin updates the screen-space position of the surface's
// top-left corner used for pointer normalization.
func (e *Engine) SetSurfaceOrigin(x, y float64) {
	e.origin = Pt(x, y)
}

// Surface returns the visible pixmap, including any transient shape
// preview. Callers must treat it as read-only.
func (e *Engine) Surface() *Pixmap { return e.surface.pixmap }

// Revision returns a counter that increases whenever the visible
// surface changes. Chromes compare it between frames to skip redundant
// blits.
func (e *Engine) Revision() uint64 { return e.surface.revision }

// PointerDown begins a gesture with the current tool at the event
// position. Pressing again while a gesture is active re-anchors it.
// Mutating tools are ignored while the active layer is locked.
func (e *Engine) PointerDown(ev PointerEvent) {
	pt := normalizePointer(ev, phaseDown, e.origin, e.gesture.anchor, e.gesture.active)
	if e.gesture.active {
		Logger().Debug("easel: gesture re-anchored", "tool", e.gesture.tool.String())
	}

	l := e.layers.activeLayer()
	if l.locked && e.tool.mutates() {
		Logger().Debug("easel: layer locked, gesture ignored", "layer", l.name)
		return
	}

	e.gesture = gestureState{active: true, tool: e.tool, anchor: pt, last: pt}

	switch e.tool {
	case ToolEraser:
		e.eraseSquare(l, pt)
		e.surface.present(l.buffer)
	case ToolFill:
		e.floodFill(l, pt)
		e.surface.present(l.buffer)
	case ToolEyedropper:
		e.pickColor(l, pt)
	}
}

// PointerMove advances the active gesture. Without a preceding press it
// is a no-op, so stray move events can never mutate anything.
func (e *Engine) PointerMove(ev PointerEvent) {
	if !e.gesture.active {
		return
	}
	pt := normalizePointer(ev, phaseMove, e.origin, e.gesture.anchor, true)
	l := e.layers.activeLayer()

	switch e.gesture.tool {
	case ToolBrush:
		e.paintSegment(l, e.gesture.last, pt)
		e.surface.present(l.buffer)
	case ToolEraser:
		e.eraseSquare(l, pt)
		e.surface.present(l.buffer)
	case ToolRectangle, ToolCircle, ToolLine:
		path, paint := e.shape(e.gesture.tool, e.gesture.anchor, pt)
		e.surface.presentWithPreview(l.buffer, path, paint)
	case ToolEyedropper:
		e.pickColor(l, pt)
	}

	e.gesture.last = pt
}

// PointerUp completes the active gesture at the event position.
func (e *Engine) PointerUp(ev PointerEvent) {
	e.completeGesture(ev, phaseUp)
}

// PointerLeave is treated identically to PointerUp while a gesture is
// active: the gesture commits at the exit position rather than being
// discarded. Outside a gesture it is a no-op.
func (e *Engine) PointerLeave(ev PointerEvent) {
	e.completeGesture(ev, phaseLeave)
}

func (e *Engine) completeGesture(ev PointerEvent, phase pointerPhase) {
	if !e.gesture.active {
		return
	}
	pt := normalizePointer(ev, phase, e.origin, e.gesture.anchor, true)
	g := e.gesture
	e.gesture = gestureState{}
	l := e.layers.activeLayer()

	if g.tool.previews() {
		// Commit the shape at its release-time geometry. A release
		// without movement commits a zero-area outline: nothing is
		// painted, but the gesture still records.
		path, paint := e.shape(g.tool, g.anchor, pt)
		if err := e.renderer.Stroke(l.buffer, path, paint); err != nil {
			Logger().Warn("easel: shape commit failed", "err", err)
		}
		e.surface.present(l.buffer)
	}

	if g.tool.mutates() {
		e.commitLayer(l)
		Logger().Debug("easel: gesture committed", "tool", g.tool.String())
	}
}

// paintSegment strokes one brush segment into the layer buffer with
// the current color and width, permanently.
func (e *Engine) paintSegment(l *Layer, from, to Point) {
	path := NewPath()
	path.Line(from, to)
	paint := &Paint{
		Color:      e.color,
		LineWidth:  float64(e.brushSize),
		LineCap:    LineCapRound,
		LineJoin:   LineJoinRound,
		MiterLimit: 10,
	}
	if err := e.renderer.Stroke(l.buffer, path, paint); err != nil {
		Logger().Warn("easel: brush stroke failed", "err", err)
	}
}

// eraseSquare clears the axis-aligned square of side brushSize centered
// at the point. Squares are stamped per sample without interpolation;
// fast motion leaves gaps.
func (e *Engine) eraseSquare(l *Layer, pt Point) {
	s := e.brushSize
	left := int(math.Round(pt.X - float64(s)/2))
	top := int(math.Round(pt.Y - float64(s)/2))
	l.buffer.ClearRect(left, top, s, s)
}

// floodFill fills the 4-connected region under the point with the
// current color.
func (e *Engine) floodFill(l *Layer, pt Point) {
	raster.FloodFill(
		&pixmapAdapter{pixmap: l.buffer},
		int(math.Floor(pt.X)),
		int(math.Floor(pt.Y)),
		raster.RGBA{R: e.color.R, G: e.color.G, B: e.color.B, A: e.color.A},
	)
}

// pickColor reads the pixel under the point into the drawing color.
func (e *Engine) pickColor(l *Layer, pt Point) {
	e.color = l.buffer.GetPixel(int(math.Floor(pt.X)), int(math.Floor(pt.Y)))
}

// shape builds the outline path and paint for a preview or commit of a
// shape tool gesture anchored at anchor with the pointer at pt.
func (e *Engine) shape(tool Tool, anchor, pt Point) (*Path, *Paint) {
	path := NewPath()
	paint := &Paint{
		Color:      e.color,
		LineWidth:  float64(e.brushSize),
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10,
	}

	switch tool {
	case ToolRectangle:
		path.Rectangle(anchor.X, anchor.Y, pt.X-anchor.X, pt.Y-anchor.Y)
	case ToolCircle:
		path.Circle(anchor.X, anchor.Y, anchor.Distance(pt))
	case ToolLine:
		path.Line(anchor, pt)
		paint.LineCap = LineCapRound
		paint.LineJoin = LineJoinRound
	}
	return path, paint
}

// commitLayer encodes the layer buffer and records it as a history
// entry, clearing the layer's redo stack.
func (e *Engine) commitLayer(l *Layer) {
	var buf bytes.Buffer
	if err := l.buffer.EncodePNG(&buf); err != nil {
		Logger().Warn("easel: snapshot encode failed, history entry dropped", "err", err)
		return
	}
	l.history.record(buf.Bytes())
}

// Undo restores the active layer to its state before the most recent
// committed gesture. It reports whether a restore happened; an empty
// undo stack is a silent no-op. A snapshot that fails to decode drops
// the restore and leaves both the buffer and the stacks unchanged.
func (e *Engine) Undo() bool {
	l := e.layers.activeLayer()
	target, ok := l.history.undoTarget()
	if !ok {
		return false
	}
	if !e.restoreBuffer(l, target, "undo") {
		return false
	}
	l.history.applyUndo()
	return true
}

// Redo reapplies the most recently undone gesture on the active layer.
// It reports whether a restore happened; an empty redo stack is a
// silent no-op.
func (e *Engine) Redo() bool {
	l := e.layers.activeLayer()
	target, ok := l.history.redoTarget()
	if !ok {
		return false
	}
	if !e.restoreBuffer(l, target, "redo") {
		return false
	}
	l.history.applyRedo()
	return true
}

// restoreBuffer applies a snapshot to the layer buffer and re-presents
// the surface. A nil snapshot restores the empty initial buffer.
// Restores are decoded synchronously, so stacked undo/redo calls apply
// strictly in order.
func (e *Engine) restoreBuffer(l *Layer, snapshot []byte, op string) bool {
	if snapshot == nil {
		l.buffer.Clear(Transparent)
		e.surface.present(l.buffer)
		return true
	}
	pm, err := DecodePNG(bytes.NewReader(snapshot))
	if err != nil {
		Logger().Warn("easel: dropping restore", "op", op, "err", err)
		return false
	}
	if err := l.buffer.CopyFrom(pm); err != nil {
		Logger().Warn("easel: dropping restore", "op", op, "err", err)
		return false
	}
	e.surface.present(l.buffer)
	return true
}

// ClearActiveLayer resets the active layer to fully transparent and
// clears the visible surface. The clear is recorded in history like
// any other mutation, so it can be undone.
func (e *Engine) ClearActiveLayer() {
	l := e.layers.activeLayer()
	if l.locked {
		Logger().Debug("easel: layer locked, clear ignored", "layer", l.name)
		return
	}
	l.buffer.Clear(Transparent)
	e.surface.present(l.buffer)
	e.commitLayer(l)
	Logger().Debug("easel: layer cleared", "layer", l.name)
}

// AddLayer appends a new empty layer and returns its index. The active
// index does not change.
func (e *Engine) AddLayer() int {
	l := e.layers.add(e.maxHistory)
	Logger().Debug("easel: layer added", "layer", l.name)
	return e.layers.count() - 1
}

// SelectLayer makes the layer at index the editing target and presents
// its buffer on the visible surface, replacing whatever was shown. A
// gesture still in progress is completed first so its commit cannot
// land on the wrong layer.
func (e *Engine) SelectLayer(index int) error {
	if e.gesture.active {
		// Synthesize a release at the last pointer position so the
		// in-flight gesture commits with the geometry the user saw.
		e.completeGesture(TouchEndEvent(e.gesture.last.Add(e.origin)), phaseUp)
	}
	if err := e.layers.selectLayer(index); err != nil {
		return err
	}
	e.surface.present(e.layers.activeLayer().buffer)
	Logger().Debug("easel: layer selected", "index", index)
	return nil
}

// ActiveLayer returns the index of the layer being edited.
func (e *Engine) ActiveLayer() int { return e.layers.active }

// LayerCount returns the number of layers.
func (e *Engine) LayerCount() int { return e.layers.count() }

// Layers returns metadata snapshots for every layer in order.
func (e *Engine) Layers() []LayerInfo { return e.layers.infos() }

// SetLayerVisible toggles a layer's inclusion in composite export.
// The editing view shows only the active layer and is unaffected.
func (e *Engine) SetLayerVisible(index int, visible bool) error {
	l, err := e.layers.layer(index)
	if err != nil {
		return err
	}
	l.visible = visible
	return nil
}

// SetLayerOpacity sets a layer's composite opacity, clamped to [0, 1].
func (e *Engine) SetLayerOpacity(index int, opacity float64) error {
	l, err := e.layers.layer(index)
	if err != nil {
		return err
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	l.opacity = opacity
	return nil
}

// SetLayerLocked marks a layer read-only: mutating gestures and clears
// on it are ignored until unlocked.
func (e *Engine) SetLayerLocked(index int, locked bool) error {
	l, err := e.layers.layer(index)
	if err != nil {
		return err
	}
	l.locked = locked
	return nil
}

// ExportPNG encodes the current visible surface content, including any
// in-progress preview, as a PNG. Persisting the bytes is the chrome's
// job.
func (e *Engine) ExportPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.surface.pixmap.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HistoryDepth returns the undo and redo stack sizes of the active
// layer.
func (e *Engine) HistoryDepth() (undo, redo int) {
	return e.layers.activeLayer().history.depth()
}
