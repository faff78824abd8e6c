// Package easel provides an interactive raster drawing engine for Go.
//
// # Overview
//
// easel is the core of a layered paint application: pointer gestures go
// in, pixels and undo history come out. The surrounding UI (window,
// buttons, panels) is a thin chrome that forwards input events and
// blits the engine surface; everything with real behavior lives here.
//
// # Quick Start
//
//	import "github.com/easelkit/easel"
//
//	e := easel.NewEngine(800, 600)
//
//	// Draw a brush stroke
//	e.SetColor("#1e88e5")
//	e.SetBrushSize(5)
//	e.PointerDown(easel.MouseEvent(10, 10))
//	e.PointerMove(easel.MouseEvent(50, 10))
//	e.PointerUp(easel.MouseEvent(50, 10))
//
//	// Undo it, redo it, save it
//	e.Undo()
//	e.Redo()
//	data, _ := e.ExportPNG()
//
// # Tools
//
// Brush and eraser apply permanently on every pointer move. Rectangle,
// circle, and line show a live preview during the drag and commit on
// release (or on pointer leave -- gestures always commit, never
// silently discard). Fill and eyedropper apply at the press point.
//
// # Layers and History
//
// Layers are append-only; exactly one is active and only the active
// layer is mutated. Each layer owns its own undo/redo stacks of
// losslessly encoded snapshots, recorded at gesture completion, so
// switching layers never restores one layer's pixels onto another.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, Pixmap, Path, Paint, Point, PointerEvent
//   - Internal: raster (scanline fill, flood fill), stroke (outline expansion)
//   - Chromes: cmd/easel (desktop), cmd/easeld + remote (WebSocket)
//
// # Coordinate System
//
// Origin (0,0) at the surface's top-left; X increases right, Y
// increases down. Pointer events arrive in screen space and are
// translated by the configured surface origin.
//
// # Concurrency
//
// An Engine must be driven from a single goroutine. All commands apply
// synchronously, so effects are fully ordered by call order.
package easel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
