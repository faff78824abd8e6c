// Command easel is a desktop chrome for the drawing engine: an
// Ebitengine window that forwards mouse and touch input into the engine
// and blits the engine surface every frame.
//
// Keys: B brush, R rectangle, C circle, E eraser, L line, F fill,
// I eyedropper, 1-6 palette colors, -/= brush size, N add layer,
// Tab cycle layers, X clear layer, Ctrl+Z undo, Ctrl+Y redo,
// Ctrl+S save PNG.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"

	"github.com/easelkit/easel"
)

var palette = []string{
	"#000000", "#e53935", "#43a047", "#1e88e5", "#fdd835", "#ffffff",
}

type app struct {
	engine *easel.Engine
	canvas *ebiten.Image
	pix    []byte

	width     int
	height    int
	revision  uint64
	pressed   bool
	touchID   ebiten.TouchID
	touching  bool
	touchBuf  []ebiten.TouchID
	brushSize int
}

func newApp(width, height int) *app {
	return &app{
		engine:    easel.NewEngine(width, height),
		canvas:    ebiten.NewImage(width, height),
		pix:       make([]byte, width*height*4),
		width:     width,
		height:    height,
		brushSize: 5,
	}
}

func (a *app) Update() error {
	a.handleKeys()
	a.handleMouse()
	a.handleTouch()
	return nil
}

func (a *app) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		a.engine.SetTool(easel.ToolBrush)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.engine.SetTool(easel.ToolRectangle)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		a.engine.SetTool(easel.ToolCircle)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		a.engine.SetTool(easel.ToolEraser)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		a.engine.SetTool(easel.ToolLine)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		a.engine.SetTool(easel.ToolFill)
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		a.engine.SetTool(easel.ToolEyedropper)
	}

	for i, key := range []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
		ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	} {
		if inpututil.IsKeyJustPressed(key) {
			a.engine.SetColor(palette[i])
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.brushSize--
		a.engine.SetBrushSize(a.brushSize)
		a.brushSize = a.engine.BrushSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.brushSize++
		a.engine.SetBrushSize(a.brushSize)
		a.brushSize = a.engine.BrushSize()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.engine.AddLayer()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		next := (a.engine.ActiveLayer() + 1) % a.engine.LayerCount()
		_ = a.engine.SelectLayer(next)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		a.engine.ClearActiveLayer()
	}

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		a.engine.Undo()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY) {
		a.engine.Redo()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.save()
	}
}

func (a *app) handleMouse() {
	if a.touching {
		return
	}
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	inside := x >= 0 && x < a.width && y >= 0 && y < a.height

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside:
		a.pressed = true
		a.engine.PointerDown(easel.MouseEvent(fx, fy))
	case a.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.pressed = false
		a.engine.PointerUp(easel.MouseEvent(fx, fy))
	case a.pressed && !inside:
		// Gestures commit, never discard, when the pointer exits the
		// surface while pressed.
		a.pressed = false
		a.engine.PointerLeave(easel.MouseEvent(fx, fy))
	case a.pressed:
		a.engine.PointerMove(easel.MouseEvent(fx, fy))
	}
}

func (a *app) handleTouch() {
	a.touchBuf = a.touchBuf[:0]
	a.touchBuf = inpututil.AppendJustPressedTouchIDs(a.touchBuf)
	if !a.touching && len(a.touchBuf) > 0 {
		a.touchID = a.touchBuf[0]
		a.touching = true
		x, y := ebiten.TouchPosition(a.touchID)
		a.engine.PointerDown(easel.TouchEvent(easel.Pt(float64(x), float64(y))))
		return
	}
	if !a.touching {
		return
	}

	if inpututil.IsTouchJustReleased(a.touchID) {
		x, y := inpututil.TouchPositionInPreviousTick(a.touchID)
		a.touching = false
		a.engine.PointerUp(easel.TouchEndEvent(easel.Pt(float64(x), float64(y))))
		return
	}

	x, y := ebiten.TouchPosition(a.touchID)
	a.engine.PointerMove(easel.TouchEvent(easel.Pt(float64(x), float64(y))))
}

func (a *app) save() {
	path, err := dialog.File().Filter("PNG image", "png").Title("Save drawing").Save()
	if err != nil {
		return // cancelled
	}
	data, err := a.engine.ExportPNG()
	if err != nil {
		slog.Error("export failed", "err", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		slog.Error("save failed", "path", path, "err", err)
	}
}

func (a *app) Draw(screen *ebiten.Image) {
	if rev := a.engine.Revision(); rev != a.revision {
		a.revision = rev
		a.blit()
	}
	screen.Fill(easel.White.Color())
	screen.DrawImage(a.canvas, nil)
}

// blit copies the engine surface into the GPU-side canvas image.
// WritePixels expects premultiplied alpha; the surface is straight.
func (a *app) blit() {
	src := a.engine.Surface().Data()
	for i := 0; i < len(src); i += 4 {
		alpha := uint32(src[i+3])
		a.pix[i+0] = uint8(uint32(src[i+0]) * alpha / 255)
		a.pix[i+1] = uint8(uint32(src[i+1]) * alpha / 255)
		a.pix[i+2] = uint8(uint32(src[i+2]) * alpha / 255)
		a.pix[i+3] = src[i+3]
	}
	a.canvas.WritePixels(a.pix)
}

func (a *app) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

func main() {
	width := flag.Int("width", 800, "canvas width in pixels")
	height := flag.Int("height", 600, "canvas height in pixels")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("easel")
	if err := ebiten.RunGame(newApp(*width, *height)); err != nil {
		slog.Error("easel exited", "err", err)
		os.Exit(1)
	}
}
