package easel

import "testing"

// stubRenderer counts calls so injection can be observed.
type stubRenderer struct {
	fills   int
	strokes int
}

func (r *stubRenderer) Fill(*Pixmap, *Path, *Paint) error {
	r.fills++
	return nil
}

func (r *stubRenderer) Stroke(*Pixmap, *Path, *Paint) error {
	r.strokes++
	return nil
}

// TestWithRenderer verifies the injected renderer receives the brush
// work.
func TestWithRenderer(t *testing.T) {
	stub := &stubRenderer{}
	e := NewEngine(32, 32, WithRenderer(stub))

	drag(e, Pt(5, 5), Pt(25, 25))
	if stub.strokes == 0 {
		t.Fatal("injected renderer never saw a stroke")
	}
}

// TestWithMaxHistory bounds the undo depth and drops the oldest entry.
func TestWithMaxHistory(t *testing.T) {
	e := NewEngine(32, 32, WithMaxHistory(2))
	for i := 0; i < 4; i++ {
		y := float64(4 + i*6)
		drag(e, Pt(4, y), Pt(28, y))
	}

	if undo, _ := e.HistoryDepth(); undo != 2 {
		t.Fatalf("capped undo depth: got %d, want 2", undo)
	}
	if !e.Undo() {
		t.Fatal("first undo failed")
	}
	if !e.Undo() {
		t.Fatal("second undo failed")
	}
	if e.Undo() {
		t.Fatal("third undo succeeded past the cap")
	}
}

// TestWithSurfaceOrigin translates pointer coordinates.
func TestWithSurfaceOrigin(t *testing.T) {
	e := NewEngine(32, 32, WithSurfaceOrigin(100, 200))
	e.SetTool(ToolEyedropper)
	e.layers.activeLayer().buffer.SetPixel(10, 10, Red)

	e.PointerDown(MouseEvent(110, 210))
	e.PointerUp(MouseEvent(110, 210))

	if !sameColor(e.Color(), Red) {
		t.Fatalf("origin translation missed: picked %v, want red", e.Color())
	}
}

// TestSetSurfaceOrigin re-targets translation after creation.
func TestSetSurfaceOrigin(t *testing.T) {
	e := NewEngine(32, 32)
	e.SetSurfaceOrigin(50, 50)
	drag(e, Pt(55, 55), Pt(75, 55))

	if e.layers.activeLayer().buffer.GetPixel(15, 5).A == 0 {
		t.Fatal("stroke did not land at origin-translated coordinates")
	}
}
