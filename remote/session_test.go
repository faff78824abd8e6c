package remote

import (
	"testing"

	"github.com/easelkit/easel"
)

func apply(t *testing.T, s *session, cmd Command) Ack {
	t.Helper()
	ack, _, _ := s.apply(cmd)
	if !ack.OK {
		t.Fatalf("%s failed: %s", cmd.Method, ack.Error)
	}
	return ack
}

// TestSessionDrawsStroke drives a brush gesture through the command
// surface and checks pixels landed.
func TestSessionDrawsStroke(t *testing.T) {
	s := newSession(64, 64)
	apply(t, s, Command{Method: MethodSetTool, Tool: "brush"})
	apply(t, s, Command{Method: MethodSetColor, Color: "#ff0000"})
	apply(t, s, Command{Method: MethodSetBrushSize, Size: 5})

	_, frame, _ := s.apply(Command{Method: MethodPointerDown, X: 10, Y: 10})
	if !frame {
		t.Error("pointerDown did not request a frame")
	}
	s.apply(Command{Method: MethodPointerMove, X: 50, Y: 10})
	ack, _, _ := s.apply(Command{Method: MethodPointerUp, X: 50, Y: 10})

	if ack.Undo != 1 || ack.Redo != 0 {
		t.Errorf("history in ack: got (%d, %d), want (1, 0)", ack.Undo, ack.Redo)
	}
	if s.engine.Surface().GetPixel(30, 10).A == 0 {
		t.Error("stroke not visible on the session surface")
	}
}

// TestSessionUndoRedo reports restore success through OK.
func TestSessionUndoRedo(t *testing.T) {
	s := newSession(32, 32)
	s.apply(Command{Method: MethodPointerDown, X: 5, Y: 5})
	s.apply(Command{Method: MethodPointerUp, X: 25, Y: 25})

	ack, frame, _ := s.apply(Command{Method: MethodUndo})
	if !ack.OK || !frame {
		t.Fatalf("undo: ok=%v frame=%v, want both true", ack.OK, frame)
	}
	if ack.Undo != 0 || ack.Redo != 1 {
		t.Errorf("history after undo: got (%d, %d), want (0, 1)", ack.Undo, ack.Redo)
	}

	ack, _, _ = s.apply(Command{Method: MethodUndo})
	if ack.OK {
		t.Error("undo on empty stack reported OK")
	}

	ack, _, _ = s.apply(Command{Method: MethodRedo})
	if !ack.OK {
		t.Error("redo failed with one queued entry")
	}
}

// TestSessionLayers exercises layer commands and the metadata echo.
func TestSessionLayers(t *testing.T) {
	s := newSession(32, 32)

	ack := apply(t, s, Command{Method: MethodAddLayer})
	if len(ack.Layers) != 2 {
		t.Fatalf("layer info count: got %d, want 2", len(ack.Layers))
	}
	if !ack.Layers[0].Active || ack.Layers[1].Active {
		t.Error("active flag should stay on layer 0 after addLayer")
	}

	ack = apply(t, s, Command{Method: MethodSelectLayer, Index: 1})
	if !ack.Layers[1].Active {
		t.Error("selectLayer did not move the active flag")
	}

	bad, _, _ := s.apply(Command{Method: MethodSelectLayer, Index: 7})
	if bad.OK {
		t.Error("selectLayer accepted an out-of-range index")
	}

	visible := false
	ack = apply(t, s, Command{Method: MethodSetLayerVisible, Index: 1, Visible: &visible})
	if ack.Layers[1].Visible {
		t.Error("visibility change not reflected in ack")
	}

	missing, _, _ := s.apply(Command{Method: MethodSetLayerVisible, Index: 1})
	if missing.OK {
		t.Error("setLayerVisible accepted a command without the visible field")
	}
}

// TestSessionExport returns PNG bytes out of band.
func TestSessionExport(t *testing.T) {
	s := newSession(16, 16)
	s.engine.SetColor("#000000")
	s.apply(Command{Method: MethodPointerDown, X: 2, Y: 2})
	s.apply(Command{Method: MethodPointerUp, X: 14, Y: 14})

	ack, _, export := s.apply(Command{Method: MethodExport})
	if !ack.OK {
		t.Fatalf("export failed: %s", ack.Error)
	}
	if len(export) == 0 {
		t.Fatal("export produced no bytes")
	}
	// PNG signature
	if string(export[:4]) != "\x89PNG" {
		t.Errorf("export does not look like PNG: % x", export[:4])
	}

	ack, _, export = s.apply(Command{Method: MethodExportComposite})
	if !ack.OK || len(export) == 0 {
		t.Fatal("composite export failed")
	}
}

// TestSessionRejectsUnknown covers bad methods and tools.
func TestSessionRejectsUnknown(t *testing.T) {
	s := newSession(16, 16)

	ack, frame, _ := s.apply(Command{Method: "teleport"})
	if ack.OK || frame {
		t.Error("unknown method accepted")
	}

	ack, _, _ = s.apply(Command{Method: MethodSetTool, Tool: "chainsaw"})
	if ack.OK {
		t.Error("unknown tool accepted")
	}
	if s.engine.ActiveTool() != easel.ToolBrush {
		t.Error("failed setTool changed the active tool")
	}
}
