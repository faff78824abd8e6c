package remote

import (
	"fmt"

	"github.com/easelkit/easel"
)

// session owns one engine and applies commands to it. All methods run
// on the connection's session goroutine, never concurrently.
type session struct {
	engine *easel.Engine
}

func newSession(width, height int, opts ...easel.EngineOption) *session {
	return &session{engine: easel.NewEngine(width, height, opts...)}
}

// apply executes one command and builds its acknowledgement. frame
// reports whether the visible surface may have changed and a new frame
// should be pushed; export carries PNG bytes for export commands.
func (s *session) apply(cmd Command) (ack Ack, frame bool, export []byte) {
	ack = Ack{Seq: cmd.Seq, OK: true}
	e := s.engine

	switch cmd.Method {
	case MethodSetTool:
		t, err := easel.ParseTool(cmd.Tool)
		if err != nil {
			return fail(cmd, err), false, nil
		}
		e.SetTool(t)

	case MethodSetColor:
		e.SetColor(cmd.Color)

	case MethodSetBrushSize:
		e.SetBrushSize(cmd.Size)

	case MethodPointerDown:
		e.PointerDown(easel.MouseEvent(cmd.X, cmd.Y))
		frame = true

	case MethodPointerMove:
		e.PointerMove(easel.MouseEvent(cmd.X, cmd.Y))
		frame = true

	case MethodPointerUp:
		e.PointerUp(easel.MouseEvent(cmd.X, cmd.Y))
		frame = true
		ack.Undo, ack.Redo = e.HistoryDepth()

	case MethodPointerLeave:
		e.PointerLeave(easel.MouseEvent(cmd.X, cmd.Y))
		frame = true
		ack.Undo, ack.Redo = e.HistoryDepth()

	case MethodUndo:
		ack.OK = e.Undo()
		frame = ack.OK
		ack.Undo, ack.Redo = e.HistoryDepth()

	case MethodRedo:
		ack.OK = e.Redo()
		frame = ack.OK
		ack.Undo, ack.Redo = e.HistoryDepth()

	case MethodClear:
		e.ClearActiveLayer()
		frame = true
		ack.Undo, ack.Redo = e.HistoryDepth()

	case MethodAddLayer:
		e.AddLayer()
		ack.Layers = wireLayers(e)

	case MethodSelectLayer:
		if err := e.SelectLayer(cmd.Index); err != nil {
			return fail(cmd, err), false, nil
		}
		frame = true
		ack.Layers = wireLayers(e)

	case MethodSetLayerVisible:
		if cmd.Visible == nil {
			return fail(cmd, fmt.Errorf("remote: %s requires visible", cmd.Method)), false, nil
		}
		if err := e.SetLayerVisible(cmd.Index, *cmd.Visible); err != nil {
			return fail(cmd, err), false, nil
		}
		ack.Layers = wireLayers(e)

	case MethodSetLayerOpacity:
		if cmd.Opacity == nil {
			return fail(cmd, fmt.Errorf("remote: %s requires opacity", cmd.Method)), false, nil
		}
		if err := e.SetLayerOpacity(cmd.Index, *cmd.Opacity); err != nil {
			return fail(cmd, err), false, nil
		}
		ack.Layers = wireLayers(e)

	case MethodSetLayerLocked:
		if cmd.Locked == nil {
			return fail(cmd, fmt.Errorf("remote: %s requires locked", cmd.Method)), false, nil
		}
		if err := e.SetLayerLocked(cmd.Index, *cmd.Locked); err != nil {
			return fail(cmd, err), false, nil
		}
		ack.Layers = wireLayers(e)

	case MethodExport:
		data, err := e.ExportPNG()
		if err != nil {
			return fail(cmd, err), false, nil
		}
		export = data

	case MethodExportComposite:
		data, err := e.ExportCompositePNG()
		if err != nil {
			return fail(cmd, err), false, nil
		}
		export = data

	default:
		return fail(cmd, fmt.Errorf("remote: unknown method %q", cmd.Method)), false, nil
	}

	return ack, frame, export
}

func fail(cmd Command, err error) Ack {
	return Ack{Seq: cmd.Seq, OK: false, Error: err.Error()}
}

func wireLayers(e *easel.Engine) []LayerInfo {
	infos := e.Layers()
	out := make([]LayerInfo, len(infos))
	for i, l := range infos {
		out[i] = LayerInfo{
			ID:      l.ID,
			Name:    l.Name,
			Visible: l.Visible,
			Opacity: l.Opacity,
			Locked:  l.Locked,
			Active:  l.Active,
		}
	}
	return out
}
