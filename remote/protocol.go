// Package remote serves a drawing engine over a WebSocket connection.
//
// Each connection owns one private Engine and one session goroutine;
// commands arrive as JSON text messages and execute in arrival order on
// that goroutine, so the engine's single-owner contract holds across
// the socket. Whenever the visible surface changes, the session pushes
// the surface back to the client as a binary PNG frame. State dies with
// the connection.
package remote

import (
	"encoding/json"
	"fmt"
)

// Command is one client request. Method selects the engine operation;
// the remaining fields carry that method's arguments and are ignored by
// the others.
type Command struct {
	// Seq is echoed back in the acknowledgement so clients can match
	// replies to requests. Optional.
	Seq uint64 `json:"seq,omitempty"`

	Method string `json:"method"`

	Tool  string  `json:"tool,omitempty"`  // setTool
	Color string  `json:"color,omitempty"` // setColor
	Size  int     `json:"size,omitempty"`  // setBrushSize
	X     float64 `json:"x,omitempty"`     // pointer methods
	Y     float64 `json:"y,omitempty"`     // pointer methods
	Index int     `json:"index,omitempty"` // selectLayer

	Visible *bool    `json:"visible,omitempty"` // setLayerVisible
	Opacity *float64 `json:"opacity,omitempty"` // setLayerOpacity
	Locked  *bool    `json:"locked,omitempty"`  // setLayerLocked
}

// Methods accepted by a session. Pointer methods carry x/y; the rest
// map one-to-one onto the engine command surface.
const (
	MethodSetTool         = "setTool"
	MethodSetColor        = "setColor"
	MethodSetBrushSize    = "setBrushSize"
	MethodPointerDown     = "pointerDown"
	MethodPointerMove     = "pointerMove"
	MethodPointerUp       = "pointerUp"
	MethodPointerLeave    = "pointerLeave"
	MethodUndo            = "undo"
	MethodRedo            = "redo"
	MethodClear           = "clear"
	MethodAddLayer        = "addLayer"
	MethodSelectLayer     = "selectLayer"
	MethodSetLayerVisible = "setLayerVisible"
	MethodSetLayerOpacity = "setLayerOpacity"
	MethodSetLayerLocked  = "setLayerLocked"
	MethodExport          = "export"
	MethodExportComposite = "exportComposite"
)

// Ack is the JSON text reply to one command. Frames (the surface as
// PNG) travel separately as binary messages; Ack only reports command
// disposition and lightweight state.
type Ack struct {
	Seq   uint64 `json:"seq,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	// Layers is included after layer-mutating commands.
	Layers []LayerInfo `json:"layers,omitempty"`

	// Undo and Redo report the active layer's history depth after
	// undo/redo/clear and gesture completion.
	Undo int `json:"undo,omitempty"`
	Redo int `json:"redo,omitempty"`
}

// LayerInfo mirrors easel.LayerInfo for the wire.
type LayerInfo struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Visible bool    `json:"visible"`
	Opacity float64 `json:"opacity"`
	Locked  bool    `json:"locked"`
	Active  bool    `json:"active"`
}

// DecodeCommand parses one text message into a Command.
func DecodeCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("remote: decode command: %w", err)
	}
	if cmd.Method == "" {
		return Command{}, fmt.Errorf("remote: command missing method")
	}
	return cmd, nil
}
