package easel

import "fmt"

// Tool selects how pointer gestures are interpreted.
type Tool int

const (
	// ToolBrush paints a freehand polyline, permanently, move by move.
	ToolBrush Tool = iota
	// ToolRectangle previews an axis-aligned rectangle outline during
	// the drag and commits it on release.
	ToolRectangle
	// ToolCircle previews a circle centered on the press point and
	// commits its outline on release.
	ToolCircle
	// ToolEraser clears a square of the current brush size at every
	// sample point, without interpolation.
	ToolEraser
	// ToolLine previews a straight segment and commits it on release.
	ToolLine
	// ToolFill flood-fills the region under the press point.
	ToolFill
	// ToolEyedropper picks the color under the pointer into the
	// drawing configuration. It never changes pixels.
	ToolEyedropper
)

var toolNames = map[Tool]string{
	ToolBrush:      "brush",
	ToolRectangle:  "rectangle",
	ToolCircle:     "circle",
	ToolEraser:     "eraser",
	ToolLine:       "line",
	ToolFill:       "fill",
	ToolEyedropper: "eyedropper",
}

// String returns the tool's wire name.
func (t Tool) String() string {
	if s, ok := toolNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool maps a wire name back to a Tool.
func ParseTool(s string) (Tool, error) {
	for t, name := range toolNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("easel: unknown tool %q", s)
}

// previews reports whether the tool draws a transient shape during the
// drag instead of painting immediately.
func (t Tool) previews() bool {
	switch t {
	case ToolRectangle, ToolCircle, ToolLine:
		return true
	}
	return false
}

// mutates reports whether a gesture with this tool changes layer
// pixels and therefore commits a history entry on completion.
func (t Tool) mutates() bool {
	return t != ToolEyedropper
}
