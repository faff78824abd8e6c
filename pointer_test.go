package easel

import "testing"

// TestNormalizePointer covers the coordinate policy for each source and
// phase, including the anchor fallback.
func TestNormalizePointer(t *testing.T) {
	origin := Pt(100, 50)
	anchor := Pt(7, 8)

	tests := []struct {
		name   string
		ev     PointerEvent
		phase  pointerPhase
		active bool
		want   Point
	}{
		{
			name:  "mouse down",
			ev:    MouseEvent(110, 70),
			phase: phaseDown,
			want:  Pt(10, 20),
		},
		{
			name:  "touch move uses first active touch",
			ev:    TouchEvent(Pt(130, 90), Pt(400, 400)),
			phase: phaseMove,
			want:  Pt(30, 40),
		},
		{
			name:  "touch end uses first changed touch",
			ev:    TouchEndEvent(Pt(120, 60)),
			phase: phaseUp,
			want:  Pt(20, 10),
		},
		{
			name: "touch end ignores stale active list",
			ev: PointerEvent{
				Source:  SourceTouch,
				Touches: []Point{Pt(999, 999)},
				Changed: []Point{Pt(150, 150)},
			},
			phase: phaseLeave,
			want:  Pt(50, 100),
		},
		{
			name:   "no coordinates falls back to anchor mid-gesture",
			ev:     TouchEndEvent(),
			phase:  phaseUp,
			active: true,
			want:   anchor,
		},
		{
			name:  "no coordinates and no gesture is the origin",
			ev:    TouchEvent(),
			phase: phaseMove,
			want:  Pt(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizePointer(tt.ev, tt.phase, origin, anchor, tt.active)
			if got != tt.want {
				t.Errorf("normalizePointer = %v, want %v", got, tt.want)
			}
		})
	}
}
