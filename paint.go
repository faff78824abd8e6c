package easel

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing.
// Strokes are always solid-color in this engine.
type Paint struct {
	// Color is the stroke color.
	Color RGBA

	// LineWidth is the width of strokes
	LineWidth float64

	// LineCap is the shape of line endpoints
	LineCap LineCap

	// LineJoin is the shape of line joins
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins
	MiterLimit float64

	// FillRule is the fill rule for paths
	FillRule FillRule
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Color:      Black,
		LineWidth:  1.0,
		LineCap:    LineCapRound,
		LineJoin:   LineJoinRound,
		MiterLimit: 10.0,
		FillRule:   FillRuleNonZero,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	q := *p
	return &q
}
