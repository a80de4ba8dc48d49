// Package dropzone classifies a pointer position over a drop target into
// a placement intent. It is pure geometry: the caller supplies the
// pointer sample and the target's rectangle, both in the same coordinate
// space, and gets back a discrete intent. No UI types are involved.
package dropzone

// Intent is the placement directive derived from where the pointer sits
// relative to the target.
type Intent string

const (
	IntentNone   Intent = "none" // not over the target, or blocked
	IntentBefore Intent = "before"
	IntentAfter  Intent = "after"
	IntentLeft   Intent = "left"
	IntentRight  Intent = "right"
	IntentInside Intent = "inside"
)

// Valid reports whether the intent is one of the known directives.
func (i Intent) Valid() bool {
	switch i {
	case IntentNone, IntentBefore, IntentAfter, IntentLeft, IntentRight, IntentInside:
		return true
	}
	return false
}

// Zone thresholds as fractions of the target rectangle. Horizontal edges
// are 20% wide, vertical edges 30% tall; horizontal wins corner ties.
const (
	HorizontalEdge = 0.20
	VerticalEdge   = 0.30
)

// Pointer is a single pointer sample.
type Pointer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the target element's rectangle in the same coordinate space as
// the pointer.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Classify maps a pointer sample over a target into a placement intent.
//
// The pointer is normalized into target-relative fractions; samples
// outside the rectangle (or over a degenerate rectangle) classify as
// IntentNone. The 20% left/right edges take priority, then the 30%
// top/bottom edges. The remaining center region resolves to IntentAfter
// as an append-style default, except over a row container, where the
// center is blocked so the user has to re-aim at an edge.
func Classify(p Pointer, r Rect, targetIsRow bool) Intent {
	if r.W <= 0 || r.H <= 0 {
		return IntentNone
	}
	xPct := (p.X - r.X) / r.W
	yPct := (p.Y - r.Y) / r.H
	if xPct < 0 || xPct > 1 || yPct < 0 || yPct > 1 {
		return IntentNone
	}
	switch {
	case xPct < HorizontalEdge:
		return IntentLeft
	case xPct > 1-HorizontalEdge:
		return IntentRight
	case yPct < VerticalEdge:
		return IntentBefore
	case yPct > 1-VerticalEdge:
		return IntentAfter
	}
	if targetIsRow {
		return IntentNone
	}
	return IntentAfter
}
