package board

// Span is the vertical extent of a rendered card, in whatever unit the
// presentation measures pointer positions (pixels, terminal rows).
type Span struct {
	Top    float64
	Height float64
}

// Midpoint returns the vertical center of the span
func (s Span) Midpoint() float64 {
	return s.Top + s.Height/2
}

// DropIndex computes where a dragged card lands in a column's card list.
// spans are the non-dragged cards of the column, in display order. The result
// is the index of the first card whose midpoint lies below pointerY, or
// len(spans) when the pointer is past every midpoint (insert at the end).
func DropIndex(pointerY float64, spans []Span) int {
	for i, s := range spans {
		if pointerY < s.Midpoint() {
			return i
		}
	}
	return len(spans)
}
