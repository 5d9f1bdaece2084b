package checkers

import "strings"

// Move is one elementary move: a diagonal step, or a single jump that
// removes the piece on the midpoint. A chain of jumps is a sequence of
// Moves submitted one at a time.
type Move struct {
	From     Position
	To       Position
	Captured []Position
}

// Step returns a non-capturing move.
func Step(from, to Position) Move {
	return Move{From: from, To: to}
}

// Jump returns a capture move over the midpoint of from and to.
func Jump(from, to Position) Move {
	mid := Pos((from.Row+to.Row)/2, (from.Col+to.Col)/2)
	return Move{From: from, To: to, Captured: []Position{mid}}
}

// IsCapture reports whether the move removes at least one piece.
func (m Move) IsCapture() bool {
	return len(m.Captured) > 0
}

// Equal reports whether two moves have the same source, destination and
// captured positions, in order.
func (m Move) Equal(other Move) bool {
	if m.From != other.From || m.To != other.To || len(m.Captured) != len(other.Captured) {
		return false
	}
	for i := range m.Captured {
		if m.Captured[i] != other.Captured[i] {
			return false
		}
	}
	return true
}

// String returns "2,3-3,4" for a step and "2,3x4,5" for a capture.
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(sep)
	sb.WriteString(m.To.String())
	return sb.String()
}
