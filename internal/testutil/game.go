package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/notation"
)

// MustLayout parses a layout string and returns its board and side to move.
// It calls t.Fatal if the layout is invalid.
func MustLayout(t testing.TB, layout string) (*checkers.Board, checkers.Side) {
	t.Helper()
	board, side, err := notation.ParseLayout(layout)
	if err != nil {
		t.Fatalf("invalid test layout %q: %v", layout, err)
	}
	return board, side
}

// BoardWith returns a board holding exactly the given placements.
// It calls t.Fatal if any position is off the board.
func BoardWith(t testing.TB, placements ...checkers.Placement) *checkers.Board {
	t.Helper()
	b := checkers.NewBoard()
	for _, p := range placements {
		if err := b.Set(p.Pos, p.Piece); err != nil {
			t.Fatalf("placing %v on %s: %v", p.Piece, p.Pos, err)
		}
	}
	return b
}

// At is shorthand for a Placement of piece on (row, col).
func At(row, col int, piece checkers.Piece) checkers.Placement {
	return checkers.Placement{Pos: checkers.Pos(row, col), Piece: piece}
}

// MustPath parses move text into elementary hops.
// It calls t.Fatal if the text is malformed.
func MustPath(t testing.TB, text string) []checkers.Move {
	t.Helper()
	path, err := notation.ParseMoveText(text)
	if err != nil {
		t.Fatalf("invalid test move %q: %v", text, err)
	}
	return notation.Expand(path)
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders v in full, unexported fields included, for failure messages.
func Dump(v interface{}) string {
	return dumpConfig.Sdump(v)
}
