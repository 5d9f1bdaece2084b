// Package checkers provides the core draughts types: sides, ranks, positions,
// pieces and the board that holds them.
package checkers

import "fmt"

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// HomeRowCount is the number of rows each side fills at the start.
const HomeRowCount = 3

// Side identifies one of the two players.
type Side int

const (
	Red Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "Red"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Black {
		return Red
	}
	return Black
}

// Forward returns +1 for Red and -1 for Black: the row delta of a man's
// advance. Both simple steps and jumps use it.
func (s Side) Forward() int {
	if s == Black {
		return -1
	}
	return 1
}

// PromotionRow returns the row on which a man of this side becomes a king.
func (s Side) PromotionRow() int {
	if s == Black {
		return 0
	}
	return BoardSize - 1
}

// HomeRows returns the first and last row (inclusive) of the side's
// starting area.
func (s Side) HomeRows() (first, last int) {
	if s == Black {
		return BoardSize - HomeRowCount, BoardSize - 1
	}
	return 0, HomeRowCount - 1
}

// Rank is the promotion state of a piece.
type Rank int

const (
	Man Rank = iota
	King
)

// String returns the string representation of a rank.
func (r Rank) String() string {
	if r == King {
		return "King"
	}
	return "Man"
}

// Position is a board coordinate. Row 0 is Red's back row.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position lies on the 8x8 board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// IsDark reports whether the position is a playing (dark) square.
func (p Position) IsDark() bool {
	return (p.Row+p.Col)%2 == 1
}

// Offset returns the position shifted by the given row and column deltas.
// The result may be off the board.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the "row,col" form of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Piece is an owned, ranked piece. A piece has no identity of its own:
// the board cell holding it identifies it.
type Piece struct {
	Side Side
	Rank Rank
}

// NewMan returns an unpromoted piece for side.
func NewMan(side Side) Piece {
	return Piece{Side: side, Rank: Man}
}

// NewKing returns a king for side.
func NewKing(side Side) Piece {
	return Piece{Side: side, Rank: King}
}

// IsKing reports whether the piece has been promoted.
func (p Piece) IsKing() bool {
	return p.Rank == King
}

// Promoted returns the king form of the piece. Kings are returned unchanged.
func (p Piece) Promoted() Piece {
	return Piece{Side: p.Side, Rank: King}
}

// Letter returns the layout letter for the piece: r/R for Red, b/B for Black,
// upper case for kings.
func (p Piece) Letter() byte {
	var c byte = 'r'
	if p.Side == Black {
		c = 'b'
	}
	if p.Rank == King {
		c -= 'a' - 'A'
	}
	return c
}

// String returns e.g. "Red Man".
func (p Piece) String() string {
	return p.Side.String() + " " + p.Rank.String()
}
