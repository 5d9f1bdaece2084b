package checkers

import (
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Cell is one board square: either empty or holding exactly one piece.
type Cell struct {
	Piece    Piece
	Occupied bool
}

// Board is an 8x8 occupancy grid with bounds-checked access.
// It holds no rule knowledge. Only SetupInitialPosition restricts
// placement to dark squares.
type Board struct {
	// Cells[row][col]. Row 0 is Red's back row.
	Cells [BoardSize][BoardSize]Cell
}

// Placement pairs an occupied position with the piece on it.
type Placement struct {
	Pos   Position
	Piece Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places each side's men on the
// dark squares of its three home rows.
func (b *Board) SetupInitialPosition() {
	b.Cells = [BoardSize][BoardSize]Cell{}
	for _, side := range []Side{Red, Black} {
		first, last := side.HomeRows()
		for row := first; row <= last; row++ {
			for col := 0; col < BoardSize; col++ {
				if Pos(row, col).IsDark() {
					b.Cells[row][col] = Cell{Piece: NewMan(side), Occupied: true}
				}
			}
		}
	}
}

// Get returns the piece at pos. The second result is false when the cell is
// empty or pos is off the board.
func (b *Board) Get(pos Position) (Piece, bool) {
	if !pos.InBounds() {
		return Piece{}, false
	}
	c := b.Cells[pos.Row][pos.Col]
	return c.Piece, c.Occupied
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	if !pos.InBounds() {
		return false
	}
	return !b.Cells[pos.Row][pos.Col].Occupied
}

// Set places piece at pos, replacing any occupant. The zero Piece is a red
// man, so Set never empties a cell; use Clear for that.
func (b *Board) Set(pos Position, piece Piece) error {
	if !pos.InBounds() {
		return errors.Wrapf(errors.ErrInvalidPosition, "set %s", pos)
	}
	b.Cells[pos.Row][pos.Col] = Cell{Piece: piece, Occupied: true}
	return nil
}

// Clear empties the cell at pos. The removed piece, if any, is discarded.
func (b *Board) Clear(pos Position) error {
	if !pos.InBounds() {
		return errors.Wrapf(errors.ErrInvalidPosition, "clear %s", pos)
	}
	b.Cells[pos.Row][pos.Col] = Cell{}
	return nil
}

// AllPieces returns every piece belonging to side in row-major order.
func (b *Board) AllPieces(side Side) []Placement {
	var out []Placement
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := b.Cells[row][col]
			if c.Occupied && c.Piece.Side == side {
				out = append(out, Placement{Pos: Pos(row, col), Piece: c.Piece})
			}
		}
	}
	return out
}

// Count returns the number of pieces belonging to side.
func (b *Board) Count(side Side) int {
	n := 0
	for row := range b.Cells {
		for _, c := range b.Cells[row] {
			if c.Occupied && c.Piece.Side == side {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
