// Package notation converts between text and the checkers types: board
// layouts, coordinates and move paths. The engine itself never sees text.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// InitialLayout is the layout string for the standard starting position.
const InitialLayout = "b1b1b1b1/1b1b1b1b/b1b1b1b1/8/8/1r1r1r1r/r1r1r1r1/1r1r1r1r r"

// pieceForLetter converts a layout character to a piece.
func pieceForLetter(c byte) (checkers.Piece, bool) {
	switch c {
	case 'r':
		return checkers.NewMan(checkers.Red), true
	case 'R':
		return checkers.NewKing(checkers.Red), true
	case 'b':
		return checkers.NewMan(checkers.Black), true
	case 'B':
		return checkers.NewKing(checkers.Black), true
	}
	return checkers.Piece{}, false
}

// ParseLayout creates a board and side to move from a layout string.
// Rows are listed from row 7 down to row 0, separated by '/'. The side
// field ("r" or "b") is optional and defaults to Red.
func ParseLayout(layout string) (*checkers.Board, checkers.Side, error) {
	parts := strings.Fields(layout)
	if len(parts) < 1 {
		return nil, checkers.Red, &errors.ParseError{Err: errors.ErrInvalidLayout, Expected: "rows", Got: "empty layout"}
	}
	if len(parts) > 2 {
		return nil, checkers.Red, &errors.ParseError{Err: errors.ErrInvalidLayout, Expected: "end of layout", Got: fmt.Sprintf("%q", parts[2])}
	}

	board := checkers.NewBoard()
	if err := parsePiecePlacement(board, parts[0]); err != nil {
		return nil, checkers.Red, err
	}

	side, err := parseSideToMove(parts)
	if err != nil {
		return nil, checkers.Red, err
	}
	return board, side, nil
}

// parsePiecePlacement parses the row field of a layout string.
func parsePiecePlacement(board *checkers.Board, rows string) error {
	ranks := strings.Split(rows, "/")
	if len(ranks) != checkers.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidLayout,
			Expected: fmt.Sprintf("%d rows", checkers.BoardSize),
			Got:      fmt.Sprintf("%d", len(ranks)),
		}
	}

	column := 1
	for i, rank := range ranks {
		row := checkers.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece, ok := pieceForLetter(c)
				if !ok {
					return &errors.ParseError{Err: errors.ErrInvalidLayout, Column: column + j, Expected: "piece letter or digit", Got: fmt.Sprintf("%q", c)}
				}
				if err := board.Set(checkers.Pos(row, col), piece); err != nil {
					return &errors.ParseError{Err: errors.ErrInvalidLayout, Column: column + j, Got: fmt.Sprintf("row %d overflows", row)}
				}
				col++
			}
		}
		if col != checkers.BoardSize {
			return &errors.ParseError{
				Err:      errors.ErrInvalidLayout,
				Column:   column,
				Expected: fmt.Sprintf("%d squares in row %d", checkers.BoardSize, row),
				Got:      fmt.Sprintf("%d", col),
			}
		}
		column += len(rank) + 1
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (checkers.Side, error) {
	if len(parts) < 2 {
		return checkers.Red, nil
	}
	switch parts[1] {
	case "r":
		return checkers.Red, nil
	case "b":
		return checkers.Black, nil
	}
	return checkers.Red, &errors.ParseError{Err: errors.ErrInvalidLayout, Expected: "side r or b", Got: fmt.Sprintf("%q", parts[1])}
}

// FormatLayout converts a board and side to move to a layout string.
func FormatLayout(board *checkers.Board, toMove checkers.Side) string {
	var sb strings.Builder

	writePiecePlacement(&sb, board)
	sb.WriteByte(' ')
	if toMove == checkers.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('r')
	}
	return sb.String()
}

// writePiecePlacement writes the rows, top row first, to the builder.
func writePiecePlacement(sb *strings.Builder, board *checkers.Board) {
	for row := checkers.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < checkers.BoardSize; col++ {
			piece, ok := board.Get(checkers.Pos(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}
