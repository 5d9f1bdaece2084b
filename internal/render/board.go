// Package render draws game states for people (text) and programs (JSON).
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/notation"
)

// Options controls how a board is drawn.
type Options struct {
	Unicode     bool
	Coordinates bool
}

// OptionsFrom converts display settings into drawing options.
func OptionsFrom(d *config.DisplayConfig) Options {
	return Options{Unicode: d.Unicode, Coordinates: d.Coordinates}
}

var unicodeGlyphs = map[checkers.Piece]string{
	checkers.NewMan(checkers.Red):    "⛀",
	checkers.NewKing(checkers.Red):   "⛁",
	checkers.NewMan(checkers.Black):  "⛂",
	checkers.NewKing(checkers.Black): "⛃",
}

func glyph(cell checkers.Cell, pos checkers.Position, opts Options) string {
	switch {
	case cell.Occupied && opts.Unicode:
		return unicodeGlyphs[cell.Piece]
	case cell.Occupied:
		return string(cell.Piece.Letter())
	case pos.IsDark():
		return "."
	}
	return " "
}

// Board draws board as a grid with row 7 at the top.
func Board(w io.Writer, board *checkers.Board, opts Options) error {
	bw := bufio.NewWriter(w)
	border := "+-----------------+"
	if opts.Coordinates {
		border = "  " + border
	}
	fmt.Fprintln(bw, border)
	for r := checkers.BoardSize - 1; r >= 0; r-- {
		if opts.Coordinates {
			fmt.Fprintf(bw, "%d ", r)
		}
		bw.WriteString("|")
		for c := 0; c < checkers.BoardSize; c++ {
			pos := checkers.Pos(r, c)
			bw.WriteString(" " + glyph(board.Cells[r][c], pos, opts))
		}
		bw.WriteString(" |\n")
	}
	fmt.Fprintln(bw, border)
	if opts.Coordinates {
		bw.WriteString("   ")
		for c := 0; c < checkers.BoardSize; c++ {
			fmt.Fprintf(bw, " %d", c)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Moves writes the given moves on wrapped lines, preceded by a count.
func Moves(w io.Writer, moves []checkers.Move) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d legal moves:", len(moves))
	if len(moves) == 0 {
		bw.WriteString("\n")
		return bw.Flush()
	}
	bw.WriteString("\n")
	lw := NewLineWriter(bw, 72)
	for _, m := range moves {
		lw.Add(notation.FormatMove(m))
	}
	lw.End()
	return bw.Flush()
}

// StatusLine describes whose turn it is, a pending chain, or the result.
func StatusLine(state *engine.GameState) string {
	switch state.Status() {
	case engine.GameOver:
		outcome, _ := state.Outcome()
		return "Game over: " + outcome.String()
	case engine.ChainInProgress:
		pos, _ := state.ChainPosition()
		return fmt.Sprintf("%s must continue capturing from %s", state.SideToMove(), pos)
	}
	return fmt.Sprintf("%s to move", state.SideToMove())
}

// State draws the board followed by the status line.
func State(w io.Writer, state *engine.GameState, opts Options) error {
	if err := Board(w, state.Snapshot(), opts); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, StatusLine(state))
	return err
}
