package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// diagonals lists the four diagonal directions as {dRow, dCol}, toward
// higher rows first.
var diagonals = [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}

// directionsFor returns the diagonal directions a piece may travel in.
// Men go forward only; kings go all four ways.
func directionsFor(piece checkers.Piece) [][2]int {
	dirs := make([][2]int, 0, len(diagonals))
	for _, d := range diagonals {
		if piece.IsKing() || d[0] == piece.Side.Forward() {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// LegalMovesFor returns every elementary move available to the piece at
// from, ignoring mandatory capture: simple steps first, then jumps.
// It returns nil when from is empty or off the board.
func LegalMovesFor(board *checkers.Board, from checkers.Position) []checkers.Move {
	moves := SimpleMovesFor(board, from)
	return append(moves, CaptureMovesFor(board, from)...)
}

// SimpleMovesFor returns the one-square diagonal steps onto empty cells
// available to the piece at from.
func SimpleMovesFor(board *checkers.Board, from checkers.Position) []checkers.Move {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}

	var moves []checkers.Move
	for _, d := range directionsFor(piece) {
		to := from.Offset(d[0], d[1])
		if board.IsEmpty(to) {
			moves = append(moves, checkers.Step(from, to))
		}
	}
	return moves
}

// CaptureMovesFor returns the single jumps available to the piece at from:
// an opposing piece on the adjacent diagonal and an empty landing cell
// directly beyond it.
func CaptureMovesFor(board *checkers.Board, from checkers.Position) []checkers.Move {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}

	var moves []checkers.Move
	for _, d := range directionsFor(piece) {
		over := from.Offset(d[0], d[1])
		victim, occupied := board.Get(over)
		if !occupied || victim.Side == piece.Side {
			continue
		}
		to := over.Offset(d[0], d[1])
		if board.IsEmpty(to) {
			moves = append(moves, checkers.Jump(from, to))
		}
	}
	return moves
}

// SideCaptures returns every capture available to side, in row-major order
// of the capturing pieces.
func SideCaptures(board *checkers.Board, side checkers.Side) []checkers.Move {
	var moves []checkers.Move
	for _, p := range board.AllPieces(side) {
		moves = append(moves, CaptureMovesFor(board, p.Pos)...)
	}
	return moves
}

// SideMoves returns every elementary move available to side, ignoring
// mandatory capture.
func SideMoves(board *checkers.Board, side checkers.Side) []checkers.Move {
	var moves []checkers.Move
	for _, p := range board.AllPieces(side) {
		moves = append(moves, LegalMovesFor(board, p.Pos)...)
	}
	return moves
}

// HasCapture returns true if any piece of side can capture.
func HasCapture(board *checkers.Board, side checkers.Side) bool {
	for _, p := range board.AllPieces(side) {
		if len(CaptureMovesFor(board, p.Pos)) > 0 {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the given side has at least one legal move.
func HasLegalMoves(board *checkers.Board, side checkers.Side) bool {
	for _, p := range board.AllPieces(side) {
		if len(SimpleMovesFor(board, p.Pos)) > 0 || len(CaptureMovesFor(board, p.Pos)) > 0 {
			return true
		}
	}
	return false
}
