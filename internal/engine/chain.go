package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// ContinuationCaptures returns the captures the piece now standing on pos
// can make to extend a chain. Simple steps never extend a chain.
func ContinuationCaptures(board *checkers.Board, pos checkers.Position) []checkers.Move {
	return CaptureMovesFor(board, pos)
}

// chainContinues reports whether the piece that just made move must keep
// jumping. Only a capture can start or extend a chain.
func chainContinues(board *checkers.Board, move checkers.Move, promoted bool, rules Rules) bool {
	if !move.IsCapture() {
		return false
	}
	if promoted && rules.CrowningEndsTurn {
		return false
	}
	return len(ContinuationCaptures(board, move.To)) > 0
}
