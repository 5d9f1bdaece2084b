package engine

import (
	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Status is the phase of the turn state machine.
type Status int

const (
	// AwaitingMove: the side to move may submit any legal move.
	AwaitingMove Status = iota
	// ChainInProgress: the piece on ChainPosition must capture again.
	ChainInProgress
	// GameOver: terminal; no further moves are accepted.
	GameOver
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case AwaitingMove:
		return "AwaitingMove"
	case ChainInProgress:
		return "ChainInProgress"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner checkers.Side
	Draw   bool
}

// String returns "Red wins", "Black wins" or "Draw".
func (o Outcome) String() string {
	if o.Draw {
		return "Draw"
	}
	return o.Winner.String() + " wins"
}

// LastMove records the most recently applied elementary move.
type LastMove struct {
	Move     checkers.Move
	Side     checkers.Side
	Promoted bool
}

// GameState is a complete game position: the board, the side to move and
// the turn phase. States are never modified after construction; ApplyMove
// returns a new state and leaves its input untouched.
type GameState struct {
	board      checkers.Board
	toMove     checkers.Side
	status     Status
	chain      checkers.Position
	outcome    Outcome
	rules      Rules
	ply        int
	quietPlies int
	last       *LastMove
}

// NewGame returns a game in the standard starting position with the first
// side (Red unless configured otherwise) to move.
func NewGame(opts ...Option) *GameState {
	rules := buildRules(opts)
	g := &GameState{
		board:  *checkers.NewInitialBoard(),
		toMove: rules.FirstSide,
		rules:  rules,
	}
	return g
}

// NewGameFromBoard returns a game starting from an arbitrary position.
// The board is copied. If toMove has no pieces or no legal moves the game
// is immediately over.
func NewGameFromBoard(board *checkers.Board, toMove checkers.Side, opts ...Option) *GameState {
	g := &GameState{
		board:  *board,
		toMove: toMove,
		rules:  buildRules(opts),
	}
	if g.sideIsStuck(toMove) {
		g.status = GameOver
		g.outcome = Outcome{Winner: toMove.Opposite()}
	}
	return g
}

// SideToMove returns the side currently permitted to move.
func (g *GameState) SideToMove() checkers.Side {
	return g.toMove
}

// Status returns the current turn phase.
func (g *GameState) Status() Status {
	return g.status
}

// IsOver reports whether the game has ended.
func (g *GameState) IsOver() bool {
	return g.status == GameOver
}

// ChainPosition returns the square of the piece that must continue
// capturing. The second result is false when no chain is in progress.
func (g *GameState) ChainPosition() (checkers.Position, bool) {
	if g.status != ChainInProgress {
		return checkers.Position{}, false
	}
	return g.chain, true
}

// Outcome returns the result of the game. The second result is false while
// the game is still in progress.
func (g *GameState) Outcome() (Outcome, bool) {
	if g.status != GameOver {
		return Outcome{}, false
	}
	return g.outcome, true
}

// Rules returns the rule set the game is played under.
func (g *GameState) Rules() Rules {
	return g.rules
}

// Ply returns the number of elementary moves applied so far. Each hop of a
// capture chain counts as one ply.
func (g *GameState) Ply() int {
	return g.ply
}

// QuietPlies returns the number of consecutive plies without a capture or
// a man move.
func (g *GameState) QuietPlies() int {
	return g.quietPlies
}

// LastMove returns the most recently applied move, if any.
func (g *GameState) LastMove() (LastMove, bool) {
	if g.last == nil {
		return LastMove{}, false
	}
	return *g.last, true
}

// Snapshot returns a copy of the board for rendering. Changes to the copy
// do not affect the game.
func (g *GameState) Snapshot() *checkers.Board {
	b := g.board
	return &b
}

// Piece returns the piece at pos, if any.
func (g *GameState) Piece(pos checkers.Position) (checkers.Piece, bool) {
	return g.board.Get(pos)
}

// Equal reports whether two states are identical field by field.
func (g *GameState) Equal(other *GameState) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.board != other.board || g.toMove != other.toMove || g.status != other.status ||
		g.chain != other.chain || g.outcome != other.outcome || g.rules != other.rules ||
		g.ply != other.ply || g.quietPlies != other.quietPlies {
		return false
	}
	if (g.last == nil) != (other.last == nil) {
		return false
	}
	if g.last != nil {
		return g.last.Side == other.last.Side && g.last.Promoted == other.last.Promoted &&
			g.last.Move.Equal(other.last.Move)
	}
	return true
}

// Snapshot returns a read-only copy of the board of state.
func Snapshot(state *GameState) *checkers.Board {
	return state.Snapshot()
}

// LegalMoves returns every move the side to move may submit now. During a
// chain only the chain piece's captures are returned. Under forced capture,
// only captures are returned whenever one exists. A finished game has no
// legal moves.
func LegalMoves(state *GameState) []checkers.Move {
	switch state.status {
	case GameOver:
		return nil
	case ChainInProgress:
		return ContinuationCaptures(&state.board, state.chain)
	}

	if state.rules.ForcedCapture {
		if captures := SideCaptures(&state.board, state.toMove); len(captures) > 0 {
			return captures
		}
	}
	return SideMoves(&state.board, state.toMove)
}

// LegalMovesFrom returns the subset of LegalMoves starting at from.
func LegalMovesFrom(state *GameState, from checkers.Position) []checkers.Move {
	var out []checkers.Move
	for _, m := range LegalMoves(state) {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

// IsWin reports whether side has won the game.
func IsWin(state *GameState, side checkers.Side) bool {
	o, over := state.Outcome()
	return over && !o.Draw && o.Winner == side
}

// sideIsStuck reports whether side has lost: no pieces, or no legal move.
func (g *GameState) sideIsStuck(side checkers.Side) bool {
	return g.board.Count(side) == 0 || !HasLegalMoves(&g.board, side)
}
