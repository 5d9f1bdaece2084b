package engine

import (
	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// ApplyMove validates move against state and returns the resulting state.
// Validation completes before anything is changed. On error the returned
// state is nil and state itself is unchanged.
//
// Errors wrap one of the rule sentinels in package errors, checked in this
// order: ErrGameAlreadyOver, ErrInvalidPosition, ErrChainMustContinue,
// ErrNoPieceAtSource, ErrNotYourPiece, ErrMustCapture, ErrIllegalMove.
func ApplyMove(state *GameState, move checkers.Move) (*GameState, error) {
	if state == nil {
		return nil, errors.Wrap(errors.ErrIllegalMove, "no game state")
	}

	resolved, err := state.validate(move)
	if err != nil {
		return nil, &errors.MoveError{
			Err:  err,
			Ply:  state.ply + 1,
			Side: state.toMove.String(),
			Move: move.String(),
		}
	}

	next := *state
	next.apply(resolved)
	return &next, nil
}

// validate checks move against the current phase and rules and returns the
// rule-derived form of the move (with its captured squares filled in).
func (g *GameState) validate(move checkers.Move) (checkers.Move, error) {
	if g.status == GameOver {
		return checkers.Move{}, errors.ErrGameAlreadyOver
	}

	if !move.From.InBounds() {
		return checkers.Move{}, errors.Wrapf(errors.ErrInvalidPosition, "source %s", move.From)
	}
	if !move.To.InBounds() {
		return checkers.Move{}, errors.Wrapf(errors.ErrInvalidPosition, "destination %s", move.To)
	}
	for _, c := range move.Captured {
		if !c.InBounds() {
			return checkers.Move{}, errors.Wrapf(errors.ErrInvalidPosition, "captured %s", c)
		}
	}

	inChain := g.status == ChainInProgress
	if inChain && move.From != g.chain {
		return checkers.Move{}, errors.Wrapf(errors.ErrChainMustContinue, "piece on %s must keep jumping", g.chain)
	}

	piece, ok := g.board.Get(move.From)
	if !ok {
		return checkers.Move{}, errors.Wrapf(errors.ErrNoPieceAtSource, "%s is empty", move.From)
	}
	if piece.Side != g.toMove {
		return checkers.Move{}, errors.Wrapf(errors.ErrNotYourPiece, "%s belongs to %s", move.From, piece.Side)
	}

	var candidates []checkers.Move
	forced := inChain
	if inChain {
		candidates = ContinuationCaptures(&g.board, move.From)
	} else {
		candidates = LegalMovesFor(&g.board, move.From)
		forced = g.rules.ForcedCapture && HasCapture(&g.board, g.toMove)
	}

	if forced && !looksLikeCapture(move) {
		return checkers.Move{}, errors.ErrMustCapture
	}

	for _, c := range candidates {
		if c.From != move.From || c.To != move.To {
			continue
		}
		if len(move.Captured) > 0 && !c.Equal(move) {
			break
		}
		return c, nil
	}
	return checkers.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s cannot move %s", piece, move)
}

// looksLikeCapture reports whether the submitted move claims to capture,
// either explicitly or by spanning two diagonal squares.
func looksLikeCapture(m checkers.Move) bool {
	if len(m.Captured) > 0 {
		return true
	}
	return abs(m.To.Row-m.From.Row) == 2 && abs(m.To.Col-m.From.Col) == 2
}

// apply performs a validated move: captured pieces are removed, the mover
// is relocated and possibly promoted, then the turn phase advances.
func (g *GameState) apply(m checkers.Move) {
	piece, _ := g.board.Get(m.From)
	mover := g.toMove

	_ = g.board.Clear(m.From)
	for _, c := range m.Captured {
		_ = g.board.Clear(c)
	}

	promoted := false
	if !piece.IsKing() && m.To.Row == piece.Side.PromotionRow() {
		piece = piece.Promoted()
		promoted = true
	}
	_ = g.board.Set(m.To, piece)

	g.ply++
	if m.IsCapture() || !piece.IsKing() || promoted {
		g.quietPlies = 0
	} else {
		g.quietPlies++
	}
	g.last = &LastMove{Move: m, Side: mover, Promoted: promoted}

	if chainContinues(&g.board, m, promoted, g.rules) {
		g.status = ChainInProgress
		g.chain = m.To
		return
	}
	g.endTurn(mover)
}

// endTurn passes the move to the opponent, or ends the game when the
// opponent cannot move or the quiet-ply limit is reached.
func (g *GameState) endTurn(mover checkers.Side) {
	g.toMove = mover.Opposite()
	g.chain = checkers.Position{}
	g.status = AwaitingMove

	if g.sideIsStuck(g.toMove) {
		g.status = GameOver
		g.outcome = Outcome{Winner: mover}
		return
	}
	if g.rules.QuietPlyLimit > 0 && g.quietPlies >= g.rules.QuietPlyLimit {
		g.status = GameOver
		g.outcome = Outcome{Draw: true}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
