package replay

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/notation"
)

// Result describes the outcome of replaying one record.
type Result struct {
	Record *Record

	// Final is the last state reached; nil if the start position was invalid
	Final *engine.GameState

	// Plies is the number of elementary moves applied
	Plies int

	// FailedMove is the 1-based index into Record.Moves of the move that
	// was rejected, or 0 if every move applied
	FailedMove int

	Err error

	// ResultChecked is set when the record declares a result
	ResultChecked bool
	// ResultMatches reports whether the declared result agrees with Final
	ResultMatches bool

	// Duplicate is set when an earlier record ended in the same position
	Duplicate bool

	// Skipped is set when the record was never replayed
	Skipped bool
}

// OK reports whether the record replayed cleanly and any declared result
// agrees with the final position.
func (r *Result) OK() bool {
	return !r.Skipped && r.Err == nil && (!r.ResultChecked || r.ResultMatches)
}

// Start builds the starting state of rec under rules. Without a Layout tag
// the standard setup is used with rules.FirstSide to move; a ToMove tag
// overrides either.
func Start(rec *Record, rules engine.Rules) (*engine.GameState, error) {
	board, side, err := notation.ParseLayout(rec.Layout())
	if err != nil {
		return nil, errors.Wrapf(err, "%s:%d: layout", rec.File, rec.StartLine)
	}
	if rec.GetTag(TagLayout) == "" {
		side = rules.FirstSide
	}
	if v := rec.GetTag(TagToMove); v != "" {
		if side, err = config.ParseSide(v); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidLayout, "%s:%d: ToMove %q", rec.File, rec.StartLine, v)
		}
	}
	return engine.NewGameFromBoard(board, side, engine.WithRules(rules)), nil
}

// Replay applies every move of rec in turn. Each move text may name a
// whole capture chain; it is split into elementary hops. Replay stops at
// the first rejected hop.
func Replay(rec *Record, rules engine.Rules) Result {
	res := Result{Record: rec}

	state, err := Start(rec, rules)
	if err != nil {
		res.Err = err
		return res
	}
	res.Final = state

	for i, mv := range rec.Moves {
		for _, hop := range notation.Expand(mv.Path) {
			next, err := engine.ApplyMove(state, hop)
			if err != nil {
				res.FailedMove = i + 1
				res.Err = fmt.Errorf("%s:%d:%d: move %d %q: %w", rec.File, mv.Line, mv.Column, i+1, mv.Text, err)
				res.Final = state
				res.Plies = state.Ply()
				return res
			}
			state = next
		}
	}

	res.Final = state
	res.Plies = state.Ply()

	if declared := rec.GetTag(TagResult); declared != "" {
		res.ResultChecked = true
		res.ResultMatches = resultMatches(declared, state)
	}
	return res
}

func resultMatches(declared string, state *engine.GameState) bool {
	want, finished, ok := ParseResult(declared)
	if !ok {
		return false
	}
	got, over := state.Outcome()
	if finished != over {
		return false
	}
	return !finished || want == got
}
