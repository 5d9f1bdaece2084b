// Package engine provides draughts move generation, validation and the
// turn state machine.
package engine

import (
	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Rules holds the policy switches that vary between draughts variants.
type Rules struct {
	// ForcedCapture makes capturing mandatory whenever any piece of the side
	// to move can capture. A capture chain, once started, must always be
	// completed regardless of this setting.
	ForcedCapture bool

	// CrowningEndsTurn stops a capture chain when the capturing man is
	// promoted, even if the new king could capture again.
	CrowningEndsTurn bool

	// QuietPlyLimit declares a draw after this many consecutive plies
	// without a capture or a man move. Zero disables the rule.
	QuietPlyLimit int

	// FirstSide is the side to move in a new game.
	FirstSide checkers.Side
}

// DefaultRules returns standard rules: mandatory capture, chains continue
// through promotion, no draw rule, Red first.
func DefaultRules() Rules {
	return Rules{
		ForcedCapture: true,
		FirstSide:     checkers.Red,
	}
}

// Option configures the Rules of a new game.
type Option func(*Rules)

// WithRules replaces the whole rule set.
func WithRules(r Rules) Option {
	return func(dst *Rules) {
		*dst = r
	}
}

// WithForcedCapture enables or disables mandatory capture.
func WithForcedCapture(enabled bool) Option {
	return func(r *Rules) {
		r.ForcedCapture = enabled
	}
}

// WithCrowningEndsTurn sets whether promotion ends a capture chain.
func WithCrowningEndsTurn(enabled bool) Option {
	return func(r *Rules) {
		r.CrowningEndsTurn = enabled
	}
}

// WithQuietPlyLimit sets the draw limit. Values below 1 disable it.
func WithQuietPlyLimit(n int) Option {
	return func(r *Rules) {
		if n < 0 {
			n = 0
		}
		r.QuietPlyLimit = n
	}
}

// WithFirstSide sets which side moves first.
func WithFirstSide(s checkers.Side) Option {
	return func(r *Rules) {
		r.FirstSide = s
	}
}

func buildRules(opts []Option) Rules {
	r := DefaultRules()
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
