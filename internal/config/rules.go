package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// RulesConfig holds the rule variant games are played under.
type RulesConfig struct {
	// ForcedCapture makes capturing mandatory when available
	ForcedCapture bool

	// CrowningEndsTurn stops a capture chain on promotion
	CrowningEndsTurn bool

	// QuietPlyLimit declares a draw after this many quiet plies (0 = never)
	QuietPlyLimit int

	// FirstSide is "red" or "black"
	FirstSide string
}

// NewRulesConfig creates a RulesConfig matching engine.DefaultRules.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		ForcedCapture: true,
		FirstSide:     "red",
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.QuietPlyLimit < 0 {
		return fmt.Errorf("quiet ply limit %d is negative: %w", r.QuietPlyLimit, errors.ErrInvalidConfig)
	}
	if _, err := ParseSide(r.FirstSide); err != nil {
		return err
	}
	return nil
}

// Engine converts the configuration into engine rules.
// FirstSide is assumed valid; call Validate first.
func (r *RulesConfig) Engine() engine.Rules {
	side, _ := ParseSide(r.FirstSide)
	return engine.Rules{
		ForcedCapture:    r.ForcedCapture,
		CrowningEndsTurn: r.CrowningEndsTurn,
		QuietPlyLimit:    r.QuietPlyLimit,
		FirstSide:        side,
	}
}

// ParseSide accepts "red"/"r" or "black"/"b" in any case.
func ParseSide(s string) (checkers.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return checkers.Red, nil
	case "black", "b":
		return checkers.Black, nil
	}
	return checkers.Red, fmt.Errorf("unknown side %q: %w", s, errors.ErrInvalidConfig)
}
