// Package processing provides game analysis over replayed records.
package processing

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/notation"
	"github.com/lgbarn/checkers-go/internal/replay"
)

// GameAnalysis holds analysis results from replaying a record.
type GameAnalysis struct {
	Final *engine.GameState

	Plies int
	Turns int

	// Captures is the number of pieces taken by either side
	Captures int

	// Promotions counts men crowned
	Promotions int

	// LongestChain is the most pieces taken in a single turn
	LongestChain int

	// MaxQuietPlies is the longest run of king moves without a capture
	MaxQuietPlies int

	// Positions holds the Zobrist hash at each turn boundary, start included
	Positions []uint64

	HasRepetition bool // a position occurred three times
}

// RepetitionDetected returns true if some position occurred three times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// AnalyzeRecord replays rec under rules and gathers statistics. On a
// rejected move the analysis covers the moves before it and the error is
// returned alongside.
func AnalyzeRecord(rec *replay.Record, rules engine.Rules) (*GameAnalysis, error) {
	state, err := replay.Start(rec, rules)
	if err != nil {
		return nil, err
	}

	analysis := &GameAnalysis{Final: state}
	positionCount := make(map[uint64]int)
	analysis.addPosition(state, positionCount)

	chain := 0
	for i, mv := range rec.Moves {
		for _, hop := range notation.Expand(mv.Path) {
			next, err := engine.ApplyMove(state, hop)
			if err != nil {
				return analysis, fmt.Errorf("move %d %q: %w", i+1, mv.Text, err)
			}
			state = next
			analysis.Final = state
			analysis.Plies = state.Ply()

			last, _ := state.LastMove()
			chain += len(last.Move.Captured)
			analysis.Captures += len(last.Move.Captured)
			if last.Promoted {
				analysis.Promotions++
			}
			if q := state.QuietPlies(); q > analysis.MaxQuietPlies {
				analysis.MaxQuietPlies = q
			}

			if state.Status() == engine.ChainInProgress {
				continue
			}
			analysis.Turns++
			if chain > analysis.LongestChain {
				analysis.LongestChain = chain
			}
			chain = 0
			analysis.addPosition(state, positionCount)
		}
	}

	return analysis, nil
}

func (ga *GameAnalysis) addPosition(state *engine.GameState, positionCount map[uint64]int) {
	posHash := hashing.GenerateZobristHash(state.Snapshot(), state.SideToMove())
	ga.Positions = append(ga.Positions, posHash)
	positionCount[posHash]++
	if positionCount[posHash] >= 3 {
		ga.HasRepetition = true
	}
}
