package render

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/notation"
)

// JSONState represents a game state in JSON format.
type JSONState struct {
	Layout     string   `json:"layout"`
	ToMove     string   `json:"toMove"`
	Status     string   `json:"status"`
	Ply        int      `json:"ply"`
	Chain      string   `json:"chain,omitempty"`
	Winner     string   `json:"winner,omitempty"`
	Draw       bool     `json:"draw,omitempty"`
	LastMove   string   `json:"lastMove,omitempty"`
	LegalMoves []string `json:"legalMoves"`
}

// StateJSON converts a game state to its JSON form.
func StateJSON(state *engine.GameState) *JSONState {
	js := &JSONState{
		Layout:     notation.FormatLayout(state.Snapshot(), state.SideToMove()),
		ToMove:     state.SideToMove().String(),
		Status:     state.Status().String(),
		Ply:        state.Ply(),
		LegalMoves: []string{},
	}
	if pos, ok := state.ChainPosition(); ok {
		js.Chain = pos.String()
	}
	if outcome, over := state.Outcome(); over {
		if outcome.Draw {
			js.Draw = true
		} else {
			js.Winner = outcome.Winner.String()
		}
	}
	if last, ok := state.LastMove(); ok {
		js.LastMove = notation.FormatMove(last.Move)
	}
	for _, m := range engine.LegalMoves(state) {
		js.LegalMoves = append(js.LegalMoves, notation.FormatMove(m))
	}
	return js
}

// WriteStateJSON writes one indented JSON object for state.
func WriteStateJSON(w io.Writer, state *engine.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(StateJSON(state))
}
