package replay

import (
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/notation"
)

// Recognised tag names.
const (
	TagLayout = "Layout"
	TagToMove = "ToMove"
	TagResult = "Result"
)

// RecordMove is one turn's move text and the path it names.
type RecordMove struct {
	Text   string
	Path   []checkers.Position
	Line   int
	Column int
}

// Record is one game read from a record file.
type Record struct {
	File      string
	StartLine int
	Tags      map[string]string
	Moves     []RecordMove
}

// NewRecord creates an empty record.
func NewRecord(file string, line int) *Record {
	return &Record{File: file, StartLine: line, Tags: make(map[string]string)}
}

// GetTag returns the value of a tag, or "" if absent.
func (r *Record) GetTag(name string) string {
	return r.Tags[name]
}

// Layout returns the starting layout, defaulting to the standard setup.
func (r *Record) Layout() string {
	if l := r.Tags[TagLayout]; l != "" {
		return l
	}
	return notation.InitialLayout
}

// ParseResult interprets a declared result. finished is false for "*" and
// ok is false for anything unrecognised.
func ParseResult(s string) (outcome engine.Outcome, finished, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "*":
		return engine.Outcome{}, false, true
	case "red":
		return engine.Outcome{Winner: checkers.Red}, true, true
	case "black":
		return engine.Outcome{Winner: checkers.Black}, true, true
	case "draw":
		return engine.Outcome{Draw: true}, true, true
	}
	return engine.Outcome{}, false, false
}

// FormatResult is the inverse of ParseResult.
func FormatResult(state *engine.GameState) string {
	outcome, over := state.Outcome()
	switch {
	case !over:
		return "*"
	case outcome.Draw:
		return "Draw"
	}
	return outcome.Winner.String()
}
