package render

import (
	"io"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
)

// StateWriter is the interface for writing game states to output.
type StateWriter interface {
	// WriteState writes a single state to the output.
	WriteState(state *engine.GameState) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close releases the writer.
	Close() error
}

// NewStateWriter picks the writer matching the display settings.
func NewStateWriter(w io.Writer, d *config.DisplayConfig) StateWriter {
	if d.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, OptionsFrom(d), d.ShowHints)
}

// TextWriter draws each state as a board and status line.
type TextWriter struct {
	w     io.Writer
	opts  Options
	hints bool
}

// NewTextWriter creates a new text writer. With hints set, the legal
// moves are listed after every board.
func NewTextWriter(w io.Writer, opts Options, hints bool) *TextWriter {
	return &TextWriter{w: w, opts: opts, hints: hints}
}

// WriteState draws state immediately.
func (tw *TextWriter) WriteState(state *engine.GameState) error {
	if err := State(tw.w, state, tw.opts); err != nil {
		return err
	}
	if tw.hints && !state.IsOver() {
		return Moves(tw.w, engine.LegalMoves(state))
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes each state as one JSON document as soon as it is given.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteState encodes state to the underlying writer.
func (jw *JSONWriter) WriteState(state *engine.GameState) error {
	return WriteStateJSON(jw.w, state)
}

// Flush is a no-op; nothing is buffered.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (jw *JSONWriter) Close() error {
	return nil
}
