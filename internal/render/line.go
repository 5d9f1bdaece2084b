package render

import (
	"io"
)

// LineWriter lays tokens out on lines of at most width bytes, breaking
// only between tokens. A token longer than width gets a line of its own.
type LineWriter struct {
	out   io.Writer
	width int
	col   int
}

// NewLineWriter wraps w. width <= 0 means 80.
func NewLineWriter(w io.Writer, width int) *LineWriter {
	if width <= 0 {
		width = 80
	}
	return &LineWriter{out: w, width: width}
}

// Add places token after the previous one, or at the start of a new line
// if it would not fit.
func (lw *LineWriter) Add(token string) {
	if token == "" {
		return
	}
	switch {
	case lw.col == 0:
	case lw.col+1+len(token) > lw.width:
		io.WriteString(lw.out, "\n")
		lw.col = 0
	default:
		io.WriteString(lw.out, " ")
		lw.col++
	}
	io.WriteString(lw.out, token)
	lw.col += len(token)
}

// End terminates the current line.
func (lw *LineWriter) End() {
	io.WriteString(lw.out, "\n")
	lw.col = 0
}
