package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// isSeparator reports whether r separates coordinates in move text.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '-', 'x', 'X', '>', ':':
		return true
	}
	return false
}

// ParsePosition parses a single coordinate written as "r,c" or "rc".
// Range is not checked here; the engine reports off-board coordinates.
func ParsePosition(text string) (checkers.Position, error) {
	text = strings.TrimSpace(text)
	if row, col, ok := strings.Cut(text, ","); ok {
		r, err1 := strconv.Atoi(strings.TrimSpace(row))
		c, err2 := strconv.Atoi(strings.TrimSpace(col))
		if err1 != nil || err2 != nil {
			return checkers.Position{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "coordinate r,c", Got: fmt.Sprintf("%q", text)}
		}
		return checkers.Pos(r, c), nil
	}
	if len(text) == 2 && isDigit(text[0]) && isDigit(text[1]) {
		return checkers.Pos(int(text[0]-'0'), int(text[1]-'0')), nil
	}
	return checkers.Position{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "coordinate r,c", Got: fmt.Sprintf("%q", text)}
}

// ParseMoveText parses a path of two or more coordinates, e.g. "2,3-3,4",
// "23x45x67" or "2 3 4 5". Bare single digits are paired in order.
func ParseMoveText(text string) ([]checkers.Position, error) {
	fields := strings.FieldsFunc(text, isSeparator)

	var path []checkers.Position
	pending := -1
	for _, f := range fields {
		if len(f) == 1 && isDigit(f[0]) {
			if pending < 0 {
				pending = int(f[0] - '0')
				continue
			}
			path = append(path, checkers.Pos(pending, int(f[0]-'0')))
			pending = -1
			continue
		}
		if pending >= 0 {
			return nil, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "second digit of coordinate", Got: fmt.Sprintf("%q", f)}
		}
		pos, err := ParsePosition(f)
		if err != nil {
			return nil, err
		}
		path = append(path, pos)
	}

	if pending >= 0 {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "second digit of coordinate", Got: "end of input"}
	}
	if len(path) < 2 {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "at least two coordinates", Got: fmt.Sprintf("%q", text)}
	}
	return path, nil
}

// ParseMove parses text naming exactly one elementary move.
func ParseMove(text string) (checkers.Move, error) {
	path, err := ParseMoveText(text)
	if err != nil {
		return checkers.Move{}, err
	}
	if len(path) != 2 {
		return checkers.Move{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "two coordinates", Got: fmt.Sprintf("%d", len(path))}
	}
	return checkers.Move{From: path[0], To: path[1]}, nil
}

// Expand splits a path into its elementary hops. Captured squares are left
// for the engine to derive.
func Expand(path []checkers.Position) []checkers.Move {
	if len(path) < 2 {
		return nil
	}
	moves := make([]checkers.Move, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		moves = append(moves, checkers.Move{From: path[i-1], To: path[i]})
	}
	return moves
}

// FormatMove renders a single move, e.g. "2,3-3,4" or "2,3x4,5".
func FormatMove(m checkers.Move) string {
	return m.String()
}

// FormatPath renders a chain of hops as one path, e.g. "2,3x4,5x6,7".
// Consecutive hops are assumed to connect.
func FormatPath(moves []checkers.Move) string {
	if len(moves) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(moves[0].From.String())
	for _, m := range moves {
		if m.IsCapture() {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
		sb.WriteString(m.To.String())
	}
	return sb.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
