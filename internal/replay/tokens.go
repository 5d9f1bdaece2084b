// Package replay reads game-record files and replays them through the engine.
package replay

import "fmt"

// TokenType classifies what the lexer found.
type TokenType int

const (
	EOFToken          TokenType = iota
	TagToken                    // [Name "Value"]
	MoveNumber                  // 12. or 12...
	MoveToken                   // 2,3-3,4 or 23x45
	TerminatingResult           // red, black, draw or *
	BlankLine                   // separates records
	ErrorToken
)

func (t TokenType) String() string {
	switch t {
	case EOFToken:
		return "end of input"
	case TagToken:
		return "tag"
	case MoveNumber:
		return "move number"
	case MoveToken:
		return "move"
	case TerminatingResult:
		return "result"
	case BlankLine:
		return "blank line"
	case ErrorToken:
		return "bad input"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the tag name, move text, result or offending input
	Text string

	// Value is the tag value for TagToken
	Value string

	// Line and column for error reporting
	Line   int
	Column int
}
