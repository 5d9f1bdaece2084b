package replay

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// resultWords are the accepted terminating results, lower-cased.
var resultWords = map[string]bool{
	"*":     true,
	"red":   true,
	"black": true,
	"draw":  true,
}

// Lexer tokenizes game-record input one line at a time.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
	started bool
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// LineNumber returns the current line number (1-based).
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if line == "" {
			return false
		}
	}
	l.line = strings.TrimRight(line, "\r\n")
	l.pos = 0
	l.lineNum++
	l.started = true
	return true
}

// NextToken returns the next token. A whitespace-only line yields one
// BlankLine token; a line holding only a comment yields nothing.
func (l *Lexer) NextToken() Token {
	for {
		if !l.started || l.pos >= len(l.line) {
			if !l.readLine() {
				return Token{Type: EOFToken, Line: l.lineNum}
			}
			if strings.TrimSpace(l.line) == "" {
				l.pos = len(l.line)
				return Token{Type: BlankLine, Line: l.lineNum}
			}
		}

		l.skipSpace()
		if l.pos >= len(l.line) {
			continue
		}

		switch l.line[l.pos] {
		case ';':
			l.pos = len(l.line)
			continue
		case '[':
			return l.readTag()
		}
		return l.readWord()
	}
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

// readWord reads a whitespace-delimited word and classifies it.
func (l *Lexer) readWord() Token {
	start := l.pos
	for l.pos < len(l.line) {
		c := l.line[l.pos]
		if c == ';' || unicode.IsSpace(rune(c)) {
			break
		}
		l.pos++
	}
	word := l.line[start:l.pos]
	tok := Token{Text: word, Line: l.lineNum, Column: start + 1}

	switch {
	case isMoveNumber(word):
		tok.Type = MoveNumber
	case resultWords[strings.ToLower(word)]:
		tok.Type = TerminatingResult
	default:
		tok.Type = MoveToken
	}
	return tok
}

// isMoveNumber matches "12." or "12...".
func isMoveNumber(word string) bool {
	digits := strings.TrimRight(word, ".")
	if digits == "" || digits == word {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// readTag reads `[Name "Value"]`. Backslash escapes the next character
// inside the value.
func (l *Lexer) readTag() Token {
	tok := Token{Type: TagToken, Line: l.lineNum, Column: l.pos + 1}
	fail := func(got string) Token {
		l.pos = len(l.line)
		return Token{Type: ErrorToken, Text: got, Line: tok.Line, Column: tok.Column}
	}

	l.pos++ // [
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && (isNameChar(l.line[l.pos])) {
		l.pos++
	}
	if l.pos == start {
		return fail("tag without a name")
	}
	tok.Text = l.line[start:l.pos]

	l.skipSpace()
	if l.pos >= len(l.line) || l.line[l.pos] != '"' {
		return fail("tag " + tok.Text + " without a quoted value")
	}
	l.pos++

	var sb strings.Builder
	closed := false
	for l.pos < len(l.line) {
		c := l.line[l.pos]
		l.pos++
		if c == '\\' && l.pos < len(l.line) {
			sb.WriteByte(l.line[l.pos])
			l.pos++
			continue
		}
		if c == '"' {
			closed = true
			break
		}
		sb.WriteByte(c)
	}
	if !closed {
		return fail("unterminated value for tag " + tok.Text)
	}
	tok.Value = sb.String()

	l.skipSpace()
	if l.pos >= len(l.line) || l.line[l.pos] != ']' {
		return fail("missing ] after tag " + tok.Text)
	}
	l.pos++
	return tok
}

func isNameChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
