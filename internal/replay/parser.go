package replay

import (
	"fmt"
	"io"

	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/notation"
)

// Parser parses record input into Record structures.
type Parser struct {
	lexer        *Lexer
	file         string
	currentToken Token
	primed       bool
}

// NewParser creates a new parser for the given reader. file is used only
// in error messages.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{lexer: NewLexer(r), file: file}
}

func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

func (p *Parser) errorAt(tok Token, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     p.file,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: expected,
		Got:      got,
	}
}

// ParseRecord parses a single record from the input.
// Returns nil if no more records are available.
func (p *Parser) ParseRecord() (*Record, error) {
	if !p.primed {
		p.nextToken()
		p.primed = true
	}

	for p.currentToken.Type == BlankLine {
		p.nextToken()
	}
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	rec := NewRecord(p.file, p.currentToken.Line)

	if err := p.parseOptTagList(rec); err != nil {
		return nil, err
	}
	if err := p.parseMoveList(rec); err != nil {
		return nil, err
	}
	if err := p.parseResult(rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// parseOptTagList parses zero or more tags.
func (p *Parser) parseOptTagList(rec *Record) error {
	for {
		switch p.currentToken.Type {
		case TagToken:
			rec.Tags[p.currentToken.Text] = p.currentToken.Value
			p.nextToken()
		case ErrorToken:
			return p.errorAt(p.currentToken, "[Name \"Value\"]", p.currentToken.Text)
		default:
			return nil
		}
	}
}

// parseMoveList parses move numbers and moves until the record ends.
func (p *Parser) parseMoveList(rec *Record) error {
	for {
		tok := p.currentToken
		switch tok.Type {
		case MoveNumber:
			p.nextToken()
		case MoveToken:
			path, err := notation.ParseMoveText(tok.Text)
			if err != nil {
				return p.errorAt(tok, "move", fmt.Sprintf("%q", tok.Text))
			}
			rec.Moves = append(rec.Moves, RecordMove{Text: tok.Text, Path: path, Line: tok.Line, Column: tok.Column})
			p.nextToken()
		case TagToken:
			return p.errorAt(tok, "move", "tag "+tok.Text+" after moves")
		case ErrorToken:
			return p.errorAt(tok, "move", tok.Text)
		default:
			return nil
		}
	}
}

// parseResult consumes an optional terminating result. It fills the
// Result tag when the record did not declare one. Only a blank line or the
// end of input may follow a result.
func (p *Parser) parseResult(rec *Record) error {
	if p.currentToken.Type != TerminatingResult {
		return nil
	}
	if rec.Tags[TagResult] == "" {
		rec.Tags[TagResult] = p.currentToken.Text
	}
	p.nextToken()

	switch tok := p.currentToken; tok.Type {
	case BlankLine, EOFToken:
		return nil
	case TagToken:
		return p.errorAt(tok, "blank line after result", "tag "+tok.Text)
	default:
		return p.errorAt(tok, "blank line after result", fmt.Sprintf("%s %q", tok.Type, tok.Text))
	}
}

// ParseAllRecords parses all records from the input.
func (p *Parser) ParseAllRecords() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := p.ParseRecord()
		if err != nil {
			return records, err
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, rec)
	}
}

// ParseRecords reads every record from r.
func ParseRecords(r io.Reader, file string) ([]*Record, error) {
	return NewParser(r, file).ParseAllRecords()
}
