package parser

import (
	"errors"
	"fmt"

	"github.com/shibukawa/ppg/tokenizer"
)

// Sentinel errors
var (
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Character sets handed to the raw tokenizer. The newline is a delimiter so
// the scanner sees it and can synthesize statement terminators from it.
const (
	Delimiters = "()[]{},;/\n"
	Whitespace = " \t\r"
)

// Parser is the grammar-aware scanner plus the single token of lookahead
// the recursive-descent productions work on. Token is the current lookahead;
// completeSemicolon tracks whether the previously returned token may end a
// statement, which decides whether a newline becomes a SEMICOLON.
type Parser struct {
	Scanner *tokenizer.Tokenizer

	keywords map[string]TokenKind

	Token Token

	completeSemicolon bool

	// End of the most recently consumed token, for production ranges.
	lastEnd tokenizer.Position
}

// NewParser creates a Parser over src. The first token is not scanned yet;
// call Scan once to prime the lookahead.
func NewParser(src string) *Parser {
	return &Parser{
		Scanner:  tokenizer.New(src, Delimiters, Whitespace),
		keywords: KeywordLookup(),
	}
}

// Scan advances to the next grammar token and returns it.
//
// Comments are dropped. A newline is never returned: if the previous token
// could end a statement it comes back as a synthesized SEMICOLON, otherwise
// it is dropped. The end of input is returned as one EOF token; scanning
// past that EOF is an error.
func (p *Parser) Scan() (Token, error) {
	for {
		raw, err := p.Scanner.Scan()
		if err != nil {
			if errors.Is(err, tokenizer.ErrEndOfInput) {
				if p.Token.Kind == EOF {
					return Token{}, err
				}
				pos := p.Scanner.Pos()
				p.lastEnd = p.Token.Pos.End
				p.Token = Token{Pos: tokenizer.Range{Begin: pos, End: pos}, Kind: EOF}
				return p.Token, nil
			}
			return Token{}, err
		}

		var kind TokenKind
		switch raw.Type {
		case tokenizer.IDENT, tokenizer.OPERATOR:
			reserved, ok := p.keywords[raw.Value]
			if !ok {
				if raw.Type == tokenizer.IDENT {
					kind = IDENT
				} else {
					kind = OPERATOR
				}
			} else {
				kind = reserved
			}
		case tokenizer.DELIMITER:
			reserved, ok := p.keywords[raw.Value]
			if !ok {
				panic(fmt.Sprintf("parser: delimiter %q missing from the keyword lookup table", raw.Value))
			}
			kind = reserved
		case tokenizer.INT:
			kind = INT
		case tokenizer.FLOAT:
			kind = FLOAT
		case tokenizer.STRING:
			kind = STRING
		case tokenizer.CHAR:
			kind = CHAR
		case tokenizer.COMMENT:
			continue
		}

		if kind == NEWLINE {
			if p.completeSemicolon {
				p.completeSemicolon = false
				p.lastEnd = p.Token.Pos.End
				p.Token = Token{Pos: raw.Pos, Kind: SEMICOLON, Value: ";"}
				return p.Token, nil
			}
			continue
		}

		switch kind {
		case IDENT, INT, RBRACE, RPAREN:
			p.completeSemicolon = true
		default:
			p.completeSemicolon = false
		}

		p.lastEnd = p.Token.Pos.End
		p.Token = Token{Pos: raw.Pos, Kind: kind, Base: raw.Base, Value: raw.Value}
		return p.Token, nil
	}
}

// Match checks the current token against kind without consuming anything.
func (p *Parser) Match(kind TokenKind) error {
	if p.Token.Kind != kind {
		return unexpectedToken(kind, p.Token)
	}
	return nil
}

// MatchAndScan checks the current token against kind and advances past it.
func (p *Parser) MatchAndScan(kind TokenKind) error {
	if err := p.Match(kind); err != nil {
		return err
	}
	_, err := p.Scan()
	return err
}

// TakeAndScan returns the current token and advances past it.
func (p *Parser) TakeAndScan() (Token, error) {
	token := p.Token
	if _, err := p.Scan(); err != nil {
		return Token{}, err
	}
	return token, nil
}

func unexpectedToken(want TokenKind, have Token) error {
	return fmt.Errorf("%s: %w: want %s but have %s %q",
		have.Pos.Begin, ErrUnexpectedToken, want, have.Kind, have.Value)
}
