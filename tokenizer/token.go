package tokenizer

import "errors"

// Sentinel errors
var (
	ErrEndOfInput          = errors.New("end of input")
	ErrBadFormat           = errors.New("bad format")
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// TokenType represents the raw lexical class of a token
type TokenType int

const (
	IDENT     TokenType = iota // identifiers and keywords
	OPERATOR                   // maximal runs of punctuation (:=, =>, ...)
	INT                        // integer literal, base recorded in Token.Base
	FLOAT                      // reserved, the scanner does not produce it yet
	STRING                     // double-quoted literal, escapes decoded
	CHAR                       // single-quoted literal, escapes decoded
	DELIMITER                  // single character from the delimiter set
	COMMENT                    // line or block comment, source text verbatim
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case IDENT:
		return "IDENT"
	case OPERATOR:
		return "OPERATOR"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case CHAR:
		return "CHAR"
	case DELIMITER:
		return "DELIMITER"
	case COMMENT:
		return "COMMENT"
	default:
		return "UNKNOWN"
	}
}

// IntBase is the numeric base of an INT token, selected by its prefix
// (0b, 0o, 0x, or none for decimal).
type IntBase int

const (
	BIN IntBase = iota
	OCT
	DEC
	HEX
)

// String returns the string representation of IntBase
func (b IntBase) String() string {
	switch b {
	case BIN:
		return "binary"
	case OCT:
		return "octal"
	case DEC:
		return "decimal"
	case HEX:
		return "hexadecimal"
	default:
		return "unknown"
	}
}

// Token represents a raw token.
//
// For STRING and CHAR tokens Value holds the decoded characters with escape
// sequences resolved. For INT tokens Value holds the digits without the base
// prefix. For every other type Value is the consumed source slice verbatim.
type Token struct {
	Pos   Range
	Type  TokenType
	Base  IntBase // valid only when Type == INT
	Value string
}

// String returns the string representation of Token
func (t Token) String() string {
	if t.Type == INT {
		return t.Type.String() + "(" + t.Base.String() + "): " + t.Value
	}
	return t.Type.String() + ": " + t.Value
}
