package parser

import (
	"github.com/shibukawa/ppg/tokenizer"
)

// TokenKind represents the grammar-level kind of a token
type TokenKind int

const (
	NONE TokenKind = iota
	EOF
	IDENT
	OPERATOR
	INT // base carried in Token.Base
	FLOAT
	STRING
	CHAR

	// Reserved symbols
	DEFINE // :=
	ARROW  // =>
	FIELD  // $

	LPAREN // (
	LBRACK // [
	LBRACE // {
	RPAREN // )
	RBRACK // ]
	RBRACE // }

	COLON     // :
	SEMICOLON // ;
	COMMA     // ,
	DOT       // .

	// NEWLINE never reaches the grammar. The scanner either turns it into a
	// synthesized SEMICOLON or drops it.
	NEWLINE
)

// keywords maps reserved literals to their grammar kind. Every delimiter
// character of the raw tokenizer and every multi-character reserved
// operator must appear here.
var keywords = map[string]TokenKind{
	":=": DEFINE,
	"=>": ARROW,
	"$":  FIELD,
	"(":  LPAREN,
	"[":  LBRACK,
	"{":  LBRACE,
	")":  RPAREN,
	"]":  RBRACK,
	"}":  RBRACE,
	":":  COLON,
	";":  SEMICOLON,
	",":  COMMA,
	".":  DOT,
	"\n": NEWLINE,
}

// KeywordLookup returns a fresh literal-to-kind table for one parser.
func KeywordLookup() map[string]TokenKind {
	lookup := make(map[string]TokenKind, len(keywords))
	for literal, kind := range keywords {
		lookup[literal] = kind
	}
	return lookup
}

// String returns the string representation of TokenKind
func (k TokenKind) String() string {
	switch k {
	case NONE:
		return "none"
	case EOF:
		return "EOF"
	case IDENT:
		return "ident"
	case OPERATOR:
		return "operator"
	case INT:
		return "integer"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case CHAR:
		return "char"
	case DEFINE:
		return `":="`
	case ARROW:
		return `"=>"`
	case FIELD:
		return `"$"`
	case LPAREN:
		return `"("`
	case LBRACK:
		return `"["`
	case LBRACE:
		return `"{"`
	case RPAREN:
		return `")"`
	case RBRACK:
		return `"]"`
	case RBRACE:
		return `"}"`
	case COLON:
		return `":"`
	case SEMICOLON:
		return `";"`
	case COMMA:
		return `","`
	case DOT:
		return `"."`
	case NEWLINE:
		return `"\n"`
	default:
		return "unknown"
	}
}

// Token represents a grammar token.
//
// The integer base lives in Base, outside the kind, so comparing Kind with
// == is always a discriminant-only comparison: Match treats 0x1f and 42 as
// the same kind of token.
type Token struct {
	Pos   tokenizer.Range
	Kind  TokenKind
	Base  tokenizer.IntBase // valid only when Kind == INT
	Value string
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Kind.String() + ": " + t.Value
}
