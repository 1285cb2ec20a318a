package parser

import (
	"github.com/shibukawa/ppg/tokenizer"
)

// Node is one alternative of the rule-body union. The parser picks the
// concrete type from the leading token alone: an identifier starts an
// Ident, "$" a Field, "{" a Branch, "(" a ListRule.
type Node interface {
	// Range returns the source span the node consumed.
	Range() tokenizer.Range

	astNode()
}

// List is a parsed "element (delimiter element)* [delimiter] terminator"
// sequence. It records which kinds closed it; the terminator token itself is
// never consumed by the list (see ExpectList).
type List[T any] struct {
	Pos        tokenizer.Range
	Elements   []T
	Delimiter  TokenKind
	Terminator TokenKind
}

// Ident is a single identifier.
type Ident struct {
	Pos   tokenizer.Range
	Token Token
}

// Field is a "$name: rule" binding.
type Field struct {
	Pos  tokenizer.Range
	Name *Ident
	Rule *Ident
}

// Pattern is one "lookahead => body" arm of a Branch.
type Pattern struct {
	Pos   tokenizer.Range
	Ahead *Ident
	Rule  List[Node]
}

// Branch is a "{ pattern; pattern; ... }" block.
type Branch struct {
	Pos      tokenizer.Range
	Patterns List[*Pattern]
}

// ListRule is a "(field, delimiter, terminator)" repetition spec.
type ListRule struct {
	Pos        tokenizer.Range
	Field      *Field
	Delimiter  *Ident
	Terminator *Ident
}

// Def is a top-level "name := rule, rule, ...;" definition.
type Def struct {
	Pos  tokenizer.Range
	Name *Ident
	Rule List[Node]
}

// File is the root of a parsed grammar file.
type File struct {
	Pos         tokenizer.Range
	Definitions List[*Def]
}

func (n *Ident) Range() tokenizer.Range    { return n.Pos }
func (n *Field) Range() tokenizer.Range    { return n.Pos }
func (n *Branch) Range() tokenizer.Range   { return n.Pos }
func (n *ListRule) Range() tokenizer.Range { return n.Pos }

func (n *Ident) astNode()    {}
func (n *Field) astNode()    {}
func (n *Branch) astNode()   {}
func (n *ListRule) astNode() {}
