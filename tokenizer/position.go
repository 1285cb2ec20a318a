package tokenizer

import "fmt"

// Position represents a position in the source text.
// Offset, Line and Column are zero-based; String renders them one-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns the position as "line:column", one-based.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Range is the span of source text a token or AST node consumed.
type Range struct {
	Begin Position
	End   Position
}

// String returns the range as "begin -> end".
func (r Range) String() string {
	return fmt.Sprintf("%s -> %s", r.Begin, r.End)
}
