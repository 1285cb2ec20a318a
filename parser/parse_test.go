package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/ppg/tokenizer"
)

func primedParser(t *testing.T, src string) *Parser {
	t.Helper()

	p := NewParser(src)
	_, err := p.Scan()
	assert.NoError(t, err)
	return p
}

func TestExpectListStopsAtTerminator(t *testing.T) {
	p := primedParser(t, "a; b; c;")

	list, err := ExpectList(p, SEMICOLON, EOF, ExpectIdent)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(list.Elements))
	assert.Equal(t, SEMICOLON, list.Delimiter)
	assert.Equal(t, EOF, list.Terminator)

	// The trailing ";" went to the delimiter branch; the terminator itself
	// is still the current token.
	assert.Equal(t, EOF, p.Token.Kind)
}

func TestExpectListTrailingDelimiter(t *testing.T) {
	p := primedParser(t, "a, b,;")

	list, err := ExpectList(p, COMMA, SEMICOLON, ExpectIdent)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(list.Elements))
	assert.Equal(t, SEMICOLON, p.Token.Kind)
}

func TestExpectListEmpty(t *testing.T) {
	p := primedParser(t, ";")

	list, err := ExpectList(p, COMMA, SEMICOLON, ExpectIdent)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(list.Elements))
	assert.Equal(t, list.Pos.Begin, list.Pos.End)
	assert.Equal(t, SEMICOLON, p.Token.Kind)
}

func TestExpectListBadTerminator(t *testing.T) {
	p := primedParser(t, "a b")

	_, err := ExpectList(p, COMMA, SEMICOLON, ExpectIdent)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
}

func TestExpectBranchSharedPunctuation(t *testing.T) {
	p := primedParser(t, "{ a => x, y; b => z; }\n")

	branch, err := ExpectBranch(p)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(branch.Patterns.Elements))

	// The ";" closing each pattern body is the same token the pattern list
	// then consumes as its delimiter.
	first := branch.Patterns.Elements[0]
	assert.Equal(t, "a", first.Ahead.Token.Value)
	assert.Equal(t, 2, len(first.Rule.Elements))
	assert.Equal(t, SEMICOLON, first.Rule.Terminator)

	second := branch.Patterns.Elements[1]
	assert.Equal(t, "b", second.Ahead.Token.Value)
	assert.Equal(t, 1, len(second.Rule.Elements))

	// "}" was consumed exactly once, by the branch; the newline behind it
	// became the next statement terminator.
	assert.Equal(t, SEMICOLON, p.Token.Kind)
}

func TestExpectField(t *testing.T) {
	p := primedParser(t, "$name: Ident\n")

	field, err := ExpectField(p)
	assert.NoError(t, err)
	assert.Equal(t, "name", field.Name.Token.Value)
	assert.Equal(t, "Ident", field.Rule.Token.Value)
	assert.Equal(t, tokenizer.Position{}, field.Pos.Begin)
}

func TestExpectNodeDispatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, node Node)
	}{
		{
			name:  "identifier",
			input: "x\n",
			check: func(t *testing.T, node Node) {
				ident, ok := node.(*Ident)
				assert.True(t, ok)
				assert.Equal(t, "x", ident.Token.Value)
			},
		},
		{
			name:  "field",
			input: "$x: y\n",
			check: func(t *testing.T, node Node) {
				_, ok := node.(*Field)
				assert.True(t, ok)
			},
		},
		{
			name:  "branch",
			input: "{ a => x; }\n",
			check: func(t *testing.T, node Node) {
				_, ok := node.(*Branch)
				assert.True(t, ok)
			},
		},
		{
			name:  "list rule",
			input: "($x: y, d, r)\n",
			check: func(t *testing.T, node Node) {
				_, ok := node.(*ListRule)
				assert.True(t, ok)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := primedParser(t, test.input)
			node, err := ExpectNode(p)
			assert.NoError(t, err)
			test.check(t, node)
		})
	}
}

func TestExpectNodeUnexpectedToken(t *testing.T) {
	p := primedParser(t, ":= x\n")

	_, err := ExpectNode(p)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
}

func TestParseDefinition(t *testing.T) {
	file, err := Parse("Rule := $name: Ident, $body: Block;\n")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(file.Definitions.Elements))

	def := file.Definitions.Elements[0]
	assert.Equal(t, "Rule", def.Name.Token.Value)
	assert.Equal(t, 2, len(def.Rule.Elements))

	name, ok := def.Rule.Elements[0].(*Field)
	assert.True(t, ok)
	assert.Equal(t, "name", name.Name.Token.Value)
	assert.Equal(t, "Ident", name.Rule.Token.Value)

	body, ok := def.Rule.Elements[1].(*Field)
	assert.True(t, ok)
	assert.Equal(t, "body", body.Name.Token.Value)
	assert.Equal(t, "Block", body.Rule.Token.Value)
}

func TestParseListRule(t *testing.T) {
	file, err := Parse("R := ($items: Expr, comma, rparen);\n")
	assert.NoError(t, err)

	def := file.Definitions.Elements[0]
	rule, ok := def.Rule.Elements[0].(*ListRule)
	assert.True(t, ok)
	assert.Equal(t, "items", rule.Field.Name.Token.Value)
	assert.Equal(t, "Expr", rule.Field.Rule.Token.Value)
	assert.Equal(t, "comma", rule.Delimiter.Token.Value)
	assert.Equal(t, "rparen", rule.Terminator.Token.Value)
}

func TestParseAutoTerminatedDefinition(t *testing.T) {
	src := "Stmt := $kw: Ident, {\n" +
		"\tIf => cond, body;\n" +
		"\tWhile => cond, body;\n" +
		"}\n"

	file, err := Parse(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(file.Definitions.Elements))

	def := file.Definitions.Elements[0]
	branch, ok := def.Rule.Elements[1].(*Branch)
	assert.True(t, ok)
	assert.Equal(t, 2, len(branch.Patterns.Elements))
}

func TestParseMultipleDefinitions(t *testing.T) {
	file, err := Parse("A := x;\nB := y;\n")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(file.Definitions.Elements))
	assert.Equal(t, "A", file.Definitions.Elements[0].Name.Token.Value)
	assert.Equal(t, "B", file.Definitions.Elements[1].Name.Token.Value)
}

func TestParseRanges(t *testing.T) {
	file, err := Parse("Rule := $name: Ident, $body: Block;\n")
	assert.NoError(t, err)

	def := file.Definitions.Elements[0]
	assert.Equal(t, 0, def.Pos.Begin.Offset)
	// The definition ends after "Block"; the ";" belongs to the file list.
	assert.Equal(t, "Rule := $name: Ident, $body: Block", spanOf(t, "Rule := $name: Ident, $body: Block;\n", def.Pos))

	body := def.Rule.Elements[1].(*Field)
	assert.Equal(t, "$body: Block", spanOf(t, "Rule := $name: Ident, $body: Block;\n", body.Pos))
}

func spanOf(t *testing.T, src string, r tokenizer.Range) string {
	t.Helper()
	return src[r.Begin.Offset:r.End.Offset]
}

func TestParseBadNumber(t *testing.T) {
	_, err := Parse("Rule := 0z;\n")
	assert.True(t, errors.Is(err, tokenizer.ErrBadFormat))
}

func TestParseUnexpectedToken(t *testing.T) {
	_, err := Parse("Rule = x;\n")
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
}

func TestParseTestdata(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "expr.ppg"))
	assert.NoError(t, err)

	file, parseErr := Parse(string(src))
	assert.NoError(t, parseErr)
	assert.Equal(t, 3, len(file.Definitions.Elements))

	names := make([]string, 0, 3)
	for _, def := range file.Definitions.Elements {
		names = append(names, def.Name.Token.Value)
	}
	assert.Equal(t, []string{"Expr", "Term", "Factor"}, names)
}
