package parser

import (
	"github.com/shibukawa/ppg/tokenizer"
)

// Parse parses one grammar source into a File.
func Parse(src string) (*File, error) {
	p := NewParser(src)
	if _, err := p.Scan(); err != nil {
		return nil, err
	}
	return ExpectFile(p)
}

// ExpectList parses "element (delimiter element)* [delimiter] terminator".
//
// It stops at the terminator without consuming it; the caller consumes the
// terminator itself, exactly once, at its own nesting depth. That is what
// lets an inner list and an outer list share one punctuation mark, as in
//
//	{
//	  a, b, c;
//	  x, y, z;
//	   ^     ^ outer list delimiter, inner list terminator
//	     inner list delimiter
//	}
//	^ outer list terminator
//
// A trailing delimiter before the terminator is legal.
func ExpectList[T any](p *Parser, delimiter, terminator TokenKind, expect func(*Parser) (T, error)) (List[T], error) {
	begin := p.Token.Pos.Begin
	list := List[T]{
		Delimiter:  delimiter,
		Terminator: terminator,
	}

	for {
		if p.Token.Kind == terminator {
			// () <- terminator
			// (...,...,) <- terminator
			break
		}
		element, err := expect(p)
		if err != nil {
			return list, err
		}
		list.Elements = append(list.Elements, element)

		if p.Token.Kind == delimiter {
			// (...,..., <- delimiter
			if _, err := p.Scan(); err != nil {
				return list, err
			}
		} else {
			// (...,...) <- terminator
			if err := p.Match(terminator); err != nil {
				return list, err
			}
			break
		}
	}

	list.Pos = tokenizer.Range{Begin: begin, End: p.lastEnd}
	if len(list.Elements) == 0 {
		list.Pos.End = begin
	}
	return list, nil
}

// ExpectIdent parses a single identifier.
func ExpectIdent(p *Parser) (*Ident, error) {
	if err := p.Match(IDENT); err != nil {
		return nil, err
	}
	token, err := p.TakeAndScan()
	if err != nil {
		return nil, err
	}
	return &Ident{Pos: token.Pos, Token: token}, nil
}

// ExpectField parses "$name: rule".
func ExpectField(p *Parser) (*Field, error) {
	begin := p.Token.Pos.Begin

	if err := p.MatchAndScan(FIELD); err != nil {
		return nil, err
	}
	name, err := ExpectIdent(p)
	if err != nil {
		return nil, err
	}
	if err := p.MatchAndScan(COLON); err != nil {
		return nil, err
	}
	rule, err := ExpectIdent(p)
	if err != nil {
		return nil, err
	}

	return &Field{
		Pos:  tokenizer.Range{Begin: begin, End: p.lastEnd},
		Name: name,
		Rule: rule,
	}, nil
}

// ExpectPattern parses "lookahead => node, node, ...". The closing ";" is
// the delimiter of the enclosing Branch pattern list and stays unconsumed.
func ExpectPattern(p *Parser) (*Pattern, error) {
	begin := p.Token.Pos.Begin

	ahead, err := ExpectIdent(p)
	if err != nil {
		return nil, err
	}
	if err := p.MatchAndScan(ARROW); err != nil {
		return nil, err
	}
	rule, err := ExpectList(p, COMMA, SEMICOLON, ExpectNode)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		Pos:   tokenizer.Range{Begin: begin, End: p.lastEnd},
		Ahead: ahead,
		Rule:  rule,
	}, nil
}

// ExpectBranch parses "{ pattern; pattern; ... }".
func ExpectBranch(p *Parser) (*Branch, error) {
	begin := p.Token.Pos.Begin

	if err := p.MatchAndScan(LBRACE); err != nil {
		return nil, err
	}
	patterns, err := ExpectList(p, SEMICOLON, RBRACE, ExpectPattern)
	if err != nil {
		return nil, err
	}
	// The closing brace, left by the pattern list.
	if _, err := p.Scan(); err != nil {
		return nil, err
	}

	return &Branch{
		Pos:      tokenizer.Range{Begin: begin, End: p.lastEnd},
		Patterns: patterns,
	}, nil
}

// ExpectListRule parses "(field, delimiter, terminator)".
func ExpectListRule(p *Parser) (*ListRule, error) {
	begin := p.Token.Pos.Begin

	if err := p.MatchAndScan(LPAREN); err != nil {
		return nil, err
	}
	field, err := ExpectField(p)
	if err != nil {
		return nil, err
	}
	if err := p.MatchAndScan(COMMA); err != nil {
		return nil, err
	}
	delimiter, err := ExpectIdent(p)
	if err != nil {
		return nil, err
	}
	if err := p.MatchAndScan(COMMA); err != nil {
		return nil, err
	}
	terminator, err := ExpectIdent(p)
	if err != nil {
		return nil, err
	}
	if err := p.MatchAndScan(RPAREN); err != nil {
		return nil, err
	}

	return &ListRule{
		Pos:        tokenizer.Range{Begin: begin, End: p.lastEnd},
		Field:      field,
		Delimiter:  delimiter,
		Terminator: terminator,
	}, nil
}

// ExpectNode parses one rule-body node, dispatching on the lookahead kind.
func ExpectNode(p *Parser) (Node, error) {
	var (
		node Node
		err  error
	)
	switch p.Token.Kind {
	case IDENT:
		node, err = ExpectIdent(p)
	case FIELD:
		node, err = ExpectField(p)
	case LBRACE:
		node, err = ExpectBranch(p)
	case LPAREN:
		node, err = ExpectListRule(p)
	default:
		return nil, unexpectedToken(NONE, p.Token)
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}

// ExpectDef parses "name := node, node, ...". The closing ";" is the
// delimiter of the enclosing definition list and stays unconsumed.
func ExpectDef(p *Parser) (*Def, error) {
	begin := p.Token.Pos.Begin

	name, err := ExpectIdent(p)
	if err != nil {
		return nil, err
	}
	if err := p.MatchAndScan(DEFINE); err != nil {
		return nil, err
	}
	rule, err := ExpectList(p, COMMA, SEMICOLON, ExpectNode)
	if err != nil {
		return nil, err
	}

	return &Def{
		Pos:  tokenizer.Range{Begin: begin, End: p.lastEnd},
		Name: name,
		Rule: rule,
	}, nil
}

// ExpectFile parses the whole input as a ";"-separated definition list
// terminated by the end of input.
func ExpectFile(p *Parser) (*File, error) {
	begin := p.Token.Pos.Begin

	definitions, err := ExpectList(p, SEMICOLON, EOF, ExpectDef)
	if err != nil {
		return nil, err
	}

	return &File{
		Pos:         tokenizer.Range{Begin: begin, End: p.lastEnd},
		Definitions: definitions,
	}, nil
}
