package tokenizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cursor advances over an in-memory buffer one character at a time,
// tracking the current offset, line and column.
type Cursor struct {
	buffer []rune
	pos    Position
}

// NewCursor creates a Cursor over src positioned at its first character.
func NewCursor(src string) *Cursor {
	return &Cursor{buffer: []rune(src)}
}

// Pos returns the current position.
func (c *Cursor) Pos() Position {
	return c.pos
}

// Peek returns the current character without advancing.
func (c *Cursor) Peek() (rune, error) {
	if c.pos.Offset == len(c.buffer) {
		return 0, fmt.Errorf("%s: %w", c.pos, ErrEndOfInput)
	}
	return c.buffer[c.pos.Offset], nil
}

// Next consumes and returns the current character. A newline resets the
// column and increments the line.
func (c *Cursor) Next() (rune, error) {
	ch, err := c.Peek()
	if err != nil {
		return 0, err
	}
	if ch == '\n' {
		c.pos.Line++
		c.pos.Column = 0
	} else {
		c.pos.Column++
	}
	c.pos.Offset++
	return ch, nil
}

// SkipToNextLine advances until a newline has been consumed.
func (c *Cursor) SkipToNextLine() error {
	for {
		ch, err := c.Next()
		if err != nil {
			return err
		}
		if ch == '\n' {
			return nil
		}
	}
}

// rewind moves the cursor back to an earlier position. Only the number
// scanner uses it, to re-examine a digit after a failed base-prefix
// lookahead.
func (c *Cursor) rewind(p Position) {
	c.pos = p
}

// text returns the source slice from begin to the current position.
func (c *Cursor) text(begin Position) string {
	return string(c.buffer[begin.Offset:c.pos.Offset])
}

// Tokenizer classifies runs of characters into raw tokens. The delimiter
// set holds characters that are always their own single-character token;
// the whitespace set is skipped between tokens.
type Tokenizer struct {
	cursor     *Cursor
	delimiters string
	whitespace string
}

// New creates a Tokenizer over src with the given delimiter and whitespace
// character sets.
func New(src, delimiters, whitespace string) *Tokenizer {
	return &Tokenizer{
		cursor:     NewCursor(src),
		delimiters: delimiters,
		whitespace: whitespace,
	}
}

// Pos returns the current cursor position.
func (t *Tokenizer) Pos() Position {
	return t.cursor.Pos()
}

// Scan skips whitespace and returns the next raw token. It fails with
// ErrEndOfInput when the input is exhausted (also mid-token), with
// ErrBadFormat on malformed input, and with ErrUnexpectedCharacter on a
// character that belongs to no lexical class.
func (t *Tokenizer) Scan() (Token, error) {
	if err := t.skipWhitespace(); err != nil {
		return Token{}, err
	}

	begin := t.cursor.Pos()

	ch, err := t.cursor.Peek()
	if err != nil {
		return Token{}, err
	}

	switch {
	case unicode.IsLetter(ch) || ch == '_':
		return t.scanIdent()
	case unicode.IsDigit(ch):
		return t.scanNumber()
	case ch == '"' || ch == '\'':
		return t.scanQuoted(ch)
	// '/' opens a comment even though it is listed in the delimiter set.
	case ch == '/':
		return t.scanComment()
	case strings.ContainsRune(t.delimiters, ch):
		t.cursor.Next()
		return Token{Pos: t.rangeFrom(begin), Type: DELIMITER, Value: t.cursor.text(begin)}, nil
	case isPunct(ch):
		return t.scanOperator()
	default:
		return Token{}, fmt.Errorf("%s: %w: %q", begin, ErrUnexpectedCharacter, ch)
	}
}

// AllTokens scans the remaining input into a slice, stopping at the end of
// input (for debugging).
func (t *Tokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)
	for {
		token, err := t.Scan()
		if err != nil {
			if errors.Is(err, ErrEndOfInput) {
				return tokens, nil
			}
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}

func (t *Tokenizer) rangeFrom(begin Position) Range {
	return Range{Begin: begin, End: t.cursor.Pos()}
}

func (t *Tokenizer) skipWhitespace() error {
	for {
		ch, err := t.cursor.Peek()
		if err != nil {
			return err
		}
		if !strings.ContainsRune(t.whitespace, ch) {
			return nil
		}
		t.cursor.Next()
	}
}

// scanIdent reads a maximal run of letters, digits and underscores.
func (t *Tokenizer) scanIdent() (Token, error) {
	begin := t.cursor.Pos()

	for {
		ch, err := t.cursor.Peek()
		if err != nil {
			return Token{}, err
		}
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			break
		}
		t.cursor.Next()
	}

	return Token{Pos: t.rangeFrom(begin), Type: IDENT, Value: t.cursor.text(begin)}, nil
}

// scanNumber reads an integer literal. A leading '0' must be followed by a
// base prefix (x, o or b); any other digit starts a decimal run.
func (t *Tokenizer) scanNumber() (Token, error) {
	begin := t.cursor.Pos()

	ch, err := t.cursor.Next()
	if err != nil {
		return Token{}, err
	}

	if ch != '0' {
		t.cursor.rewind(begin)
		return t.scanDigits(DEC, isDecDigit)
	}

	prefix, err := t.cursor.Next()
	if err != nil {
		return Token{}, err
	}
	switch prefix {
	case 'x':
		return t.scanDigits(HEX, isHexDigit)
	case 'o':
		return t.scanDigits(OCT, isOctDigit)
	case 'b':
		return t.scanDigits(BIN, isBinDigit)
	default:
		return Token{}, fmt.Errorf("%s: %w: invalid number prefix", t.rangeFrom(begin), ErrBadFormat)
	}
}

// scanDigits reads a maximal run of digits accepted for the base. The token
// value excludes the base prefix.
func (t *Tokenizer) scanDigits(base IntBase, accept func(rune) bool) (Token, error) {
	begin := t.cursor.Pos()

	for {
		ch, err := t.cursor.Peek()
		if err != nil {
			return Token{}, err
		}
		if !accept(ch) {
			break
		}
		t.cursor.Next()
	}

	return Token{Pos: t.rangeFrom(begin), Type: INT, Base: base, Value: t.cursor.text(begin)}, nil
}

// scanQuoted reads a string or char literal, decoding escape sequences.
// The token value holds the decoded characters without the quotes.
func (t *Tokenizer) scanQuoted(quote rune) (Token, error) {
	begin := t.cursor.Pos()

	t.cursor.Next() // opening quote

	var value strings.Builder
	for {
		ch, err := t.cursor.Next()
		if err != nil {
			return Token{}, err
		}
		switch {
		case ch == '\\':
			esc, err := t.scanEscape(quote)
			if err != nil {
				return Token{}, err
			}
			value.WriteRune(esc)
		case ch == quote:
			typ := STRING
			if quote == '\'' {
				typ = CHAR
			}
			return Token{Pos: t.rangeFrom(begin), Type: typ, Value: value.String()}, nil
		default:
			value.WriteRune(ch)
		}
	}
}

// scanEscape decodes one escape sequence, the leading backslash already
// consumed.
func (t *Tokenizer) scanEscape(quote rune) (rune, error) {
	begin := t.cursor.Pos()

	ch, err := t.cursor.Next()
	if err != nil {
		return 0, err
	}
	switch ch {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '\\':
		return '\\', nil
	case 'x':
		return t.scanCodePoint(2)
	case 'u':
		return t.scanCodePoint(4)
	case 'U':
		return t.scanCodePoint(8)
	}
	if ch == quote {
		return quote, nil
	}
	return 0, fmt.Errorf("%s: %w: unknown escape %q", t.rangeFrom(begin), ErrBadFormat, ch)
}

// scanCodePoint reads a fixed number of hex digits and decodes them into a
// single code point.
func (t *Tokenizer) scanCodePoint(digits int) (rune, error) {
	begin := t.cursor.Pos()

	seq := make([]rune, 0, digits)
	for i := 0; i < digits; i++ {
		ch, err := t.cursor.Next()
		if err != nil {
			return 0, err
		}
		seq = append(seq, ch)
	}

	code, err := strconv.ParseUint(string(seq), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: invalid code point %q", t.rangeFrom(begin), ErrBadFormat, string(seq))
	}
	if !utf8.ValidRune(rune(code)) {
		return 0, fmt.Errorf("%s: %w: invalid code point %q", t.rangeFrom(begin), ErrBadFormat, string(seq))
	}

	return rune(code), nil
}

// scanComment reads a line comment ("//", through end of line, newline
// included) or a block comment ("/*" through "*/").
func (t *Tokenizer) scanComment() (Token, error) {
	begin := t.cursor.Pos()

	t.cursor.Next() // leading '/'

	ch, err := t.cursor.Next()
	if err != nil {
		return Token{}, err
	}
	switch ch {
	case '/':
		if err := t.cursor.SkipToNextLine(); err != nil {
			return Token{}, err
		}
	case '*':
		if err := t.skipBlockComment(); err != nil {
			return Token{}, err
		}
	default:
		return Token{}, fmt.Errorf("%s: %w: malformed comment", t.rangeFrom(begin), ErrBadFormat)
	}

	return Token{Pos: t.rangeFrom(begin), Type: COMMENT, Value: t.cursor.text(begin)}, nil
}

// skipBlockComment advances until "*/" has been consumed. A '*' that is not
// followed by '/' is left for the next iteration, so "**/" closes the
// comment.
func (t *Tokenizer) skipBlockComment() error {
	for {
		ch, err := t.cursor.Next()
		if err != nil {
			return err
		}
		if ch != '*' {
			continue
		}
		next, err := t.cursor.Peek()
		if err != nil {
			return err
		}
		if next == '/' {
			t.cursor.Next()
			return nil
		}
	}
}

// scanOperator reads a maximal run of punctuation characters, stopping
// before a quote, a delimiter, or a non-punctuation character. This is what
// lets ":=" and "=>" come out as single tokens.
func (t *Tokenizer) scanOperator() (Token, error) {
	begin := t.cursor.Pos()

	for {
		ch, err := t.cursor.Peek()
		if err != nil {
			return Token{}, err
		}
		if ch == '"' || ch == '\'' || !isPunct(ch) || strings.ContainsRune(t.delimiters, ch) {
			break
		}
		t.cursor.Next()
	}

	return Token{Pos: t.rangeFrom(begin), Type: OPERATOR, Value: t.cursor.text(begin)}, nil
}

// isPunct reports whether ch is ASCII punctuation.
func isPunct(ch rune) bool {
	switch {
	case ch >= '!' && ch <= '/',
		ch >= ':' && ch <= '@',
		ch >= '[' && ch <= '`',
		ch >= '{' && ch <= '~':
		return true
	default:
		return false
	}
}

func isBinDigit(ch rune) bool { return ch == '0' || ch == '1' }
func isOctDigit(ch rune) bool { return '0' <= ch && ch <= '7' }
func isDecDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
func isHexDigit(ch rune) bool { return '0' <= ch && ch <= '9' || 'a' <= ch && ch <= 'f' }
