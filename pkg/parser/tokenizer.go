package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlparse/pkg/dialect"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// Tokenizer turns SQL text into the full token sequence, whitespace and
// comments included. Scanning is all-or-nothing: the first invalid
// construct aborts with a positioned TokenizerError.
type Tokenizer struct {
	src  []rune
	pos  int // index of current rune in src
	line int // current line number (1-based)
	col  int // current column number (1-based)

	dialect *dialect.Dialect
}

// NewTokenizer creates a Tokenizer for the given input and dialect.
func NewTokenizer(input string, d *dialect.Dialect) *Tokenizer {
	return &Tokenizer{
		src:     []rune(input),
		line:    1,
		col:     1,
		dialect: d,
	}
}

// Tokenize scans the whole input under the given dialect. The returned
// slice ends with an EOF token.
func Tokenize(input string, d *dialect.Dialect) ([]token.Token, error) {
	t := NewTokenizer(input, d)
	return t.Tokenize()
}

// Tokenize scans the remaining input to EOF.
func (t *Tokenizer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// ch returns the current rune, or 0 at end of input.
func (t *Tokenizer) ch() rune {
	if t.pos >= len(t.src) {
		return 0
	}
	return t.src[t.pos]
}

// peek returns the rune n positions ahead without advancing.
func (t *Tokenizer) peek(n int) rune {
	if t.pos+n >= len(t.src) {
		return 0
	}
	return t.src[t.pos+n]
}

// advance consumes the current rune and updates line/column tracking.
func (t *Tokenizer) advance() {
	if t.pos >= len(t.src) {
		return
	}
	if t.src[t.pos] == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	t.pos++
}

func (t *Tokenizer) currentPos() token.Position {
	return token.Position{Line: t.line, Column: t.col, Offset: t.pos}
}

func (t *Tokenizer) errorAt(pos token.Position, msg string) error {
	return &TokenizerError{Pos: pos, Message: msg}
}

// simple emits a single-rune token and consumes it.
func (t *Tokenizer) simple(typ token.Type, pos token.Position) token.Token {
	text := string(t.ch())
	t.advance()
	return token.Token{Type: typ, Text: text, Pos: pos}
}

// pair emits a two-rune token and consumes both runes.
func (t *Tokenizer) pair(typ token.Type, pos token.Position) token.Token {
	text := string(t.ch()) + string(t.peek(1))
	t.advance()
	t.advance()
	return token.Token{Type: typ, Text: text, Pos: pos}
}

func (t *Tokenizer) next() (token.Token, error) {
	pos := t.currentPos()
	ch := t.ch()

	switch {
	case ch == 0:
		return token.Token{Type: token.EOF, Pos: pos}, nil

	case unicode.IsSpace(ch):
		start := t.pos
		for unicode.IsSpace(t.ch()) {
			t.advance()
		}
		return token.Token{Type: token.WHITESPACE, Text: string(t.src[start:t.pos]), Pos: pos}, nil

	case ch == '-' && t.peek(1) == '-':
		start := t.pos
		for t.ch() != 0 && t.ch() != '\n' {
			t.advance()
		}
		return token.Token{Type: token.LINE_COMMENT, Text: string(t.src[start:t.pos]), Pos: pos}, nil

	case ch == '/' && t.peek(1) == '*':
		return t.blockComment(pos)

	case ch == '\'':
		text, err := t.quotedString(pos)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.STRING, Text: text, Pos: pos}, nil

	// National and hex string literals: N'...', X'...'.
	case (ch == 'N' || ch == 'n') && t.peek(1) == '\'':
		t.advance()
		text, err := t.quotedString(pos)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.NSTRING, Text: text, Pos: pos}, nil

	case (ch == 'X' || ch == 'x') && t.peek(1) == '\'':
		t.advance()
		text, err := t.quotedString(pos)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.HEXSTRING, Text: text, Pos: pos}, nil

	case t.dialect.IsDelimitedIdentifierStart(ch):
		return t.delimitedIdentifier(pos)

	// Digits win over identifier-start rules so dialects that allow
	// digit-leading identifiers still tokenize plain numbers.
	case isDigit(ch) || (ch == '.' && isDigit(t.peek(1))):
		return t.number(pos), nil

	case t.dialect.IsIdentifierStart(ch):
		start := t.pos
		for t.ch() != 0 && t.dialect.IsIdentifierPart(t.ch()) {
			t.advance()
		}
		value := string(t.src[start:t.pos])
		return token.Token{
			Type: token.WORD,
			Text: value,
			Word: token.Word{Value: value, Keyword: keyword.Lookup(value)},
			Pos:  pos,
		}, nil
	}

	switch ch {
	case '+':
		return t.simple(token.PLUS, pos), nil
	case '-':
		if t.peek(1) == '>' {
			if t.peek(2) == '>' {
				tok := t.pair(token.LONGARROW, pos)
				t.advance()
				tok.Text = "->>"
				return tok, nil
			}
			return t.pair(token.ARROW, pos), nil
		}
		return t.simple(token.MINUS, pos), nil
	case '*':
		return t.simple(token.STAR, pos), nil
	case '/':
		return t.simple(token.SLASH, pos), nil
	case '%':
		return t.simple(token.PERCENT, pos), nil
	case '|':
		if t.peek(1) == '|' {
			return t.pair(token.CONCAT, pos), nil
		}
		return t.simple(token.PIPE, pos), nil
	case '=':
		if t.peek(1) == '>' {
			return t.pair(token.RARROW, pos), nil
		}
		return t.simple(token.EQ, pos), nil
	case '!':
		if t.peek(1) == '=' {
			return t.pair(token.NEQ, pos), nil
		}
		return token.Token{}, t.errorAt(pos, "unexpected character '!'")
	case '<':
		switch t.peek(1) {
		case '=':
			if t.peek(2) == '>' {
				tok := t.pair(token.SPACESHIP, pos)
				t.advance()
				tok.Text = "<=>"
				return tok, nil
			}
			return t.pair(token.LTEQ, pos), nil
		case '>':
			return t.pair(token.NEQ, pos), nil
		default:
			return t.simple(token.LT, pos), nil
		}
	case '>':
		if t.peek(1) == '=' {
			return t.pair(token.GTEQ, pos), nil
		}
		return t.simple(token.GT, pos), nil
	case '&':
		return t.simple(token.AMP, pos), nil
	case '^':
		return t.simple(token.CARET, pos), nil
	case '~':
		return t.simple(token.TILDE, pos), nil
	case '.':
		return t.simple(token.DOT, pos), nil
	case ',':
		return t.simple(token.COMMA, pos), nil
	case ';':
		return t.simple(token.SEMICOLON, pos), nil
	case '(':
		return t.simple(token.LPAREN, pos), nil
	case ')':
		return t.simple(token.RPAREN, pos), nil
	case '[':
		return t.simple(token.LBRACKET, pos), nil
	case ']':
		return t.simple(token.RBRACKET, pos), nil
	case '{':
		return t.simple(token.LBRACE, pos), nil
	case '}':
		return t.simple(token.RBRACE, pos), nil
	case '?':
		return t.simple(token.PLACEHOLDER, pos), nil
	case '$':
		t.advance()
		start := t.pos
		for isDigit(t.ch()) || t.dialect.IsIdentifierPart(t.ch()) {
			t.advance()
		}
		return token.Token{Type: token.PLACEHOLDER, Text: "$" + string(t.src[start:t.pos]), Pos: pos}, nil
	case ':':
		if t.peek(1) == ':' {
			return t.pair(token.DCOLON, pos), nil
		}
		if t.dialect.IsIdentifierStart(t.peek(1)) {
			t.advance()
			start := t.pos
			for t.ch() != 0 && t.dialect.IsIdentifierPart(t.ch()) {
				t.advance()
			}
			return token.Token{Type: token.PLACEHOLDER, Text: ":" + string(t.src[start:t.pos]), Pos: pos}, nil
		}
		return t.simple(token.COLON, pos), nil
	}

	return token.Token{}, t.errorAt(pos, fmt.Sprintf("unexpected character %q", ch))
}

// blockComment scans /* ... */ honoring nesting.
func (t *Tokenizer) blockComment(pos token.Position) (token.Token, error) {
	start := t.pos
	t.advance() // skip '/'
	t.advance() // skip '*'

	depth := 1
	for t.ch() != 0 {
		if t.ch() == '*' && t.peek(1) == '/' {
			t.advance()
			t.advance()
			depth--
			if depth == 0 {
				return token.Token{Type: token.BLOCK_COMMENT, Text: string(t.src[start:t.pos]), Pos: pos}, nil
			}
			continue
		}
		if t.ch() == '/' && t.peek(1) == '*' {
			t.advance()
			t.advance()
			depth++
			continue
		}
		t.advance()
	}
	return token.Token{}, t.errorAt(pos, errUnterminatedComment)
}

// quotedString scans a single-quoted string starting at the opening
// quote. Doubled quotes always escape; backslash escapes only when the
// dialect enables them.
func (t *Tokenizer) quotedString(pos token.Position) (string, error) {
	t.advance() // skip opening quote

	var sb strings.Builder
	for t.ch() != 0 {
		switch {
		case t.ch() == '\'':
			if t.peek(1) == '\'' {
				sb.WriteByte('\'')
				t.advance()
				t.advance()
				continue
			}
			t.advance() // skip closing quote
			return sb.String(), nil
		case t.ch() == '\\' && t.dialect.Settings.BackslashEscapes:
			next := t.peek(1)
			if next == 0 {
				return "", t.errorAt(pos, errUnterminatedString)
			}
			sb.WriteRune(unescape(next))
			t.advance()
			t.advance()
		default:
			sb.WriteRune(t.ch())
			t.advance()
		}
	}
	return "", t.errorAt(pos, errUnterminatedString)
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return ch
	}
}

// delimitedIdentifier scans a quoted identifier. The closing delimiter
// doubled inside the identifier escapes it (except for brackets, which
// have no escape form in MSSQL).
func (t *Tokenizer) delimitedIdentifier(pos token.Position) (token.Token, error) {
	open := t.ch()
	close := closingQuote(open)
	t.advance() // skip opening delimiter

	var sb strings.Builder
	for t.ch() != 0 {
		if t.ch() == close {
			if open != '[' && t.peek(1) == close {
				sb.WriteRune(close)
				t.advance()
				t.advance()
				continue
			}
			t.advance() // skip closing delimiter
			return token.Token{
				Type: token.WORD,
				Text: sb.String(),
				Word: token.Word{Value: sb.String(), Quote: token.QuoteStyle(open), Keyword: keyword.None},
				Pos:  pos,
			}, nil
		}
		sb.WriteRune(t.ch())
		t.advance()
	}
	return token.Token{}, t.errorAt(pos, errUnterminatedIdent)
}

func closingQuote(open rune) rune {
	if open == '[' {
		return ']'
	}
	return open
}

// number scans an integer, decimal, or scientific literal. The raw
// lexeme is preserved so rendering does not normalize it.
func (t *Tokenizer) number(pos token.Position) token.Token {
	start := t.pos
	for isDigit(t.ch()) {
		t.advance()
	}
	if t.ch() == '.' && isDigit(t.peek(1)) {
		t.advance()
		for isDigit(t.ch()) {
			t.advance()
		}
	} else if t.ch() == '.' && t.pos > start {
		// Trailing dot after digits belongs to the number: "1."
		t.advance()
	}
	if t.ch() == 'e' || t.ch() == 'E' {
		// Only take the exponent when digits actually follow.
		n := 1
		if t.peek(1) == '+' || t.peek(1) == '-' {
			n = 2
		}
		if isDigit(t.peek(n)) {
			for i := 0; i <= n; i++ {
				t.advance()
			}
			for isDigit(t.ch()) {
				t.advance()
			}
		}
	}
	return token.Token{Type: token.NUMBER, Text: string(t.src[start:t.pos]), Pos: pos}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
