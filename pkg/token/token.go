// Package token defines the lexical token types produced by the tokenizer.
//
// A token carries no semantic meaning beyond its lexical class. Whitespace
// and comments are kept in the token stream so formatters can reconstruct
// the source faithfully; the parser skips over them.
package token

import (
	"fmt"

	"github.com/leapstack-labs/sqlparse/pkg/keyword"
)

// Type classifies a lexical token.
type Type int32

//nolint:revive // ALL_CAPS names follow SQL token conventions used across the codebase.
const (
	// Special tokens
	EOF Type = iota

	// Literals and words
	WORD        // identifier or keyword, possibly quoted
	NUMBER      // 123, 45.67, 1e10
	STRING      // 'hello'
	NSTRING     // N'hello'
	HEXSTRING   // X'deadbeef'
	PLACEHOLDER // ?, $1, :name

	// Trivia (kept in the stream, skipped by the parser)
	WHITESPACE
	LINE_COMMENT
	BLOCK_COMMENT

	// Operators and punctuation
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	CONCAT    // ||
	EQ        // =
	NEQ       // != or <>
	LT        // <
	GT        // >
	LTEQ      // <=
	GTEQ      // >=
	SPACESHIP // <=>
	AMP       // &
	PIPE      // |
	CARET     // ^
	TILDE     // ~
	DOT       // .
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	DCOLON    // ::
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	LBRACE    // {
	RBRACE    // }
	ARROW     // ->
	LONGARROW // ->>
	RARROW    // =>
)

// typeNames maps token types to display names used in error messages.
var typeNames = map[Type]string{
	EOF:           "EOF",
	WORD:          "WORD",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	NSTRING:       "NSTRING",
	HEXSTRING:     "HEXSTRING",
	PLACEHOLDER:   "PLACEHOLDER",
	WHITESPACE:    "WHITESPACE",
	LINE_COMMENT:  "LINE_COMMENT",
	BLOCK_COMMENT: "BLOCK_COMMENT",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	CONCAT:        "||",
	EQ:            "=",
	NEQ:           "<>",
	LT:            "<",
	GT:            ">",
	LTEQ:          "<=",
	GTEQ:          ">=",
	SPACESHIP:     "<=>",
	AMP:           "&",
	PIPE:          "|",
	CARET:         "^",
	TILDE:         "~",
	DOT:           ".",
	COMMA:         ",",
	SEMICOLON:     ";",
	COLON:         ":",
	DCOLON:        "::",
	LPAREN:        "(",
	RPAREN:        ")",
	LBRACKET:      "[",
	RBRACKET:      "]",
	LBRACE:        "{",
	RBRACE:        "}",
	ARROW:         "->",
	LONGARROW:     "->>",
	RARROW:        "=>",
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// QuoteStyle records how a Word was quoted in the source.
type QuoteStyle byte

// Quote styles for delimited identifiers.
const (
	QuoteNone     QuoteStyle = 0
	QuoteDouble   QuoteStyle = '"'
	QuoteBacktick QuoteStyle = '`'
	QuoteBracket  QuoteStyle = '['
	QuoteSingle   QuoteStyle = '\''
)

// Word is the payload of a WORD token: the raw text, the recognized keyword
// (keyword.None for plain identifiers), and the quote style used in the
// source so the identifier can be reconstructed faithfully.
type Word struct {
	Value   string
	Quote   QuoteStyle
	Keyword keyword.Keyword
}

// String renders the word as it appeared in the source.
func (w Word) String() string {
	switch w.Quote {
	case QuoteDouble:
		return `"` + w.Value + `"`
	case QuoteBacktick:
		return "`" + w.Value + "`"
	case QuoteBracket:
		return "[" + w.Value + "]"
	default:
		return w.Value
	}
}

// Token is a classified lexical unit with its source position.
type Token struct {
	Type Type
	// Text holds the token's value: the unescaped string contents for
	// STRING/NSTRING/HEXSTRING, the raw lexeme for NUMBER and PLACEHOLDER,
	// and the raw run for WHITESPACE and comments.
	Text string
	// Word is set when Type == WORD.
	Word Word
	Pos  Position
}

// String renders the token the way error messages report it.
func (t Token) String() string {
	switch t.Type {
	case WORD:
		return t.Word.String()
	case NUMBER, PLACEHOLDER, WHITESPACE, LINE_COMMENT, BLOCK_COMMENT:
		return t.Text
	case STRING:
		return "'" + t.Text + "'"
	case NSTRING:
		return "N'" + t.Text + "'"
	case HEXSTRING:
		return "X'" + t.Text + "'"
	case EOF:
		return "EOF"
	default:
		return t.Type.String()
	}
}

// IsKeyword reports whether the token is a WORD recognized as the given
// keyword. Quoted words never match: `"select"` is an identifier.
func (t Token) IsKeyword(k keyword.Keyword) bool {
	return t.Type == WORD && t.Word.Quote == QuoteNone && t.Word.Keyword == k
}

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool {
	switch t.Type {
	case WHITESPACE, LINE_COMMENT, BLOCK_COMMENT:
		return true
	}
	return false
}
