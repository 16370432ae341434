package parser

import (
	"fmt"

	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// TokenizerError represents a lexical analysis error. Tokenization is
// all-or-nothing: the first invalid construct aborts the scan.
type TokenizerError struct {
	Pos     token.Position
	Message string
}

func (e *TokenizerError) Error() string {
	return fmt.Sprintf("tokenizer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParserError represents a grammar error with position information.
type ParserError struct {
	Pos     token.Position
	Message string
}

func (e *ParserError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return "parse error: " + e.Message
}

// RecursionError is returned when nested input exceeds the parser's
// depth limit. It is distinct from ParserError so callers can tell
// pathological nesting apart from plain syntax errors.
type RecursionError struct {
	Limit int
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion limit of %d exceeded", e.Limit)
}

// Common error messages
const (
	errUnterminatedString  = "unterminated string literal"
	errUnterminatedComment = "unterminated block comment"
	errUnterminatedIdent   = "unterminated delimited identifier"
)
