// Package parser turns SQL text into an AST.
//
// # Usage
//
//	d, err := dialect.Get("postgres")
//	stmts, err := parser.Parse("SELECT a, b FROM t", d)
//
// Parsing is a two-phase pipeline: the tokenizer produces the full token
// sequence (whitespace and comments included), then a recursive descent
// parser walks the non-trivia tokens. Expressions use precedence
// climbing; the dialect can override operator precedence and drives the
// tokenizer's identifier and quoting rules.
//
// # Grammar Overview
//
//	statement   → query | insert | update | delete | merge | copy
//	            | create | alter | drop | truncate
//	            | explain | set | show | transaction | grant
//	query       → [WITH cte_list] body [ORDER BY ...] [LIMIT ...]
//	              [OFFSET ...] [FETCH ...]
//	body        → select_core [(UNION|INTERSECT|EXCEPT) [ALL] body]
//
// See each file for detailed grammar rules for that section.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// DefaultRecursionLimit bounds how deeply expressions and queries may
// nest before parsing aborts with a RecursionError.
const DefaultRecursionLimit = 50

// Parser parses a token sequence into AST nodes.
type Parser struct {
	tokens  []token.Token
	index   int // next token to consume (may sit on trivia)
	dialect *dialect.Dialect

	depth    int
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithRecursionLimit overrides the default nesting depth limit.
func WithRecursionLimit(n int) Option {
	return func(p *Parser) { p.maxDepth = n }
}

// NewParser creates a parser over an already-tokenized sequence.
func NewParser(tokens []token.Token, d *dialect.Dialect, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		dialect:  d,
		maxDepth: DefaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse tokenizes and parses sql under the given dialect, returning one
// AST node per statement. Statements are separated by semicolons; a
// trailing semicolon is allowed.
func Parse(sql string, d *dialect.Dialect, opts ...Option) ([]ast.Statement, error) {
	tokens, err := Tokenize(sql, d)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens, d, opts...).ParseStatements()
}

// ParseExpr tokenizes and parses sql as a single expression.
func ParseExpr(sql string, d *dialect.Dialect, opts ...Option) (ast.Expr, error) {
	tokens, err := Tokenize(sql, d)
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens, d, opts...)
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peekToken(); tok.Type != token.EOF {
		return nil, p.expected("end of expression", tok)
	}
	return expr, nil
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.dialect
}

// ParseStatements parses the full token sequence as a statement list.
func (p *Parser) ParseStatements() ([]ast.Statement, error) {
	var stmts []ast.Statement
	expectingDelimiter := false
	for {
		for p.consumeToken(token.SEMICOLON) {
			expectingDelimiter = false
		}
		tok := p.peekToken()
		if tok.Type == token.EOF {
			return stmts, nil
		}
		if expectingDelimiter {
			return nil, p.expected("end of statement", tok)
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		expectingDelimiter = true
	}
}

// ---------- Token cursor ----------

// nextToken consumes and returns the next non-trivia token.
func (p *Parser) nextToken() token.Token {
	for p.index < len(p.tokens) {
		tok := p.tokens[p.index]
		p.index++
		if !tok.IsTrivia() {
			return tok
		}
	}
	return p.eofToken()
}

// peekToken returns the next non-trivia token without consuming it.
func (p *Parser) peekToken() token.Token {
	return p.peekNth(0)
}

// peekNth returns the nth non-trivia token ahead; n == 0 is the token
// nextToken would return.
func (p *Parser) peekNth(n int) token.Token {
	seen := 0
	for i := p.index; i < len(p.tokens); i++ {
		if p.tokens[i].IsTrivia() {
			continue
		}
		if seen == n {
			return p.tokens[i]
		}
		seen++
	}
	return p.eofToken()
}

// PeekToken implements dialect.Lookahead.
func (p *Parser) PeekToken() token.Token { return p.peekToken() }

// PeekNth implements dialect.Lookahead.
func (p *Parser) PeekNth(n int) token.Token { return p.peekNth(n) }

// prevToken steps the cursor back to the previous non-trivia token.
func (p *Parser) prevToken() {
	for p.index > 0 {
		p.index--
		if !p.tokens[p.index].IsTrivia() {
			return
		}
	}
}

func (p *Parser) eofToken() token.Token {
	var pos token.Position
	if n := len(p.tokens); n > 0 {
		pos = p.tokens[n-1].Pos
	}
	return token.Token{Type: token.EOF, Pos: pos}
}

// snapshot captures the cursor for bounded backtracking.
func (p *Parser) snapshot() int { return p.index }

// restore rewinds the cursor to a snapshot.
func (p *Parser) restore(idx int) { p.index = idx }

// ---------- Matching helpers ----------

// consumeToken consumes the next token if it has the given type.
func (p *Parser) consumeToken(typ token.Type) bool {
	if p.peekToken().Type == typ {
		p.nextToken()
		return true
	}
	return false
}

// expectToken consumes the next token, failing unless it has the given type.
func (p *Parser) expectToken(typ token.Type) (token.Token, error) {
	tok := p.peekToken()
	if tok.Type != typ {
		return token.Token{}, p.expected(typ.String(), tok)
	}
	return p.nextToken(), nil
}

// parseKeyword consumes the next token if it is the given keyword.
func (p *Parser) parseKeyword(k keyword.Keyword) bool {
	if p.peekToken().IsKeyword(k) {
		p.nextToken()
		return true
	}
	return false
}

// parseKeywords consumes the given keyword sequence all-or-nothing.
func (p *Parser) parseKeywords(ks ...keyword.Keyword) bool {
	idx := p.snapshot()
	for _, k := range ks {
		if !p.parseKeyword(k) {
			p.restore(idx)
			return false
		}
	}
	return true
}

// parseOneOfKeywords consumes the next token if it is any of the given
// keywords, returning the match or keyword.None.
func (p *Parser) parseOneOfKeywords(ks ...keyword.Keyword) keyword.Keyword {
	tok := p.peekToken()
	for _, k := range ks {
		if tok.IsKeyword(k) {
			p.nextToken()
			return k
		}
	}
	return keyword.None
}

// expectKeyword consumes the next token, failing unless it is the keyword.
func (p *Parser) expectKeyword(k keyword.Keyword) error {
	if !p.parseKeyword(k) {
		return p.expected(k.String(), p.peekToken())
	}
	return nil
}

// expectKeywords consumes the given keyword sequence, failing on the
// first mismatch.
func (p *Parser) expectKeywords(ks ...keyword.Keyword) error {
	for _, k := range ks {
		if err := p.expectKeyword(k); err != nil {
			return err
		}
	}
	return nil
}

// expected builds the standard mismatch error.
func (p *Parser) expected(what string, found token.Token) error {
	return &ParserError{
		Pos:     found.Pos,
		Message: fmt.Sprintf("expected %s, found: %s", what, found),
	}
}

// parseCommaSeparated parses one or more items separated by commas.
func parseCommaSeparated[T any](p *Parser, parse func() (T, error)) ([]T, error) {
	var items []T
	for {
		item, err := parse()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.consumeToken(token.COMMA) {
			return items, nil
		}
	}
}

// ---------- Recursion guard ----------

// descend enters one nesting level; callers pair it with ascend.
func (p *Parser) descend() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &RecursionError{Limit: p.maxDepth}
	}
	return nil
}

func (p *Parser) ascend() {
	p.depth--
}
