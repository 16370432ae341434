// Package ast defines the SQL abstract syntax tree produced by the parser.
//
// Nodes form closed sum types: Statement, Expr, SetExpr, and TableFactor are
// marker interfaces whose variants all live in this package, so consumers
// can switch exhaustively. Every node renders itself back to SQL text via
// String; the renderer output re-parses to an equal tree (round-trip
// property). Nodes are immutable after construction and own their children.
package ast

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	fmt.Stringer
}

// Statement is the marker interface for statement nodes.
type Statement interface {
	Node
	stmtNode()
}

// Expr is the marker interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Ident is an identifier with the quote style it carried in the source.
type Ident struct {
	Value string
	Quote token.QuoteStyle
}

// NewIdent returns an unquoted identifier.
func NewIdent(value string) Ident {
	return Ident{Value: value}
}

func (i Ident) String() string {
	switch i.Quote {
	case token.QuoteDouble, token.QuoteSingle:
		q := string(rune(i.Quote))
		return q + i.Value + q
	case token.QuoteBacktick:
		return "`" + i.Value + "`"
	case token.QuoteBracket:
		return "[" + i.Value + "]"
	default:
		return i.Value
	}
}

// ObjectName is a possibly-qualified name: schema.table, db.schema.table.
type ObjectName []Ident

func (o ObjectName) String() string {
	parts := make([]string, len(o))
	for i, id := range o {
		parts[i] = id.String()
	}
	return strings.Join(parts, ".")
}

// joinNodes renders a slice of nodes separated by sep.
func joinNodes[T Node](items []T, sep string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(item.String())
	}
	return sb.String()
}

// commaSeparated renders a slice of nodes separated by ", ".
func commaSeparated[T Node](items []T) string {
	return joinNodes(items, ", ")
}
