// Package ansi provides the strict ANSI SQL dialect: double-quoted
// identifiers only, no vendor operators, no vendor clauses. Other
// dialects are defined relative to this baseline.
package ansi

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the base ANSI SQL dialect. All settings are at their zero
// values: the parser's defaults are the standard behavior.
var ANSI = dialect.NewDialect("ansi").Build()
