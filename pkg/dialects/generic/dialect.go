// Package generic provides the permissive default dialect. It accepts a
// superset of the other dialects' syntax: double-quote and backtick
// identifiers, every optional clause, every operator. Use it when the
// source dialect is unknown.
package generic

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(Generic)
}

// Generic is the permissive catch-all dialect.
var Generic = dialect.NewDialect("generic").
	// No '[' here: brackets must stay array subscripts and array
	// literals, which generic enables below. Bracket identifiers are
	// MSSQL-only.
	QuoteChars('"', '`').
	Settings(dialect.Settings{
		SupportsConnectBy:               true,
		SupportsIlike:                   true,
		SupportsTop:                     true,
		SupportsNamedArguments:          true,
		SupportsArrayLiterals:           true,
		SupportsJSONOperators:           true,
		SupportsFilterDuringAggregation: true,
		SupportsQualify:                 true,
	}).
	Build()
