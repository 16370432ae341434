// Package databricks provides the Databricks SQL dialect definition.
package databricks

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(Databricks)
}

// Databricks is the Databricks SQL dialect: backtick-quoted
// identifiers, backslash string escapes, QUALIFY, ILIKE, and name =>
// value function arguments.
var Databricks = dialect.NewDialect("databricks").
	QuoteChars('`').
	Settings(dialect.Settings{
		BackslashEscapes:       true,
		SupportsIlike:          true,
		SupportsNamedArguments: true,
		SupportsArrayLiterals:  true,
		SupportsQualify:        true,
	}).
	Build()
