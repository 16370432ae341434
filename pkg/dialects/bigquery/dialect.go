// Package bigquery provides the Google BigQuery dialect definition.
package bigquery

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(BigQuery)
}

// BigQuery is the BigQuery (GoogleSQL) dialect: backtick-quoted
// identifiers, backslash string escapes, QUALIFY, and bare array
// literals.
var BigQuery = dialect.NewDialect("bigquery").
	QuoteChars('`').
	Settings(dialect.Settings{
		BackslashEscapes:      true,
		SupportsArrayLiterals: true,
		SupportsQualify:       true,
	}).
	Build()
