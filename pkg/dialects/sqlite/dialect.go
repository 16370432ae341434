// Package sqlite provides the SQLite dialect definition.
package sqlite

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(SQLite)
}

// SQLite is the SQLite dialect. SQLite accepts every common identifier
// quote style ("x", `x`, [x]) and the JSON access operators.
var SQLite = dialect.NewDialect("sqlite").
	QuoteChars('"', '`', '[').
	Settings(dialect.Settings{
		SupportsJSONOperators: true,
	}).
	Build()
