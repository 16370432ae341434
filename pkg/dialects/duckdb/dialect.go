// Package duckdb provides the DuckDB dialect definition.
package duckdb

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the DuckDB dialect. DuckDB tracks PostgreSQL syntax closely
// and adds QUALIFY and bare array literals.
var DuckDB = dialect.NewDialect("duckdb").
	Settings(dialect.Settings{
		SupportsIlike:                   true,
		SupportsNamedArguments:          true,
		SupportsArrayLiterals:           true,
		SupportsJSONOperators:           true,
		SupportsFilterDuringAggregation: true,
		SupportsQualify:                 true,
	}).
	Build()
