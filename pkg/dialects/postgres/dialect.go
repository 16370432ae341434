// Package postgres provides the PostgreSQL dialect definition.
package postgres

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect: ILIKE and SIMILAR TO, ::-casts,
// JSON access operators, FILTER on aggregates, and name => value
// function arguments.
var Postgres = dialect.NewDialect("postgres").
	Settings(dialect.Settings{
		SupportsIlike:                   true,
		SupportsNamedArguments:          true,
		SupportsArrayLiterals:           true,
		SupportsJSONOperators:           true,
		SupportsFilterDuringAggregation: true,
	}).
	Build()
