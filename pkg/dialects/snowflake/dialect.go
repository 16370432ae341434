// Package snowflake provides the Snowflake dialect definition.
package snowflake

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake dialect: QUALIFY, CONNECT BY hierarchies,
// ILIKE, ::-casts, and name => value function arguments.
var Snowflake = dialect.NewDialect("snowflake").
	Settings(dialect.Settings{
		SupportsConnectBy:      true,
		SupportsIlike:          true,
		SupportsNamedArguments: true,
		SupportsQualify:        true,
	}).
	Build()
