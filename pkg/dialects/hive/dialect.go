// Package hive provides the Apache Hive dialect definition.
package hive

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(Hive)
}

// Hive is the HiveQL dialect: backtick-quoted identifiers and backslash
// string escapes.
var Hive = dialect.NewDialect("hive").
	QuoteChars('`').
	Settings(dialect.Settings{
		BackslashEscapes: true,
	}).
	Build()
