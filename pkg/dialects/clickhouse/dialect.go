// Package clickhouse provides the ClickHouse dialect definition.
package clickhouse

import (
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(ClickHouse)
}

// ClickHouse is the ClickHouse dialect: backtick-quoted identifiers,
// bare array literals, and ILIKE.
var ClickHouse = dialect.NewDialect("clickhouse").
	QuoteChars('`', '"').
	Settings(dialect.Settings{
		SupportsIlike:         true,
		SupportsArrayLiterals: true,
	}).
	Build()
