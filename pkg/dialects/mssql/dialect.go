// Package mssql provides the Microsoft SQL Server (T-SQL) dialect
// definition.
package mssql

import (
	"unicode"

	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(MsSQL)
}

// MsSQL is the SQL Server dialect: [bracketed] identifiers, @variables
// and #temp tables as bare identifiers, SELECT TOP, and the reversed
// CONVERT(type, value) argument order.
var MsSQL = dialect.NewDialect("mssql").
	QuoteChars('[', '"').
	IdentifierStart(func(r rune) bool {
		return unicode.IsLetter(r) || r == '_' || r == '@' || r == '#'
	}).
	IdentifierPart(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '@' || r == '#' || r == '$'
	}).
	Settings(dialect.Settings{
		ConvertTypeBeforeValue: true,
		SupportsConnectBy:      true,
		SupportsTop:            true,
	}).
	Build()
