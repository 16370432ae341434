// Package mysql provides the MySQL dialect definition.
package mysql

import (
	"unicode"

	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect: backtick-quoted identifiers, backslash
// string escapes, JSON access operators.
var MySQL = dialect.NewDialect("mysql").
	QuoteChars('`', '"').
	// MySQL also permits $ to open an unquoted identifier. Digit-leading
	// identifiers like 1a need backticks here: a leading digit always
	// starts a number literal.
	IdentifierStart(func(r rune) bool {
		return unicode.IsLetter(r) || r == '_' || r == '$'
	}).
	Settings(dialect.Settings{
		BackslashEscapes:      true,
		SupportsJSONOperators: true,
	}).
	Build()
