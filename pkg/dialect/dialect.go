// Package dialect defines the SQL dialect capability set consulted by the
// tokenizer and parser.
//
// A Dialect is a read-only configuration object: it classifies identifier
// characters, names the quote characters that open delimited identifiers,
// carries feature toggles in Settings, and may intercept operator-precedence
// decisions before the parser's default table runs. Concrete dialects live
// in pkg/dialects/*/ and register themselves with this package's registry.
//
// Dialect instances hold no mutable state and may be shared freely across
// concurrent parses.
package dialect

import (
	"unicode"

	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// Settings carries the boolean feature toggles consulted directly by the
// parser. Every field's zero value is the generic behavior, so dialects set
// only what differs.
type Settings struct {
	// ConvertTypeBeforeValue flips CONVERT's argument order to
	// CONVERT(type, value), the SQL Server form.
	ConvertTypeBeforeValue bool
	// SupportsConnectBy accepts CONNECT BY / START WITH hierarchical
	// queries syntactically.
	SupportsConnectBy bool
	// BackslashEscapes enables C-style backslash escapes inside
	// single-quoted strings (MySQL, BigQuery).
	BackslashEscapes bool
	// SupportsIlike enables the ILIKE operator.
	SupportsIlike bool
	// SupportsTop accepts SELECT TOP n (SQL Server).
	SupportsTop bool
	// SupportsNamedArguments accepts name => expr function arguments.
	SupportsNamedArguments bool
	// SupportsArrayLiterals accepts bare [1, 2] array literals in
	// addition to ARRAY[1, 2].
	SupportsArrayLiterals bool
	// SupportsJSONOperators enables the -> and ->> access operators.
	SupportsJSONOperators bool
	// SupportsFilterDuringAggregation accepts FILTER (WHERE ...) after
	// aggregate calls.
	SupportsFilterDuringAggregation bool
	// SupportsQualify accepts the QUALIFY clause after HAVING.
	SupportsQualify bool
}

// Lookahead is the view of the parser a dialect gets when overriding
// precedence decisions. It must not advance the parse position.
type Lookahead interface {
	// PeekToken returns the next significant token without consuming it.
	PeekToken() token.Token
	// PeekNth returns the n-th significant token ahead (0 == PeekToken).
	PeekNth(n int) token.Token
}

// Dialect is a SQL dialect configuration. Build one with NewDialect; the
// zero value is not usable.
type Dialect struct {
	Name     string
	Settings Settings

	identStart     func(r rune) bool
	identPart      func(r rune) bool
	delimitedStart func(r rune) bool
	nextPrecedence func(l Lookahead) (int, bool)
}

// IsIdentifierStart reports whether r can begin a bare identifier.
func (d *Dialect) IsIdentifierStart(r rune) bool {
	if d.identStart != nil {
		return d.identStart(r)
	}
	return defaultIdentifierStart(r)
}

// IsIdentifierPart reports whether r can continue a bare identifier.
func (d *Dialect) IsIdentifierPart(r rune) bool {
	if d.identPart != nil {
		return d.identPart(r)
	}
	return defaultIdentifierPart(r)
}

// IsDelimitedIdentifierStart reports whether r opens a quoted identifier.
func (d *Dialect) IsDelimitedIdentifierStart(r rune) bool {
	if d.delimitedStart != nil {
		return d.delimitedStart(r)
	}
	return r == '"'
}

// NextPrecedence lets the dialect decide the binding power of the upcoming
// operator before the parser's default table is consulted. The second
// return value is false when the dialect has no opinion.
func (d *Dialect) NextPrecedence(l Lookahead) (int, bool) {
	if d.nextPrecedence != nil {
		return d.nextPrecedence(l)
	}
	return PrecNone, false
}

// defaultIdentifierStart is the generic rule: letters and underscore.
func defaultIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// defaultIdentifierPart is the generic rule: letters, digits, underscore,
// and $ (widely tolerated).
func defaultIdentifierPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{dialect: &Dialect{Name: name}}
}

// IdentifierStart overrides bare-identifier start classification.
func (b *Builder) IdentifierStart(f func(r rune) bool) *Builder {
	b.dialect.identStart = f
	return b
}

// IdentifierPart overrides bare-identifier continuation classification.
func (b *Builder) IdentifierPart(f func(r rune) bool) *Builder {
	b.dialect.identPart = f
	return b
}

// DelimitedIdentifierStart overrides which quote characters open a
// delimited identifier.
func (b *Builder) DelimitedIdentifierStart(f func(r rune) bool) *Builder {
	b.dialect.delimitedStart = f
	return b
}

// QuoteChars is a convenience for DelimitedIdentifierStart from a fixed
// character set.
func (b *Builder) QuoteChars(chars ...rune) *Builder {
	set := make(map[rune]struct{}, len(chars))
	for _, c := range chars {
		set[c] = struct{}{}
	}
	b.dialect.delimitedStart = func(r rune) bool {
		_, ok := set[r]
		return ok
	}
	return b
}

// Settings sets the feature toggles.
func (b *Builder) Settings(s Settings) *Builder {
	b.dialect.Settings = s
	return b
}

// NextPrecedence installs a precedence-override hook.
func (b *Builder) NextPrecedence(f func(l Lookahead) (int, bool)) *Builder {
	b.dialect.nextPrecedence = f
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
