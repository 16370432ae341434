package parser_test

import (
	"testing"

	"github.com/leapstack-labs/sqlparse/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/parser"
	"github.com/leapstack-labs/sqlparse/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Full-Sequence Tokenization ----------

func TestTokenizeKeepsTrivia(t *testing.T) {
	tokens, err := parser.Tokenize("SELECT a -- trailing\n", ansi.ANSI)
	require.NoError(t, err)

	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []token.Type{
		token.WORD, token.WHITESPACE, token.WORD, token.WHITESPACE,
		token.LINE_COMMENT, token.WHITESPACE, token.EOF,
	}, types)

	assert.Equal(t, keyword.SELECT, tokens[0].Word.Keyword)
	assert.Equal(t, keyword.None, tokens[2].Word.Keyword)
	assert.Equal(t, "-- trailing", tokens[4].Text)
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := parser.Tokenize("SELECT\n  x", ansi.ANSI)
	require.NoError(t, err)

	require.Len(t, tokens, 4) // SELECT, whitespace, x, EOF
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 2, tokens[2].Pos.Line)
	assert.Equal(t, 3, tokens[2].Pos.Column)
}

func TestTokenizeOperators(t *testing.T) {
	tests := []struct {
		sql  string
		want token.Type
	}{
		{"<=", token.LTEQ},
		{">=", token.GTEQ},
		{"<>", token.NEQ},
		{"!=", token.NEQ},
		{"<=>", token.SPACESHIP},
		{"||", token.CONCAT},
		{"::", token.DCOLON},
		{"->", token.ARROW},
		{"->>", token.LONGARROW},
		{"=>", token.RARROW},
	}
	for _, tt := range tests {
		tokens, err := parser.Tokenize(tt.sql, ansi.ANSI)
		require.NoError(t, err, tt.sql)
		require.Len(t, tokens, 2, tt.sql)
		assert.Equal(t, tt.want, tokens[0].Type, tt.sql)
		assert.Equal(t, tt.sql, tokens[0].Text, tt.sql)
	}
}

// ---------- String Literals ----------

func TestTokenizeStringLiterals(t *testing.T) {
	tokens, err := parser.Tokenize("'it''s'", ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "it's", tokens[0].Text)

	tokens, err = parser.Tokenize("N'résumé'", ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, token.NSTRING, tokens[0].Type)
	assert.Equal(t, "résumé", tokens[0].Text)

	tokens, err = parser.Tokenize("X'deadBEEF'", ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, token.HEXSTRING, tokens[0].Type)
	assert.Equal(t, "deadBEEF", tokens[0].Text)
}

func TestTokenizeBackslashEscapes(t *testing.T) {
	// ANSI treats the backslash literally.
	tokens, err := parser.Tokenize(`'a\nb'`, ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, `a\nb`, tokens[0].Text)

	// MySQL interprets it.
	tokens, err = parser.Tokenize(`'a\nb'`, mysql.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", tokens[0].Text)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := parser.Tokenize("SELECT 'oops", ansi.ANSI)
	require.Error(t, err)

	var tokErr *parser.TokenizerError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, 1, tokErr.Pos.Line)
	assert.Equal(t, 8, tokErr.Pos.Column)
	assert.Contains(t, err.Error(), "unterminated string")
}

// ---------- Comments ----------

func TestTokenizeNestedBlockComment(t *testing.T) {
	tokens, err := parser.Tokenize("/* outer /* inner */ still outer */1", ansi.ANSI)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.BLOCK_COMMENT, tokens[0].Type)
	assert.Equal(t, "/* outer /* inner */ still outer */", tokens[0].Text)
	assert.Equal(t, token.NUMBER, tokens[1].Type)
}

func TestTokenizeUnterminatedBlockComment(t *testing.T) {
	_, err := parser.Tokenize("/* no end", ansi.ANSI)
	var tokErr *parser.TokenizerError
	require.ErrorAs(t, err, &tokErr)
}

// ---------- Numbers ----------

func TestTokenizeNumbers(t *testing.T) {
	for _, lexeme := range []string{"0", "123", "45.67", ".5", "1e10", "1E-5", "2.5e+3"} {
		tokens, err := parser.Tokenize(lexeme, ansi.ANSI)
		require.NoError(t, err, lexeme)
		require.Equal(t, token.NUMBER, tokens[0].Type, lexeme)
		// The raw lexeme survives untouched.
		assert.Equal(t, lexeme, tokens[0].Text, lexeme)
	}
}

// ---------- Placeholders ----------

func TestTokenizePlaceholders(t *testing.T) {
	for _, lexeme := range []string{"?", "$1", "$tag", ":name"} {
		tokens, err := parser.Tokenize(lexeme, postgres.Postgres)
		require.NoError(t, err, lexeme)
		require.Equal(t, token.PLACEHOLDER, tokens[0].Type, lexeme)
		assert.Equal(t, lexeme, tokens[0].Text, lexeme)
	}
}

// ---------- Dialect Identifier Rules ----------

func TestTokenizeDelimitedIdentifiers(t *testing.T) {
	tokens, err := parser.Tokenize(`"a b"`, ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, token.WORD, tokens[0].Type)
	assert.Equal(t, "a b", tokens[0].Word.Value)
	assert.Equal(t, token.QuoteDouble, tokens[0].Word.Quote)

	// Doubled closing quote escapes.
	tokens, err = parser.Tokenize(`"col""name"`, ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, `col"name`, tokens[0].Word.Value)
}

func TestTokenizeMsSqlBrackets(t *testing.T) {
	tokens, err := parser.Tokenize("[order details]", mssql.MsSQL)
	require.NoError(t, err)
	assert.Equal(t, token.WORD, tokens[0].Type)
	assert.Equal(t, "order details", tokens[0].Word.Value)
	assert.Equal(t, token.QuoteBracket, tokens[0].Word.Quote)

	// Under ANSI the bracket is plain punctuation.
	tokens, err = parser.Tokenize("[x]", ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, token.LBRACKET, tokens[0].Type)
}

func TestTokenizeMsSqlVariableIdentifiers(t *testing.T) {
	tokens, err := parser.Tokenize("@var #tmp", mssql.MsSQL)
	require.NoError(t, err)
	assert.Equal(t, "@var", tokens[0].Word.Value)
	assert.Equal(t, "#tmp", tokens[2].Word.Value)
}

func TestTokenizeMySqlDollarIdentifiers(t *testing.T) {
	tokens, err := parser.Tokenize("$rate", mysql.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "$rate", tokens[0].Word.Value)

	// A leading digit always starts a number, never an identifier.
	tokens, err = parser.Tokenize("1a", mysql.MySQL)
	require.NoError(t, err)
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, "a", tokens[1].Word.Value)
}

func TestTokenizeBackticks(t *testing.T) {
	tokens, err := parser.Tokenize("`my col`", mysql.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "my col", tokens[0].Word.Value)
	assert.Equal(t, token.QuoteBacktick, tokens[0].Word.Quote)

	// ANSI has no backtick identifiers.
	_, err = parser.Tokenize("`x`", ansi.ANSI)
	require.Error(t, err)
}

func TestQuotedWordIsNeverAKeyword(t *testing.T) {
	tokens, err := parser.Tokenize(`"select"`, ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, keyword.None, tokens[0].Word.Keyword)
	assert.False(t, tokens[0].IsKeyword(keyword.SELECT))
}
