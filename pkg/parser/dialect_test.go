package parser_test

import (
	"testing"

	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/snowflake"
	"github.com/leapstack-labs/sqlparse/pkg/parser"
	"github.com/leapstack-labs/sqlparse/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Registry ----------

func TestRegistryKnowsAllDialects(t *testing.T) {
	for _, name := range []string{
		"ansi", "generic", "postgres", "mysql", "mssql", "sqlite",
		"snowflake", "bigquery", "duckdb", "databricks", "clickhouse", "hive",
	} {
		d, ok := dialect.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, d.Name)
	}

	_, ok := dialect.Get("oracle9i")
	assert.False(t, ok)
	assert.Contains(t, dialect.List(), "postgres")
}

// ---------- CONVERT argument order ----------

func TestConvertArgumentOrder(t *testing.T) {
	expr, err := parser.ParseExpr("CONVERT(INT, a)", mssql.MsSQL)
	require.NoError(t, err)
	conv, ok := expr.(*ast.ConvertExpr)
	require.True(t, ok)
	assert.True(t, conv.TypeFirst)
	assert.Equal(t, "CONVERT(INT, a)", conv.String())

	expr, err = parser.ParseExpr("CONVERT(a, INT)", postgres.Postgres)
	require.NoError(t, err)
	conv = expr.(*ast.ConvertExpr)
	assert.False(t, conv.TypeFirst)
	assert.Equal(t, "CONVERT(a, INT)", conv.String())
}

// ---------- ILIKE ----------

func TestIlikeDialectGate(t *testing.T) {
	stmts, err := parser.Parse("SELECT * FROM t WHERE name ILIKE '%ann%'", postgres.Postgres)
	require.NoError(t, err)
	sel := stmts[0].(*ast.Query).Body.(*ast.Select)
	like, ok := sel.Selection.(*ast.LikeExpr)
	require.True(t, ok)
	assert.Equal(t, ast.ILike, like.Kind)

	_, err = parser.Parse("SELECT * FROM t WHERE name ILIKE '%ann%'", ansi.ANSI)
	require.Error(t, err, "ILIKE is not an operator in the ANSI dialect")
}

// ---------- TOP ----------

func TestTopDialectGate(t *testing.T) {
	stmts, err := parser.Parse("SELECT TOP 5 * FROM t", mssql.MsSQL)
	require.NoError(t, err)
	sel := stmts[0].(*ast.Query).Body.(*ast.Select)
	require.NotNil(t, sel.Top)

	_, err = parser.Parse("SELECT TOP 5 * FROM t", postgres.Postgres)
	require.Error(t, err)
}

// ---------- QUALIFY ----------

func TestQualifyDialectGate(t *testing.T) {
	sql := "SELECT * FROM t QUALIFY row_number() OVER (ORDER BY ts) = 1"
	stmts, err := parser.Parse(sql, snowflake.Snowflake)
	require.NoError(t, err)
	sel := stmts[0].(*ast.Query).Body.(*ast.Select)
	require.NotNil(t, sel.Qualify)

	_, err = parser.Parse(sql, ansi.ANSI)
	require.Error(t, err)
}

// ---------- CONNECT BY ----------

func TestConnectBy(t *testing.T) {
	sql := "SELECT id FROM emp START WITH mgr IS NULL CONNECT BY mgr = id"
	stmts, err := parser.Parse(sql, snowflake.Snowflake)
	require.NoError(t, err)
	sel := stmts[0].(*ast.Query).Body.(*ast.Select)
	require.NotNil(t, sel.ConnectBy)
	require.NotNil(t, sel.ConnectBy.StartWith)
	// START must open the clause, not become the table alias.
	require.Nil(t, sel.From[0].Relation.(*ast.Table).Alias)
}

// ---------- Precedence override hook ----------

// A dialect can reorder operator binding before the default table is
// consulted. This one makes + bind tighter than *, so 1 + 2 * 3 groups
// as (1 + 2) * 3.
func TestDialectPrecedenceOverride(t *testing.T) {
	tightPlus := dialect.NewDialect("tight-plus").
		NextPrecedence(func(l dialect.Lookahead) (int, bool) {
			if l.PeekToken().Type == token.PLUS {
				return dialect.PrecMulDivMod + 1, true
			}
			return dialect.PrecNone, false
		}).
		Build()

	expr, err := parser.ParseExpr("1 + 2 * 3", tightPlus)
	require.NoError(t, err)
	root := expr.(*ast.BinaryExpr)
	assert.Equal(t, ast.Multiply, root.Op)
	left := root.Left.(*ast.BinaryExpr)
	assert.Equal(t, ast.Plus, left.Op)
}

// ---------- Named function arguments ----------

func TestNamedArgumentsDialectGate(t *testing.T) {
	expr, err := parser.ParseExpr("flatten(input => parse_json(v))", snowflake.Snowflake)
	require.NoError(t, err)
	fn := expr.(*ast.Function)
	require.Len(t, fn.Args, 1)
	require.NotNil(t, fn.Args[0].Name)
	assert.Equal(t, "input", fn.Args[0].Name.Value)

	_, err = parser.ParseExpr("flatten(input => parse_json(v))", ansi.ANSI)
	require.Error(t, err)
}

// ---------- Array literals and JSON operators ----------

func TestArrayLiteralDialectGate(t *testing.T) {
	expr, err := parser.ParseExpr("ARRAY[1, 2, 3]", postgres.Postgres)
	require.NoError(t, err)
	arr, ok := expr.(*ast.Array)
	require.True(t, ok)
	assert.Len(t, arr.Elems, 3)
}

// Brackets under generic are subscripts and array literals, never
// identifier quotes.
func TestGenericBracketsAreArraySyntax(t *testing.T) {
	expr, err := parser.ParseExpr("a[1]", generic.Generic)
	require.NoError(t, err)
	idx := expr.(*ast.ArrayIndex)
	require.Len(t, idx.Indexes, 1)

	expr, err = parser.ParseExpr("ARRAY[1, 2]", generic.Generic)
	require.NoError(t, err)
	assert.Len(t, expr.(*ast.Array).Elems, 2)
}

func TestJSONOperatorsDialectGate(t *testing.T) {
	expr, err := parser.ParseExpr("doc -> 'a' ->> 'b'", postgres.Postgres)
	require.NoError(t, err)
	outer := expr.(*ast.BinaryExpr)
	assert.Equal(t, ast.LongArrow, outer.Op)
	inner := outer.Left.(*ast.BinaryExpr)
	assert.Equal(t, ast.Arrow, inner.Op)

	_, err = parser.ParseExpr("doc -> 'a'", ansi.ANSI)
	require.Error(t, err)
}

// ---------- FILTER ----------

func TestAggregateFilterDialectGate(t *testing.T) {
	expr, err := parser.ParseExpr("count(*) FILTER (WHERE x > 0)", postgres.Postgres)
	require.NoError(t, err)
	fn := expr.(*ast.Function)
	require.NotNil(t, fn.Filter)
}

// ---------- Identifier quoting ----------

func TestIdentifierQuotingAcrossDialects(t *testing.T) {
	stmts, err := parser.Parse("SELECT `a b` FROM t", mysql.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `a b` FROM t", stmts[0].String())

	_, err = parser.Parse("SELECT `a b` FROM t", postgres.Postgres)
	require.Error(t, err, "backticks are not identifier quotes in Postgres")
}

// ---------- Quoted words never match keywords ----------

func TestQuotedSelectIsAnIdentifier(t *testing.T) {
	stmts, err := parser.Parse(`SELECT "select" FROM t`, postgres.Postgres)
	require.NoError(t, err)
	sel := stmts[0].(*ast.Query).Body.(*ast.Select)
	require.Len(t, sel.Projection, 1)
	ident, ok := sel.Projection[0].Expr.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "select", ident.Name.Value)
}
