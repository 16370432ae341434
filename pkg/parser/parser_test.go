package parser_test

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlparse/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlparse/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOne is a test helper for single-statement inputs.
func parseOne(t *testing.T, sql string) ast.Statement {
	t.Helper()
	stmts, err := parser.Parse(sql, generic.Generic)
	require.NoError(t, err, sql)
	require.Len(t, stmts, 1, sql)
	return stmts[0]
}

// roundTrip asserts the canonical rendering is stable under re-parsing.
func roundTrip(t *testing.T, sql string) string {
	t.Helper()
	first := parseOne(t, sql).String()
	second := parseOne(t, first).String()
	assert.Equal(t, first, second, "rendering must be a fixpoint for %q", sql)
	return first
}

// ---------- Entry Points ----------

func TestParseMultipleStatements(t *testing.T) {
	stmts, err := parser.Parse("SELECT 1; SELECT 2;", ansi.ANSI)
	require.NoError(t, err)
	assert.Len(t, stmts, 2)
}

func TestParseMissingStatementDelimiter(t *testing.T) {
	_, err := parser.Parse("SELECT 1 SELECT 2", ansi.ANSI)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end of statement")
}

func TestParseExprEntryPoint(t *testing.T) {
	expr, err := parser.ParseExpr("a + b", ansi.ANSI)
	require.NoError(t, err)
	assert.Equal(t, "a + b", expr.String())

	_, err = parser.ParseExpr("a + b extra", ansi.ANSI)
	require.Error(t, err)
}

func TestParseIsDeterministic(t *testing.T) {
	sql := "SELECT a, b FROM t WHERE a IS NOT NULL AND b > 1 ORDER BY a LIMIT 10"
	first := parseOne(t, sql).String()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, parseOne(t, sql).String())
	}
}

// ---------- Operator Precedence ----------

func TestPrecedenceMulBeforeAdd(t *testing.T) {
	expr, err := parser.ParseExpr("1 + 2 * 3", ansi.ANSI)
	require.NoError(t, err)

	add, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Plus, add.Op)

	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Multiply, mul.Op)
}

func TestPrecedenceLeftAssociative(t *testing.T) {
	expr, err := parser.ParseExpr("1 - 2 - 3", ansi.ANSI)
	require.NoError(t, err)

	outer, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	// (1 - 2) - 3
	inner, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "1 - 2", inner.String())
}

func TestPrecedenceNotBindsTighterThanAnd(t *testing.T) {
	expr, err := parser.ParseExpr("NOT a AND b", ansi.ANSI)
	require.NoError(t, err)

	and, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok, "AND must be the root: NOT binds tighter")
	require.Equal(t, ast.And, and.Op)

	not, ok := and.Left.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Not, not.Op)
}

func TestPrecedenceComparisonBeforeAnd(t *testing.T) {
	expr, err := parser.ParseExpr("a = 1 AND b = 2 OR c = 3", ansi.ANSI)
	require.NoError(t, err)

	or, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Or, or.Op)
	assert.Equal(t, "a = 1 AND b = 2", or.Left.String())
}

func TestPrecedenceBetweenAnd(t *testing.T) {
	// The AND inside BETWEEN is a separator, not the logical operator.
	expr, err := parser.ParseExpr("a BETWEEN 1 AND 2 AND b", ansi.ANSI)
	require.NoError(t, err)

	and, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.And, and.Op)
	_, ok = and.Left.(*ast.Between)
	assert.True(t, ok)
}

// ---------- Recursion Guard ----------

func TestDeepNestingWithinLimit(t *testing.T) {
	sql := strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)
	_, err := parser.ParseExpr(sql, ansi.ANSI)
	assert.NoError(t, err)
}

func TestDeepNestingExceedsLimit(t *testing.T) {
	sql := strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200)
	_, err := parser.ParseExpr(sql, ansi.ANSI)
	require.Error(t, err)

	var recErr *parser.RecursionError
	require.ErrorAs(t, err, &recErr, "pathological nesting must not be a plain syntax error")
	assert.Equal(t, parser.DefaultRecursionLimit, recErr.Limit)
}

func TestRecursionLimitOverride(t *testing.T) {
	sql := strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)
	_, err := parser.Parse("SELECT "+sql, ansi.ANSI, parser.WithRecursionLimit(5))
	var recErr *parser.RecursionError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 5, recErr.Limit)
}

// ---------- Error Reporting ----------

func TestErrorPointsAtOffendingToken(t *testing.T) {
	_, err := parser.Parse("SELECT * FROM", ansi.ANSI)
	require.Error(t, err)

	var parseErr *parser.ParserError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "found: EOF")
}

func TestErrorOnDanglingOperator(t *testing.T) {
	_, err := parser.ParseExpr("1 +", ansi.ANSI)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected an expression")
}

// ---------- Round-Trip Rendering ----------

func TestRoundTripQueries(t *testing.T) {
	queries := []string{
		"SELECT a, b FROM t WHERE a IS NOT NULL AND b > 1 ORDER BY a LIMIT 10",
		"SELECT DISTINCT dept, count(*) FROM emp GROUP BY dept HAVING count(*) > 5",
		"SELECT * FROM a JOIN b ON a.id = b.id LEFT JOIN c USING (id)",
		"SELECT * FROM (SELECT x FROM t) AS sub WHERE sub.x BETWEEN 1 AND 10",
		"WITH top_emps AS (SELECT id FROM emp ORDER BY salary DESC LIMIT 10) SELECT * FROM top_emps",
		"SELECT CASE WHEN a = 1 THEN 'one' ELSE 'many' END FROM t",
		"SELECT CAST(a AS BIGINT), TRY_CAST(b AS VARCHAR(20)) FROM t",
		"SELECT EXTRACT(YEAR FROM d), SUBSTRING(s FROM 1 FOR 3) FROM t",
		"SELECT sum(x) OVER (PARTITION BY g ORDER BY ts ROWS BETWEEN 2 PRECEDING AND CURRENT ROW) FROM t",
		"SELECT a FROM t1 UNION ALL SELECT a FROM t2 INTERSECT SELECT a FROM t3",
		"SELECT * FROM t WHERE x IN (SELECT y FROM u) AND EXISTS (SELECT 1 FROM v)",
		"SELECT * FROM t OFFSET 5 ROWS FETCH FIRST 10 ROWS ONLY",
		"SELECT INTERVAL '1' DAY TO HOUR, DATE '2024-01-01' FROM t",
		"SELECT TRIM(LEADING 'x' FROM s), POSITION('a' IN s), OVERLAY(s PLACING 'z' FROM 2) FROM t",
	}
	for _, sql := range queries {
		roundTrip(t, sql)
	}
}

func TestRoundTripPreservesNumberLexemes(t *testing.T) {
	rendered := roundTrip(t, "SELECT 1.50, 1e10, 0.5 FROM t")
	assert.Contains(t, rendered, "1.50")
	assert.Contains(t, rendered, "1e10")
	assert.Contains(t, rendered, "0.5")
}

func TestRoundTripPreservesQuotedIdentifiers(t *testing.T) {
	rendered := roundTrip(t, `SELECT "a b" FROM "my table"`)
	assert.Equal(t, `SELECT "a b" FROM "my table"`, rendered)
}

// ---------- Concrete Shapes ----------

func TestSelectShape(t *testing.T) {
	stmt := parseOne(t, "SELECT a, b AS c, t.*, count(*) FROM t")
	query, ok := stmt.(*ast.Query)
	require.True(t, ok)
	sel, ok := query.Body.(*ast.Select)
	require.True(t, ok)

	require.Len(t, sel.Projection, 4)
	assert.Nil(t, sel.Projection[0].Alias)
	require.NotNil(t, sel.Projection[1].Alias)
	assert.Equal(t, "c", sel.Projection[1].Alias.Value)
	_, ok = sel.Projection[2].Expr.(*ast.QualifiedWildcard)
	assert.True(t, ok)
	fn, ok := sel.Projection[3].Expr.(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "count", fn.Name.String())
}

func TestAliasKeywordBoundary(t *testing.T) {
	// FROM must not be eaten as a column alias, WHERE not as a table alias.
	stmt := parseOne(t, "SELECT a FROM t WHERE b = 1")
	query := stmt.(*ast.Query)
	sel := query.Body.(*ast.Select)
	require.Len(t, sel.Projection, 1)
	assert.Nil(t, sel.Projection[0].Alias)
	table := sel.From[0].Relation.(*ast.Table)
	assert.Nil(t, table.Alias)
}

func TestImplicitAlias(t *testing.T) {
	stmt := parseOne(t, "SELECT a x FROM t y")
	sel := stmt.(*ast.Query).Body.(*ast.Select)
	require.NotNil(t, sel.Projection[0].Alias)
	assert.Equal(t, "x", sel.Projection[0].Alias.Value)
	table := sel.From[0].Relation.(*ast.Table)
	require.NotNil(t, table.Alias)
	assert.Equal(t, "y", table.Alias.Name.Value)
}

func TestDoubleColonCast(t *testing.T) {
	expr, err := parser.ParseExpr("a::INT + 1", postgres.Postgres)
	require.NoError(t, err)

	add := expr.(*ast.BinaryExpr)
	cast, ok := add.Left.(*ast.CastExpr)
	require.True(t, ok, ":: must bind tighter than +")
	assert.Equal(t, ast.CastDoubleColon, cast.Kind)
	assert.Equal(t, "a::INT + 1", expr.String())
}

func TestTupleVersusNested(t *testing.T) {
	expr, err := parser.ParseExpr("(a, b)", ansi.ANSI)
	require.NoError(t, err)
	_, ok := expr.(*ast.Tuple)
	assert.True(t, ok)

	expr, err = parser.ParseExpr("(a)", ansi.ANSI)
	require.NoError(t, err)
	_, ok = expr.(*ast.Nested)
	assert.True(t, ok)
}

func TestQuantifiedComparison(t *testing.T) {
	expr, err := parser.ParseExpr("x > ALL (SELECT y FROM t)", ansi.ANSI)
	require.NoError(t, err)
	qc, ok := expr.(*ast.QuantifiedComparison)
	require.True(t, ok)
	assert.Equal(t, ast.AllQuantifier, qc.Quantifier)
	assert.Equal(t, ast.Gt, qc.Op)
}
