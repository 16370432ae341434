package parser_test

import (
	"testing"

	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- INSERT ----------

func TestParseInsert(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y')")
	ins, ok := stmt.(*ast.Insert)
	require.True(t, ok)
	assert.Equal(t, "t", ins.Table.String())
	require.Len(t, ins.Columns, 2)
	values, ok := ins.Source.Body.(*ast.Values)
	require.True(t, ok)
	assert.Len(t, values.Rows, 2)
	roundTrip(t, "INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y')")
}

func TestParseInsertFromQuery(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO t SELECT a FROM u WHERE a > 1")
	ins := stmt.(*ast.Insert)
	assert.Empty(t, ins.Columns)
	_, ok := ins.Source.Body.(*ast.Select)
	assert.True(t, ok)
}

func TestParseInsertParenthesizedQuery(t *testing.T) {
	// A paren after the table name can open a column list or a subquery.
	stmt := parseOne(t, "INSERT INTO t (SELECT a FROM u)")
	ins := stmt.(*ast.Insert)
	assert.Empty(t, ins.Columns)
	require.NotNil(t, ins.Source)
}

func TestParseInsertOverwrite(t *testing.T) {
	stmt := parseOne(t, "INSERT OVERWRITE TABLE t SELECT * FROM u")
	ins := stmt.(*ast.Insert)
	assert.True(t, ins.Overwrite)
}

// ---------- UPDATE / DELETE ----------

func TestParseUpdate(t *testing.T) {
	stmt := parseOne(t, "UPDATE t SET a = 1, b = b + 1 WHERE id = 7")
	upd, ok := stmt.(*ast.Update)
	require.True(t, ok)
	require.Len(t, upd.Assignments, 2)
	assert.Equal(t, "a = 1", upd.Assignments[0].String())
	require.NotNil(t, upd.Selection)
	roundTrip(t, "UPDATE t SET a = 1, b = b + 1 WHERE id = 7")
}

func TestParseDelete(t *testing.T) {
	stmt := parseOne(t, "DELETE FROM t WHERE a < 10")
	del, ok := stmt.(*ast.Delete)
	require.True(t, ok)
	assert.Equal(t, "t", del.Table.String())
	require.NotNil(t, del.Selection)

	stmt = parseOne(t, "DELETE FROM t")
	del = stmt.(*ast.Delete)
	assert.Nil(t, del.Selection)
}

// ---------- MERGE ----------

func TestParseMerge(t *testing.T) {
	sql := "MERGE INTO t USING s ON t.id = s.id " +
		"WHEN MATCHED AND s.flag THEN UPDATE SET t.v = s.v " +
		"WHEN MATCHED THEN DELETE " +
		"WHEN NOT MATCHED THEN INSERT (id, v) VALUES (s.id, s.v)"
	stmt := parseOne(t, sql)
	merge, ok := stmt.(*ast.Merge)
	require.True(t, ok)
	require.Len(t, merge.Clauses, 3)
	assert.Equal(t, ast.MergeMatchedUpdate, merge.Clauses[0].Kind)
	require.NotNil(t, merge.Clauses[0].Predicate)
	assert.Equal(t, ast.MergeMatchedDelete, merge.Clauses[1].Kind)
	assert.Equal(t, ast.MergeNotMatchedInsert, merge.Clauses[2].Kind)
	assert.Len(t, merge.Clauses[2].Columns, 2)
	roundTrip(t, sql)
}

// ---------- COPY ----------

func TestParseCopy(t *testing.T) {
	stmt := parseOne(t, "COPY t (a, b) FROM 'data.csv'")
	cp, ok := stmt.(*ast.Copy)
	require.True(t, ok)
	assert.False(t, cp.To)
	require.NotNil(t, cp.Target)

	stmt = parseOne(t, "COPY t TO STDOUT")
	cp = stmt.(*ast.Copy)
	assert.True(t, cp.To)
	assert.Nil(t, cp.Target)
}

// ---------- CREATE TABLE ----------

func TestParseCreateTable(t *testing.T) {
	sql := "CREATE TABLE users (" +
		"id INT PRIMARY KEY, " +
		"email VARCHAR(255) NOT NULL UNIQUE, " +
		"age SMALLINT CHECK (age >= 0), " +
		"team_id INT REFERENCES teams (id), " +
		"CONSTRAINT uniq_email UNIQUE (email))"
	stmt := parseOne(t, sql)
	ct, ok := stmt.(*ast.CreateTable)
	require.True(t, ok)
	require.Len(t, ct.Columns, 4)
	require.Len(t, ct.Constraints, 1)

	id := ct.Columns[0]
	require.Len(t, id.Options, 1)
	pk, ok := id.Options[0].(ast.UniqueOption)
	require.True(t, ok)
	assert.True(t, pk.IsPrimary)

	email := ct.Columns[1]
	require.Len(t, email.Options, 2)
	_, ok = email.Options[0].(ast.NullOption)
	assert.True(t, ok)

	uniq, ok := ct.Constraints[0].(*ast.UniqueConstraint)
	require.True(t, ok)
	require.NotNil(t, uniq.Name)
	assert.Equal(t, "uniq_email", uniq.Name.Value)

	roundTrip(t, sql)
}

func TestParseCreateTableVariants(t *testing.T) {
	stmt := parseOne(t, "CREATE TABLE IF NOT EXISTS t (a INT)")
	assert.True(t, stmt.(*ast.CreateTable).IfNotExists)

	stmt = parseOne(t, "CREATE OR REPLACE TEMPORARY TABLE t AS SELECT 1")
	ct := stmt.(*ast.CreateTable)
	assert.True(t, ct.OrReplace)
	assert.True(t, ct.Temporary)
	require.NotNil(t, ct.Query)

	stmt = parseOne(t, "CREATE TABLE t2 LIKE t1")
	require.NotNil(t, stmt.(*ast.CreateTable).Like)

	stmt = parseOne(t, "CREATE TABLE t (a INT) WITH (format = 'parquet')")
	ct = stmt.(*ast.CreateTable)
	require.Len(t, ct.Options, 1)
	assert.Equal(t, "format", ct.Options[0].Name.Value)
}

func TestParseDataTypes(t *testing.T) {
	sql := "CREATE TABLE t (" +
		"a DECIMAL(10, 2), " +
		"b DOUBLE PRECISION, " +
		"c TIMESTAMP WITH TIME ZONE, " +
		"d CHARACTER VARYING(40), " +
		"e INT[], " +
		"f GEOMETRY)"
	stmt := parseOne(t, sql)
	ct := stmt.(*ast.CreateTable)
	require.Len(t, ct.Columns, 6)
	assert.Equal(t, "DECIMAL(10,2)", ct.Columns[0].DataType.String())
	assert.Equal(t, "DOUBLE", ct.Columns[1].DataType.String())
	assert.Equal(t, "TIMESTAMP WITH TIME ZONE", ct.Columns[2].DataType.String())
	assert.Equal(t, "INT[]", ct.Columns[4].DataType.String())
	// Unknown type names fall through to custom types instead of erroring.
	assert.Equal(t, "GEOMETRY", ct.Columns[5].DataType.String())
}

// ---------- CREATE VIEW / INDEX / SCHEMA ----------

func TestParseCreateView(t *testing.T) {
	stmt := parseOne(t, "CREATE OR REPLACE MATERIALIZED VIEW v (a, b) AS SELECT x, y FROM t")
	cv, ok := stmt.(*ast.CreateView)
	require.True(t, ok)
	assert.True(t, cv.OrReplace)
	assert.True(t, cv.Materialized)
	assert.Len(t, cv.Columns, 2)
	require.NotNil(t, cv.Query)
}

func TestParseCreateIndex(t *testing.T) {
	stmt := parseOne(t, "CREATE UNIQUE INDEX IF NOT EXISTS idx ON t (a ASC, b DESC)")
	ci, ok := stmt.(*ast.CreateIndex)
	require.True(t, ok)
	assert.True(t, ci.Unique)
	assert.True(t, ci.IfNotExists)
	require.Len(t, ci.Columns, 2)
	require.NotNil(t, ci.Columns[1].Asc)
	assert.False(t, *ci.Columns[1].Asc)
}

func TestParseCreateSchema(t *testing.T) {
	stmt := parseOne(t, "CREATE SCHEMA IF NOT EXISTS analytics")
	cs, ok := stmt.(*ast.CreateSchema)
	require.True(t, ok)
	assert.True(t, cs.IfNotExists)
}

// ---------- ALTER TABLE ----------

func TestParseAlterTable(t *testing.T) {
	cases := []struct {
		sql string
		op  any
	}{
		{"ALTER TABLE t ADD COLUMN IF NOT EXISTS c INT", &ast.AddColumn{}},
		{"ALTER TABLE t ADD CONSTRAINT fk FOREIGN KEY (a) REFERENCES u (b)", &ast.AddConstraint{}},
		{"ALTER TABLE t DROP COLUMN IF EXISTS c CASCADE", &ast.DropColumn{}},
		{"ALTER TABLE t RENAME COLUMN a TO b", &ast.RenameColumn{}},
		{"ALTER TABLE t RENAME TO u", &ast.RenameTable{}},
		{"ALTER TABLE t ALTER COLUMN c SET NOT NULL", &ast.AlterColumn{}},
		{"ALTER TABLE t ALTER COLUMN c SET DATA TYPE BIGINT USING c + 0", &ast.AlterColumn{}},
	}
	for _, tc := range cases {
		stmt := parseOne(t, tc.sql)
		at, ok := stmt.(*ast.AlterTable)
		require.True(t, ok, tc.sql)
		assert.IsType(t, tc.op, at.Op, tc.sql)
		roundTrip(t, tc.sql)
	}
}

// ---------- DROP / TRUNCATE ----------

func TestParseDrop(t *testing.T) {
	stmt := parseOne(t, "DROP TABLE IF EXISTS a, b CASCADE")
	drop, ok := stmt.(*ast.Drop)
	require.True(t, ok)
	assert.Equal(t, ast.ObjectTable, drop.ObjectType)
	assert.True(t, drop.IfExists)
	assert.Len(t, drop.Names, 2)
	assert.True(t, drop.Cascade)

	stmt = parseOne(t, "DROP VIEW v RESTRICT")
	drop = stmt.(*ast.Drop)
	assert.Equal(t, ast.ObjectView, drop.ObjectType)
	assert.True(t, drop.Restrict)
}

func TestParseTruncate(t *testing.T) {
	stmt := parseOne(t, "TRUNCATE TABLE t")
	_, ok := stmt.(*ast.Truncate)
	require.True(t, ok)

	stmt = parseOne(t, "TRUNCATE t")
	_, ok = stmt.(*ast.Truncate)
	require.True(t, ok)
}

// ---------- EXPLAIN / SET / SHOW ----------

func TestParseExplain(t *testing.T) {
	stmt := parseOne(t, "EXPLAIN ANALYZE VERBOSE SELECT * FROM t")
	ex, ok := stmt.(*ast.Explain)
	require.True(t, ok)
	assert.True(t, ex.Analyze)
	assert.True(t, ex.Verbose)
	_, ok = ex.Statement.(*ast.Query)
	assert.True(t, ok)
}

func TestParseSetShow(t *testing.T) {
	stmt := parseOne(t, "SET search_path = 'public'")
	set, ok := stmt.(*ast.SetVariable)
	require.True(t, ok)
	assert.Equal(t, "search_path", set.Name.String())

	stmt = parseOne(t, "SET LOCAL time_zone TO 'UTC'")
	set = stmt.(*ast.SetVariable)
	assert.True(t, set.Local)

	stmt = parseOne(t, "SHOW search_path")
	show, ok := stmt.(*ast.ShowVariable)
	require.True(t, ok)
	assert.Equal(t, "search_path", show.Name.String())
}

// ---------- Transactions ----------

func TestParseTransactions(t *testing.T) {
	stmt := parseOne(t, "START TRANSACTION READ ONLY")
	txn, ok := stmt.(*ast.StartTransaction)
	require.True(t, ok)
	require.Len(t, txn.Modes, 1)
	assert.Equal(t, ast.TxnReadOnly, txn.Modes[0])

	stmt = parseOne(t, "BEGIN WORK")
	_, ok = stmt.(*ast.StartTransaction)
	require.True(t, ok)

	stmt = parseOne(t, "COMMIT AND CHAIN")
	commit, ok := stmt.(*ast.Commit)
	require.True(t, ok)
	assert.True(t, commit.Chain)

	stmt = parseOne(t, "ROLLBACK")
	rb, ok := stmt.(*ast.Rollback)
	require.True(t, ok)
	assert.False(t, rb.Chain)
}

// ---------- GRANT ----------

func TestParseGrant(t *testing.T) {
	stmt := parseOne(t, "GRANT SELECT (a, b), INSERT ON t TO alice, bob WITH GRANT OPTION")
	grant, ok := stmt.(*ast.Grant)
	require.True(t, ok)
	require.Len(t, grant.Privileges, 2)
	assert.Equal(t, "SELECT", grant.Privileges[0].Name)
	assert.Len(t, grant.Privileges[0].Columns, 2)
	assert.Len(t, grant.Grantees, 2)
	assert.True(t, grant.WithGrantOption)

	stmt = parseOne(t, "GRANT ALL PRIVILEGES ON TABLE t TO carol")
	grant = stmt.(*ast.Grant)
	assert.True(t, grant.AllPrivileges)
}
