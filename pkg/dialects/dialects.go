// Package dialects registers every built-in dialect with the dialect
// registry. Import it for side effects when all dialects should be
// available by name:
//
//	import _ "github.com/leapstack-labs/sqlparse/pkg/dialects"
//
// Programs that only need specific dialects can import the individual
// subpackages instead.
package dialects

import (
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/bigquery"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/clickhouse"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/databricks"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/generic"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/hive"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects/sqlite"
)
