// Package keyword defines the static SQL keyword table.
//
// Every keyword that can appear in a Word token is listed here. This is not
// a list of reserved words: most of these parse as plain identifiers unless
// the grammar says otherwise, so new keywords can be added without changing
// parse results for existing inputs.
//
// The table is process-wide, read-only, and sorted so Lookup can use binary
// search.
package keyword

import (
	"sort"
	"strings"
)

// Keyword identifies a recognized SQL keyword.
type Keyword int16

// None marks a Word token that is not a recognized keyword.
const None Keyword = -1

// Keyword identifiers, one per entry in Words, in the same order.
const (
	ABS Keyword = iota
	ACTION
	ADD
	ALL
	ALLOCATE
	ALTER
	ANALYZE
	AND
	ANTI
	ANY
	APPLY
	ARE
	ARRAY
	ARRAY_AGG
	ARRAY_MAX_CARDINALITY
	AS
	ASC
	ASENSITIVE
	ASYMMETRIC
	AT
	ATOMIC
	AUTHORIZATION
	AUTO_INCREMENT
	AVG
	BEGIN
	BEGIN_FRAME
	BEGIN_PARTITION
	BETWEEN
	BIGINT
	BINARY
	BLOB
	BOOL
	BOOLEAN
	BOTH
	BY
	BYTEA
	CALL
	CALLED
	CARDINALITY
	CASCADE
	CASCADED
	CASE
	CAST
	CEIL
	CEILING
	CENTURY
	CHAIN
	CHAR
	CHARACTER
	CHARACTER_LENGTH
	CHAR_LENGTH
	CHECK
	CLOB
	CLOSE
	COALESCE
	COLLATE
	COLLATION
	COLLECT
	COLUMN
	COLUMNS
	COMMENT
	COMMIT
	COMMITTED
	CONDITION
	CONNECT
	CONSTRAINT
	CONTAINS
	CONVERT
	COPY
	CORR
	CORRESPONDING
	COUNT
	COVAR_POP
	COVAR_SAMP
	CREATE
	CROSS
	CSV
	CUBE
	CUME_DIST
	CURRENT
	CURRENT_CATALOG
	CURRENT_DATE
	CURRENT_DEFAULT_TRANSFORM_GROUP
	CURRENT_PATH
	CURRENT_ROLE
	CURRENT_ROW
	CURRENT_SCHEMA
	CURRENT_TIME
	CURRENT_TIMESTAMP
	CURRENT_TRANSFORM_GROUP_FOR_TYPE
	CURRENT_USER
	CURSOR
	CYCLE
	DATA
	DATE
	DATETIME
	DAY
	DEALLOCATE
	DEC
	DECADE
	DECIMAL
	DECLARE
	DEFAULT
	DELETE
	DENSE_RANK
	DEREF
	DESC
	DESCRIBE
	DETERMINISTIC
	DISCONNECT
	DISTINCT
	DIV
	DOUBLE
	DOW
	DOY
	DROP
	DYNAMIC
	EACH
	ELEMENT
	ELSE
	END
	END_EXEC
	END_FRAME
	END_PARTITION
	ENGINE
	EPOCH
	EQUALS
	ERROR
	ESCAPE
	EVERY
	EXCEPT
	EXEC
	EXECUTE
	EXISTS
	EXP
	EXPLAIN
	EXTENDED
	EXTERNAL
	EXTRACT
	FALSE
	FETCH
	FIELDS
	FILTER
	FIRST
	FIRST_VALUE
	FLOAT
	FLOOR
	FOLLOWING
	FOR
	FOREIGN
	FORMAT
	FRAME_ROW
	FREE
	FROM
	FULL
	FUNCTION
	FUSION
	GET
	GLOBAL
	GRANT
	GROUP
	GROUPING
	GROUPS
	HAVING
	HEADER
	HOLD
	HOUR
	IDENTITY
	IF
	IGNORE
	ILIKE
	IN
	INDEX
	INDICATOR
	INNER
	INOUT
	INSENSITIVE
	INSERT
	INT
	INTEGER
	INTERSECT
	INTERSECTION
	INTERVAL
	INTO
	IS
	ISNULL
	ISODOW
	ISOLATION
	ISOYEAR
	JOIN
	JULIAN
	KEY
	LAG
	LANGUAGE
	LARGE
	LAST
	LAST_VALUE
	LATERAL
	LEAD
	LEADING
	LEFT
	LEVEL
	LIKE
	LIKE_REGEX
	LIMIT
	LISTAGG
	LN
	LOCAL
	LOCALTIME
	LOCALTIMESTAMP
	LOCATION
	LOWER
	MATCH
	MATCHED
	MATERIALIZED
	MAX
	MEMBER
	MERGE
	METHOD
	MICROSECOND
	MILLENNIUM
	MILLISECOND
	MIN
	MINUTE
	MOD
	MODIFIES
	MODIFY
	MODULE
	MONTH
	MULTISET
	NANOSECOND
	NATIONAL
	NATURAL
	NCHAR
	NCLOB
	NEW
	NEXT
	NO
	NONE
	NORMALIZE
	NOT
	NTH_VALUE
	NTILE
	NULL
	NULLIF
	NULLS
	NUMERIC
	OBJECT
	OCCURRENCES_REGEX
	OCTET_LENGTH
	OF
	OFFSET
	OLD
	ON
	ONLY
	OPEN
	OPTION
	OR
	ORDER
	OUT
	OUTER
	OVER
	OVERFLOW
	OVERLAPS
	OVERLAY
	OVERWRITE
	PARAMETER
	PARQUET
	PARTITION
	PERCENT
	PERCENTILE_CONT
	PERCENTILE_DISC
	PERCENT_RANK
	PERIOD
	PLACING
	PORTION
	POSITION
	POSITION_REGEX
	POWER
	PRECEDES
	PRECEDING
	PRECISION
	PREPARE
	PRIMARY
	PRIOR
	PRIVILEGES
	PROCEDURE
	PURGE
	QUALIFY
	QUARTER
	RANGE
	RANK
	READ
	READS
	REAL
	RECURSIVE
	REF
	REFERENCES
	REFERENCING
	REGCLASS
	REGEXP
	REGR_AVGX
	REGR_AVGY
	REGR_COUNT
	REGR_INTERCEPT
	REGR_R2
	REGR_SLOPE
	REGR_SXX
	REGR_SXY
	REGR_SYY
	RELEASE
	RENAME
	REPEATABLE
	REPLACE
	RESTRICT
	RESULT
	RETURN
	RETURNS
	REVOKE
	RIGHT
	RLIKE
	ROLLBACK
	ROLLUP
	ROW
	ROWS
	ROW_NUMBER
	SAVEPOINT
	SCHEMA
	SCOPE
	SCROLL
	SEARCH
	SECOND
	SELECT
	SEMI
	SENSITIVE
	SEPARATOR
	SERIALIZABLE
	SESSION
	SESSION_USER
	SET
	SHOW
	SIMILAR
	SMALLINT
	SOME
	SPECIFIC
	SPECIFICTYPE
	SQL
	SQLEXCEPTION
	SQLSTATE
	SQLWARNING
	SQRT
	START
	STATIC
	STDDEV_POP
	STDDEV_SAMP
	STDIN
	STDOUT
	STORED
	STRING
	SUBMULTISET
	SUBSTRING
	SUBSTRING_REGEX
	SUCCEEDS
	SUM
	SYMMETRIC
	SYSTEM
	SYSTEM_TIME
	SYSTEM_USER
	TABLE
	TABLESAMPLE
	TEMP
	TEMPORARY
	TEXT
	THEN
	TIES
	TIME
	TIMESTAMP
	TIMEZONE
	TIMEZONE_HOUR
	TIMEZONE_MINUTE
	TO
	TOP
	TRAILING
	TRANSACTION
	TRANSLATE
	TRANSLATE_REGEX
	TRANSLATION
	TREAT
	TRIGGER
	TRIM
	TRIM_ARRAY
	TRUE
	TRUNCATE
	TRY_CAST
	TYPE
	UESCAPE
	UNBOUNDED
	UNCOMMITTED
	UNION
	UNIQUE
	UNKNOWN
	UNLOGGED
	UNNEST
	UNSIGNED
	UPDATE
	UPPER
	USER
	USING
	UUID
	VALUE
	VALUES
	VALUE_OF
	VARBINARY
	VARCHAR
	VARYING
	VAR_POP
	VAR_SAMP
	VERBOSE
	VERSIONING
	VIEW
	VIRTUAL
	WEEK
	WHEN
	WHENEVER
	WHERE
	WIDTH_BUCKET
	WINDOW
	WITH
	WITHIN
	WITHOUT
	WORK
	WRITE
	YEAR
	ZONE
)

// Words holds the uppercase spelling of every keyword, sorted, indexed by
// Keyword value.
var Words = [...]string{
	"ABS",
	"ACTION",
	"ADD",
	"ALL",
	"ALLOCATE",
	"ALTER",
	"ANALYZE",
	"AND",
	"ANTI",
	"ANY",
	"APPLY",
	"ARE",
	"ARRAY",
	"ARRAY_AGG",
	"ARRAY_MAX_CARDINALITY",
	"AS",
	"ASC",
	"ASENSITIVE",
	"ASYMMETRIC",
	"AT",
	"ATOMIC",
	"AUTHORIZATION",
	"AUTO_INCREMENT",
	"AVG",
	"BEGIN",
	"BEGIN_FRAME",
	"BEGIN_PARTITION",
	"BETWEEN",
	"BIGINT",
	"BINARY",
	"BLOB",
	"BOOL",
	"BOOLEAN",
	"BOTH",
	"BY",
	"BYTEA",
	"CALL",
	"CALLED",
	"CARDINALITY",
	"CASCADE",
	"CASCADED",
	"CASE",
	"CAST",
	"CEIL",
	"CEILING",
	"CENTURY",
	"CHAIN",
	"CHAR",
	"CHARACTER",
	"CHARACTER_LENGTH",
	"CHAR_LENGTH",
	"CHECK",
	"CLOB",
	"CLOSE",
	"COALESCE",
	"COLLATE",
	"COLLATION",
	"COLLECT",
	"COLUMN",
	"COLUMNS",
	"COMMENT",
	"COMMIT",
	"COMMITTED",
	"CONDITION",
	"CONNECT",
	"CONSTRAINT",
	"CONTAINS",
	"CONVERT",
	"COPY",
	"CORR",
	"CORRESPONDING",
	"COUNT",
	"COVAR_POP",
	"COVAR_SAMP",
	"CREATE",
	"CROSS",
	"CSV",
	"CUBE",
	"CUME_DIST",
	"CURRENT",
	"CURRENT_CATALOG",
	"CURRENT_DATE",
	"CURRENT_DEFAULT_TRANSFORM_GROUP",
	"CURRENT_PATH",
	"CURRENT_ROLE",
	"CURRENT_ROW",
	"CURRENT_SCHEMA",
	"CURRENT_TIME",
	"CURRENT_TIMESTAMP",
	"CURRENT_TRANSFORM_GROUP_FOR_TYPE",
	"CURRENT_USER",
	"CURSOR",
	"CYCLE",
	"DATA",
	"DATE",
	"DATETIME",
	"DAY",
	"DEALLOCATE",
	"DEC",
	"DECADE",
	"DECIMAL",
	"DECLARE",
	"DEFAULT",
	"DELETE",
	"DENSE_RANK",
	"DEREF",
	"DESC",
	"DESCRIBE",
	"DETERMINISTIC",
	"DISCONNECT",
	"DISTINCT",
	"DIV",
	"DOUBLE",
	"DOW",
	"DOY",
	"DROP",
	"DYNAMIC",
	"EACH",
	"ELEMENT",
	"ELSE",
	"END",
	"END-EXEC",
	"END_FRAME",
	"END_PARTITION",
	"ENGINE",
	"EPOCH",
	"EQUALS",
	"ERROR",
	"ESCAPE",
	"EVERY",
	"EXCEPT",
	"EXEC",
	"EXECUTE",
	"EXISTS",
	"EXP",
	"EXPLAIN",
	"EXTENDED",
	"EXTERNAL",
	"EXTRACT",
	"FALSE",
	"FETCH",
	"FIELDS",
	"FILTER",
	"FIRST",
	"FIRST_VALUE",
	"FLOAT",
	"FLOOR",
	"FOLLOWING",
	"FOR",
	"FOREIGN",
	"FORMAT",
	"FRAME_ROW",
	"FREE",
	"FROM",
	"FULL",
	"FUNCTION",
	"FUSION",
	"GET",
	"GLOBAL",
	"GRANT",
	"GROUP",
	"GROUPING",
	"GROUPS",
	"HAVING",
	"HEADER",
	"HOLD",
	"HOUR",
	"IDENTITY",
	"IF",
	"IGNORE",
	"ILIKE",
	"IN",
	"INDEX",
	"INDICATOR",
	"INNER",
	"INOUT",
	"INSENSITIVE",
	"INSERT",
	"INT",
	"INTEGER",
	"INTERSECT",
	"INTERSECTION",
	"INTERVAL",
	"INTO",
	"IS",
	"ISNULL",
	"ISODOW",
	"ISOLATION",
	"ISOYEAR",
	"JOIN",
	"JULIAN",
	"KEY",
	"LAG",
	"LANGUAGE",
	"LARGE",
	"LAST",
	"LAST_VALUE",
	"LATERAL",
	"LEAD",
	"LEADING",
	"LEFT",
	"LEVEL",
	"LIKE",
	"LIKE_REGEX",
	"LIMIT",
	"LISTAGG",
	"LN",
	"LOCAL",
	"LOCALTIME",
	"LOCALTIMESTAMP",
	"LOCATION",
	"LOWER",
	"MATCH",
	"MATCHED",
	"MATERIALIZED",
	"MAX",
	"MEMBER",
	"MERGE",
	"METHOD",
	"MICROSECOND",
	"MILLENNIUM",
	"MILLISECOND",
	"MIN",
	"MINUTE",
	"MOD",
	"MODIFIES",
	"MODIFY",
	"MODULE",
	"MONTH",
	"MULTISET",
	"NANOSECOND",
	"NATIONAL",
	"NATURAL",
	"NCHAR",
	"NCLOB",
	"NEW",
	"NEXT",
	"NO",
	"NONE",
	"NORMALIZE",
	"NOT",
	"NTH_VALUE",
	"NTILE",
	"NULL",
	"NULLIF",
	"NULLS",
	"NUMERIC",
	"OBJECT",
	"OCCURRENCES_REGEX",
	"OCTET_LENGTH",
	"OF",
	"OFFSET",
	"OLD",
	"ON",
	"ONLY",
	"OPEN",
	"OPTION",
	"OR",
	"ORDER",
	"OUT",
	"OUTER",
	"OVER",
	"OVERFLOW",
	"OVERLAPS",
	"OVERLAY",
	"OVERWRITE",
	"PARAMETER",
	"PARQUET",
	"PARTITION",
	"PERCENT",
	"PERCENTILE_CONT",
	"PERCENTILE_DISC",
	"PERCENT_RANK",
	"PERIOD",
	"PLACING",
	"PORTION",
	"POSITION",
	"POSITION_REGEX",
	"POWER",
	"PRECEDES",
	"PRECEDING",
	"PRECISION",
	"PREPARE",
	"PRIMARY",
	"PRIOR",
	"PRIVILEGES",
	"PROCEDURE",
	"PURGE",
	"QUALIFY",
	"QUARTER",
	"RANGE",
	"RANK",
	"READ",
	"READS",
	"REAL",
	"RECURSIVE",
	"REF",
	"REFERENCES",
	"REFERENCING",
	"REGCLASS",
	"REGEXP",
	"REGR_AVGX",
	"REGR_AVGY",
	"REGR_COUNT",
	"REGR_INTERCEPT",
	"REGR_R2",
	"REGR_SLOPE",
	"REGR_SXX",
	"REGR_SXY",
	"REGR_SYY",
	"RELEASE",
	"RENAME",
	"REPEATABLE",
	"REPLACE",
	"RESTRICT",
	"RESULT",
	"RETURN",
	"RETURNS",
	"REVOKE",
	"RIGHT",
	"RLIKE",
	"ROLLBACK",
	"ROLLUP",
	"ROW",
	"ROWS",
	"ROW_NUMBER",
	"SAVEPOINT",
	"SCHEMA",
	"SCOPE",
	"SCROLL",
	"SEARCH",
	"SECOND",
	"SELECT",
	"SEMI",
	"SENSITIVE",
	"SEPARATOR",
	"SERIALIZABLE",
	"SESSION",
	"SESSION_USER",
	"SET",
	"SHOW",
	"SIMILAR",
	"SMALLINT",
	"SOME",
	"SPECIFIC",
	"SPECIFICTYPE",
	"SQL",
	"SQLEXCEPTION",
	"SQLSTATE",
	"SQLWARNING",
	"SQRT",
	"START",
	"STATIC",
	"STDDEV_POP",
	"STDDEV_SAMP",
	"STDIN",
	"STDOUT",
	"STORED",
	"STRING",
	"SUBMULTISET",
	"SUBSTRING",
	"SUBSTRING_REGEX",
	"SUCCEEDS",
	"SUM",
	"SYMMETRIC",
	"SYSTEM",
	"SYSTEM_TIME",
	"SYSTEM_USER",
	"TABLE",
	"TABLESAMPLE",
	"TEMP",
	"TEMPORARY",
	"TEXT",
	"THEN",
	"TIES",
	"TIME",
	"TIMESTAMP",
	"TIMEZONE",
	"TIMEZONE_HOUR",
	"TIMEZONE_MINUTE",
	"TO",
	"TOP",
	"TRAILING",
	"TRANSACTION",
	"TRANSLATE",
	"TRANSLATE_REGEX",
	"TRANSLATION",
	"TREAT",
	"TRIGGER",
	"TRIM",
	"TRIM_ARRAY",
	"TRUE",
	"TRUNCATE",
	"TRY_CAST",
	"TYPE",
	"UESCAPE",
	"UNBOUNDED",
	"UNCOMMITTED",
	"UNION",
	"UNIQUE",
	"UNKNOWN",
	"UNLOGGED",
	"UNNEST",
	"UNSIGNED",
	"UPDATE",
	"UPPER",
	"USER",
	"USING",
	"UUID",
	"VALUE",
	"VALUES",
	"VALUE_OF",
	"VARBINARY",
	"VARCHAR",
	"VARYING",
	"VAR_POP",
	"VAR_SAMP",
	"VERBOSE",
	"VERSIONING",
	"VIEW",
	"VIRTUAL",
	"WEEK",
	"WHEN",
	"WHENEVER",
	"WHERE",
	"WIDTH_BUCKET",
	"WINDOW",
	"WITH",
	"WITHIN",
	"WITHOUT",
	"WORK",
	"WRITE",
	"YEAR",
	"ZONE",
}

// String returns the uppercase spelling of the keyword.
func (k Keyword) String() string {
	if k < 0 || int(k) >= len(Words) {
		return "NONE"
	}
	return Words[k]
}

// Lookup returns the keyword for the given word, matching case-insensitively.
// Returns None if the word is not in the table.
func Lookup(word string) Keyword {
	upper := strings.ToUpper(word)
	i := sort.SearchStrings(Words[:], upper)
	if i < len(Words) && Words[i] == upper {
		return Keyword(i)
	}
	return None
}
