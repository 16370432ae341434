package keyword

// ReservedForTableAlias lists keywords that cannot be used as a table alias,
// so that `FROM table_name alias` parses without further lookahead.
var ReservedForTableAlias = []Keyword{
	// Reserved as both a table and a column alias:
	WITH, SELECT, WHERE, GROUP, HAVING, ORDER, TOP, LIMIT, OFFSET, FETCH,
	UNION, EXCEPT, INTERSECT,
	// Reserved only as a table alias in FROM/JOIN clauses:
	ON, JOIN, INNER, CROSS, FULL, LEFT, RIGHT, NATURAL, USING,
	// OUTER APPLY is MSSQL-specific but OUTER is reserved in most dialects.
	OUTER,
	SET, QUALIFY,
	// START WITH / CONNECT BY open clauses, never aliases.
	START, CONNECT,
}

// ReservedForColumnAlias lists keywords that cannot be used as a column
// alias, so that `SELECT <expr> alias` parses without further lookahead.
var ReservedForColumnAlias = []Keyword{
	// Reserved as both a table and a column alias:
	WITH, SELECT, WHERE, GROUP, HAVING, ORDER, LIMIT, OFFSET, FETCH,
	UNION, EXCEPT, INTERSECT,
	// Reserved only as a column alias in the SELECT clause:
	FROM, INTO, END,
}

// Contains reports whether k appears in the given reserved set.
func Contains(set []Keyword, k Keyword) bool {
	for _, r := range set {
		if r == k {
			return true
		}
	}
	return false
}
