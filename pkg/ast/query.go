package ast

import (
	"fmt"
	"strings"
)

// Query is the full SELECT grammar: an optional WITH prologue, a set-
// expression body, and the trailing ordering/limit clauses that apply to
// the whole body.
type Query struct {
	With    *With
	Body    SetExpr
	OrderBy []OrderByExpr
	Limit   Expr
	Offset  *Offset
	Fetch   *Fetch
}

func (*Query) stmtNode() {}

func (q *Query) String() string {
	var sb strings.Builder
	if q.With != nil {
		sb.WriteString(q.With.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(q.Body.String())
	if len(q.OrderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(commaSeparatedOrderBy(q.OrderBy))
	}
	if q.Limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(q.Limit.String())
	}
	if q.Offset != nil {
		sb.WriteByte(' ')
		sb.WriteString(q.Offset.String())
	}
	if q.Fetch != nil {
		sb.WriteByte(' ')
		sb.WriteString(q.Fetch.String())
	}
	return sb.String()
}

// With is the WITH [RECURSIVE] cte_list prologue.
type With struct {
	Recursive bool
	CTEs      []*CTE
}

func (w *With) String() string {
	var sb strings.Builder
	sb.WriteString("WITH ")
	if w.Recursive {
		sb.WriteString("RECURSIVE ")
	}
	sb.WriteString(commaSeparated(w.CTEs))
	return sb.String()
}

// CTE is one common table expression: name [(columns)] AS (query).
type CTE struct {
	Alias TableAlias
	Query *Query
}

func (c *CTE) String() string {
	return fmt.Sprintf("%s AS (%s)", c.Alias, c.Query)
}

// SetExpr is the marker interface for query bodies combined with set
// operators. Variants: *Select, *SetOperation, *QueryExpr, *Values.
type SetExpr interface {
	Node
	setExprNode()
}

// SetOperator identifies UNION, EXCEPT, INTERSECT.
type SetOperator int

// Set operators.
const (
	Union SetOperator = iota
	Except
	Intersect
)

func (op SetOperator) String() string {
	switch op {
	case Except:
		return "EXCEPT"
	case Intersect:
		return "INTERSECT"
	default:
		return "UNION"
	}
}

// SetOperation combines two query bodies: left UNION [ALL] right.
type SetOperation struct {
	Op    SetOperator
	All   bool
	Left  SetExpr
	Right SetExpr
}

func (*SetOperation) setExprNode() {}

func (s *SetOperation) String() string {
	all := ""
	if s.All {
		all = " ALL"
	}
	return fmt.Sprintf("%s %s%s %s", s.Left, s.Op, all, s.Right)
}

// QueryExpr is a parenthesized query used as a set-expression operand.
type QueryExpr struct {
	Query *Query
}

func (*QueryExpr) setExprNode() {}

func (q *QueryExpr) String() string { return "(" + q.Query.String() + ")" }

// Values is a VALUES (...), (...) body.
type Values struct {
	Rows [][]Expr
}

func (*Values) setExprNode() {}

func (v *Values) String() string {
	var sb strings.Builder
	sb.WriteString("VALUES ")
	for i, row := range v.Rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		sb.WriteString(commaSeparated(row))
		sb.WriteByte(')')
	}
	return sb.String()
}

// Select is a single SELECT core (no set operators, no trailing ORDER BY).
type Select struct {
	Distinct   bool
	Top        *Top
	Projection []SelectItem
	From       []TableWithJoins
	Selection  Expr
	GroupBy    []Expr
	Having     Expr
	Qualify    Expr
	ConnectBy  *ConnectBy
}

func (*Select) setExprNode() {}

func (s *Select) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if s.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if s.Top != nil {
		sb.WriteString(s.Top.String())
		sb.WriteByte(' ')
	}
	for i, item := range s.Projection {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	if len(s.From) > 0 {
		sb.WriteString(" FROM ")
		for i, t := range s.From {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(t.String())
		}
	}
	if s.Selection != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(s.Selection.String())
	}
	if s.ConnectBy != nil {
		sb.WriteByte(' ')
		sb.WriteString(s.ConnectBy.String())
	}
	if len(s.GroupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(commaSeparated(s.GroupBy))
	}
	if s.Having != nil {
		sb.WriteString(" HAVING ")
		sb.WriteString(s.Having.String())
	}
	if s.Qualify != nil {
		sb.WriteString(" QUALIFY ")
		sb.WriteString(s.Qualify.String())
	}
	return sb.String()
}

// Top is the MSSQL SELECT TOP n [PERCENT] [WITH TIES] modifier.
type Top struct {
	Quantity Expr
	Percent  bool
	WithTies bool
}

func (t *Top) String() string {
	var sb strings.Builder
	sb.WriteString("TOP ")
	sb.WriteString(t.Quantity.String())
	if t.Percent {
		sb.WriteString(" PERCENT")
	}
	if t.WithTies {
		sb.WriteString(" WITH TIES")
	}
	return sb.String()
}

// ConnectBy is the hierarchical-query clause accepted syntactically when
// the dialect enables it: START WITH expr CONNECT BY expr.
type ConnectBy struct {
	StartWith Expr
	Condition Expr
}

func (c *ConnectBy) String() string {
	var sb strings.Builder
	if c.StartWith != nil {
		sb.WriteString("START WITH ")
		sb.WriteString(c.StartWith.String())
		sb.WriteByte(' ')
	}
	sb.WriteString("CONNECT BY ")
	sb.WriteString(c.Condition.String())
	return sb.String()
}

// SelectItem is one projection item. Expr may be *Wildcard or
// *QualifiedWildcard; Alias is nil when no alias was written.
type SelectItem struct {
	Expr  Expr
	Alias *Ident
}

func (s SelectItem) String() string {
	if s.Alias != nil {
		return s.Expr.String() + " AS " + s.Alias.String()
	}
	return s.Expr.String()
}

// ---------- FROM clause ----------

// TableWithJoins is one FROM item: a relation plus its chained joins.
type TableWithJoins struct {
	Relation TableFactor
	Joins    []Join
}

func (t TableWithJoins) String() string {
	var sb strings.Builder
	sb.WriteString(t.Relation.String())
	for _, j := range t.Joins {
		sb.WriteString(j.String())
	}
	return sb.String()
}

// TableFactor is the marker interface for FROM-clause relations.
// Variants: *Table, *Derived, *NestedJoin.
type TableFactor interface {
	Node
	tableFactorNode()
}

// TableAlias is an alias with optional column renames: AS a (x, y).
type TableAlias struct {
	Name    Ident
	Columns []Ident
}

func (a TableAlias) String() string {
	if len(a.Columns) > 0 {
		return a.Name.String() + " (" + commaSeparated(a.Columns) + ")"
	}
	return a.Name.String()
}

// Table is a named table reference, or a table-valued function call when
// Args is non-nil.
type Table struct {
	Name  ObjectName
	Alias *TableAlias
	// Args is non-nil for table functions: unnest(...), generate_series(...).
	Args []Expr
}

func (*Table) tableFactorNode() {}

func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name.String())
	if t.Args != nil {
		sb.WriteByte('(')
		sb.WriteString(commaSeparated(t.Args))
		sb.WriteByte(')')
	}
	if t.Alias != nil {
		sb.WriteString(" AS ")
		sb.WriteString(t.Alias.String())
	}
	return sb.String()
}

// Derived is a subquery in FROM: [LATERAL] (query) [AS alias].
type Derived struct {
	Lateral  bool
	Subquery *Query
	Alias    *TableAlias
}

func (*Derived) tableFactorNode() {}

func (d *Derived) String() string {
	var sb strings.Builder
	if d.Lateral {
		sb.WriteString("LATERAL ")
	}
	sb.WriteByte('(')
	sb.WriteString(d.Subquery.String())
	sb.WriteByte(')')
	if d.Alias != nil {
		sb.WriteString(" AS ")
		sb.WriteString(d.Alias.String())
	}
	return sb.String()
}

// NestedJoin is a parenthesized join tree used as a relation.
type NestedJoin struct {
	Table TableWithJoins
}

func (*NestedJoin) tableFactorNode() {}

func (n *NestedJoin) String() string { return "(" + n.Table.String() + ")" }

// JoinOperator identifies the join type.
type JoinOperator int

// Join operators.
const (
	JoinInner JoinOperator = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

// Join is one join step: operator, right relation, constraint.
type Join struct {
	Relation   TableFactor
	Op         JoinOperator
	Constraint JoinConstraint
}

func (j Join) String() string {
	if j.Op == JoinCross {
		return " CROSS JOIN " + j.Relation.String()
	}
	var kw string
	switch j.Op {
	case JoinLeft:
		kw = "LEFT JOIN"
	case JoinRight:
		kw = "RIGHT JOIN"
	case JoinFull:
		kw = "FULL JOIN"
	default:
		kw = "JOIN"
	}
	natural := ""
	if _, ok := j.Constraint.(NaturalConstraint); ok {
		natural = "NATURAL "
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, " %s%s %s", natural, kw, j.Relation)
	sb.WriteString(j.Constraint.String())
	return sb.String()
}

// JoinConstraint is the marker interface for join conditions.
// Variants: OnConstraint, UsingConstraint, NaturalConstraint, NoConstraint.
type JoinConstraint interface {
	Node
	joinConstraintNode()
}

// OnConstraint is ON <expr>.
type OnConstraint struct {
	Expr Expr
}

func (OnConstraint) joinConstraintNode() {}

func (c OnConstraint) String() string { return " ON " + c.Expr.String() }

// UsingConstraint is USING (columns).
type UsingConstraint struct {
	Columns []Ident
}

func (UsingConstraint) joinConstraintNode() {}

func (c UsingConstraint) String() string {
	return " USING (" + commaSeparated(c.Columns) + ")"
}

// NaturalConstraint marks a NATURAL join; rendered before the join keyword.
type NaturalConstraint struct{}

func (NaturalConstraint) joinConstraintNode() {}

func (NaturalConstraint) String() string { return "" }

// NoConstraint marks a constraint-free join (e.g. CROSS JOIN).
type NoConstraint struct{}

func (NoConstraint) joinConstraintNode() {}

func (NoConstraint) String() string { return "" }

// ---------- Ordering and limits ----------

// OrderByExpr is one ORDER BY item. Asc and NullsFirst are nil when the
// source did not spell the option.
type OrderByExpr struct {
	Expr       Expr
	Asc        *bool
	NullsFirst *bool
}

func (o OrderByExpr) String() string {
	var sb strings.Builder
	sb.WriteString(o.Expr.String())
	if o.Asc != nil {
		if *o.Asc {
			sb.WriteString(" ASC")
		} else {
			sb.WriteString(" DESC")
		}
	}
	if o.NullsFirst != nil {
		if *o.NullsFirst {
			sb.WriteString(" NULLS FIRST")
		} else {
			sb.WriteString(" NULLS LAST")
		}
	}
	return sb.String()
}

func commaSeparatedOrderBy(items []OrderByExpr) string {
	parts := make([]string, len(items))
	for i, o := range items {
		parts[i] = o.String()
	}
	return strings.Join(parts, ", ")
}

// OffsetRows records which (optional) keyword followed OFFSET.
type OffsetRows int

// OFFSET row keywords.
const (
	OffsetNone OffsetRows = iota
	OffsetRow
	OffsetRowsKw
)

// Offset is OFFSET <expr> [ROW | ROWS].
type Offset struct {
	Value Expr
	Rows  OffsetRows
}

func (o *Offset) String() string {
	switch o.Rows {
	case OffsetRow:
		return "OFFSET " + o.Value.String() + " ROW"
	case OffsetRowsKw:
		return "OFFSET " + o.Value.String() + " ROWS"
	default:
		return "OFFSET " + o.Value.String()
	}
}

// Fetch is FETCH FIRST|NEXT [<quantity> [PERCENT]] ROWS ONLY|WITH TIES.
type Fetch struct {
	Quantity Expr
	Percent  bool
	WithTies bool
}

func (f *Fetch) String() string {
	end := "ROWS ONLY"
	if f.WithTies {
		end = "ROWS WITH TIES"
	}
	if f.Quantity == nil {
		return "FETCH FIRST " + end
	}
	pct := ""
	if f.Percent {
		pct = " PERCENT"
	}
	return fmt.Sprintf("FETCH FIRST %s%s %s", f.Quantity, pct, end)
}
