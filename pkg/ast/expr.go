package ast

import (
	"fmt"
	"strings"
)

// ---------- Identifiers and wildcards ----------

// Identifier is a bare or quoted single-part identifier.
type Identifier struct {
	Name Ident
}

func (*Identifier) exprNode() {}

func (e *Identifier) String() string { return e.Name.String() }

// CompoundIdentifier is a multi-part identifier such as t.c or db.t.c.
type CompoundIdentifier struct {
	Parts []Ident
}

func (*CompoundIdentifier) exprNode() {}

func (e *CompoundIdentifier) String() string {
	parts := make([]string, len(e.Parts))
	for i, p := range e.Parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, ".")
}

// Wildcard is the * projection.
type Wildcard struct{}

func (*Wildcard) exprNode() {}

func (*Wildcard) String() string { return "*" }

// QualifiedWildcard is t.* or schema.t.*.
type QualifiedWildcard struct {
	Prefix ObjectName
}

func (*QualifiedWildcard) exprNode() {}

func (e *QualifiedWildcard) String() string { return e.Prefix.String() + ".*" }

// ---------- Operators ----------

// BinaryExpr is a binary operation such as 1 + 1 or foo > bar.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOperator
	Right Expr
}

func (*BinaryExpr) exprNode() {}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, e.Op, e.Right)
}

// UnaryExpr is a prefix operation such as NOT foo or -1.
type UnaryExpr struct {
	Op      UnaryOperator
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

func (e *UnaryExpr) String() string {
	if e.Op == Not {
		return "NOT " + e.Operand.String()
	}
	return e.Op.String() + e.Operand.String()
}

// ---------- IS family ----------

// IsNullExpr is expr IS [NOT] NULL.
type IsNullExpr struct {
	Expr    Expr
	Negated bool
}

func (*IsNullExpr) exprNode() {}

func (e *IsNullExpr) String() string {
	if e.Negated {
		return e.Expr.String() + " IS NOT NULL"
	}
	return e.Expr.String() + " IS NULL"
}

// IsBoolExpr is expr IS [NOT] TRUE|FALSE.
type IsBoolExpr struct {
	Expr    Expr
	Value   bool
	Negated bool
}

func (*IsBoolExpr) exprNode() {}

func (e *IsBoolExpr) String() string {
	var sb strings.Builder
	sb.WriteString(e.Expr.String())
	sb.WriteString(" IS ")
	if e.Negated {
		sb.WriteString("NOT ")
	}
	if e.Value {
		sb.WriteString("TRUE")
	} else {
		sb.WriteString("FALSE")
	}
	return sb.String()
}

// IsDistinctFrom is a IS [NOT] DISTINCT FROM b.
type IsDistinctFrom struct {
	Left    Expr
	Right   Expr
	Negated bool
}

func (*IsDistinctFrom) exprNode() {}

func (e *IsDistinctFrom) String() string {
	if e.Negated {
		return fmt.Sprintf("%s IS NOT DISTINCT FROM %s", e.Left, e.Right)
	}
	return fmt.Sprintf("%s IS DISTINCT FROM %s", e.Left, e.Right)
}

// ---------- Membership and pattern matching ----------

// InList is expr [NOT] IN (a, b, c).
type InList struct {
	Expr    Expr
	List    []Expr
	Negated bool
}

func (*InList) exprNode() {}

func (e *InList) String() string {
	return fmt.Sprintf("%s %sIN (%s)", e.Expr, notPrefix(e.Negated), commaSeparated(e.List))
}

// InSubquery is expr [NOT] IN (SELECT ...).
type InSubquery struct {
	Expr     Expr
	Subquery *Query
	Negated  bool
}

func (*InSubquery) exprNode() {}

func (e *InSubquery) String() string {
	return fmt.Sprintf("%s %sIN (%s)", e.Expr, notPrefix(e.Negated), e.Subquery)
}

// Between is expr [NOT] BETWEEN low AND high.
type Between struct {
	Expr    Expr
	Low     Expr
	High    Expr
	Negated bool
}

func (*Between) exprNode() {}

func (e *Between) String() string {
	return fmt.Sprintf("%s %sBETWEEN %s AND %s", e.Expr, notPrefix(e.Negated), e.Low, e.High)
}

// LikeKind distinguishes the pattern-matching operators.
type LikeKind int

// Pattern-matching operator kinds.
const (
	Like LikeKind = iota
	ILike
	SimilarTo
)

func (k LikeKind) String() string {
	switch k {
	case ILike:
		return "ILIKE"
	case SimilarTo:
		return "SIMILAR TO"
	default:
		return "LIKE"
	}
}

// LikeExpr is expr [NOT] LIKE|ILIKE|SIMILAR TO pattern [ESCAPE c].
type LikeExpr struct {
	Kind    LikeKind
	Expr    Expr
	Pattern Expr
	Escape  Expr
	Negated bool
}

func (*LikeExpr) exprNode() {}

func (e *LikeExpr) String() string {
	var sb strings.Builder
	sb.WriteString(e.Expr.String())
	sb.WriteByte(' ')
	sb.WriteString(notPrefix(e.Negated))
	sb.WriteString(e.Kind.String())
	sb.WriteByte(' ')
	sb.WriteString(e.Pattern.String())
	if e.Escape != nil {
		sb.WriteString(" ESCAPE ")
		sb.WriteString(e.Escape.String())
	}
	return sb.String()
}

// Quantifier marks ANY/SOME/ALL comparisons.
type Quantifier int

// Comparison quantifiers.
const (
	AnyQuantifier Quantifier = iota
	SomeQuantifier
	AllQuantifier
)

func (q Quantifier) String() string {
	switch q {
	case SomeQuantifier:
		return "SOME"
	case AllQuantifier:
		return "ALL"
	default:
		return "ANY"
	}
}

// QuantifiedComparison is left <op> ANY|SOME|ALL (right). The right side is
// usually a subquery but any parenthesized expression is accepted
// syntactically.
type QuantifiedComparison struct {
	Left       Expr
	Op         BinaryOperator
	Quantifier Quantifier
	Right      Expr
}

func (*QuantifiedComparison) exprNode() {}

func (e *QuantifiedComparison) String() string {
	return fmt.Sprintf("%s %s %s (%s)", e.Left, e.Op, e.Quantifier, e.Right)
}

// ---------- Conditional ----------

// CaseExpr is CASE [operand] WHEN ... THEN ... [ELSE ...] END.
// Conditions and Results are parallel slices.
type CaseExpr struct {
	Operand    Expr
	Conditions []Expr
	Results    []Expr
	Else       Expr
}

func (*CaseExpr) exprNode() {}

func (e *CaseExpr) String() string {
	var sb strings.Builder
	sb.WriteString("CASE")
	if e.Operand != nil {
		sb.WriteByte(' ')
		sb.WriteString(e.Operand.String())
	}
	for i := range e.Conditions {
		fmt.Fprintf(&sb, " WHEN %s THEN %s", e.Conditions[i], e.Results[i])
	}
	if e.Else != nil {
		sb.WriteString(" ELSE ")
		sb.WriteString(e.Else.String())
	}
	sb.WriteString(" END")
	return sb.String()
}

// ---------- Casts and special forms ----------

// CastKind distinguishes the cast spellings.
type CastKind int

// Cast kinds.
const (
	CastStandard    CastKind = iota // CAST(x AS t)
	CastTry                         // TRY_CAST(x AS t)
	CastDoubleColon                 // x::t
)

// CastExpr converts an expression to a data type, syntactically only.
type CastExpr struct {
	Kind     CastKind
	Expr     Expr
	DataType *DataType
}

func (*CastExpr) exprNode() {}

func (e *CastExpr) String() string {
	switch e.Kind {
	case CastTry:
		return fmt.Sprintf("TRY_CAST(%s AS %s)", e.Expr, e.DataType)
	case CastDoubleColon:
		return fmt.Sprintf("%s::%s", e.Expr, e.DataType)
	default:
		return fmt.Sprintf("CAST(%s AS %s)", e.Expr, e.DataType)
	}
}

// ConvertExpr is the CONVERT call. Argument order is dialect-specific:
// MSSQL writes CONVERT(type, expr), most others CONVERT(expr, type).
// TypeFirst records the order found in the source.
type ConvertExpr struct {
	Expr      Expr
	DataType  *DataType
	TypeFirst bool
}

func (*ConvertExpr) exprNode() {}

func (e *ConvertExpr) String() string {
	if e.TypeFirst {
		return fmt.Sprintf("CONVERT(%s, %s)", e.DataType, e.Expr)
	}
	return fmt.Sprintf("CONVERT(%s, %s)", e.Expr, e.DataType)
}

// ExtractExpr is EXTRACT(field FROM expr).
type ExtractExpr struct {
	Field DateTimeField
	Expr  Expr
}

func (*ExtractExpr) exprNode() {}

func (e *ExtractExpr) String() string {
	return fmt.Sprintf("EXTRACT(%s FROM %s)", e.Field, e.Expr)
}

// SubstringExpr is SUBSTRING(expr [FROM start] [FOR length]).
type SubstringExpr struct {
	Expr Expr
	From Expr
	For  Expr
}

func (*SubstringExpr) exprNode() {}

func (e *SubstringExpr) String() string {
	var sb strings.Builder
	sb.WriteString("SUBSTRING(")
	sb.WriteString(e.Expr.String())
	if e.From != nil {
		sb.WriteString(" FROM ")
		sb.WriteString(e.From.String())
	}
	if e.For != nil {
		sb.WriteString(" FOR ")
		sb.WriteString(e.For.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// TrimWhere selects which end TRIM strips from.
type TrimWhere int

// Trim positions.
const (
	TrimNone TrimWhere = iota
	TrimBoth
	TrimLeading
	TrimTrailing
)

func (w TrimWhere) String() string {
	switch w {
	case TrimBoth:
		return "BOTH"
	case TrimLeading:
		return "LEADING"
	case TrimTrailing:
		return "TRAILING"
	default:
		return ""
	}
}

// TrimExpr is TRIM([BOTH|LEADING|TRAILING] [what FROM] expr).
type TrimExpr struct {
	Expr  Expr
	Where TrimWhere
	What  Expr
}

func (*TrimExpr) exprNode() {}

func (e *TrimExpr) String() string {
	var sb strings.Builder
	sb.WriteString("TRIM(")
	if e.Where != TrimNone {
		sb.WriteString(e.Where.String())
		sb.WriteByte(' ')
	}
	if e.What != nil {
		sb.WriteString(e.What.String())
		sb.WriteString(" FROM ")
	}
	sb.WriteString(e.Expr.String())
	sb.WriteByte(')')
	return sb.String()
}

// OverlayExpr is OVERLAY(expr PLACING what FROM start [FOR length]).
type OverlayExpr struct {
	Expr Expr
	What Expr
	From Expr
	For  Expr
}

func (*OverlayExpr) exprNode() {}

func (e *OverlayExpr) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "OVERLAY(%s PLACING %s FROM %s", e.Expr, e.What, e.From)
	if e.For != nil {
		sb.WriteString(" FOR ")
		sb.WriteString(e.For.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// PositionExpr is POSITION(substr IN str).
type PositionExpr struct {
	Substr Expr
	Str    Expr
}

func (*PositionExpr) exprNode() {}

func (e *PositionExpr) String() string {
	return fmt.Sprintf("POSITION(%s IN %s)", e.Substr, e.Str)
}

// Collate is expr COLLATE collation.
type Collate struct {
	Expr      Expr
	Collation ObjectName
}

func (*Collate) exprNode() {}

func (e *Collate) String() string {
	return fmt.Sprintf("%s COLLATE %s", e.Expr, e.Collation)
}

// ---------- Grouping, subqueries, collections ----------

// Nested is a parenthesized expression.
type Nested struct {
	Expr Expr
}

func (*Nested) exprNode() {}

func (e *Nested) String() string { return "(" + e.Expr.String() + ")" }

// Tuple is a comma-separated row value: (a, b, c).
type Tuple struct {
	Exprs []Expr
}

func (*Tuple) exprNode() {}

func (e *Tuple) String() string { return "(" + commaSeparated(e.Exprs) + ")" }

// Exists is [NOT] EXISTS (subquery).
type Exists struct {
	Query   *Query
	Negated bool
}

func (*Exists) exprNode() {}

func (e *Exists) String() string {
	return fmt.Sprintf("%sEXISTS (%s)", notPrefix(e.Negated), e.Query)
}

// Subquery is a scalar subquery: (SELECT ...).
type Subquery struct {
	Query *Query
}

func (*Subquery) exprNode() {}

func (e *Subquery) String() string { return "(" + e.Query.String() + ")" }

// Array is an array literal: ARRAY[1, 2] or [1, 2].
type Array struct {
	Elems []Expr
	// Named records whether the ARRAY keyword was written.
	Named bool
}

func (*Array) exprNode() {}

func (e *Array) String() string {
	if e.Named {
		return "ARRAY[" + commaSeparated(e.Elems) + "]"
	}
	return "[" + commaSeparated(e.Elems) + "]"
}

// ArrayIndex is a postfix subscript: expr[i] or expr[i][j].
type ArrayIndex struct {
	Obj     Expr
	Indexes []Expr
}

func (*ArrayIndex) exprNode() {}

func (e *ArrayIndex) String() string {
	var sb strings.Builder
	sb.WriteString(e.Obj.String())
	for _, ix := range e.Indexes {
		sb.WriteByte('[')
		sb.WriteString(ix.String())
		sb.WriteByte(']')
	}
	return sb.String()
}

// ---------- Temporal literals ----------

// IntervalExpr is INTERVAL 'value' [leading_field [(precision)]] [TO last_field].
// Field combinations are not validated: INTERVAL '1' HOUR TO YEAR is
// accepted syntactically and left to consumers to reject.
type IntervalExpr struct {
	Value            Expr
	LeadingField     DateTimeField
	LeadingPrecision *uint64
	LastField        DateTimeField
}

func (*IntervalExpr) exprNode() {}

func (e *IntervalExpr) String() string {
	var sb strings.Builder
	sb.WriteString("INTERVAL ")
	sb.WriteString(e.Value.String())
	if e.LeadingField != FieldNone {
		sb.WriteByte(' ')
		sb.WriteString(e.LeadingField.String())
		if e.LeadingPrecision != nil {
			fmt.Fprintf(&sb, "(%d)", *e.LeadingPrecision)
		}
	}
	if e.LastField != FieldNone {
		sb.WriteString(" TO ")
		sb.WriteString(e.LastField.String())
	}
	return sb.String()
}

// TypedString is a literal with a leading type keyword: DATE '2024-01-01'.
type TypedString struct {
	DataType *DataType
	Value    string
}

func (*TypedString) exprNode() {}

func (e *TypedString) String() string {
	return fmt.Sprintf("%s '%s'", e.DataType, escapeSingleQuotes(e.Value))
}

// notPrefix renders the optional NOT in negatable constructs.
func notPrefix(negated bool) string {
	if negated {
		return "NOT "
	}
	return ""
}
