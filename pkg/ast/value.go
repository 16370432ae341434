package ast

import "strings"

// ValueKind classifies a literal value.
type ValueKind int

// Literal value kinds.
const (
	ValueNumber ValueKind = iota
	ValueString           // single-quoted string
	ValueNationalString
	ValueHexString
	ValueBool
	ValueNull
	ValuePlaceholder
)

// Value is a literal. The original lexeme is preserved verbatim: numbers are
// never normalized (no constant folding, no range validation) so rendering
// reproduces the source exactly.
type Value struct {
	Kind ValueKind
	// Text holds the raw number lexeme, the unescaped string contents, or
	// the placeholder text (?, $1, :name).
	Text string
	Bool bool
}

func (*Value) exprNode() {}

func (v *Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return v.Text
	case ValueString:
		return "'" + escapeSingleQuotes(v.Text) + "'"
	case ValueNationalString:
		return "N'" + escapeSingleQuotes(v.Text) + "'"
	case ValueHexString:
		return "X'" + v.Text + "'"
	case ValueBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueNull:
		return "NULL"
	case ValuePlaceholder:
		return v.Text
	default:
		return v.Text
	}
}

// NumberValue wraps a raw numeric lexeme.
func NumberValue(text string) *Value {
	return &Value{Kind: ValueNumber, Text: text}
}

// StringValue wraps single-quoted string contents (unescaped).
func StringValue(text string) *Value {
	return &Value{Kind: ValueString, Text: text}
}

// BoolValue wraps a boolean literal.
func BoolValue(b bool) *Value {
	return &Value{Kind: ValueBool, Bool: b}
}

// NullValue returns the NULL literal.
func NullValue() *Value {
	return &Value{Kind: ValueNull}
}

// escapeSingleQuotes doubles embedded quotes per the SQL standard.
func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
