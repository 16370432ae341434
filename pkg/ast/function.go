package ast

import "strings"

// FunctionArg is a single function argument, optionally named (name => expr).
type FunctionArg struct {
	Name *Ident
	Arg  Expr
}

func (a FunctionArg) String() string {
	if a.Name != nil {
		return a.Name.String() + " => " + a.Arg.String()
	}
	return a.Arg.String()
}

// Function is a function call, possibly with aggregate modifiers and an
// OVER window.
type Function struct {
	Name     ObjectName
	Args     []FunctionArg
	Distinct bool
	// Filter is the FILTER (WHERE ...) aggregate clause.
	Filter Expr
	Over   *WindowType
}

func (*Function) exprNode() {}

func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString(f.Name.String())
	sb.WriteByte('(')
	if f.Distinct {
		sb.WriteString("DISTINCT ")
	}
	for i, a := range f.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	if f.Filter != nil {
		sb.WriteString(" FILTER (WHERE ")
		sb.WriteString(f.Filter.String())
		sb.WriteByte(')')
	}
	if f.Over != nil {
		sb.WriteString(" OVER ")
		sb.WriteString(f.Over.String())
	}
	return sb.String()
}
