package ast

// BinaryOperator identifies an infix operator.
type BinaryOperator int

// Binary operators.
const (
	Plus BinaryOperator = iota
	Minus
	Multiply
	Divide
	Modulo
	StringConcat
	Gt
	Lt
	GtEq
	LtEq
	Spaceship
	Eq
	NotEq
	And
	Or
	BitwiseOr
	BitwiseAnd
	BitwiseXor
	Arrow     // ->
	LongArrow // ->>
)

func (op BinaryOperator) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	case StringConcat:
		return "||"
	case Gt:
		return ">"
	case Lt:
		return "<"
	case GtEq:
		return ">="
	case LtEq:
		return "<="
	case Spaceship:
		return "<=>"
	case Eq:
		return "="
	case NotEq:
		return "<>"
	case And:
		return "AND"
	case Or:
		return "OR"
	case BitwiseOr:
		return "|"
	case BitwiseAnd:
		return "&"
	case BitwiseXor:
		return "^"
	case Arrow:
		return "->"
	case LongArrow:
		return "->>"
	default:
		return "?"
	}
}

// UnaryOperator identifies a prefix operator.
type UnaryOperator int

// Unary operators.
const (
	UnaryPlus UnaryOperator = iota
	UnaryMinus
	Not
	BitwiseNot
)

func (op UnaryOperator) String() string {
	switch op {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	case Not:
		return "NOT"
	case BitwiseNot:
		return "~"
	default:
		return "?"
	}
}
