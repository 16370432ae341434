package dialect

// Operator precedence tiers used by the expression parser. Higher numbers
// bind tighter. The gaps leave room for dialects to slot custom operators
// between the standard tiers.
const (
	PrecNone       = 0
	PrecOr         = 5  // OR
	PrecAnd        = 10 // AND
	PrecUnaryNot   = 15 // NOT <expr>
	PrecIs         = 17 // IS NULL, IS TRUE, IS DISTINCT FROM
	PrecComparison = 20 // =, <>, <, >, <=, >=, IN, BETWEEN, LIKE
	PrecPipe       = 21 // |
	PrecBitwise    = 22 // &, ^
	PrecPlusMinus  = 30 // +, -
	PrecMulDivMod  = 40 // *, /, %, ||
	PrecUnarySign  = 45 // unary +, -
	PrecPostfix    = 50 // ::, [], COLLATE, -> and ->>
)
