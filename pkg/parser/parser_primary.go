package parser

import (
	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// parsePrefix parses an expression up to the first infix operator.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	// A type keyword followed by a string literal is a typed literal:
	// DATE '2024-01-01'. Attempted with backtracking because the type
	// may span several tokens (TIMESTAMP WITH TIME ZONE).
	if expr, ok := p.maybeParseTypedString(); ok {
		return expr, nil
	}

	tok := p.nextToken()
	switch tok.Type {
	case token.WORD:
		return p.parseWordPrefix(tok)
	case token.NUMBER:
		return ast.NumberValue(tok.Text), nil
	case token.STRING:
		return ast.StringValue(tok.Text), nil
	case token.NSTRING:
		return &ast.Value{Kind: ast.ValueNationalString, Text: tok.Text}, nil
	case token.HEXSTRING:
		return &ast.Value{Kind: ast.ValueHexString, Text: tok.Text}, nil
	case token.PLACEHOLDER:
		return &ast.Value{Kind: ast.ValuePlaceholder, Text: tok.Text}, nil
	case token.PLUS:
		return p.parseUnary(ast.UnaryPlus)
	case token.MINUS:
		return p.parseUnary(ast.UnaryMinus)
	case token.TILDE:
		return p.parseUnary(ast.BitwiseNot)
	case token.STAR:
		return &ast.Wildcard{}, nil
	case token.LPAREN:
		return p.parseParenExpr()
	case token.LBRACKET:
		if p.dialect.Settings.SupportsArrayLiterals {
			return p.parseArrayLiteral(false)
		}
	}
	return nil, p.expected("an expression", tok)
}

func (p *Parser) parseUnary(op ast.UnaryOperator) (ast.Expr, error) {
	operand, err := p.parseSubExpr(dialect.PrecUnarySign)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Op: op, Operand: operand}, nil
}

// parseWordPrefix dispatches on the keyword of an already-consumed WORD.
// Quoted words carry keyword.None and fall through to identifiers.
func (p *Parser) parseWordPrefix(tok token.Token) (ast.Expr, error) {
	switch tok.Word.Keyword {
	case keyword.TRUE:
		return ast.BoolValue(true), nil
	case keyword.FALSE:
		return ast.BoolValue(false), nil
	case keyword.NULL:
		return ast.NullValue(), nil
	case keyword.CASE:
		return p.parseCase()
	case keyword.CAST:
		return p.parseCast(ast.CastStandard)
	case keyword.TRY_CAST:
		return p.parseCast(ast.CastTry)
	case keyword.EXISTS:
		return p.parseExists(false)
	case keyword.EXTRACT:
		return p.parseExtract()
	case keyword.INTERVAL:
		return p.parseInterval()
	case keyword.SUBSTRING:
		return p.parseSubstring()
	case keyword.TRIM:
		return p.parseTrim()
	case keyword.OVERLAY:
		return p.parseOverlay()
	case keyword.POSITION:
		if p.peekToken().Type == token.LPAREN {
			return p.parsePosition()
		}
	case keyword.CONVERT:
		return p.parseConvert()
	case keyword.NOT:
		if p.parseKeyword(keyword.EXISTS) {
			return p.parseExists(true)
		}
		operand, err := p.parseSubExpr(dialect.PrecUnaryNot)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.Not, Operand: operand}, nil
	case keyword.ARRAY:
		if p.consumeToken(token.LBRACKET) {
			return p.parseArrayLiteral(true)
		}
	}
	return p.parseCompound(tok)
}

// parseCompound parses identifiers, compound identifiers, qualified
// wildcards, and function calls starting from an initial word.
func (p *Parser) parseCompound(tok token.Token) (ast.Expr, error) {
	parts := []ast.Ident{wordIdent(tok)}
	for p.consumeToken(token.DOT) {
		if p.consumeToken(token.STAR) {
			return &ast.QualifiedWildcard{Prefix: ast.ObjectName(parts)}, nil
		}
		next, err := p.expectToken(token.WORD)
		if err != nil {
			return nil, err
		}
		parts = append(parts, wordIdent(next))
	}
	if p.peekToken().Type == token.LPAREN {
		return p.parseFunction(ast.ObjectName(parts))
	}
	if len(parts) == 1 {
		return &ast.Identifier{Name: parts[0]}, nil
	}
	return &ast.CompoundIdentifier{Parts: parts}, nil
}

func wordIdent(tok token.Token) ast.Ident {
	return ast.Ident{Value: tok.Word.Value, Quote: tok.Word.Quote}
}

// maybeParseTypedString recognizes DATE '...', TIME '...', and similar
// typed literals, restoring the cursor when the shape does not match.
func (p *Parser) maybeParseTypedString() (ast.Expr, bool) {
	tok := p.peekToken()
	if tok.Type != token.WORD || tok.Word.Quote != token.QuoteNone {
		return nil, false
	}
	switch tok.Word.Keyword {
	case keyword.DATE, keyword.TIME, keyword.TIMESTAMP, keyword.DATETIME:
	default:
		return nil, false
	}
	idx := p.snapshot()
	dt, err := p.ParseDataType()
	if err != nil {
		p.restore(idx)
		return nil, false
	}
	lit := p.peekToken()
	if lit.Type != token.STRING {
		p.restore(idx)
		return nil, false
	}
	p.nextToken()
	return &ast.TypedString{DataType: dt, Value: lit.Text}, true
}

// parseParenExpr disambiguates "(": a subquery, a nested expression, or
// a tuple, depending on what follows.
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	if p.peekingQueryStart() {
		query, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Subquery{Query: query}, nil
	}
	exprs, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if len(exprs) == 1 {
		return &ast.Nested{Expr: exprs[0]}, nil
	}
	return &ast.Tuple{Exprs: exprs}, nil
}

// parseArrayLiteral parses elements after the opening bracket has been
// consumed. named marks the ARRAY[...] spelling.
func (p *Parser) parseArrayLiteral(named bool) (ast.Expr, error) {
	if p.consumeToken(token.RBRACKET) {
		return &ast.Array{Named: named}, nil
	}
	elems, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.Array{Elems: elems, Named: named}, nil
}

// parseCase parses CASE [operand] WHEN ... THEN ... [ELSE ...] END.
func (p *Parser) parseCase() (ast.Expr, error) {
	expr := &ast.CaseExpr{}
	if !p.peekToken().IsKeyword(keyword.WHEN) {
		operand, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		expr.Operand = operand
	}
	if err := p.expectKeyword(keyword.WHEN); err != nil {
		return nil, err
	}
	for {
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(keyword.THEN); err != nil {
			return nil, err
		}
		result, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		expr.Conditions = append(expr.Conditions, cond)
		expr.Results = append(expr.Results, result)
		if !p.parseKeyword(keyword.WHEN) {
			break
		}
	}
	if p.parseKeyword(keyword.ELSE) {
		elseExpr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		expr.Else = elseExpr
	}
	if err := p.expectKeyword(keyword.END); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseCast parses CAST(expr AS type) and TRY_CAST(expr AS type).
func (p *Parser) parseCast(kind ast.CastKind) (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	dt, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CastExpr{Kind: kind, Expr: expr, DataType: dt}, nil
}

// parseConvert parses CONVERT with dialect-dependent argument order.
func (p *Parser) parseConvert() (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	conv := &ast.ConvertExpr{TypeFirst: p.dialect.Settings.ConvertTypeBeforeValue}
	if conv.TypeFirst {
		dt, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.COMMA); err != nil {
			return nil, err
		}
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		conv.DataType, conv.Expr = dt, expr
	} else {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.COMMA); err != nil {
			return nil, err
		}
		dt, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		conv.DataType, conv.Expr = dt, expr
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return conv, nil
}

// parseExists parses EXISTS (query).
func (p *Parser) parseExists(negated bool) (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	query, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Exists{Query: query, Negated: negated}, nil
}

// parseExtract parses EXTRACT(field FROM expr).
func (p *Parser) parseExtract() (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	field, err := p.parseDateTimeField()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.FROM); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.ExtractExpr{Field: field, Expr: expr}, nil
}

var dateTimeFields = map[keyword.Keyword]ast.DateTimeField{
	keyword.YEAR:        ast.FieldYear,
	keyword.MONTH:       ast.FieldMonth,
	keyword.WEEK:        ast.FieldWeek,
	keyword.DAY:         ast.FieldDay,
	keyword.HOUR:        ast.FieldHour,
	keyword.MINUTE:      ast.FieldMinute,
	keyword.SECOND:      ast.FieldSecond,
	keyword.CENTURY:     ast.FieldCentury,
	keyword.DECADE:      ast.FieldDecade,
	keyword.DOW:         ast.FieldDow,
	keyword.DOY:         ast.FieldDoy,
	keyword.EPOCH:       ast.FieldEpoch,
	keyword.ISODOW:      ast.FieldIsodow,
	keyword.ISOYEAR:     ast.FieldIsoyear,
	keyword.JULIAN:      ast.FieldJulian,
	keyword.MICROSECOND: ast.FieldMicrosecond,
	keyword.MILLISECOND: ast.FieldMillisecond,
	keyword.QUARTER:     ast.FieldQuarter,
	keyword.TIMEZONE:    ast.FieldTimezone,
}

func (p *Parser) parseDateTimeField() (ast.DateTimeField, error) {
	tok := p.peekToken()
	if tok.Type == token.WORD {
		if field, ok := dateTimeFields[tok.Word.Keyword]; ok {
			p.nextToken()
			return field, nil
		}
	}
	return ast.FieldNone, p.expected("a date/time field", tok)
}

// parseInterval parses INTERVAL <value> [field [(precision)]] [TO field].
// Unit combinations are not validated here.
func (p *Parser) parseInterval() (ast.Expr, error) {
	value, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	iv := &ast.IntervalExpr{Value: value}
	if tok := p.peekToken(); tok.Type == token.WORD {
		if field, ok := dateTimeFields[tok.Word.Keyword]; ok {
			p.nextToken()
			iv.LeadingField = field
			if p.consumeToken(token.LPAREN) {
				prec, err := p.parseLiteralUint()
				if err != nil {
					return nil, err
				}
				iv.LeadingPrecision = &prec
				if _, err := p.expectToken(token.RPAREN); err != nil {
					return nil, err
				}
			}
			if p.parseKeyword(keyword.TO) {
				last, err := p.parseDateTimeField()
				if err != nil {
					return nil, err
				}
				iv.LastField = last
			}
		}
	}
	return iv, nil
}

// parseSubstring parses SUBSTRING(expr [FROM start] [FOR length]); the
// comma-separated spelling is accepted as an alias for FROM/FOR.
func (p *Parser) parseSubstring() (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	sub := &ast.SubstringExpr{Expr: expr}
	if p.parseKeyword(keyword.FROM) || p.consumeToken(token.COMMA) {
		sub.From, err = p.ParseExpr()
		if err != nil {
			return nil, err
		}
	}
	if p.parseKeyword(keyword.FOR) || p.consumeToken(token.COMMA) {
		sub.For, err = p.ParseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return sub, nil
}

// parseTrim parses TRIM([BOTH|LEADING|TRAILING] [what FROM] expr).
func (p *Parser) parseTrim() (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	trim := &ast.TrimExpr{}
	switch p.parseOneOfKeywords(keyword.BOTH, keyword.LEADING, keyword.TRAILING) {
	case keyword.BOTH:
		trim.Where = ast.TrimBoth
	case keyword.LEADING:
		trim.Where = ast.TrimLeading
	case keyword.TRAILING:
		trim.Where = ast.TrimTrailing
	}
	if trim.Where != ast.TrimNone && p.parseKeyword(keyword.FROM) {
		// TRIM(LEADING FROM x): no removal string.
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		trim.Expr = expr
	} else {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if p.parseKeyword(keyword.FROM) {
			trim.What = expr
			trim.Expr, err = p.ParseExpr()
			if err != nil {
				return nil, err
			}
		} else {
			trim.Expr = expr
		}
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return trim, nil
}

// parseOverlay parses OVERLAY(expr PLACING what FROM start [FOR length]).
func (p *Parser) parseOverlay() (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.PLACING); err != nil {
		return nil, err
	}
	what, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.FROM); err != nil {
		return nil, err
	}
	from, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	overlay := &ast.OverlayExpr{Expr: expr, What: what, From: from}
	if p.parseKeyword(keyword.FOR) {
		overlay.For, err = p.ParseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return overlay, nil
}

// parsePosition parses POSITION(substr IN str).
func (p *Parser) parsePosition() (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	// The substring is parsed above IN's precedence so the separator is
	// not folded into it.
	substr, err := p.parseSubExpr(dialect.PrecComparison)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.IN); err != nil {
		return nil, err
	}
	str, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.PositionExpr{Substr: substr, Str: str}, nil
}

// parseFunction parses the argument list and trailing clauses of a call
// whose name has already been consumed.
func (p *Parser) parseFunction(name ast.ObjectName) (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	fn := &ast.Function{Name: name}
	fn.Distinct = p.parseKeyword(keyword.DISTINCT)
	if !p.consumeToken(token.RPAREN) {
		args, err := parseCommaSeparated(p, p.parseFunctionArg)
		if err != nil {
			return nil, err
		}
		fn.Args = args
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if p.dialect.Settings.SupportsFilterDuringAggregation && p.parseKeyword(keyword.FILTER) {
		if _, err := p.expectToken(token.LPAREN); err != nil {
			return nil, err
		}
		if err := p.expectKeyword(keyword.WHERE); err != nil {
			return nil, err
		}
		filter, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		fn.Filter = filter
	}
	if p.parseKeyword(keyword.OVER) {
		over, err := p.parseWindowType()
		if err != nil {
			return nil, err
		}
		fn.Over = over
	}
	return fn, nil
}

func (p *Parser) parseFunctionArg() (ast.FunctionArg, error) {
	if p.dialect.Settings.SupportsNamedArguments &&
		p.peekToken().Type == token.WORD && p.peekNth(1).Type == token.RARROW {
		name := wordIdent(p.nextToken())
		p.nextToken() // consume =>
		arg, err := p.ParseExpr()
		if err != nil {
			return ast.FunctionArg{}, err
		}
		return ast.FunctionArg{Name: &name, Arg: arg}, nil
	}
	arg, err := p.ParseExpr()
	if err != nil {
		return ast.FunctionArg{}, err
	}
	return ast.FunctionArg{Arg: arg}, nil
}

// parseWindowType parses what follows OVER: a named window reference or
// an inline specification.
func (p *Parser) parseWindowType() (*ast.WindowType, error) {
	if !p.consumeToken(token.LPAREN) {
		tok, err := p.expectToken(token.WORD)
		if err != nil {
			return nil, err
		}
		name := wordIdent(tok)
		return &ast.WindowType{Name: &name}, nil
	}
	spec := &ast.WindowSpec{}
	if p.parseKeywords(keyword.PARTITION, keyword.BY) {
		exprs, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		spec.PartitionBy = exprs
	}
	if p.parseKeywords(keyword.ORDER, keyword.BY) {
		items, err := parseCommaSeparated(p, p.parseOrderByExpr)
		if err != nil {
			return nil, err
		}
		spec.OrderBy = items
	}
	if units := p.parseOneOfKeywords(keyword.ROWS, keyword.RANGE, keyword.GROUPS); units != keyword.None {
		frame, err := p.parseWindowFrame(units)
		if err != nil {
			return nil, err
		}
		spec.Frame = frame
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.WindowType{Spec: spec}, nil
}

func (p *Parser) parseWindowFrame(units keyword.Keyword) (*ast.WindowFrame, error) {
	frame := &ast.WindowFrame{}
	switch units {
	case keyword.RANGE:
		frame.Units = ast.FrameRange
	case keyword.GROUPS:
		frame.Units = ast.FrameGroups
	default:
		frame.Units = ast.FrameRows
	}
	if p.parseKeyword(keyword.BETWEEN) {
		start, err := p.parseWindowFrameBound()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(keyword.AND); err != nil {
			return nil, err
		}
		end, err := p.parseWindowFrameBound()
		if err != nil {
			return nil, err
		}
		frame.Start = start
		frame.End = &end
		return frame, nil
	}
	start, err := p.parseWindowFrameBound()
	if err != nil {
		return nil, err
	}
	frame.Start = start
	return frame, nil
}

func (p *Parser) parseWindowFrameBound() (ast.WindowFrameBound, error) {
	if p.parseKeywords(keyword.CURRENT, keyword.ROW) {
		return ast.WindowFrameBound{Kind: ast.BoundCurrentRow}, nil
	}
	var offset ast.Expr
	if !p.parseKeyword(keyword.UNBOUNDED) {
		expr, err := p.ParseExpr()
		if err != nil {
			return ast.WindowFrameBound{}, err
		}
		offset = expr
	}
	switch p.parseOneOfKeywords(keyword.PRECEDING, keyword.FOLLOWING) {
	case keyword.PRECEDING:
		return ast.WindowFrameBound{Kind: ast.BoundPreceding, Offset: offset}, nil
	case keyword.FOLLOWING:
		return ast.WindowFrameBound{Kind: ast.BoundFollowing, Offset: offset}, nil
	}
	return ast.WindowFrameBound{}, p.expected("PRECEDING or FOLLOWING", p.peekToken())
}
