package parser

import (
	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// ParseExpr parses a full expression at the lowest precedence.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.parseSubExpr(dialect.PrecNone)
}

// parseSubExpr is the precedence climber: it parses a prefix expression,
// then folds infix operators as long as they bind tighter than minPrec.
func (p *Parser) parseSubExpr(minPrec int) (ast.Expr, error) {
	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	expr, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		prec := p.nextPrecedence()
		if prec <= minPrec {
			return expr, nil
		}
		expr, err = p.parseInfix(expr, prec)
		if err != nil {
			return nil, err
		}
	}
}

// nextPrecedence returns the binding power of the upcoming operator. The
// dialect hook is consulted before the default table.
func (p *Parser) nextPrecedence() int {
	if prec, ok := p.dialect.NextPrecedence(p); ok {
		return prec
	}

	tok := p.peekToken()
	switch tok.Type {
	case token.WORD:
		switch tok.Word.Keyword {
		case keyword.OR:
			return dialect.PrecOr
		case keyword.AND:
			return dialect.PrecAnd
		case keyword.IS:
			return dialect.PrecIs
		case keyword.IN, keyword.BETWEEN, keyword.LIKE, keyword.SIMILAR:
			return dialect.PrecComparison
		case keyword.ILIKE:
			if p.dialect.Settings.SupportsIlike {
				return dialect.PrecComparison
			}
			return dialect.PrecNone
		case keyword.NOT:
			// NOT only continues an expression before IN, BETWEEN,
			// LIKE and friends: "a NOT IN (...)".
			switch next := p.peekNth(1); {
			case next.IsKeyword(keyword.IN),
				next.IsKeyword(keyword.BETWEEN),
				next.IsKeyword(keyword.LIKE),
				next.IsKeyword(keyword.ILIKE),
				next.IsKeyword(keyword.SIMILAR):
				return dialect.PrecComparison
			}
			return dialect.PrecNone
		case keyword.COLLATE:
			return dialect.PrecPostfix
		}
		return dialect.PrecNone
	case token.EQ, token.NEQ, token.LT, token.GT, token.LTEQ, token.GTEQ, token.SPACESHIP:
		return dialect.PrecComparison
	case token.PIPE:
		return dialect.PrecPipe
	case token.AMP, token.CARET:
		return dialect.PrecBitwise
	case token.PLUS, token.MINUS:
		return dialect.PrecPlusMinus
	case token.STAR, token.SLASH, token.PERCENT, token.CONCAT:
		return dialect.PrecMulDivMod
	case token.ARROW, token.LONGARROW:
		if p.dialect.Settings.SupportsJSONOperators {
			return dialect.PrecPostfix
		}
		return dialect.PrecNone
	case token.DCOLON, token.LBRACKET:
		return dialect.PrecPostfix
	default:
		return dialect.PrecNone
	}
}

// parseInfix folds one infix or postfix operator onto expr.
func (p *Parser) parseInfix(expr ast.Expr, prec int) (ast.Expr, error) {
	tok := p.nextToken()

	if op, ok := binaryOperator(tok); ok {
		// A quantifier after a comparison operator turns it into
		// "expr op ANY (...)".
		if isComparisonOperator(tok.Type) {
			if q := p.parseOneOfKeywords(keyword.ANY, keyword.SOME, keyword.ALL); q != keyword.None {
				return p.parseQuantifiedComparison(expr, op, q)
			}
		}
		right, err := p.parseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: expr, Op: op, Right: right}, nil
	}

	switch tok.Type {
	case token.DCOLON:
		dt, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.CastExpr{Kind: ast.CastDoubleColon, Expr: expr, DataType: dt}, nil
	case token.LBRACKET:
		return p.parseArrayIndex(expr)
	}

	if tok.Type != token.WORD {
		return nil, p.expected("an infix operator", tok)
	}

	switch tok.Word.Keyword {
	case keyword.IS:
		return p.parseIs(expr)
	case keyword.NOT:
		return p.parseNegatedInfix(expr)
	case keyword.IN:
		return p.parseIn(expr, false)
	case keyword.BETWEEN:
		return p.parseBetween(expr, false)
	case keyword.LIKE:
		return p.parseLike(expr, ast.Like, false)
	case keyword.ILIKE:
		return p.parseLike(expr, ast.ILike, false)
	case keyword.SIMILAR:
		if err := p.expectKeyword(keyword.TO); err != nil {
			return nil, err
		}
		return p.parseLike(expr, ast.SimilarTo, false)
	case keyword.COLLATE:
		collation, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.Collate{Expr: expr, Collation: collation}, nil
	}

	return nil, p.expected("an infix operator", tok)
}

// binaryOperator maps an operator token to its AST operator.
func binaryOperator(tok token.Token) (ast.BinaryOperator, bool) {
	switch tok.Type {
	case token.PLUS:
		return ast.Plus, true
	case token.MINUS:
		return ast.Minus, true
	case token.STAR:
		return ast.Multiply, true
	case token.SLASH:
		return ast.Divide, true
	case token.PERCENT:
		return ast.Modulo, true
	case token.CONCAT:
		return ast.StringConcat, true
	case token.EQ:
		return ast.Eq, true
	case token.NEQ:
		return ast.NotEq, true
	case token.LT:
		return ast.Lt, true
	case token.GT:
		return ast.Gt, true
	case token.LTEQ:
		return ast.LtEq, true
	case token.GTEQ:
		return ast.GtEq, true
	case token.SPACESHIP:
		return ast.Spaceship, true
	case token.PIPE:
		return ast.BitwiseOr, true
	case token.AMP:
		return ast.BitwiseAnd, true
	case token.CARET:
		return ast.BitwiseXor, true
	case token.ARROW:
		return ast.Arrow, true
	case token.LONGARROW:
		return ast.LongArrow, true
	case token.WORD:
		switch tok.Word.Keyword {
		case keyword.AND:
			return ast.And, true
		case keyword.OR:
			return ast.Or, true
		}
	}
	return 0, false
}

func isComparisonOperator(typ token.Type) bool {
	switch typ {
	case token.EQ, token.NEQ, token.LT, token.GT, token.LTEQ, token.GTEQ:
		return true
	}
	return false
}

func quantifierFor(k keyword.Keyword) ast.Quantifier {
	switch k {
	case keyword.ALL:
		return ast.AllQuantifier
	case keyword.SOME:
		return ast.SomeQuantifier
	default:
		return ast.AnyQuantifier
	}
}

// parseQuantifiedComparison parses the parenthesized right side of
// "expr op ANY|SOME|ALL (...)".
func (p *Parser) parseQuantifiedComparison(left ast.Expr, op ast.BinaryOperator, q keyword.Keyword) (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	var right ast.Expr
	if p.peekingQueryStart() {
		query, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		right = &ast.Subquery{Query: query}
	} else {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		right = &ast.Nested{Expr: expr}
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.QuantifiedComparison{
		Left:       left,
		Op:         op,
		Quantifier: quantifierFor(q),
		Right:      right,
	}, nil
}

// parseIs parses the IS family: IS [NOT] NULL / TRUE / FALSE /
// DISTINCT FROM.
func (p *Parser) parseIs(expr ast.Expr) (ast.Expr, error) {
	negated := p.parseKeyword(keyword.NOT)
	switch {
	case p.parseKeyword(keyword.NULL):
		return &ast.IsNullExpr{Expr: expr, Negated: negated}, nil
	case p.parseKeyword(keyword.TRUE):
		return &ast.IsBoolExpr{Expr: expr, Value: true, Negated: negated}, nil
	case p.parseKeyword(keyword.FALSE):
		return &ast.IsBoolExpr{Expr: expr, Value: false, Negated: negated}, nil
	case p.parseKeywords(keyword.DISTINCT, keyword.FROM):
		right, err := p.parseSubExpr(dialect.PrecIs)
		if err != nil {
			return nil, err
		}
		return &ast.IsDistinctFrom{Left: expr, Right: right, Negated: negated}, nil
	}
	return nil, p.expected("NULL, TRUE, FALSE, or DISTINCT FROM after IS", p.peekToken())
}

// parseNegatedInfix handles "expr NOT IN", "expr NOT BETWEEN",
// "expr NOT LIKE" and friends.
func (p *Parser) parseNegatedInfix(expr ast.Expr) (ast.Expr, error) {
	switch {
	case p.parseKeyword(keyword.IN):
		return p.parseIn(expr, true)
	case p.parseKeyword(keyword.BETWEEN):
		return p.parseBetween(expr, true)
	case p.parseKeyword(keyword.LIKE):
		return p.parseLike(expr, ast.Like, true)
	case p.parseKeyword(keyword.ILIKE):
		return p.parseLike(expr, ast.ILike, true)
	case p.parseKeywords(keyword.SIMILAR, keyword.TO):
		return p.parseLike(expr, ast.SimilarTo, true)
	}
	return nil, p.expected("IN, BETWEEN, LIKE, ILIKE, or SIMILAR TO after NOT", p.peekToken())
}

// parseIn parses "(subquery)" or "(expr_list)" after [NOT] IN.
func (p *Parser) parseIn(expr ast.Expr, negated bool) (ast.Expr, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if p.peekingQueryStart() {
		query, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.InSubquery{Expr: expr, Subquery: query, Negated: negated}, nil
	}
	list, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.InList{Expr: expr, List: list, Negated: negated}, nil
}

// parseBetween parses "low AND high" after [NOT] BETWEEN. The bounds are
// parsed above AND's precedence so the separator is not folded.
func (p *Parser) parseBetween(expr ast.Expr, negated bool) (ast.Expr, error) {
	low, err := p.parseSubExpr(dialect.PrecComparison)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.AND); err != nil {
		return nil, err
	}
	high, err := p.parseSubExpr(dialect.PrecComparison)
	if err != nil {
		return nil, err
	}
	return &ast.Between{Expr: expr, Low: low, High: high, Negated: negated}, nil
}

// parseLike parses the pattern and optional ESCAPE clause.
func (p *Parser) parseLike(expr ast.Expr, kind ast.LikeKind, negated bool) (ast.Expr, error) {
	pattern, err := p.parseSubExpr(dialect.PrecComparison)
	if err != nil {
		return nil, err
	}
	var escape ast.Expr
	if p.parseKeyword(keyword.ESCAPE) {
		escape, err = p.parseSubExpr(dialect.PrecComparison)
		if err != nil {
			return nil, err
		}
	}
	return &ast.LikeExpr{Kind: kind, Expr: expr, Pattern: pattern, Escape: escape, Negated: negated}, nil
}

// parseArrayIndex parses chained subscripts: expr[i][j].
func (p *Parser) parseArrayIndex(expr ast.Expr) (ast.Expr, error) {
	index, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RBRACKET); err != nil {
		return nil, err
	}
	indexes := []ast.Expr{index}
	for p.consumeToken(token.LBRACKET) {
		index, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RBRACKET); err != nil {
			return nil, err
		}
		indexes = append(indexes, index)
	}
	return &ast.ArrayIndex{Obj: expr, Indexes: indexes}, nil
}

// peekingQueryStart reports whether the upcoming tokens begin a query.
func (p *Parser) peekingQueryStart() bool {
	tok := p.peekToken()
	return tok.IsKeyword(keyword.SELECT) ||
		tok.IsKeyword(keyword.WITH) ||
		tok.IsKeyword(keyword.VALUES)
}
