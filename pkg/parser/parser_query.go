package parser

import (
	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// Set operators bind looser than everything inside a select core.
// INTERSECT binds tighter than UNION and EXCEPT.
const (
	setPrecUnion     = 10
	setPrecIntersect = 20
)

// parseQuery parses a full query: [WITH ...] body [ORDER BY ...]
// [LIMIT ...] [OFFSET ...] [FETCH ...].
func (p *Parser) parseQuery() (*ast.Query, error) {
	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	query := &ast.Query{}
	if p.parseKeyword(keyword.WITH) {
		with, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		query.With = with
	}

	body, err := p.parseSetExpr(0)
	if err != nil {
		return nil, err
	}
	query.Body = body

	if p.parseKeywords(keyword.ORDER, keyword.BY) {
		items, err := parseCommaSeparated(p, p.parseOrderByExpr)
		if err != nil {
			return nil, err
		}
		query.OrderBy = items
	}
	if p.parseKeyword(keyword.LIMIT) {
		limit, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		query.Limit = limit
	}
	if p.parseKeyword(keyword.OFFSET) {
		offset, err := p.parseOffset()
		if err != nil {
			return nil, err
		}
		query.Offset = offset
	}
	if p.parseKeyword(keyword.FETCH) {
		fetch, err := p.parseFetch()
		if err != nil {
			return nil, err
		}
		query.Fetch = fetch
	}
	return query, nil
}

// parseWith parses the CTE list after the WITH keyword.
func (p *Parser) parseWith() (*ast.With, error) {
	with := &ast.With{Recursive: p.parseKeyword(keyword.RECURSIVE)}
	ctes, err := parseCommaSeparated(p, p.parseCTE)
	if err != nil {
		return nil, err
	}
	with.CTEs = ctes
	return with, nil
}

func (p *Parser) parseCTE() (*ast.CTE, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	cte := &ast.CTE{Alias: ast.TableAlias{Name: name}}
	if p.consumeToken(token.LPAREN) {
		cols, err := parseCommaSeparated(p, p.parseIdentifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		cte.Alias.Columns = cols
	}
	if err := p.expectKeyword(keyword.AS); err != nil {
		return nil, err
	}
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
	cte.Query = query
	return cte, nil
}

// parseSetExpr parses a query body, folding set operators by precedence.
func (p *Parser) parseSetExpr(minPrec int) (ast.SetExpr, error) {
	expr, err := p.parseSetOperand()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.SetOperator
		var prec int
		switch tok := p.peekToken(); {
		case tok.IsKeyword(keyword.UNION):
			op, prec = ast.Union, setPrecUnion
		case tok.IsKeyword(keyword.EXCEPT):
			op, prec = ast.Except, setPrecUnion
		case tok.IsKeyword(keyword.INTERSECT):
			op, prec = ast.Intersect, setPrecIntersect
		default:
			return expr, nil
		}
		if prec <= minPrec {
			return expr, nil
		}
		p.nextToken()
		all := p.parseKeyword(keyword.ALL)
		if !all {
			p.parseKeyword(keyword.DISTINCT)
		}
		right, err := p.parseSetExpr(prec)
		if err != nil {
			return nil, err
		}
		expr = &ast.SetOperation{Op: op, All: all, Left: expr, Right: right}
	}
}

// parseSetOperand parses one operand of a set operation: a select core,
// a VALUES body, or a parenthesized query.
func (p *Parser) parseSetOperand() (ast.SetExpr, error) {
	switch {
	case p.parseKeyword(keyword.SELECT):
		return p.parseSelect()
	case p.parseKeyword(keyword.VALUES):
		return p.parseValues()
	case p.consumeToken(token.LPAREN):
		query, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.QueryExpr{Query: query}, nil
	}
	return nil, p.expected("SELECT, VALUES, or a subquery", p.peekToken())
}

func (p *Parser) parseValues() (*ast.Values, error) {
	rows, err := parseCommaSeparated(p, func() ([]ast.Expr, error) {
		if _, err := p.expectToken(token.LPAREN); err != nil {
			return nil, err
		}
		row, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	return &ast.Values{Rows: rows}, nil
}

// parseSelect parses a select core after the SELECT keyword.
func (p *Parser) parseSelect() (*ast.Select, error) {
	sel := &ast.Select{}
	if p.parseKeyword(keyword.DISTINCT) {
		sel.Distinct = true
	} else {
		p.parseKeyword(keyword.ALL)
	}

	if p.dialect.Settings.SupportsTop && p.parseKeyword(keyword.TOP) {
		top, err := p.parseTop()
		if err != nil {
			return nil, err
		}
		sel.Top = top
	}

	projection, err := parseCommaSeparated(p, p.parseSelectItem)
	if err != nil {
		return nil, err
	}
	sel.Projection = projection

	if p.parseKeyword(keyword.FROM) {
		from, err := parseCommaSeparated(p, p.parseTableWithJoins)
		if err != nil {
			return nil, err
		}
		sel.From = from
	}
	if p.parseKeyword(keyword.WHERE) {
		selection, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sel.Selection = selection
	}
	if p.dialect.Settings.SupportsConnectBy {
		connectBy, err := p.parseOptionalConnectBy()
		if err != nil {
			return nil, err
		}
		sel.ConnectBy = connectBy
	}
	if p.parseKeywords(keyword.GROUP, keyword.BY) {
		groupBy, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		sel.GroupBy = groupBy
	}
	if p.parseKeyword(keyword.HAVING) {
		having, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sel.Having = having
	}
	if p.dialect.Settings.SupportsQualify && p.parseKeyword(keyword.QUALIFY) {
		qualify, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sel.Qualify = qualify
	}
	return sel, nil
}

// parseTop parses the quantity after TOP, with optional parens and the
// PERCENT / WITH TIES modifiers.
func (p *Parser) parseTop() (*ast.Top, error) {
	top := &ast.Top{}
	if p.consumeToken(token.LPAREN) {
		quantity, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		top.Quantity = quantity
	} else {
		tok, err := p.expectToken(token.NUMBER)
		if err != nil {
			return nil, err
		}
		top.Quantity = ast.NumberValue(tok.Text)
	}
	top.Percent = p.parseKeyword(keyword.PERCENT)
	top.WithTies = p.parseKeywords(keyword.WITH, keyword.TIES)
	return top, nil
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.SelectItem{}, err
	}
	alias, err := p.parseOptionalAlias(keyword.ReservedForColumnAlias)
	if err != nil {
		return ast.SelectItem{}, err
	}
	return ast.SelectItem{Expr: expr, Alias: alias}, nil
}

// parseOptionalConnectBy accepts both clause orders: START WITH before
// or after CONNECT BY.
func (p *Parser) parseOptionalConnectBy() (*ast.ConnectBy, error) {
	switch {
	case p.parseKeywords(keyword.START, keyword.WITH):
		startWith, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeywords(keyword.CONNECT, keyword.BY); err != nil {
			return nil, err
		}
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ConnectBy{StartWith: startWith, Condition: cond}, nil
	case p.parseKeywords(keyword.CONNECT, keyword.BY):
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		cb := &ast.ConnectBy{Condition: cond}
		if p.parseKeywords(keyword.START, keyword.WITH) {
			startWith, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			cb.StartWith = startWith
		}
		return cb, nil
	}
	return nil, nil
}

// ---------- FROM clause ----------

func (p *Parser) parseTableWithJoins() (ast.TableWithJoins, error) {
	relation, err := p.parseTableFactor()
	if err != nil {
		return ast.TableWithJoins{}, err
	}
	item := ast.TableWithJoins{Relation: relation}
	for {
		join, ok, err := p.parseOptionalJoin()
		if err != nil {
			return ast.TableWithJoins{}, err
		}
		if !ok {
			return item, nil
		}
		item.Joins = append(item.Joins, join)
	}
}

// parseOptionalJoin parses one join step if the upcoming tokens start one.
func (p *Parser) parseOptionalJoin() (ast.Join, bool, error) {
	natural := p.parseKeyword(keyword.NATURAL)

	op := ast.JoinInner
	found := false
	switch {
	case p.parseKeyword(keyword.CROSS):
		if err := p.expectKeyword(keyword.JOIN); err != nil {
			return ast.Join{}, false, err
		}
		relation, err := p.parseTableFactor()
		if err != nil {
			return ast.Join{}, false, err
		}
		return ast.Join{Relation: relation, Op: ast.JoinCross, Constraint: ast.NoConstraint{}}, true, nil
	case p.parseKeyword(keyword.JOIN):
		found = true
	case p.parseKeyword(keyword.INNER):
		if err := p.expectKeyword(keyword.JOIN); err != nil {
			return ast.Join{}, false, err
		}
		found = true
	case p.parseKeyword(keyword.LEFT):
		p.parseKeyword(keyword.OUTER)
		if err := p.expectKeyword(keyword.JOIN); err != nil {
			return ast.Join{}, false, err
		}
		op, found = ast.JoinLeft, true
	case p.parseKeyword(keyword.RIGHT):
		p.parseKeyword(keyword.OUTER)
		if err := p.expectKeyword(keyword.JOIN); err != nil {
			return ast.Join{}, false, err
		}
		op, found = ast.JoinRight, true
	case p.parseKeyword(keyword.FULL):
		p.parseKeyword(keyword.OUTER)
		if err := p.expectKeyword(keyword.JOIN); err != nil {
			return ast.Join{}, false, err
		}
		op, found = ast.JoinFull, true
	}
	if !found {
		if natural {
			return ast.Join{}, false, p.expected("a join type after NATURAL", p.peekToken())
		}
		return ast.Join{}, false, nil
	}

	relation, err := p.parseTableFactor()
	if err != nil {
		return ast.Join{}, false, err
	}
	constraint, err := p.parseJoinConstraint(natural)
	if err != nil {
		return ast.Join{}, false, err
	}
	return ast.Join{Relation: relation, Op: op, Constraint: constraint}, true, nil
}

func (p *Parser) parseJoinConstraint(natural bool) (ast.JoinConstraint, error) {
	if natural {
		return ast.NaturalConstraint{}, nil
	}
	if p.parseKeyword(keyword.ON) {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return ast.OnConstraint{Expr: expr}, nil
	}
	if p.parseKeyword(keyword.USING) {
		if _, err := p.expectToken(token.LPAREN); err != nil {
			return nil, err
		}
		cols, err := parseCommaSeparated(p, p.parseIdentifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return ast.UsingConstraint{Columns: cols}, nil
	}
	return ast.NoConstraint{}, nil
}

// parseTableFactor parses one FROM-clause relation.
func (p *Parser) parseTableFactor() (ast.TableFactor, error) {
	if p.parseKeyword(keyword.LATERAL) {
		if _, err := p.expectToken(token.LPAREN); err != nil {
			return nil, err
		}
		return p.parseDerived(true)
	}
	if p.consumeToken(token.LPAREN) {
		if p.peekingQueryStart() {
			return p.parseDerived(false)
		}
		// A parenthesized join tree used as a relation.
		table, err := p.parseTableWithJoins()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.NestedJoin{Table: table}, nil
	}

	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	table := &ast.Table{Name: name}
	if p.consumeToken(token.LPAREN) {
		// Table-valued function: unnest(...), generate_series(...).
		if p.consumeToken(token.RPAREN) {
			table.Args = []ast.Expr{}
		} else {
			args, err := parseCommaSeparated(p, p.ParseExpr)
			if err != nil {
				return nil, err
			}
			if _, err := p.expectToken(token.RPAREN); err != nil {
				return nil, err
			}
			table.Args = args
		}
	}
	alias, err := p.parseOptionalTableAlias()
	if err != nil {
		return nil, err
	}
	table.Alias = alias
	return table, nil
}

// parseDerived parses a subquery relation; the opening paren has been
// consumed.
func (p *Parser) parseDerived(lateral bool) (ast.TableFactor, error) {
	query, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	alias, err := p.parseOptionalTableAlias()
	if err != nil {
		return nil, err
	}
	return &ast.Derived{Lateral: lateral, Subquery: query, Alias: alias}, nil
}

// ---------- Ordering and limits ----------

func (p *Parser) parseOrderByExpr() (ast.OrderByExpr, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.OrderByExpr{}, err
	}
	item := ast.OrderByExpr{Expr: expr}
	switch p.parseOneOfKeywords(keyword.ASC, keyword.DESC) {
	case keyword.ASC:
		asc := true
		item.Asc = &asc
	case keyword.DESC:
		asc := false
		item.Asc = &asc
	}
	if p.parseKeyword(keyword.NULLS) {
		switch p.parseOneOfKeywords(keyword.FIRST, keyword.LAST) {
		case keyword.FIRST:
			first := true
			item.NullsFirst = &first
		case keyword.LAST:
			first := false
			item.NullsFirst = &first
		default:
			return ast.OrderByExpr{}, p.expected("FIRST or LAST after NULLS", p.peekToken())
		}
	}
	return item, nil
}

func (p *Parser) parseOffset() (*ast.Offset, error) {
	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	offset := &ast.Offset{Value: value}
	switch p.parseOneOfKeywords(keyword.ROW, keyword.ROWS) {
	case keyword.ROW:
		offset.Rows = ast.OffsetRow
	case keyword.ROWS:
		offset.Rows = ast.OffsetRowsKw
	}
	return offset, nil
}

func (p *Parser) parseFetch() (*ast.Fetch, error) {
	if p.parseOneOfKeywords(keyword.FIRST, keyword.NEXT) == keyword.None {
		return nil, p.expected("FIRST or NEXT after FETCH", p.peekToken())
	}
	fetch := &ast.Fetch{}
	if p.parseOneOfKeywords(keyword.ROW, keyword.ROWS) == keyword.None {
		quantity, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		fetch.Quantity = quantity
		fetch.Percent = p.parseKeyword(keyword.PERCENT)
		if p.parseOneOfKeywords(keyword.ROW, keyword.ROWS) == keyword.None {
			return nil, p.expected("ROW or ROWS in FETCH", p.peekToken())
		}
	}
	switch {
	case p.parseKeyword(keyword.ONLY):
	case p.parseKeywords(keyword.WITH, keyword.TIES):
		fetch.WithTies = true
	default:
		return nil, p.expected("ONLY or WITH TIES in FETCH", p.peekToken())
	}
	return fetch, nil
}
