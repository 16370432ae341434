package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// ParseStatement parses a single statement.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	tok := p.peekToken()
	if tok.Type == token.LPAREN {
		return p.parseQuery()
	}
	if tok.Type != token.WORD {
		return nil, p.expected("a statement", tok)
	}

	switch tok.Word.Keyword {
	case keyword.SELECT, keyword.WITH, keyword.VALUES:
		return p.parseQuery()
	case keyword.INSERT:
		p.nextToken()
		return p.parseInsert()
	case keyword.UPDATE:
		p.nextToken()
		return p.parseUpdate()
	case keyword.DELETE:
		p.nextToken()
		return p.parseDelete()
	case keyword.MERGE:
		p.nextToken()
		return p.parseMerge()
	case keyword.COPY:
		p.nextToken()
		return p.parseCopy()
	case keyword.CREATE:
		p.nextToken()
		return p.parseCreate()
	case keyword.ALTER:
		p.nextToken()
		return p.parseAlterTable()
	case keyword.DROP:
		p.nextToken()
		return p.parseDrop()
	case keyword.TRUNCATE:
		p.nextToken()
		return p.parseTruncate()
	case keyword.EXPLAIN:
		p.nextToken()
		return p.parseExplain()
	case keyword.SET:
		p.nextToken()
		return p.parseSetVariable()
	case keyword.SHOW:
		p.nextToken()
		return p.parseShowVariable()
	case keyword.START, keyword.BEGIN:
		p.nextToken()
		return p.parseStartTransaction(tok.Word.Keyword)
	case keyword.COMMIT:
		p.nextToken()
		return &ast.Commit{Chain: p.parseCommitChain()}, nil
	case keyword.ROLLBACK:
		p.nextToken()
		return &ast.Rollback{Chain: p.parseCommitChain()}, nil
	case keyword.GRANT:
		p.nextToken()
		return p.parseGrant()
	}
	return nil, p.expected("a statement", tok)
}

// ---------- DML ----------

// parseInsert parses the body after the INSERT keyword.
func (p *Parser) parseInsert() (ast.Statement, error) {
	stmt := &ast.Insert{}
	if p.parseKeyword(keyword.OVERWRITE) {
		// Hive form: INSERT OVERWRITE TABLE t.
		stmt.Overwrite = true
		if err := p.expectKeyword(keyword.TABLE); err != nil {
			return nil, err
		}
	} else {
		p.parseKeyword(keyword.INTO)
	}
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Table = table

	// A paren after the table name is a column list unless a query
	// starts inside it.
	if p.peekToken().Type == token.LPAREN && !p.queryStartsAt(1) {
		p.nextToken()
		cols, err := parseCommaSeparated(p, p.parseIdentifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		stmt.Columns = cols
	}
	source, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	stmt.Source = source
	return stmt, nil
}

// queryStartsAt reports whether a query begins n significant tokens ahead.
func (p *Parser) queryStartsAt(n int) bool {
	tok := p.peekNth(n)
	return tok.IsKeyword(keyword.SELECT) ||
		tok.IsKeyword(keyword.WITH) ||
		tok.IsKeyword(keyword.VALUES)
}

func (p *Parser) parseUpdate() (ast.Statement, error) {
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.SET); err != nil {
		return nil, err
	}
	assignments, err := parseCommaSeparated(p, p.parseAssignment)
	if err != nil {
		return nil, err
	}
	stmt := &ast.Update{Table: table, Assignments: assignments}
	if p.parseKeyword(keyword.WHERE) {
		stmt.Selection, err = p.ParseExpr()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseAssignment() (ast.Assignment, error) {
	target, err := p.ParseObjectName()
	if err != nil {
		return ast.Assignment{}, err
	}
	if _, err := p.expectToken(token.EQ); err != nil {
		return ast.Assignment{}, err
	}
	value, err := p.ParseExpr()
	if err != nil {
		return ast.Assignment{}, err
	}
	return ast.Assignment{Target: target, Value: value}, nil
}

func (p *Parser) parseDelete() (ast.Statement, error) {
	if err := p.expectKeyword(keyword.FROM); err != nil {
		return nil, err
	}
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Delete{Table: table}
	if p.parseKeyword(keyword.WHERE) {
		stmt.Selection, err = p.ParseExpr()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseMerge() (ast.Statement, error) {
	if err := p.expectKeyword(keyword.INTO); err != nil {
		return nil, err
	}
	table, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.USING); err != nil {
		return nil, err
	}
	source, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(keyword.ON); err != nil {
		return nil, err
	}
	on, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Merge{Table: table, Source: source, On: on}
	for p.parseKeyword(keyword.WHEN) {
		clause, err := p.parseMergeClause()
		if err != nil {
			return nil, err
		}
		stmt.Clauses = append(stmt.Clauses, clause)
	}
	if len(stmt.Clauses) == 0 {
		return nil, p.expected("WHEN in MERGE", p.peekToken())
	}
	return stmt, nil
}

// parseMergeClause parses one WHEN branch after the WHEN keyword.
func (p *Parser) parseMergeClause() (ast.MergeClause, error) {
	clause := ast.MergeClause{}
	notMatched := p.parseKeyword(keyword.NOT)
	if err := p.expectKeyword(keyword.MATCHED); err != nil {
		return clause, err
	}
	if p.parseKeyword(keyword.AND) {
		pred, err := p.ParseExpr()
		if err != nil {
			return clause, err
		}
		clause.Predicate = pred
	}
	if err := p.expectKeyword(keyword.THEN); err != nil {
		return clause, err
	}
	switch {
	case notMatched:
		clause.Kind = ast.MergeNotMatchedInsert
		if err := p.expectKeyword(keyword.INSERT); err != nil {
			return clause, err
		}
		if p.peekToken().Type == token.LPAREN && !p.peekNth(1).IsKeyword(keyword.VALUES) {
			p.nextToken()
			cols, err := parseCommaSeparated(p, p.parseIdentifier)
			if err != nil {
				return clause, err
			}
			if _, err := p.expectToken(token.RPAREN); err != nil {
				return clause, err
			}
			clause.Columns = cols
		}
		if err := p.expectKeyword(keyword.VALUES); err != nil {
			return clause, err
		}
		if _, err := p.expectToken(token.LPAREN); err != nil {
			return clause, err
		}
		values, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return clause, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return clause, err
		}
		clause.Values = values
	case p.parseKeyword(keyword.UPDATE):
		clause.Kind = ast.MergeMatchedUpdate
		if err := p.expectKeyword(keyword.SET); err != nil {
			return clause, err
		}
		assignments, err := parseCommaSeparated(p, p.parseAssignment)
		if err != nil {
			return clause, err
		}
		clause.Assignments = assignments
	case p.parseKeyword(keyword.DELETE):
		clause.Kind = ast.MergeMatchedDelete
	default:
		return clause, p.expected("UPDATE or DELETE after WHEN MATCHED", p.peekToken())
	}
	return clause, nil
}

func (p *Parser) parseCopy() (ast.Statement, error) {
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Copy{Table: table}
	if p.consumeToken(token.LPAREN) {
		cols, err := parseCommaSeparated(p, p.parseIdentifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		stmt.Columns = cols
	}
	switch p.parseOneOfKeywords(keyword.FROM, keyword.TO) {
	case keyword.TO:
		stmt.To = true
		if !p.parseKeyword(keyword.STDOUT) {
			target, err := p.expectToken(token.STRING)
			if err != nil {
				return nil, err
			}
			stmt.Target = ast.StringValue(target.Text)
		}
	case keyword.FROM:
		if !p.parseKeyword(keyword.STDIN) {
			target, err := p.expectToken(token.STRING)
			if err != nil {
				return nil, err
			}
			stmt.Target = ast.StringValue(target.Text)
		}
	default:
		return nil, p.expected("FROM or TO in COPY", p.peekToken())
	}
	return stmt, nil
}

// ---------- Session and misc ----------

func (p *Parser) parseExplain() (ast.Statement, error) {
	stmt := &ast.Explain{
		Analyze: p.parseKeyword(keyword.ANALYZE),
		Verbose: p.parseKeyword(keyword.VERBOSE),
	}
	inner, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Statement = inner
	return stmt, nil
}

func (p *Parser) parseSetVariable() (ast.Statement, error) {
	stmt := &ast.SetVariable{Local: p.parseKeyword(keyword.LOCAL)}
	if !stmt.Local {
		p.parseKeyword(keyword.SESSION)
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name
	if !p.consumeToken(token.EQ) && !p.parseKeyword(keyword.TO) {
		return nil, p.expected("= or TO in SET", p.peekToken())
	}
	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	return stmt, nil
}

func (p *Parser) parseShowVariable() (ast.Statement, error) {
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	return &ast.ShowVariable{Name: name}, nil
}

func (p *Parser) parseStartTransaction(started keyword.Keyword) (ast.Statement, error) {
	if started == keyword.START {
		if err := p.expectKeyword(keyword.TRANSACTION); err != nil {
			return nil, err
		}
	} else {
		// BEGIN [WORK | TRANSACTION]
		if !p.parseKeyword(keyword.TRANSACTION) {
			p.parseKeyword(keyword.WORK)
		}
	}
	stmt := &ast.StartTransaction{}
	for {
		if !p.parseKeyword(keyword.READ) {
			return stmt, nil
		}
		switch p.parseOneOfKeywords(keyword.ONLY, keyword.WRITE) {
		case keyword.ONLY:
			stmt.Modes = append(stmt.Modes, ast.TxnReadOnly)
		case keyword.WRITE:
			stmt.Modes = append(stmt.Modes, ast.TxnReadWrite)
		default:
			return nil, p.expected("ONLY or WRITE after READ", p.peekToken())
		}
		if !p.consumeToken(token.COMMA) {
			return stmt, nil
		}
	}
}

// parseCommitChain handles the [WORK] [AND [NO] CHAIN] tail of COMMIT
// and ROLLBACK.
func (p *Parser) parseCommitChain() bool {
	p.parseKeyword(keyword.WORK)
	if p.parseKeyword(keyword.AND) {
		no := p.parseKeyword(keyword.NO)
		p.parseKeyword(keyword.CHAIN)
		return !no
	}
	return false
}

func (p *Parser) parseGrant() (ast.Statement, error) {
	stmt := &ast.Grant{}
	if p.parseKeyword(keyword.ALL) {
		p.parseKeyword(keyword.PRIVILEGES)
		stmt.AllPrivileges = true
	} else {
		privileges, err := parseCommaSeparated(p, p.parsePrivilege)
		if err != nil {
			return nil, err
		}
		stmt.Privileges = privileges
	}
	if err := p.expectKeyword(keyword.ON); err != nil {
		return nil, err
	}
	switch p.parseOneOfKeywords(keyword.TABLE, keyword.SCHEMA) {
	case keyword.SCHEMA:
		stmt.ObjectType = ast.ObjectSchema
	default:
		stmt.ObjectType = ast.ObjectTable
	}
	objects, err := parseCommaSeparated(p, p.ParseObjectName)
	if err != nil {
		return nil, err
	}
	stmt.Objects = objects
	if err := p.expectKeyword(keyword.TO); err != nil {
		return nil, err
	}
	grantees, err := parseCommaSeparated(p, p.parseIdentifier)
	if err != nil {
		return nil, err
	}
	stmt.Grantees = grantees
	stmt.WithGrantOption = p.parseKeywords(keyword.WITH, keyword.GRANT, keyword.OPTION)
	return stmt, nil
}

// parsePrivilege parses one privilege name with an optional column list.
func (p *Parser) parsePrivilege() (ast.Privilege, error) {
	tok, err := p.expectToken(token.WORD)
	if err != nil {
		return ast.Privilege{}, err
	}
	priv := ast.Privilege{Name: strings.ToUpper(tok.Word.Value)}
	if p.consumeToken(token.LPAREN) {
		cols, err := parseCommaSeparated(p, p.parseIdentifier)
		if err != nil {
			return ast.Privilege{}, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return ast.Privilege{}, err
		}
		priv.Columns = cols
	}
	return priv, nil
}
