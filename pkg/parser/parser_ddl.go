package parser

import (
	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// parseCreate dispatches on the object kind after CREATE and its
// modifiers.
func (p *Parser) parseCreate() (ast.Statement, error) {
	orReplace := p.parseKeywords(keyword.OR, keyword.REPLACE)
	temporary := p.parseOneOfKeywords(keyword.TEMP, keyword.TEMPORARY) != keyword.None
	external := p.parseKeyword(keyword.EXTERNAL)
	materialized := p.parseKeyword(keyword.MATERIALIZED)
	unique := p.parseKeyword(keyword.UNIQUE)

	switch {
	case p.parseKeyword(keyword.TABLE):
		return p.parseCreateTable(orReplace, temporary, external)
	case p.parseKeyword(keyword.VIEW):
		return p.parseCreateView(orReplace, materialized)
	case p.parseKeyword(keyword.INDEX):
		return p.parseCreateIndex(unique)
	case p.parseKeyword(keyword.SCHEMA):
		return p.parseCreateSchema()
	}
	return nil, p.expected("TABLE, VIEW, INDEX, or SCHEMA after CREATE", p.peekToken())
}

func (p *Parser) parseCreateTable(orReplace, temporary, external bool) (ast.Statement, error) {
	stmt := &ast.CreateTable{
		OrReplace:   orReplace,
		Temporary:   temporary,
		External:    external,
		IfNotExists: p.parseKeywords(keyword.IF, keyword.NOT, keyword.EXISTS),
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name

	if p.parseKeyword(keyword.LIKE) {
		like, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		stmt.Like = &like
		return stmt, nil
	}

	if p.peekToken().Type == token.LPAREN && !p.queryStartsAt(1) {
		p.nextToken()
		if err := p.parseColumnsAndConstraints(stmt); err != nil {
			return nil, err
		}
	}
	if p.parseKeyword(keyword.WITH) {
		if _, err := p.expectToken(token.LPAREN); err != nil {
			return nil, err
		}
		options, err := parseCommaSeparated(p, p.parseSQLOption)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		stmt.Options = options
	}
	if p.parseKeyword(keyword.AS) {
		query, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		stmt.Query = query
	}
	return stmt, nil
}

// parseColumnsAndConstraints fills in the parenthesized element list of
// CREATE TABLE; the opening paren has been consumed.
func (p *Parser) parseColumnsAndConstraints(stmt *ast.CreateTable) error {
	for {
		if constraint, ok, err := p.parseOptionalTableConstraint(); err != nil {
			return err
		} else if ok {
			stmt.Constraints = append(stmt.Constraints, constraint)
		} else {
			column, err := p.parseColumnDef()
			if err != nil {
				return err
			}
			stmt.Columns = append(stmt.Columns, column)
		}
		if !p.consumeToken(token.COMMA) {
			break
		}
	}
	_, err := p.expectToken(token.RPAREN)
	return err
}

func (p *Parser) parseColumnDef() (ast.ColumnDef, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	dt, err := p.ParseDataType()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	col := ast.ColumnDef{Name: name, DataType: *dt}
	for {
		option, ok, err := p.parseOptionalColumnOption()
		if err != nil {
			return ast.ColumnDef{}, err
		}
		if !ok {
			return col, nil
		}
		col.Options = append(col.Options, option)
	}
}

func (p *Parser) parseOptionalColumnOption() (ast.ColumnOption, bool, error) {
	switch {
	case p.parseKeywords(keyword.NOT, keyword.NULL):
		return ast.NullOption{Null: false}, true, nil
	case p.parseKeyword(keyword.NULL):
		return ast.NullOption{Null: true}, true, nil
	case p.parseKeyword(keyword.DEFAULT):
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, false, err
		}
		return ast.DefaultOption{Expr: expr}, true, nil
	case p.parseKeywords(keyword.PRIMARY, keyword.KEY):
		return ast.UniqueOption{IsPrimary: true}, true, nil
	case p.parseKeyword(keyword.UNIQUE):
		return ast.UniqueOption{}, true, nil
	case p.parseKeyword(keyword.REFERENCES):
		table, err := p.ParseObjectName()
		if err != nil {
			return nil, false, err
		}
		option := ast.ForeignKeyOption{Table: table}
		if p.consumeToken(token.LPAREN) {
			cols, err := parseCommaSeparated(p, p.parseIdentifier)
			if err != nil {
				return nil, false, err
			}
			if _, err := p.expectToken(token.RPAREN); err != nil {
				return nil, false, err
			}
			option.Columns = cols
		}
		return option, true, nil
	case p.parseKeyword(keyword.CHECK):
		if _, err := p.expectToken(token.LPAREN); err != nil {
			return nil, false, err
		}
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, false, err
		}
		return ast.CheckOption{Expr: expr}, true, nil
	case p.parseKeyword(keyword.AUTO_INCREMENT):
		return ast.NamedOption{Name: "AUTO_INCREMENT"}, true, nil
	case p.parseKeyword(keyword.COMMENT):
		tok, err := p.expectToken(token.STRING)
		if err != nil {
			return nil, false, err
		}
		return ast.NamedOption{Name: "COMMENT", Value: ast.StringValue(tok.Text)}, true, nil
	}
	return nil, false, nil
}

// parseOptionalTableConstraint recognizes a table-level constraint at
// the current position.
func (p *Parser) parseOptionalTableConstraint() (ast.TableConstraint, bool, error) {
	var name *ast.Ident
	if p.parseKeyword(keyword.CONSTRAINT) {
		ident, err := p.parseIdentifier()
		if err != nil {
			return nil, false, err
		}
		name = &ident
	}
	switch {
	case p.parseKeywords(keyword.PRIMARY, keyword.KEY):
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, false, err
		}
		return &ast.UniqueConstraint{Name: name, Columns: cols, IsPrimary: true}, true, nil
	case name != nil && p.parseKeyword(keyword.UNIQUE),
		name == nil && p.peekToken().IsKeyword(keyword.UNIQUE) && p.peekNth(1).Type == token.LPAREN:
		if name == nil {
			p.nextToken()
		}
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, false, err
		}
		return &ast.UniqueConstraint{Name: name, Columns: cols}, true, nil
	case p.parseKeywords(keyword.FOREIGN, keyword.KEY):
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, false, err
		}
		if err := p.expectKeyword(keyword.REFERENCES); err != nil {
			return nil, false, err
		}
		table, err := p.ParseObjectName()
		if err != nil {
			return nil, false, err
		}
		constraint := &ast.ForeignKeyConstraint{Name: name, Columns: cols, ForeignTable: table}
		if p.peekToken().Type == token.LPAREN {
			referred, err := p.parseParenIdentList()
			if err != nil {
				return nil, false, err
			}
			constraint.ReferredColumns = referred
		}
		return constraint, true, nil
	case name != nil && p.parseKeyword(keyword.CHECK),
		name == nil && p.peekToken().IsKeyword(keyword.CHECK) && p.peekNth(1).Type == token.LPAREN:
		if name == nil {
			p.nextToken()
		}
		if _, err := p.expectToken(token.LPAREN); err != nil {
			return nil, false, err
		}
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, false, err
		}
		return &ast.CheckConstraint{Name: name, Expr: expr}, true, nil
	}
	if name != nil {
		return nil, false, p.expected("PRIMARY KEY, UNIQUE, FOREIGN KEY, or CHECK after CONSTRAINT", p.peekToken())
	}
	return nil, false, nil
}

func (p *Parser) parseParenIdentList() ([]ast.Ident, error) {
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	idents, err := parseCommaSeparated(p, p.parseIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return idents, nil
}

func (p *Parser) parseSQLOption() (ast.SQLOption, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.SQLOption{}, err
	}
	if _, err := p.expectToken(token.EQ); err != nil {
		return ast.SQLOption{}, err
	}
	value, err := p.ParseExpr()
	if err != nil {
		return ast.SQLOption{}, err
	}
	return ast.SQLOption{Name: name, Value: value}, nil
}

func (p *Parser) parseCreateView(orReplace, materialized bool) (ast.Statement, error) {
	stmt := &ast.CreateView{OrReplace: orReplace, Materialized: materialized}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name
	if p.peekToken().Type == token.LPAREN {
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, err
		}
		stmt.Columns = cols
	}
	if err := p.expectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	query, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	stmt.Query = query
	return stmt, nil
}

func (p *Parser) parseCreateIndex(unique bool) (ast.Statement, error) {
	stmt := &ast.CreateIndex{
		Unique:      unique,
		IfNotExists: p.parseKeywords(keyword.IF, keyword.NOT, keyword.EXISTS),
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name
	if err := p.expectKeyword(keyword.ON); err != nil {
		return nil, err
	}
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Table = table
	if _, err := p.expectToken(token.LPAREN); err != nil {
		return nil, err
	}
	columns, err := parseCommaSeparated(p, p.parseOrderByExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(token.RPAREN); err != nil {
		return nil, err
	}
	stmt.Columns = columns
	return stmt, nil
}

func (p *Parser) parseCreateSchema() (ast.Statement, error) {
	stmt := &ast.CreateSchema{
		IfNotExists: p.parseKeywords(keyword.IF, keyword.NOT, keyword.EXISTS),
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name
	return stmt, nil
}

// parseAlterTable parses the statement after the ALTER keyword.
func (p *Parser) parseAlterTable() (ast.Statement, error) {
	if err := p.expectKeyword(keyword.TABLE); err != nil {
		return nil, err
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	op, err := p.parseAlterTableOperation()
	if err != nil {
		return nil, err
	}
	return &ast.AlterTable{Name: name, Op: op}, nil
}

func (p *Parser) parseAlterTableOperation() (ast.AlterTableOperation, error) {
	switch {
	case p.parseKeyword(keyword.ADD):
		if constraint, ok, err := p.parseOptionalTableConstraint(); err != nil {
			return nil, err
		} else if ok {
			return &ast.AddConstraint{Constraint: constraint}, nil
		}
		p.parseKeyword(keyword.COLUMN)
		op := &ast.AddColumn{IfNotExists: p.parseKeywords(keyword.IF, keyword.NOT, keyword.EXISTS)}
		column, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		op.Column = column
		return op, nil

	case p.parseKeyword(keyword.DROP):
		p.parseKeyword(keyword.COLUMN)
		op := &ast.DropColumn{IfExists: p.parseKeywords(keyword.IF, keyword.EXISTS)}
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		op.Name = name
		op.Cascade = p.parseKeyword(keyword.CASCADE)
		return op, nil

	case p.parseKeyword(keyword.RENAME):
		if p.parseKeyword(keyword.TO) {
			name, err := p.ParseObjectName()
			if err != nil {
				return nil, err
			}
			return &ast.RenameTable{Name: name}, nil
		}
		p.parseKeyword(keyword.COLUMN)
		old, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(keyword.TO); err != nil {
			return nil, err
		}
		newName, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.RenameColumn{Old: old, New: newName}, nil

	case p.parseKeyword(keyword.ALTER):
		p.parseKeyword(keyword.COLUMN)
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		colOp, err := p.parseAlterColumnOperation()
		if err != nil {
			return nil, err
		}
		return &ast.AlterColumn{Name: name, Op: colOp}, nil
	}
	return nil, p.expected("ADD, DROP, RENAME, or ALTER in ALTER TABLE", p.peekToken())
}

func (p *Parser) parseAlterColumnOperation() (ast.AlterColumnOperation, error) {
	switch {
	case p.parseKeywords(keyword.SET, keyword.NOT, keyword.NULL):
		return ast.SetNotNull{}, nil
	case p.parseKeywords(keyword.DROP, keyword.NOT, keyword.NULL):
		return ast.DropNotNull{}, nil
	case p.parseKeywords(keyword.SET, keyword.DEFAULT):
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return ast.SetDefault{Expr: expr}, nil
	case p.parseKeywords(keyword.DROP, keyword.DEFAULT):
		return ast.DropDefault{}, nil
	case p.parseKeywords(keyword.SET, keyword.DATA, keyword.TYPE), p.parseKeyword(keyword.TYPE):
		dt, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		op := ast.SetDataType{DataType: *dt}
		if p.parseKeyword(keyword.USING) {
			using, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			op.Using = using
		}
		return op, nil
	}
	return nil, p.expected("an ALTER COLUMN operation", p.peekToken())
}

// parseDrop parses the statement after the DROP keyword.
func (p *Parser) parseDrop() (ast.Statement, error) {
	stmt := &ast.Drop{}
	switch p.parseOneOfKeywords(keyword.TABLE, keyword.VIEW, keyword.INDEX, keyword.SCHEMA) {
	case keyword.TABLE:
		stmt.ObjectType = ast.ObjectTable
	case keyword.VIEW:
		stmt.ObjectType = ast.ObjectView
	case keyword.INDEX:
		stmt.ObjectType = ast.ObjectIndex
	case keyword.SCHEMA:
		stmt.ObjectType = ast.ObjectSchema
	default:
		return nil, p.expected("TABLE, VIEW, INDEX, or SCHEMA after DROP", p.peekToken())
	}
	stmt.IfExists = p.parseKeywords(keyword.IF, keyword.EXISTS)
	names, err := parseCommaSeparated(p, p.ParseObjectName)
	if err != nil {
		return nil, err
	}
	stmt.Names = names
	switch p.parseOneOfKeywords(keyword.CASCADE, keyword.RESTRICT) {
	case keyword.CASCADE:
		stmt.Cascade = true
	case keyword.RESTRICT:
		stmt.Restrict = true
	}
	return stmt, nil
}

func (p *Parser) parseTruncate() (ast.Statement, error) {
	p.parseKeyword(keyword.TABLE)
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	return &ast.Truncate{Table: table}, nil
}
