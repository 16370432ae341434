package parser

import (
	"strconv"

	"github.com/leapstack-labs/sqlparse/pkg/ast"
	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/leapstack-labs/sqlparse/pkg/token"
)

// ParseDataType parses a SQL data type reference.
func (p *Parser) ParseDataType() (*ast.DataType, error) {
	tok := p.nextToken()
	if tok.Type != token.WORD {
		return nil, p.expected("a data type", tok)
	}

	dt := &ast.DataType{}
	switch tok.Word.Keyword {
	case keyword.BOOLEAN, keyword.BOOL:
		dt.Kind = ast.TypeBoolean
	case keyword.SMALLINT:
		dt.Kind = ast.TypeSmallInt
	case keyword.INT, keyword.INTEGER:
		dt.Kind = ast.TypeInt
	case keyword.BIGINT:
		dt.Kind = ast.TypeBigInt
	case keyword.REAL:
		dt.Kind = ast.TypeReal
	case keyword.DOUBLE:
		p.parseKeyword(keyword.PRECISION)
		dt.Kind = ast.TypeDouble
	case keyword.FLOAT:
		dt.Kind = ast.TypeFloat
		if err := p.parseOptionalLength(dt); err != nil {
			return nil, err
		}
	case keyword.DECIMAL, keyword.DEC:
		dt.Kind = ast.TypeDecimal
		if err := p.parseOptionalPrecisionScale(dt); err != nil {
			return nil, err
		}
	case keyword.NUMERIC:
		dt.Kind = ast.TypeNumeric
		if err := p.parseOptionalPrecisionScale(dt); err != nil {
			return nil, err
		}
	case keyword.CHAR, keyword.CHARACTER:
		dt.Kind = ast.TypeChar
		if p.parseKeyword(keyword.VARYING) {
			dt.Kind = ast.TypeVarchar
		}
		if err := p.parseOptionalLength(dt); err != nil {
			return nil, err
		}
	case keyword.VARCHAR:
		dt.Kind = ast.TypeVarchar
		if err := p.parseOptionalLength(dt); err != nil {
			return nil, err
		}
	case keyword.TEXT:
		dt.Kind = ast.TypeText
	case keyword.STRING:
		dt.Kind = ast.TypeString
	case keyword.UUID:
		dt.Kind = ast.TypeUUID
	case keyword.DATE:
		dt.Kind = ast.TypeDate
	case keyword.TIME:
		dt.Kind = ast.TypeTime
		dt.TimeZone = p.parseTimeZoneSuffix()
	case keyword.TIMESTAMP, keyword.DATETIME:
		dt.Kind = ast.TypeTimestamp
		dt.TimeZone = p.parseTimeZoneSuffix()
	case keyword.INTERVAL:
		dt.Kind = ast.TypeInterval
	case keyword.BYTEA:
		dt.Kind = ast.TypeBytea
	case keyword.BLOB:
		dt.Kind = ast.TypeBlob
	case keyword.BINARY:
		dt.Kind = ast.TypeBinary
		if err := p.parseOptionalLength(dt); err != nil {
			return nil, err
		}
	case keyword.VARBINARY:
		dt.Kind = ast.TypeVarbinary
		if err := p.parseOptionalLength(dt); err != nil {
			return nil, err
		}
	default:
		// Anything else is carried through as a named custom type.
		dt.Kind = ast.TypeCustom
		p.prevToken()
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		dt.Name = name
	}

	dt.Unsigned = p.parseKeyword(keyword.UNSIGNED)

	// Trailing [] pairs build array types inside out: INT[][] is an
	// array of INT arrays.
	for p.consumeToken(token.LBRACKET) {
		if _, err := p.expectToken(token.RBRACKET); err != nil {
			return nil, err
		}
		dt = &ast.DataType{Kind: ast.TypeArray, Elem: dt}
	}
	return dt, nil
}

// parseTimeZoneSuffix consumes WITH|WITHOUT TIME ZONE, reporting whether
// the type carries a zone.
func (p *Parser) parseTimeZoneSuffix() bool {
	if p.parseKeywords(keyword.WITH, keyword.TIME, keyword.ZONE) {
		return true
	}
	p.parseKeywords(keyword.WITHOUT, keyword.TIME, keyword.ZONE)
	return false
}

func (p *Parser) parseOptionalLength(dt *ast.DataType) error {
	if !p.consumeToken(token.LPAREN) {
		return nil
	}
	n, err := p.parseLiteralUint()
	if err != nil {
		return err
	}
	dt.Length = &n
	_, err = p.expectToken(token.RPAREN)
	return err
}

func (p *Parser) parseOptionalPrecisionScale(dt *ast.DataType) error {
	if !p.consumeToken(token.LPAREN) {
		return nil
	}
	prec, err := p.parseLiteralUint()
	if err != nil {
		return err
	}
	dt.Precision = &prec
	if p.consumeToken(token.COMMA) {
		scale, err := p.parseLiteralUint()
		if err != nil {
			return err
		}
		dt.Scale = &scale
	}
	_, err = p.expectToken(token.RPAREN)
	return err
}

// parseLiteralUint parses an unsigned integer literal.
func (p *Parser) parseLiteralUint() (uint64, error) {
	tok, err := p.expectToken(token.NUMBER)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok.Text, 10, 64)
	if err != nil {
		return 0, p.expected("an unsigned integer", tok)
	}
	return n, nil
}

// parseIdentifier parses a single (possibly quoted) identifier.
func (p *Parser) parseIdentifier() (ast.Ident, error) {
	tok, err := p.expectToken(token.WORD)
	if err != nil {
		return ast.Ident{}, err
	}
	return wordIdent(tok), nil
}

// ParseObjectName parses a dot-separated, possibly quoted object name.
func (p *Parser) ParseObjectName() (ast.ObjectName, error) {
	var parts []ast.Ident
	for {
		ident, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		parts = append(parts, ident)
		if !p.consumeToken(token.DOT) {
			return ast.ObjectName(parts), nil
		}
	}
}

// parseOptionalAlias parses [AS] identifier, treating the keywords in the
// reserved set as clause starters rather than aliases. With the AS
// keyword any word is accepted as an alias.
func (p *Parser) parseOptionalAlias(reserved []keyword.Keyword) (*ast.Ident, error) {
	explicit := p.parseKeyword(keyword.AS)
	tok := p.peekToken()
	if tok.Type != token.WORD {
		if explicit {
			return nil, p.expected("an identifier after AS", tok)
		}
		return nil, nil
	}
	if !explicit && tok.Word.Quote == token.QuoteNone && keyword.Contains(reserved, tok.Word.Keyword) {
		return nil, nil
	}
	p.nextToken()
	ident := wordIdent(tok)
	return &ident, nil
}

// parseOptionalTableAlias parses [AS] alias [(columns)] for FROM items.
func (p *Parser) parseOptionalTableAlias() (*ast.TableAlias, error) {
	name, err := p.parseOptionalAlias(keyword.ReservedForTableAlias)
	if err != nil || name == nil {
		return nil, err
	}
	alias := &ast.TableAlias{Name: *name}
	// A parenthesized column list may follow: AS t (a, b). It is only
	// attempted when the shape matches, so function-call parens after a
	// bare alias are left alone.
	if p.peekToken().Type == token.LPAREN && p.peekNth(1).Type == token.WORD &&
		(p.peekNth(2).Type == token.COMMA || p.peekNth(2).Type == token.RPAREN) {
		p.nextToken()
		cols, err := parseCommaSeparated(p, p.parseIdentifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(token.RPAREN); err != nil {
			return nil, err
		}
		alias.Columns = cols
	}
	return alias, nil
}
