package parser

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/token"
)

// typeKeywords are the type names that lex as keywords.
var typeKeywords = map[token.Token]bool{
	token.NUMBER_KW: true,
	token.CHAR:      true,
	token.CHARACTER: true,
	token.VARCHAR:   true,
	token.VARCHAR2:  true,
	token.RAW:       true,
	token.DATE:      true,
	token.TIME:      true,
	token.TIMESTAMP: true,
	token.FLOAT:     true,
	token.INTEGER:   true,
	token.SMALLINT:  true,
	token.DECIMAL:   true,
}

// builtinTypes are the built-in type names that lex as plain identifiers.
var builtinTypes = map[string]bool{
	"BFILE":          true,
	"BINARY_DOUBLE":  true,
	"BINARY_FLOAT":   true,
	"BINARY_INTEGER": true,
	"BLOB":           true,
	"BOOLEAN":        true,
	"CLOB":           true,
	"DEC":            true,
	"INT":            true,
	"NCHAR":          true,
	"NCLOB":          true,
	"NUMERIC":        true,
	"NVARCHAR2":      true,
	"PLS_INTEGER":    true,
	"REAL":           true,
	"ROWID":          true,
	"UROWID":         true,
	"XMLTYPE":        true,
}

// parseDataType parses a type name with its optional length and datetime
// suffix.
func (p *Parser) parseDataType() (*ast.DataType, error) {
	dt := &ast.DataType{Position: p.peek().Pos}

	if p.peekIs(token.NATIONAL) {
		if err := p.parseNationalType(dt); err != nil {
			return nil, err
		}
		return dt, nil
	}

	if err := p.parseDataTypeName(dt); err != nil {
		return nil, err
	}
	if dt.Owner == nil && (dt.Name == "CHAR" || dt.Name == "CHARACTER") {
		dt.Varying = p.accept(token.VARYING)
	}
	if p.peekIs(token.LPAREN) {
		if err := p.parseDataTypeLength(dt); err != nil {
			return nil, err
		}
	}
	if err := p.parseDatetimeSuffix(dt); err != nil {
		return nil, err
	}
	return dt, nil
}

// parseDataTypeName parses the name of a type: a built-in name, possibly
// spanning several words, or a user-defined [owner.]name.
func (p *Parser) parseDataTypeName(dt *ast.DataType) error {
	item := p.peek()

	switch item.Token {
	case token.LONG:
		p.next()
		dt.Name = "LONG"
		if p.accept(token.RAW) {
			dt.Name = "LONG RAW"
		}
		return nil
	case token.DOUBLE:
		p.next()
		if _, err := p.expect(token.PRECISION); err != nil {
			return err
		}
		dt.Name = "DOUBLE PRECISION"
		return nil
	case token.INTERVAL:
		p.next()
		switch unit := p.peek(); unit.Token {
		case token.DAY, token.YEAR:
			p.next()
			dt.Name = "INTERVAL " + unit.Token.String()
			return nil
		default:
			return unexpected(unit, token.DAY.String(), token.YEAR.String())
		}
	}

	if typeKeywords[item.Token] {
		p.next()
		dt.Name = item.Token.String()
		return nil
	}

	if item.Token == token.IDENT && !item.Quoted && !p.peekNIs(1, token.DOT) {
		if name := strings.ToUpper(item.Value); builtinTypes[name] {
			p.next()
			dt.Name = name
			return nil
		}
	}

	if !item.Token.IsIdentifier() {
		return noViable(item, "built-in type", "user-defined type")
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return err
	}
	dt.Owner = name.Owner
	dt.Name = name.Name.String()
	return nil
}

// parseNationalType parses NATIONAL CHAR|CHARACTER [VARYING] (n).
func (p *Parser) parseNationalType(dt *ast.DataType) error {
	p.next() // skip NATIONAL

	item := p.peek()
	if item.Token != token.CHAR && item.Token != token.CHARACTER {
		return unexpected(item, token.CHAR.String(), token.CHARACTER.String())
	}
	p.next()
	dt.National = true
	dt.Name = item.Token.String()
	dt.Varying = p.accept(token.VARYING)

	if _, err := p.expect(token.LPAREN); err != nil {
		return err
	}
	n, err := p.parseInteger()
	if err != nil {
		return err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return err
	}
	dt.Length = &ast.DataTypeLength{Precision: &n}
	return nil
}

// parseDataTypeLength parses the parenthesized length of a type. The token
// after the parenthesis picks the form: a number for precision and scale,
// * for NUMBER(*), or a column name whose length is copied. The closing
// parenthesis of a column copy may be omitted.
func (p *Parser) parseDataTypeLength(dt *ast.DataType) error {
	p.next() // skip (

	item := p.peek()
	switch {
	case item.Token == token.NUMBER:
		n, err := p.parseInteger()
		if err != nil {
			return err
		}
		length := &ast.DataTypeLength{Precision: &n}
		if p.accept(token.COMMA) {
			scale, err := p.parseSignedInteger()
			if err != nil {
				return err
			}
			length.Scale = &scale
		} else if p.peekIs(token.CHAR) || p.peekIs(token.BYTE) {
			length.Unit = p.next().Token.String()
		}
		dt.Length = length
	case item.Token == token.ASTERISK && dt.Owner == nil && dt.Name == "NUMBER":
		p.next()
		length := &ast.DataTypeLength{Any: true}
		if p.accept(token.COMMA) {
			scale, err := p.parseSignedInteger()
			if err != nil {
				return err
			}
			length.Scale = &scale
		}
		dt.Length = length
	case item.Token.IsIdentifier():
		col, err := p.parseQualifiedName()
		if err != nil {
			return err
		}
		dt.CopyColumn = col
		dt.CopyClosed = p.accept(token.RPAREN)
		return nil
	default:
		return noViable(item, "length", "column")
	}

	_, err := p.expect(token.RPAREN)
	return err
}

// parseDatetimeSuffix parses WITH [LOCAL] TIME ZONE after TIMESTAMP and TIME,
// and the required TO MONTH or TO SECOND after INTERVAL types.
func (p *Parser) parseDatetimeSuffix(dt *ast.DataType) error {
	if dt.Owner != nil {
		return nil
	}

	switch dt.Name {
	case "TIMESTAMP", "TIME":
		if !p.accept(token.WITH) {
			return nil
		}
		suffix := &ast.DatetimeSuffix{Kind: ast.WithTimeZone}
		suffix.Local = p.accept(token.LOCAL)
		if _, err := p.expect(token.TIME); err != nil {
			return err
		}
		if _, err := p.expect(token.ZONE); err != nil {
			return err
		}
		dt.Suffix = suffix
	case "INTERVAL DAY":
		if _, err := p.expect(token.TO); err != nil {
			return err
		}
		if _, err := p.expect(token.SECOND); err != nil {
			return err
		}
		precision, err := p.parseOptionalPrecision()
		if err != nil {
			return err
		}
		dt.Suffix = &ast.DatetimeSuffix{Kind: ast.ToSecond, Precision: precision}
	case "INTERVAL YEAR":
		if _, err := p.expect(token.TO); err != nil {
			return err
		}
		if _, err := p.expect(token.MONTH); err != nil {
			return err
		}
		dt.Suffix = &ast.DatetimeSuffix{Kind: ast.ToMonth}
	}
	return nil
}

// parseOptionalPrecision parses an optional ( n ).
func (p *Parser) parseOptionalPrecision() (*int, error) {
	if !p.peekIs(token.LPAREN) {
		return nil, nil
	}
	p.next()
	n, err := p.parseInteger()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &n, nil
}

func (p *Parser) parseInteger() (int, error) {
	item := p.peek()
	if item.Token != token.NUMBER {
		return 0, unexpected(item, "integer")
	}
	n, err := strconv.Atoi(item.Value)
	if err != nil {
		return 0, unexpected(item, "integer")
	}
	p.next()
	return n, nil
}

func (p *Parser) parseSignedInteger() (int, error) {
	neg := p.accept(token.MINUS)
	n, err := p.parseInteger()
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}
