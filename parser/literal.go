package parser

import (
	"strings"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/token"
)

// literalStart reports whether the upcoming tokens begin a literal.
func (p *Parser) literalStart() bool {
	switch p.peek().Token {
	case token.STRING, token.NSTRING, token.NUMBER, token.HEX, token.BIT,
		token.TRUE, token.FALSE, token.NULL:
		return true
	case token.MINUS:
		return p.peekNIs(1, token.NUMBER)
	case token.DATE, token.TIME, token.TIMESTAMP:
		return p.peekNIs(1, token.STRING)
	case token.LBRACE:
		return p.escapedDateTimeStart()
	}
	return false
}

// escapedDateTimeStart reports whether the tokens ahead are {ident 'text'}.
func (p *Parser) escapedDateTimeStart() bool {
	return p.peekIs(token.LBRACE) &&
		p.peekN(1).Token.IsIdentifier() &&
		p.peekNIs(2, token.STRING) &&
		p.peekNIs(3, token.RBRACE)
}

func (p *Parser) parseLiteral() (*ast.Literal, error) {
	item := p.peek()
	switch item.Token {
	case token.STRING, token.NSTRING:
		p.next()
		return &ast.Literal{
			Position: item.Pos,
			Kind:     ast.LiteralString,
			Value:    item.Value,
			National: item.Token == token.NSTRING,
		}, nil
	case token.NUMBER:
		return p.parseNumber()
	case token.MINUS:
		if p.peekNIs(1, token.NUMBER) {
			return p.parseNumber()
		}
	case token.HEX:
		p.next()
		return &ast.Literal{Position: item.Pos, Kind: ast.LiteralHex, Value: item.Value}, nil
	case token.BIT:
		p.next()
		return &ast.Literal{Position: item.Pos, Kind: ast.LiteralBit, Value: item.Value}, nil
	case token.TRUE, token.FALSE:
		p.next()
		return &ast.Literal{Position: item.Pos, Kind: ast.LiteralBoolean, Value: item.Token.String()}, nil
	case token.NULL:
		p.next()
		return &ast.Literal{Position: item.Pos, Kind: ast.LiteralNull, Value: "NULL"}, nil
	case token.DATE, token.TIME, token.TIMESTAMP:
		if p.peekNIs(1, token.STRING) {
			p.next()
			text := p.next()
			return &ast.Literal{
				Position:    item.Pos,
				Kind:        ast.LiteralDateTime,
				Value:       text.Value,
				TypeKeyword: item.Token.String(),
			}, nil
		}
	case token.LBRACE:
		if p.escapedDateTimeStart() {
			p.next()
			ident := p.next()
			text := p.next()
			p.next()
			return &ast.Literal{
				Position:    item.Pos,
				Kind:        ast.LiteralDateTime,
				Value:       text.Value,
				EscapeIdent: ident.Value,
			}, nil
		}
	}
	return nil, noViable(item, "string", "number", "date-time", "hex", "bit", "boolean", "NULL")
}

// parseNumber parses a number literal with an optional leading minus sign.
func (p *Parser) parseNumber() (*ast.Literal, error) {
	pos := p.peek().Pos
	var sb strings.Builder
	if p.accept(token.MINUS) {
		sb.WriteString("-")
	}
	item, err := p.expect(token.NUMBER)
	if err != nil {
		return nil, err
	}
	sb.WriteString(item.Value)
	return &ast.Literal{Position: pos, Kind: ast.LiteralNumber, Value: sb.String()}, nil
}

// parseParameterMarker parses ? or a :name bind variable.
func (p *Parser) parseParameterMarker() (*ast.ParameterMarker, error) {
	item := p.peek()
	if item.Token != token.QUESTION && item.Token != token.PARAM {
		return nil, unexpected(item, "?", "bind variable")
	}
	p.next()
	return &ast.ParameterMarker{Position: item.Pos, Name: item.Value}, nil
}
