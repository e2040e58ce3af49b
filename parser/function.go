package parser

import (
	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/token"
)

func isAggregateName(tok token.Token) bool {
	switch tok {
	case token.MAX, token.MIN, token.SUM, token.COUNT, token.AVG:
		return true
	}
	return false
}

// parseFunctionCall parses an aggregation, CAST, CHAR or regular function call.
func (p *Parser) parseFunctionCall() (ast.Function, error) {
	item := p.peek()
	if !p.peekNIs(1, token.LPAREN) {
		return nil, noViable(item, "aggregation function", "CAST", "CHAR", "function call")
	}

	switch {
	case item.Token == token.CAST:
		return p.parseCast()
	case item.Token == token.CHAR:
		return p.parseCharFunc()
	case isAggregateName(item.Token):
		call, err := p.parseCall(p.takeName(), true)
		if err != nil {
			return nil, err
		}
		return call, nil
	case item.Token == token.IF, item.Token == token.LOCALTIME,
		item.Token == token.LOCALTIMESTAMP, item.Token == token.INTERVAL,
		item.Token.IsIdentifier():
		call, err := p.parseCall(p.takeName(), false)
		if err != nil {
			return nil, err
		}
		return call, nil
	}
	return nil, noViable(item, "aggregation function", "CAST", "CHAR", "function call")
}

// takeName consumes the next token as a function name.
func (p *Parser) takeName() *ast.Identifier {
	item := p.next()
	return &ast.Identifier{Position: item.Pos, Name: item.Value, Quoted: item.Quoted}
}

// parseCall parses the argument list of a call to name. A lone * argument
// stands for every row; it cannot be combined with other arguments.
func (p *Parser) parseCall(name *ast.Identifier, aggregate bool) (*ast.FunctionCall, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	call := &ast.FunctionCall{Position: name.Position, Name: name, Aggregate: aggregate}
	if aggregate {
		call.Distinct = p.accept(token.DISTINCT)
	}

	switch {
	case p.peekIs(token.ASTERISK):
		p.next()
		call.Star = true
	case p.peekIs(token.RPAREN):
	default:
		for {
			if p.peekIs(token.ASTERISK) {
				return nil, unexpected(p.peek(), "expression")
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

// parseCast parses CAST ( expr AS data_type ).
func (p *Parser) parseCast() (ast.Function, error) {
	pos := p.next().Pos

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AS); err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CastExpr{Position: pos, Expr: expr, Type: dt}, nil
}

// parseCharFunc parses CHAR ( expr, ... [USING charset] ).
func (p *Parser) parseCharFunc() (ast.Function, error) {
	pos := p.next().Pos

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	fn := &ast.CharFunc{Position: pos, Args: args}
	if p.accept(token.USING) {
		charset, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		fn.Using = charset
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return fn, nil
}
