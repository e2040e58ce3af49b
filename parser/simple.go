package parser

import (
	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/token"
)

// parseSimpleExpr parses operands joined by the || concatenation operator.
func (p *Parser) parseSimpleExpr() (ast.SimpleExpr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	unit, err := p.parseSimpleUnit()
	if err != nil {
		return nil, err
	}
	return p.parseConcatTail(unit)
}

// parseSimpleTail continues a simple expression whose primary has already
// been consumed.
func (p *Parser) parseSimpleTail(primary ast.SimpleExpr) (ast.SimpleExpr, error) {
	unit, err := p.parsePostfix(primary)
	if err != nil {
		return nil, err
	}
	return p.parseConcatTail(unit)
}

func (p *Parser) parseConcatTail(left ast.SimpleExpr) (ast.SimpleExpr, error) {
	for p.accept(token.CONCAT) {
		right, err := p.parseSimpleUnit()
		if err != nil {
			return nil, err
		}
		left = &ast.ConcatExpr{Position: left.Pos(), Left: left, Right: right}
	}
	return left, nil
}

// parseSimpleUnit parses a primary with its interval and attribute suffixes.
func (p *Parser) parseSimpleUnit() (ast.SimpleExpr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	primary, err := p.parseSimplePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(primary)
}

// parsePostfix applies the suffixes that attach to a parenthesized operand
// or a TREAT expression.
func (p *Parser) parsePostfix(primary ast.SimpleExpr) (ast.SimpleExpr, error) {
	switch e := primary.(type) {
	case *ast.RowExpr:
		if e.Row || len(e.Items) != 1 {
			return primary, nil
		}
		switch {
		case (p.peekIs(token.DAY) || p.peekIs(token.YEAR)) && isIntervalOperand(e.Items[0]):
			return p.parseIntervalTail(e)
		case p.peekIs(token.DOT):
			if base, ok := stripParens(e.Items[0]).(ast.SimpleExpr); ok {
				return p.parseObjectAccess(base, e.Position)
			}
		}
	case *ast.TreatExpr:
		if p.peekIs(token.DOT) {
			return p.parseObjectAccess(e, e.Position)
		}
	}
	return primary, nil
}

func (p *Parser) parseSimplePrimary() (ast.SimpleExpr, error) {
	item := p.peek()

	switch item.Token {
	case token.QUESTION, token.PARAM:
		marker, err := p.parseParameterMarker()
		if err != nil {
			return nil, err
		}
		return marker, nil
	case token.MINUS:
		if !p.peekNIs(1, token.NUMBER) {
			return p.parseUnary()
		}
	case token.PLUS, token.TILDE, token.BANG, token.BINARY:
		return p.parseUnary()
	case token.LPAREN:
		if p.subqueryAhead() {
			return p.parseSubqueryExpr()
		}
		return p.parseRow()
	case token.ROW:
		if p.peekNIs(1, token.LPAREN) {
			return p.parseRow()
		}
	case token.EXISTS:
		return p.parseSubqueryExpr()
	case token.LBRACE:
		if !p.escapedDateTimeStart() {
			return p.parseEscapedExpr()
		}
	case token.CASE:
		expr, err := p.parseCase()
		if err != nil {
			return nil, err
		}
		return expr, nil
	case token.TREAT:
		if p.peekNIs(1, token.LPAREN) {
			return p.parseTreat()
		}
	case token.NEW:
		if p.constructorAhead() {
			return p.parseConstructor()
		}
	case token.CAST, token.CHAR, token.IF, token.LOCALTIME, token.LOCALTIMESTAMP, token.INTERVAL:
		if p.peekNIs(1, token.LPAREN) {
			fn, err := p.parseFunctionCall()
			if err != nil {
				return nil, err
			}
			return fn, nil
		}
	}

	if p.literalStart() {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return lit, nil
	}

	if item.Token.IsIdentifier() {
		if p.peekNIs(1, token.LPAREN) {
			fn, err := p.parseFunctionCall()
			if err != nil {
				return nil, err
			}
			return fn, nil
		}
		return p.parseColumnRef()
	}

	return nil, noViable(item, "literal", "bind variable", "column", "function call", "CASE", "subquery", "row")
}

func (p *Parser) parseUnary() (ast.SimpleExpr, error) {
	op := p.next()
	operand, err := p.parseSimpleUnit()
	if err != nil {
		return nil, err
	}
	text := op.Value
	if op.Token == token.BINARY {
		text = op.Token.String()
	}
	return &ast.UnaryExpr{Position: op.Pos, Op: text, Operand: operand}, nil
}

// parseRow parses [ROW] ( expr, ... ).
func (p *Parser) parseRow() (ast.SimpleExpr, error) {
	pos := p.peek().Pos
	row := p.accept(token.ROW)

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	items, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.RowExpr{Position: pos, Row: row, Items: items}, nil
}

// parseSubqueryExpr parses [EXISTS] ( subquery ).
func (p *Parser) parseSubqueryExpr() (ast.SimpleExpr, error) {
	pos := p.peek().Pos
	exists := p.accept(token.EXISTS)

	query, err := p.parseSubquery()
	if err != nil {
		return nil, err
	}
	return &ast.SubqueryExpr{Position: pos, Exists: exists, Query: query}, nil
}

// parseEscapedExpr parses an ODBC style escape { ident expr }.
func (p *Parser) parseEscapedExpr() (ast.SimpleExpr, error) {
	lbrace := p.next()

	ident, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.EscapedExpr{Position: lbrace.Pos, Ident: ident, Expr: expr}, nil
}

func (p *Parser) parseColumnRef() (ast.SimpleExpr, error) {
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	return &ast.ColumnRef{Position: name.Position, Column: name}, nil
}
