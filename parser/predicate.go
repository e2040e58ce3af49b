package parser

import (
	"go.uber.org/zap"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/lexer"
	"github.com/sqlc-dev/oraexpr/token"
)

// parsePredicate parses PRIOR predicate, or a bit expression with an
// optional IN, BETWEEN or LIKE test.
func (p *Parser) parsePredicate() (ast.Predicate, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.peekIs(token.PRIOR) {
		pos := p.next().Pos
		inner, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		return &ast.PriorExpr{Position: pos, Expr: inner}, nil
	}

	bit, err := p.parseBitExpr()
	if err != nil {
		return nil, err
	}
	return p.parsePredicateTail(bit)
}

func (p *Parser) parsePredicateTail(left ast.BitExpr) (ast.Predicate, error) {
	m := p.mark()
	not := p.accept(token.NOT)

	switch p.peek().Token {
	case token.IN:
		return p.parseIn(left, not)
	case token.BETWEEN:
		return p.parseBetween(left, not)
	case token.LIKE:
		return p.parseLike(left, not)
	}

	// NOT belongs to an enclosing construct.
	p.restore(m)
	return left, nil
}

// parseIn parses IN (subquery) or IN (list). A list may be followed by AND
// and a further condition, which is kept on the InExpr when it parses. When
// the condition cannot start at the token after AND, as in AND NOT, the AND
// is left for the logical tier. Any later failure is returned as is.
func (p *Parser) parseIn(left ast.BitExpr, not bool) (ast.Predicate, error) {
	p.next() // skip IN

	expr := &ast.InExpr{Position: left.Pos(), Expr: left, Not: not}

	if p.subqueryAhead() {
		query, err := p.parseSubquery()
		if err != nil {
			return nil, err
		}
		expr.Query = query
		return expr, nil
	}

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	list, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	expr.List = list

	if !p.peekIs(token.AND) {
		return expr, nil
	}

	m := p.mark()
	p.next()
	first := p.peek()
	cont, err := p.parseBooleanPrimary()
	if err == nil {
		expr.And = cont
		return expr, nil
	}
	if !failsAt(err, first) {
		return nil, err
	}

	p.logger.Debug("IN list continuation rolled back",
		zap.Int("offset", m),
		zap.Error(err))
	p.restore(m)
	return expr, nil
}

func (p *Parser) parseBetween(left ast.BitExpr, not bool) (ast.Predicate, error) {
	p.next() // skip BETWEEN

	low, err := p.parseBitExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AND); err != nil {
		return nil, err
	}
	high, err := p.parsePredicate()
	if err != nil {
		return nil, err
	}
	return &ast.BetweenExpr{
		Position: left.Pos(),
		Expr:     left,
		Not:      not,
		Low:      low,
		High:     high,
	}, nil
}

func (p *Parser) parseLike(left ast.BitExpr, not bool) (ast.Predicate, error) {
	p.next() // skip LIKE

	pattern, err := p.parseSimpleExpr()
	if err != nil {
		return nil, err
	}
	expr := &ast.LikeExpr{
		Position: left.Pos(),
		Expr:     left,
		Not:      not,
		Pattern:  pattern,
	}
	if p.accept(token.ESCAPE) {
		escape, err := p.parseSimpleExpr()
		if err != nil {
			return nil, err
		}
		expr.Escape = escape
	}
	return expr, nil
}

// failsAt reports whether err is a recoverable syntax error raised at item.
func failsAt(err error, item lexer.Item) bool {
	if isFatal(err) {
		return false
	}
	se, ok := AsSyntaxError(err)
	return ok && se.Pos.Offset == item.Pos.Offset
}
