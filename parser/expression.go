package parser

import (
	"go.uber.org/zap"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/token"
)

// Logical operator precedence levels
const (
	LOWEST   = iota
	OR_PREC  // OR
	AND_PREC // AND, &&
)

// Bit expression precedence levels, weakest first
const (
	BITOR_PREC  = iota + 1 // |
	BITAND_PREC            // &
	SHIFT_PREC             // <<, >>
	ADD_PREC               // +, -
	MUL_PREC               // *, /, %
	POW_PREC               // ^
)

func logicalPrecedence(tok token.Token) int {
	switch tok {
	case token.OR:
		return OR_PREC
	case token.AND, token.AND_AND:
		return AND_PREC
	default:
		return LOWEST
	}
}

func bitPrecedence(tok token.Token) int {
	switch tok {
	case token.PIPE:
		return BITOR_PREC
	case token.AMPERSAND:
		return BITAND_PREC
	case token.SHL, token.SHR:
		return SHIFT_PREC
	case token.PLUS, token.MINUS:
		return ADD_PREC
	case token.ASTERISK, token.SLASH, token.PERCENT:
		return MUL_PREC
	case token.CARET:
		return POW_PREC
	default:
		return LOWEST
	}
}

func isComparison(tok token.Token) bool {
	switch tok {
	case token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE:
		return true
	}
	return false
}

// parseExpr parses a full expression: units joined by AND and OR.
func (p *Parser) parseExpr() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.parseLogical(OR_PREC)
}

// parseLogical climbs the logical operators. The right operand is parsed one
// level above the operator, so chains of one operator fold to the left.
func (p *Parser) parseLogical(minPrec int) (ast.Expr, error) {
	left, err := p.parseExprUnit()
	if err != nil {
		return nil, err
	}

	for {
		prec := logicalPrecedence(p.peek().Token)
		if prec == LOWEST || prec < minPrec {
			return left, nil
		}
		op := "OR"
		if prec == AND_PREC {
			op = "AND"
		}
		p.next()

		right, err := p.parseLogical(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{
			Position: left.Pos(),
			Left:     left,
			Op:       op,
			Right:    right,
		}
	}
}

// parseExprUnit parses NOT unit, a parenthesized expression, or a boolean
// primary, followed by any AT LOCAL / AT TIME ZONE qualifiers.
func (p *Parser) parseExprUnit() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var unit ast.Expr
	switch {
	case p.peekIs(token.NOT):
		pos := p.next().Pos
		operand, err := p.parseExprUnit()
		if err != nil {
			return nil, err
		}
		unit = &ast.NotExpr{Position: pos, Expr: operand}
	case p.peekIs(token.LPAREN) && !p.subqueryAhead():
		paren, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		unit = paren
	default:
		primary, err := p.parseBooleanPrimary()
		if err != nil {
			return nil, err
		}
		unit = primary
	}

	return p.parseDatetimeTail(unit)
}

// parseParenExpr parses ( expr ). When the closing parenthesis is followed by
// an operator that continues an operand, the parentheses are a row
// constructor instead and parsing resumes at the lower tiers.
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	lparen := p.next()

	items, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	if len(items) == 1 && !p.continuesOperand(items[0]) {
		return &ast.ParenExpr{Position: lparen.Pos, Expr: items[0]}, nil
	}

	p.logger.Debug("parenthesized expression continues as row constructor",
		zap.Int("offset", p.Offset()),
		zap.Int("items", len(items)))

	row := &ast.RowExpr{Position: lparen.Pos, Items: items}
	simple, err := p.parseSimpleTail(row)
	if err != nil {
		return nil, err
	}
	bit, err := p.parseBitTail(simple, BITOR_PREC)
	if err != nil {
		return nil, err
	}
	pred, err := p.parsePredicateTail(bit)
	if err != nil {
		return nil, err
	}
	return p.parseBooleanTail(pred)
}

// continuesOperand reports whether the next token extends a parenthesized
// operand below the logical tier.
func (p *Parser) continuesOperand(inner ast.Expr) bool {
	tok := p.peek().Token
	if bitPrecedence(tok) != LOWEST || isComparison(tok) {
		return true
	}
	switch tok {
	case token.CONCAT, token.NULL_SAFE_EQ, token.IS, token.IN, token.BETWEEN, token.LIKE:
		return true
	case token.NOT:
		switch p.peekN(1).Token {
		case token.IN, token.BETWEEN, token.LIKE:
			return true
		}
	case token.DOT:
		_, ok := stripParens(inner).(ast.SimpleExpr)
		return ok
	case token.DAY, token.YEAR:
		return isIntervalOperand(inner)
	}
	return false
}

// parseDatetimeTail parses trailing AT LOCAL and AT TIME ZONE qualifiers.
func (p *Parser) parseDatetimeTail(expr ast.Expr) (ast.Expr, error) {
	for p.peekIs(token.AT) {
		switch {
		case p.peekNIs(1, token.LOCAL):
			at := p.next()
			p.next()
			expr = &ast.DatetimeExpr{Position: at.Pos, Expr: expr, Local: true}
		case p.peekNIs(1, token.TIME) && p.peekNIs(2, token.ZONE):
			at := p.next()
			p.next()
			p.next()
			zone, err := p.parseSimpleExpr()
			if err != nil {
				return nil, err
			}
			expr = &ast.DatetimeExpr{Position: at.Pos, Expr: expr, Zone: zone}
		default:
			return expr, nil
		}
	}
	return expr, nil
}

// parseBooleanPrimary parses a predicate followed by IS tests and comparisons.
func (p *Parser) parseBooleanPrimary() (ast.BooleanPrimary, error) {
	pred, err := p.parsePredicate()
	if err != nil {
		return nil, err
	}
	return p.parseBooleanTail(pred)
}

func (p *Parser) parseBooleanTail(left ast.BooleanPrimary) (ast.BooleanPrimary, error) {
	for {
		item := p.peek()
		switch {
		case item.Token == token.IS:
			is, err := p.parseIsExpr(left)
			if err != nil {
				return nil, err
			}
			left = is
		case item.Token == token.NULL_SAFE_EQ:
			p.next()
			right, err := p.parsePredicate()
			if err != nil {
				return nil, err
			}
			left = &ast.SafeEqExpr{Position: left.Pos(), Left: left, Right: right}
		case isComparison(item.Token):
			cmp, err := p.parseComparison(left)
			if err != nil {
				return nil, err
			}
			left = cmp
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseIsExpr(left ast.BooleanPrimary) (ast.BooleanPrimary, error) {
	p.next() // skip IS

	expr := &ast.IsExpr{Position: left.Pos(), Expr: left}
	expr.Not = p.accept(token.NOT)

	item := p.peek()
	switch item.Token {
	case token.TRUE, token.FALSE, token.UNKNOWN, token.NULL:
		p.next()
		expr.Value = item.Token.String()
		return expr, nil
	}
	return nil, unexpected(item, "TRUE", "FALSE", "UNKNOWN", "NULL")
}

func (p *Parser) parseComparison(left ast.BooleanPrimary) (ast.BooleanPrimary, error) {
	op := p.next()

	if p.quantifierAhead() {
		quantifier := p.next()
		query, err := p.parseSubquery()
		if err != nil {
			return nil, err
		}
		return &ast.QuantifiedCompareExpr{
			Position:   left.Pos(),
			Left:       left,
			Op:         op.Value,
			Quantifier: quantifier.Token.String(),
			Query:      query,
		}, nil
	}

	right, err := p.parsePredicate()
	if err != nil {
		return nil, err
	}
	return &ast.CompareExpr{
		Position: left.Pos(),
		Left:     left,
		Op:       op.Value,
		Right:    right,
	}, nil
}

// quantifierAhead reports whether a comparison operand starts with ALL, ANY
// or SOME. SOME is unreserved, so it only counts before a subquery.
func (p *Parser) quantifierAhead() bool {
	switch p.peek().Token {
	case token.ALL, token.ANY:
		return true
	case token.SOME:
		return p.peekNIs(1, token.LPAREN) &&
			(p.peekNIs(2, token.SELECT) || p.peekNIs(2, token.WITH))
	}
	return false
}

// parseBitExpr parses arithmetic and bitwise operations.
func (p *Parser) parseBitExpr() (ast.BitExpr, error) {
	left, err := p.parseSimpleExpr()
	if err != nil {
		return nil, err
	}
	return p.parseBitTail(left, BITOR_PREC)
}

// parseBitTail folds operators of at least minPrec onto left. After each
// operator the right operand absorbs every stronger operator that follows,
// so operators of equal strength associate to the left.
func (p *Parser) parseBitTail(left ast.BitExpr, minPrec int) (ast.BitExpr, error) {
	for {
		op := p.peek()
		prec := bitPrecedence(op.Token)
		if prec == LOWEST || prec < minPrec {
			return left, nil
		}
		p.next()

		operand, err := p.parseSimpleExpr()
		if err != nil {
			return nil, err
		}
		right, err := p.parseBitTail(operand, prec+1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			Position: left.Pos(),
			Left:     left,
			Op:       op.Value,
			Right:    right,
		}
	}
}

// parseExprList parses expr (, expr)*.
func (p *Parser) parseExprList() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.accept(token.COMMA) {
			return exprs, nil
		}
	}
}
