package parser

import (
	"go.uber.org/zap"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/token"
)

// The two CASE forms differ in the tiers they accept. The general form takes
// a simple expression as its operand and full expressions as results, and
// END is optional. The object form takes a full expression as its operand
// and simple expressions as results, and END is required.
func (p *Parser) parseCaseOperand(form ast.CaseForm) (ast.Expr, error) {
	if form == ast.CaseObject {
		return p.parseExpr()
	}
	return p.parseSimpleAsExpr()
}

func (p *Parser) parseCaseResult(form ast.CaseForm) (ast.Expr, error) {
	if form == ast.CaseObject {
		return p.parseSimpleAsExpr()
	}
	return p.parseExpr()
}

func (p *Parser) parseSimpleAsExpr() (ast.Expr, error) {
	expr, err := p.parseSimpleExpr()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// caseMemo is the outcome of parsing the CASE expression that starts at a
// stream position. height is how far below its starting depth the parse
// went, so a reuse can be checked against the nesting limit.
type caseMemo struct {
	expr   *ast.CaseExpr
	err    error
	end    int
	height int
}

// parseCase parses a CASE expression in the object form, falling back to the
// general form when the object form does not match. The outcome is recorded
// by position: when an enclosing CASE falls back, the CASE expressions nested
// in it are not parsed a second time.
func (p *Parser) parseCase() (*ast.CaseExpr, error) {
	m := p.mark()

	if c, ok := p.cases[m]; ok && (p.maxDepth <= 0 || p.depth+c.height <= p.maxDepth) {
		p.restore(c.end)
		if p.depth+c.height > p.peak {
			p.peak = p.depth + c.height
		}
		return c.expr, c.err
	}

	outer := p.peak
	p.peak = p.depth
	expr, err := p.parseCaseForms(m)
	height := p.peak - p.depth
	if outer > p.peak {
		p.peak = outer
	}

	if p.cases == nil {
		p.cases = make(map[int]caseMemo)
	}
	p.cases[m] = caseMemo{expr: expr, err: err, end: p.mark(), height: height}
	return expr, err
}

func (p *Parser) parseCaseForms(m int) (*ast.CaseExpr, error) {
	expr, err := p.parseCaseBody(ast.CaseObject)
	if err == nil {
		return expr, nil
	}
	if isFatal(err) {
		return nil, err
	}

	p.logger.Debug("CASE expression retried in general form",
		zap.Int("offset", m),
		zap.Error(err))
	p.restore(m)
	return p.parseCaseBody(ast.CaseGeneral)
}

func (p *Parser) parseCaseBody(form ast.CaseForm) (*ast.CaseExpr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	start, err := p.expect(token.CASE)
	if err != nil {
		return nil, err
	}
	expr := &ast.CaseExpr{Position: start.Pos, Form: form}

	if !p.peekIs(token.WHEN) && !p.caseBodyEnds() {
		operand, err := p.parseCaseOperand(form)
		if err != nil {
			return nil, err
		}
		expr.Operand = operand
	}

	for p.peekIs(token.WHEN) {
		when := p.next()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.parseCaseResult(form)
		if err != nil {
			return nil, err
		}
		expr.Whens = append(expr.Whens, &ast.WhenClause{
			Position:  when.Pos,
			Condition: cond,
			Result:    result,
		})
	}

	if len(expr.Whens) == 0 {
		if p.caseBodyEnds() {
			return nil, missingBranch(p.peek())
		}
		return nil, unexpected(p.peek(), token.WHEN.String())
	}

	if p.accept(token.ELSE) {
		elseExpr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		expr.Else = elseExpr
	}

	if form == ast.CaseObject {
		if _, err := p.expect(token.END); err != nil {
			return nil, err
		}
		expr.HasEnd = true
	} else {
		expr.HasEnd = p.accept(token.END)
	}
	return expr, nil
}

// caseBodyEnds reports whether the next token closes a CASE expression.
func (p *Parser) caseBodyEnds() bool {
	switch p.peek().Token {
	case token.ELSE, token.END, token.EOF, token.RPAREN, token.COMMA:
		return true
	}
	return false
}
