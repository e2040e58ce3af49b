package parser

import (
	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/token"
)

// isIntervalOperand reports whether a parenthesized expression can take a
// DAY TO SECOND or YEAR TO MONTH qualifier: it must be a single subtraction.
func isIntervalOperand(e ast.Expr) bool {
	b, ok := stripParens(e).(*ast.BinaryExpr)
	return ok && b.Op == "-"
}

// stripParens removes redundant parentheses around e, as in ((x)).
func stripParens(e ast.Expr) ast.Expr {
	for {
		paren, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = paren.Expr
	}
}

// parseIntervalTail parses the qualifier of ( a - b ) DAY [(n)] TO SECOND [(n)]
// or ( a - b ) YEAR [(n)] TO MONTH.
func (p *Parser) parseIntervalTail(row *ast.RowExpr) (ast.SimpleExpr, error) {
	diff := stripParens(row.Items[0]).(*ast.BinaryExpr)
	expr := &ast.IntervalExpr{Position: row.Position, Left: diff.Left, Right: diff.Right}

	unit := p.next()
	lead, err := p.parseOptionalPrecision()
	if err != nil {
		return nil, err
	}
	expr.LeadingPrecision = lead

	if _, err := p.expect(token.TO); err != nil {
		return nil, err
	}

	if unit.Token == token.YEAR {
		if _, err := p.expect(token.MONTH); err != nil {
			return nil, err
		}
		expr.Unit = ast.YearToMonth
		return expr, nil
	}

	if _, err := p.expect(token.SECOND); err != nil {
		return nil, err
	}
	frac, err := p.parseOptionalPrecision()
	if err != nil {
		return nil, err
	}
	expr.Unit = ast.DayToSecond
	expr.FractionPrecision = frac
	return expr, nil
}

// parseObjectAccess parses the .attribute chain after base. The chain may
// end in a method call.
func (p *Parser) parseObjectAccess(base ast.SimpleExpr, pos token.Position) (ast.SimpleExpr, error) {
	expr := &ast.ObjectAccessExpr{Position: pos, Base: base}

	for p.accept(token.DOT) {
		if p.peek().Token.IsIdentifier() && p.peekNIs(1, token.LPAREN) {
			call, err := p.parseCall(p.takeName(), false)
			if err != nil {
				return nil, err
			}
			expr.Call = call
			return expr, nil
		}
		attr, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		expr.Attributes = append(expr.Attributes, attr)
	}
	return expr, nil
}

// parseTreat parses TREAT ( expr AS [REF] type_name ).
func (p *Parser) parseTreat() (ast.SimpleExpr, error) {
	pos := p.next().Pos

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	operand, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AS); err != nil {
		return nil, err
	}
	expr := &ast.TreatExpr{Position: pos, Expr: operand}
	expr.Ref = p.accept(token.REF)

	dt := &ast.DataType{Position: p.peek().Pos}
	if err := p.parseDataTypeName(dt); err != nil {
		return nil, err
	}
	expr.Type = dt

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// constructorAhead reports whether NEW starts a constructor call rather than
// naming a column.
func (p *Parser) constructorAhead() bool {
	if !p.peekIs(token.NEW) || !p.peekN(1).Token.IsIdentifier() {
		return false
	}
	if p.peekNIs(2, token.LPAREN) {
		return true
	}
	return p.peekNIs(2, token.DOT) &&
		p.peekN(3).Token.IsIdentifier() &&
		p.peekNIs(4, token.LPAREN)
}

// parseConstructor parses NEW type_name ( [expr, ...] ).
func (p *Parser) parseConstructor() (ast.SimpleExpr, error) {
	pos := p.next().Pos

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	dt := &ast.DataType{Position: name.Position, Owner: name.Owner, Name: name.Name.String()}
	expr := &ast.ConstructorExpr{Position: pos, Type: dt}

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if !p.peekIs(token.RPAREN) {
		args, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		expr.Args = args
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}
