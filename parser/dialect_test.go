package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/parser"
)

func TestTreat(t *testing.T) {
	expr := parse(t, "TREAT(obj AS REF person_t)")
	treat, ok := expr.(*ast.TreatExpr)
	require.True(t, ok, "got %T", expr)
	require.True(t, treat.Ref)
	require.Equal(t, "person_t", treat.Type.Name)
	require.Equal(t, "obj", sexpr(treat.Expr))

	expr = parse(t, "TREAT(obj AS hr.person_t).name")
	access, ok := expr.(*ast.ObjectAccessExpr)
	require.True(t, ok, "got %T", expr)
	treat, ok = access.Base.(*ast.TreatExpr)
	require.True(t, ok, "got %T", access.Base)
	require.False(t, treat.Ref)
	require.Equal(t, "hr", treat.Type.Owner.Name)
	require.Len(t, access.Attributes, 1)
	require.Equal(t, "name", access.Attributes[0].Name)
}

func TestIntervalExpression(t *testing.T) {
	expr := parse(t, "(end_ts - start_ts) DAY(2) TO SECOND(3)")
	interval, ok := expr.(*ast.IntervalExpr)
	require.True(t, ok, "got %T", expr)
	require.Equal(t, ast.DayToSecond, interval.Unit)
	require.Equal(t, "end_ts", sexpr(interval.Left))
	require.Equal(t, "start_ts", sexpr(interval.Right))
	require.Equal(t, intPtr(2), interval.LeadingPrecision)
	require.Equal(t, intPtr(3), interval.FractionPrecision)

	expr = parse(t, "(a - b) YEAR TO MONTH > x")
	cmp, ok := expr.(*ast.CompareExpr)
	require.True(t, ok, "got %T", expr)
	interval, ok = cmp.Left.(*ast.IntervalExpr)
	require.True(t, ok, "got %T", cmp.Left)
	require.Equal(t, ast.YearToMonth, interval.Unit)
	require.Nil(t, interval.LeadingPrecision)
	require.Nil(t, interval.FractionPrecision)

	expr = parse(t, "f((a - b) DAY TO SECOND)")
	call, ok := expr.(*ast.FunctionCall)
	require.True(t, ok, "got %T", expr)
	_, ok = call.Args[0].(*ast.IntervalExpr)
	require.True(t, ok, "got %T", call.Args[0])

	expr = parse(t, "((a - b)) DAY TO SECOND")
	interval, ok = expr.(*ast.IntervalExpr)
	require.True(t, ok, "got %T", expr)
	require.Equal(t, "a", sexpr(interval.Left))
	require.Equal(t, "b", sexpr(interval.Right))
}

func TestIntervalExpressionErrors(t *testing.T) {
	se := parseError(t, "(a + b) DAY TO SECOND")
	require.Equal(t, parser.UnexpectedToken, se.Kind)
	require.Equal(t, []string{"EOF"}, se.Expected)

	se = parseError(t, "(a - b) DAY TO MONTH")
	require.Equal(t, parser.UnexpectedToken, se.Kind)
	require.Equal(t, []string{"SECOND"}, se.Expected)
}

func TestObjectAccess(t *testing.T) {
	tests := []struct {
		sql   string
		attrs []string
		call  string
	}{
		{sql: "(p).address.city", attrs: []string{"address", "city"}},
		{sql: "(p).get_name()", call: "get_name()"},
		{sql: "(p).addr.format(1, 'x')", attrs: []string{"addr"}, call: "format(1, 'x')"},
		{sql: "(f(x)).total", attrs: []string{"total"}},
		{sql: "((p)).address", attrs: []string{"address"}},
		{sql: "(((p))).get_name()", call: "get_name()"},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			expr := parse(t, tt.sql)
			access, ok := expr.(*ast.ObjectAccessExpr)
			require.True(t, ok, "got %T", expr)

			var attrs []string
			for _, attr := range access.Attributes {
				attrs = append(attrs, attr.Name)
			}
			require.Equal(t, tt.attrs, attrs)
			if tt.call == "" {
				require.Nil(t, access.Call)
			} else {
				require.Equal(t, tt.call, parser.Format(access.Call))
			}
		})
	}
}

func TestObjectAccessThroughParentheses(t *testing.T) {
	expr := parse(t, "((p)).address = 'x'")
	cmp, ok := expr.(*ast.CompareExpr)
	require.True(t, ok, "got %T", expr)
	access, ok := cmp.Left.(*ast.ObjectAccessExpr)
	require.True(t, ok, "got %T", cmp.Left)
	require.Equal(t, "p", sexpr(access.Base))
	require.Equal(t, "(p).address = 'x'", parser.Format(expr))
}

func TestObjectAccessInComparison(t *testing.T) {
	require.Equal(t, "(= (p).name 'x')", sexpr(parse(t, "(p).name = 'x'")))
	require.Equal(t, "(|| (p).first (p).last)", sexpr(parse(t, "(p).first || (p).last")))
}

func TestConstructor(t *testing.T) {
	expr := parse(t, "NEW point_t(1, 2)")
	ctor, ok := expr.(*ast.ConstructorExpr)
	require.True(t, ok, "got %T", expr)
	require.Equal(t, "point_t", ctor.Type.Name)
	require.Nil(t, ctor.Type.Owner)
	require.Len(t, ctor.Args, 2)

	expr = parse(t, "new hr.point_t()")
	ctor, ok = expr.(*ast.ConstructorExpr)
	require.True(t, ok, "got %T", expr)
	require.Equal(t, "hr", ctor.Type.Owner.Name)
	require.Empty(t, ctor.Args)

	require.Equal(t, "(+ new 1)", sexpr(parse(t, "new + 1")))
}

func TestSubqueryExpressions(t *testing.T) {
	expr := parse(t, "x = (SELECT MAX(y) FROM t)")
	cmp, ok := expr.(*ast.CompareExpr)
	require.True(t, ok, "got %T", expr)
	sub, ok := cmp.Right.(*ast.SubqueryExpr)
	require.True(t, ok, "got %T", cmp.Right)
	require.False(t, sub.Exists)
	require.Equal(t, "SELECT MAX(y) FROM t", sub.Query.Text)

	expr = parse(t, "NOT EXISTS (SELECT 1 FROM dual)")
	not, ok := expr.(*ast.NotExpr)
	require.True(t, ok, "got %T", expr)
	sub, ok = not.Expr.(*ast.SubqueryExpr)
	require.True(t, ok, "got %T", not.Expr)
	require.True(t, sub.Exists)

	se := parseError(t, "a > ANY (1)")
	require.Equal(t, parser.UnexpectedToken, se.Kind)
	require.Equal(t, []string{"subquery"}, se.Expected)
}

func TestEscapedExpressions(t *testing.T) {
	expr := parse(t, "{fn concat(a, b)}")
	esc, ok := expr.(*ast.EscapedExpr)
	require.True(t, ok, "got %T", expr)
	require.Equal(t, "fn", esc.Ident.Name)
	require.Equal(t, "concat(a, b)", parser.Format(esc.Expr))

	expr = parse(t, "{ts '2020-01-01 00:00:00'}")
	lit, ok := expr.(*ast.Literal)
	require.True(t, ok, "got %T", expr)
	require.Equal(t, ast.LiteralDateTime, lit.Kind)
	require.Equal(t, "ts", lit.EscapeIdent)
}
