package parser_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/parser"
)

func parse(t *testing.T, sql string, opts ...parser.Option) ast.Expr {
	t.Helper()
	expr, err := parser.ParseString(context.Background(), sql, opts...)
	require.NoError(t, err, sql)
	require.NotNil(t, expr)
	return expr
}

func parseError(t *testing.T, sql string, opts ...parser.Option) *parser.SyntaxError {
	t.Helper()
	_, err := parser.ParseString(context.Background(), sql, opts...)
	require.Error(t, err, sql)
	se, ok := parser.AsSyntaxError(err)
	require.True(t, ok, "not a syntax error: %v", err)
	return se
}

// sexpr renders the operator structure of an expression as an
// s-expression. Leaves are rendered with parser.Format.
func sexpr(node ast.Node) string {
	switch n := node.(type) {
	case *ast.LogicalExpr:
		return list(n.Op, sexpr(n.Left), sexpr(n.Right))
	case *ast.NotExpr:
		return list("NOT", sexpr(n.Expr))
	case *ast.ParenExpr:
		return list("paren", sexpr(n.Expr))
	case *ast.IsExpr:
		op := "IS"
		if n.Not {
			op = "IS NOT"
		}
		return list(op+" "+n.Value, sexpr(n.Expr))
	case *ast.CompareExpr:
		return list(n.Op, sexpr(n.Left), sexpr(n.Right))
	case *ast.SafeEqExpr:
		return list("<=>", sexpr(n.Left), sexpr(n.Right))
	case *ast.BinaryExpr:
		return list(n.Op, sexpr(n.Left), sexpr(n.Right))
	case *ast.ConcatExpr:
		return list("||", sexpr(n.Left), sexpr(n.Right))
	case *ast.UnaryExpr:
		return list("unary"+n.Op, sexpr(n.Operand))
	case *ast.RowExpr:
		items := []string{}
		for _, item := range n.Items {
			items = append(items, sexpr(item))
		}
		return list("row", items...)
	case *ast.PriorExpr:
		return list("PRIOR", sexpr(n.Expr))
	case *ast.InExpr:
		parts := []string{sexpr(n.Expr)}
		for _, item := range n.List {
			parts = append(parts, sexpr(item))
		}
		if n.And != nil {
			parts = append(parts, ":", sexpr(n.And))
		}
		kind := string(n.Kind())
		if n.Not {
			kind = "Not" + kind
		}
		return list(kind, parts...)
	case *ast.BetweenExpr:
		return list("BETWEEN", sexpr(n.Expr), sexpr(n.Low), sexpr(n.High))
	}
	return parser.Format(node)
}

func list(op string, args ...string) string {
	return "(" + op + " " + strings.Join(args, " ") + ")"
}

func intPtr(n int) *int {
	return &n
}
