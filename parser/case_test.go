package parser_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/parser"
)

func parseCase(t *testing.T, sql string, opts ...parser.Option) *ast.CaseExpr {
	t.Helper()
	expr := parse(t, sql, opts...)
	c, ok := expr.(*ast.CaseExpr)
	require.True(t, ok, "got %T", expr)
	return c
}

func TestCaseSearched(t *testing.T) {
	c := parseCase(t, "CASE WHEN a > 1 THEN 'x' ELSE 'y' END")
	require.Equal(t, ast.CaseObject, c.Form)
	require.Nil(t, c.Operand)
	require.Len(t, c.Whens, 1)
	require.Equal(t, "(> a 1)", sexpr(c.Whens[0].Condition))
	require.Equal(t, "'x'", sexpr(c.Whens[0].Result))
	require.Equal(t, "'y'", sexpr(c.Else))
	require.True(t, c.HasEnd)
}

func TestCaseSimple(t *testing.T) {
	c := parseCase(t, "CASE grade WHEN 1 THEN 'a' WHEN 2 THEN 'b' END")
	require.Equal(t, ast.CaseObject, c.Form)
	require.Equal(t, "grade", sexpr(c.Operand))
	require.Len(t, c.Whens, 2)
	require.Nil(t, c.Else)
}

func TestCaseGeneralFallback(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	c := parseCase(t, "CASE WHEN a THEN b = 1 END", parser.WithLogger(zap.New(core)))
	require.Equal(t, ast.CaseGeneral, c.Form)
	require.Equal(t, "(= b 1)", sexpr(c.Whens[0].Result))
	require.True(t, c.HasEnd)
	require.Equal(t, 1, logs.FilterMessage("CASE expression retried in general form").Len())
}

func TestCaseWithoutEnd(t *testing.T) {
	c := parseCase(t, "CASE WHEN a THEN b")
	require.Equal(t, ast.CaseGeneral, c.Form)
	require.False(t, c.HasEnd)
	require.Equal(t, "CASE WHEN a THEN b", parser.Format(c))

	c, err := parser.ParseCaseExpression(context.Background(), strings.NewReader("CASE x WHEN 1 THEN 2 ELSE 3"))
	require.NoError(t, err)
	require.Equal(t, ast.CaseGeneral, c.Form)
	require.Equal(t, "x", sexpr(c.Operand))
	require.Equal(t, "3", sexpr(c.Else))
	require.False(t, c.HasEnd)
}

func TestCaseNested(t *testing.T) {
	expr := parse(t, "CASE WHEN a THEN CASE WHEN b THEN 1 END END + 1")
	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok, "got %T", expr)
	outer, ok := bin.Left.(*ast.CaseExpr)
	require.True(t, ok, "got %T", bin.Left)
	inner, ok := outer.Whens[0].Result.(*ast.CaseExpr)
	require.True(t, ok, "got %T", outer.Whens[0].Result)
	require.True(t, inner.HasEnd)
	require.True(t, outer.HasEnd)
}

func TestCaseInArguments(t *testing.T) {
	expr := parse(t, "f(CASE WHEN a THEN 1 ELSE 0 END, 2)")
	call, ok := expr.(*ast.FunctionCall)
	require.True(t, ok, "got %T", expr)
	require.Len(t, call.Args, 2)
	_, ok = call.Args[0].(*ast.CaseExpr)
	require.True(t, ok, "got %T", call.Args[0])
}

func TestCaseErrors(t *testing.T) {
	tests := []struct {
		sql      string
		kind     parser.ErrorKind
		expected []string
	}{
		{"CASE END", parser.MissingBranch, nil},
		{"CASE x END", parser.MissingBranch, nil},
		{"CASE ELSE 1 END", parser.MissingBranch, nil},
		{"CASE", parser.MissingBranch, nil},
		{"CASE x THEN 1 END", parser.UnexpectedToken, []string{"WHEN"}},
		{"CASE WHEN a 1 END", parser.UnexpectedToken, []string{"THEN"}},
		{"f(CASE END)", parser.MissingBranch, nil},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			se := parseError(t, tt.sql)
			require.Equal(t, tt.kind, se.Kind, se.Error())
			if tt.expected != nil {
				require.Equal(t, tt.expected, se.Expected)
			}
		})
	}
}

func TestCaseMissingBranchPosition(t *testing.T) {
	se := parseError(t, "1 + CASE x END")
	require.Equal(t, parser.MissingBranch, se.Kind)
	require.Equal(t, 12, se.Pos.Column)
	require.Equal(t, `line 1, column 12: CASE expression requires at least one WHEN branch, got "END"`, se.Error())
}

func TestCaseNestedFallback(t *testing.T) {
	const levels = 25
	sql := "x"
	for i := 0; i < levels; i++ {
		sql = "CASE WHEN a THEN " + sql + " + 0 END"
	}

	core, logs := observer.New(zapcore.DebugLevel)
	start := time.Now()
	c := parseCase(t, sql, parser.WithLogger(zap.New(core)))
	require.Less(t, time.Since(start), 2*time.Second)
	require.Equal(t, levels, logs.FilterMessage("CASE expression retried in general form").Len())

	for i := 0; i < levels; i++ {
		require.Equal(t, ast.CaseGeneral, c.Form)
		require.True(t, c.HasEnd)
		sum, ok := c.Whens[0].Result.(*ast.BinaryExpr)
		require.True(t, ok, "got %T", c.Whens[0].Result)
		if i == levels-1 {
			require.Equal(t, "x", sexpr(sum.Left))
			break
		}
		c, ok = sum.Left.(*ast.CaseExpr)
		require.True(t, ok, "got %T", sum.Left)
	}

	se := parseError(t, sql, parser.WithMaxDepth(40))
	require.Equal(t, parser.NestingTooDeep, se.Kind)
}
