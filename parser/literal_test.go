package parser_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/parser"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		sql  string
		want ast.Literal
	}{
		{"'it''s'", ast.Literal{Kind: ast.LiteralString, Value: "it's"}},
		{"N'abc'", ast.Literal{Kind: ast.LiteralString, Value: "abc", National: true}},
		{"42", ast.Literal{Kind: ast.LiteralNumber, Value: "42"}},
		{"-12.5", ast.Literal{Kind: ast.LiteralNumber, Value: "-12.5"}},
		{"- 3", ast.Literal{Kind: ast.LiteralNumber, Value: "-3"}},
		{"1.5e-3", ast.Literal{Kind: ast.LiteralNumber, Value: "1.5e-3"}},
		{"x'1f'", ast.Literal{Kind: ast.LiteralHex, Value: "X'1f'"}},
		{"0x1F", ast.Literal{Kind: ast.LiteralHex, Value: "0x1F"}},
		{"B'0101'", ast.Literal{Kind: ast.LiteralBit, Value: "B'0101'"}},
		{"true", ast.Literal{Kind: ast.LiteralBoolean, Value: "TRUE"}},
		{"FALSE", ast.Literal{Kind: ast.LiteralBoolean, Value: "FALSE"}},
		{"null", ast.Literal{Kind: ast.LiteralNull, Value: "NULL"}},
		{"DATE '2020-01-01'", ast.Literal{Kind: ast.LiteralDateTime, Value: "2020-01-01", TypeKeyword: "DATE"}},
		{"timestamp '2020-01-01 10:00:00'", ast.Literal{Kind: ast.LiteralDateTime, Value: "2020-01-01 10:00:00", TypeKeyword: "TIMESTAMP"}},
		{"{d '2020-01-01'}", ast.Literal{Kind: ast.LiteralDateTime, Value: "2020-01-01", EscapeIdent: "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			lit, err := parser.ParseLiteral(context.Background(), strings.NewReader(tt.sql))
			require.NoError(t, err)
			lit.Position = tt.want.Position
			require.Equal(t, &tt.want, lit)
		})
	}
}

func TestLiteralAccessors(t *testing.T) {
	lit := parse(t, "-42").(*ast.Literal)
	n, err := lit.Int()
	require.NoError(t, err)
	require.Equal(t, int64(-42), n)

	lit = parse(t, "2.5").(*ast.Literal)
	f, err := lit.Float()
	require.NoError(t, err)
	require.InDelta(t, 2.5, f, 1e-9)

	require.True(t, parse(t, "TRUE").(*ast.Literal).Bool())
	require.False(t, parse(t, "FALSE").(*ast.Literal).Bool())
}

func TestLiteralErrors(t *testing.T) {
	for _, sql := range []string{"abc", "+1", "DATE", "{d x}", "'unterminated"} {
		t.Run(sql, func(t *testing.T) {
			_, err := parser.ParseLiteral(context.Background(), strings.NewReader(sql))
			require.Error(t, err)
			se, ok := parser.AsSyntaxError(err)
			require.True(t, ok, "not a syntax error: %v", err)
			require.Equal(t, parser.NoViableAlternative, se.Kind, se.Error())
		})
	}
}

func TestQualifiedName(t *testing.T) {
	tests := []struct {
		sql   string
		owner string
		name  string
		text  string
	}{
		{sql: "emp", name: "emp", text: "emp"},
		{sql: "hr.emp", owner: "hr", name: "emp", text: "hr.emp"},
		{sql: `"Hr"."Emp Name"`, owner: "Hr", name: "Emp Name", text: `"Hr"."Emp Name"`},
		{sql: "year", name: "year", text: "year"},
		{sql: "hr . emp", owner: "hr", name: "emp", text: "hr.emp"},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			name, err := parser.ParseQualifiedName(context.Background(), strings.NewReader(tt.sql))
			require.NoError(t, err)
			require.Equal(t, tt.name, name.Name.Name)
			if tt.owner == "" {
				require.Nil(t, name.Owner)
			} else {
				require.Equal(t, tt.owner, name.Owner.Name)
			}
			require.Equal(t, tt.text, name.String())
		})
	}
}

func TestQualifiedNameErrors(t *testing.T) {
	for _, sql := range []string{"a.b.c", "select", "hr.", "1"} {
		t.Run(sql, func(t *testing.T) {
			_, err := parser.ParseQualifiedName(context.Background(), strings.NewReader(sql))
			require.Error(t, err)
			se, ok := parser.AsSyntaxError(err)
			require.True(t, ok, "not a syntax error: %v", err)
			require.Equal(t, parser.UnexpectedToken, se.Kind, se.Error())
		})
	}

	// A column reference can not carry a second dot either.
	se := parseError(t, "a.b.c")
	require.Equal(t, parser.UnexpectedToken, se.Kind)
	require.Equal(t, 4, se.Pos.Column)
	require.Equal(t, `"."`, se.Found)
}
