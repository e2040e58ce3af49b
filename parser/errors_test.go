package parser_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/oraexpr/parser"
	"github.com/sqlc-dev/oraexpr/token"
)

func TestSyntaxErrorMessages(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"a +", "line 1, column 4: no viable alternative at end of input (tried literal, bind variable, column, function call, CASE, subquery, row)"},
		{"f(1", "line 1, column 4: expected ), got end of input"},
		{"a b", `line 1, column 3: expected EOF, got "b"`},
		{"a =\n  )", `line 2, column 3: no viable alternative at ")" (tried literal, bind variable, column, function call, CASE, subquery, row)`},
		{"CASE END", `line 1, column 6: CASE expression requires at least one WHEN branch, got "END"`},
		{"a.b.c", `line 1, column 4: unexpected "."`},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			se := parseError(t, tt.sql)
			require.Equal(t, tt.want, se.Error())
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	se := parseError(t, "a = 1 AND\n\tb IN (1,")
	require.Equal(t, parser.NoViableAlternative, se.Kind)
	require.Equal(t, token.Position{Offset: 19, Line: 2, Column: 10}, se.Pos)
}

func TestSyntaxErrorCode(t *testing.T) {
	tests := []struct {
		sql   string
		class *errors.Error
	}{
		{"f(1", parser.ErrUnexpectedToken},
		{"a +", parser.ErrNoViableAlternative},
		{"CASE END", parser.ErrMissingBranch},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			se := parseError(t, tt.sql)
			require.Equal(t, tt.class.RFCCode(), se.Code())
			require.Equal(t, tt.class, se.Kind.Class())
		})
	}
}

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "UnexpectedToken", parser.UnexpectedToken.String())
	require.Equal(t, "NestingTooDeep", parser.NestingTooDeep.String())
	require.Equal(t, "ErrorKind(42)", parser.ErrorKind(42).String())
}

func TestAsSyntaxError(t *testing.T) {
	_, ok := parser.AsSyntaxError(nil)
	require.False(t, ok)
	_, ok = parser.AsSyntaxError(errors.New("boom"))
	require.False(t, ok)

	_, err := parser.ParseString(context.Background(), "1 +")
	se, ok := parser.AsSyntaxError(errors.Annotate(err, "outer"))
	require.True(t, ok)
	require.Equal(t, parser.NoViableAlternative, se.Kind)
}

func TestNestingTooDeep(t *testing.T) {
	deep := strings.Repeat("(", 5000) + "1" + strings.Repeat(")", 5000)
	se := parseError(t, deep)
	require.Equal(t, parser.NestingTooDeep, se.Kind)
	require.Equal(t, parser.DefaultMaxDepth, se.Limit)

	se = parseError(t, "((((1))))", parser.WithMaxDepth(4))
	require.Equal(t, parser.NestingTooDeep, se.Kind)
	require.Equal(t, "line 1, column 3: expression nesting exceeds 4 levels", se.Error())

	parse(t, strings.Repeat("(", 100)+"1"+strings.Repeat(")", 100), parser.WithMaxDepth(0))
}

func TestNestingTooDeepIsNotRecovered(t *testing.T) {
	deep := strings.Repeat("(", 30) + "1" + strings.Repeat(")", 30)
	se := parseError(t, "CASE WHEN a THEN "+deep+" END", parser.WithMaxDepth(40))
	require.Equal(t, parser.NestingTooDeep, se.Kind)

	se = parseError(t, "x IN (1) AND "+deep, parser.WithMaxDepth(40))
	require.Equal(t, parser.NestingTooDeep, se.Kind)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := parser.ParseString(ctx, "1")
	require.Equal(t, context.Canceled, errors.Cause(err))
}
