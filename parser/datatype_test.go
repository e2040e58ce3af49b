package parser_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/parser"
)

func parseDataType(t *testing.T, sql string) *ast.DataType {
	t.Helper()
	dt, err := parser.ParseDataType(context.Background(), strings.NewReader(sql))
	require.NoError(t, err, sql)
	return dt
}

func TestDataTypeFormat(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"NUMBER", "NUMBER"},
		{"number(10, 2)", "NUMBER(10,2)"},
		{"NUMBER(*)", "NUMBER(*)"},
		{"NUMBER(*,-2)", "NUMBER(*,-2)"},
		{"NUMBER(5,-2)", "NUMBER(5,-2)"},
		{"VARCHAR2(20 CHAR)", "VARCHAR2(20 CHAR)"},
		{"varchar2(20 byte)", "VARCHAR2(20 BYTE)"},
		{"CHAR VARYING(10)", "CHAR VARYING(10)"},
		{"NATIONAL CHARACTER VARYING(10)", "NATIONAL CHARACTER VARYING(10)"},
		{"national char(5)", "NATIONAL CHAR(5)"},
		{"TIMESTAMP", "TIMESTAMP"},
		{"TIMESTAMP(6) WITH TIME ZONE", "TIMESTAMP(6) WITH TIME ZONE"},
		{"timestamp with local time zone", "TIMESTAMP WITH LOCAL TIME ZONE"},
		{"INTERVAL DAY(2) TO SECOND(6)", "INTERVAL DAY(2) TO SECOND(6)"},
		{"INTERVAL DAY TO SECOND", "INTERVAL DAY TO SECOND"},
		{"INTERVAL YEAR(4) TO MONTH", "INTERVAL YEAR(4) TO MONTH"},
		{"LONG", "LONG"},
		{"long raw", "LONG RAW"},
		{"RAW(16)", "RAW(16)"},
		{"DOUBLE PRECISION", "DOUBLE PRECISION"},
		{"binary_float", "BINARY_FLOAT"},
		{"clob", "CLOB"},
		{"nvarchar2(30)", "NVARCHAR2(30)"},
		{"hr.address_t", "hr.address_t"},
		{"address_t", "address_t"},
		{"VARCHAR2(emp.name)", "VARCHAR2(emp.name)"},
		{"VARCHAR2(name", "VARCHAR2(name"},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			require.Equal(t, tt.want, parser.Format(parseDataType(t, tt.sql)))
		})
	}
}

func TestDataTypeFields(t *testing.T) {
	dt := parseDataType(t, "TIMESTAMP WITH LOCAL TIME ZONE")
	require.Equal(t, "TIMESTAMP", dt.Name)
	require.Nil(t, dt.Length)
	require.Equal(t, &ast.DatetimeSuffix{Kind: ast.WithTimeZone, Local: true}, dt.Suffix)

	dt = parseDataType(t, "NUMBER(*,2)")
	require.Equal(t, &ast.DataTypeLength{Any: true, Scale: intPtr(2)}, dt.Length)

	dt = parseDataType(t, "NATIONAL CHARACTER VARYING(10)")
	require.True(t, dt.National)
	require.True(t, dt.Varying)
	require.Equal(t, "CHARACTER", dt.Name)
	require.Equal(t, intPtr(10), dt.Length.Precision)

	dt = parseDataType(t, "INTERVAL DAY(2) TO SECOND(6)")
	require.Equal(t, "INTERVAL DAY", dt.Name)
	require.Equal(t, intPtr(2), dt.Length.Precision)
	require.Equal(t, &ast.DatetimeSuffix{Kind: ast.ToSecond, Precision: intPtr(6)}, dt.Suffix)

	dt = parseDataType(t, "hr.address_t")
	require.Equal(t, "hr", dt.Owner.Name)
	require.Equal(t, "address_t", dt.Name)

	dt = parseDataType(t, "VARCHAR2(emp.name)")
	require.Nil(t, dt.Length)
	require.Equal(t, "emp.name", dt.CopyColumn.String())
	require.True(t, dt.CopyClosed)

	dt = parseDataType(t, "VARCHAR2(name")
	require.False(t, dt.CopyClosed)
}

func TestDataTypeErrors(t *testing.T) {
	tests := []struct {
		sql      string
		kind     parser.ErrorKind
		expected []string
	}{
		{"VARCHAR2(*)", parser.NoViableAlternative, nil},
		{"NUMBER(1.5)", parser.UnexpectedToken, []string{"integer"}},
		{"NUMBER(10", parser.UnexpectedToken, []string{")"}},
		{"INTERVAL DAY", parser.UnexpectedToken, []string{"TO"}},
		{"INTERVAL YEAR TO SECOND", parser.UnexpectedToken, []string{"MONTH"}},
		{"INTERVAL HOUR TO MINUTE", parser.UnexpectedToken, []string{"DAY", "YEAR"}},
		{"NATIONAL VARCHAR2(5)", parser.UnexpectedToken, []string{"CHAR", "CHARACTER"}},
		{"NATIONAL CHAR", parser.UnexpectedToken, []string{"("}},
		{"DOUBLE", parser.UnexpectedToken, []string{"PRECISION"}},
		{"TIMESTAMP WITH ZONE", parser.UnexpectedToken, []string{"TIME"}},
		{"(10)", parser.NoViableAlternative, nil},
		{"a.b.c", parser.UnexpectedToken, nil},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			_, err := parser.ParseDataType(context.Background(), strings.NewReader(tt.sql))
			require.Error(t, err)
			se, ok := parser.AsSyntaxError(err)
			require.True(t, ok, "not a syntax error: %v", err)
			require.Equal(t, tt.kind, se.Kind, se.Error())
			if tt.expected != nil {
				require.Equal(t, tt.expected, se.Expected)
			}
		})
	}
}
