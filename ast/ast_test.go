package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Expr           = (*LogicalExpr)(nil)
	_ Expr           = (*DatetimeExpr)(nil)
	_ BooleanPrimary = (*CompareExpr)(nil)
	_ BooleanPrimary = (*QuantifiedCompareExpr)(nil)
	_ Predicate      = (*InExpr)(nil)
	_ Predicate      = (*PriorExpr)(nil)
	_ BitExpr        = (*BinaryExpr)(nil)
	_ SimpleExpr     = (*Literal)(nil)
	_ SimpleExpr     = (*ObjectAccessExpr)(nil)
	_ Function       = (*FunctionCall)(nil)
	_ Function       = (*CastExpr)(nil)
	_ Function       = (*CharFunc)(nil)
)

func TestIdentifierNormalized(t *testing.T) {
	tests := []struct {
		ident    Identifier
		expected string
		source   string
	}{
		{Identifier{Name: "emp_id"}, "EMP_ID", "emp_id"},
		{Identifier{Name: "Mixed", Quoted: true}, "Mixed", `"Mixed"`},
		{Identifier{Name: `say "hi"`, Quoted: true}, `say "hi"`, `"say ""hi"""`},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ident.Normalized())
			assert.Equal(t, tt.source, tt.ident.String())
		})
	}
}

func TestQualifiedNameString(t *testing.T) {
	name := &QualifiedName{
		Owner: &Identifier{Name: "hr"},
		Name:  &Identifier{Name: "Emp", Quoted: true},
	}
	assert.Equal(t, `hr."Emp"`, name.String())
}

func TestInExprKind(t *testing.T) {
	x := &ColumnRef{Column: &QualifiedName{Name: &Identifier{Name: "x"}}}
	one := &Literal{Kind: LiteralNumber, Value: "1"}

	assert.Equal(t, InSubquery, (&InExpr{Expr: x, Query: &Subquery{Text: "SELECT 1"}}).Kind())
	assert.Equal(t, InList, (&InExpr{Expr: x, List: []Expr{one}}).Kind())
	assert.Equal(t, InListAnd, (&InExpr{Expr: x, List: []Expr{one}, And: x}).Kind())
}

func TestLiteralValues(t *testing.T) {
	n := &Literal{Kind: LiteralNumber, Value: "-42"}
	i, err := n.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i)

	f, err := (&Literal{Kind: LiteralNumber, Value: "1.5e2"}).Float()
	require.NoError(t, err)
	assert.Equal(t, 150.0, f)

	assert.True(t, (&Literal{Kind: LiteralBoolean, Value: "TRUE"}).Bool())
	assert.False(t, (&Literal{Kind: LiteralString, Value: "TRUE"}).Bool())
}

func TestMarshalJSON(t *testing.T) {
	expr := &CompareExpr{
		Left:  &ColumnRef{Column: &QualifiedName{Name: &Identifier{Name: "a"}}},
		Op:    "=",
		Right: &Literal{Kind: LiteralNumber, Value: "1"},
	}

	data, err := json.Marshal(expr)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "CompareExpr",
		"left": {"type": "ColumnRef", "column": {
			"type": "QualifiedName",
			"name": {"type": "Identifier", "name": "a", "normalized": "A"}
		}},
		"op": "=",
		"right": {"type": "Literal", "kind": "Number", "value": "1"}
	}`, string(data))
}

func TestMarshalJSONNodeType(t *testing.T) {
	one := &Literal{Kind: LiteralNumber, Value: "1"}
	tests := []struct {
		node     Node
		expected string
	}{
		{&NotExpr{Expr: one}, `{"type": "NotExpr", "expr": {"type": "Literal", "kind": "Number", "value": "1"}}`},
		{&ParenExpr{Expr: one}, `{"type": "ParenExpr", "expr": {"type": "Literal", "kind": "Number", "value": "1"}}`},
		{
			&InExpr{Expr: one, List: []Expr{one}},
			`{"type": "InExpr", "kind": "InList", "expr": {"type": "Literal", "kind": "Number", "value": "1"},
			  "list": [{"type": "Literal", "kind": "Number", "value": "1"}]}`,
		},
		{
			&CastExpr{Expr: one, Type: &DataType{Name: "NUMBER"}},
			`{"type": "CastExpr", "expr": {"type": "Literal", "kind": "Number", "value": "1"},
			  "data_type": {"type": "DataType", "name": "NUMBER"}}`,
		},
		{&Identifier{Name: "Emp", Quoted: true}, `{"type": "Identifier", "name": "Emp", "quoted": true, "normalized": "Emp"}`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.node)
		require.NoError(t, err)
		assert.JSONEq(t, tt.expected, string(data))
	}
}
