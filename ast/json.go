package ast

import "encoding/json"

// Every node encodes to a JSON object whose "type" field names the node, so
// that nodes with the same fields, such as NotExpr and ParenExpr, can be
// told apart.

// MarshalJSON adds the normalized spelling of the name.
func (i *Identifier) MarshalJSON() ([]byte, error) {
	type identifierAlias Identifier
	return json.Marshal(&struct {
		Type string `json:"type"`
		*identifierAlias
		Normalized string `json:"normalized"`
	}{"Identifier", (*identifierAlias)(i), i.Normalized()})
}

// MarshalJSON adds the kind of IN test.
func (i *InExpr) MarshalJSON() ([]byte, error) {
	type inExprAlias InExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		Kind InKind `json:"kind"`
		*inExprAlias
	}{"InExpr", i.Kind(), (*inExprAlias)(i)})
}

func (n *QualifiedName) MarshalJSON() ([]byte, error) {
	type qualifiedNameAlias QualifiedName
	return json.Marshal(&struct {
		Type string `json:"type"`
		*qualifiedNameAlias
	}{"QualifiedName", (*qualifiedNameAlias)(n)})
}

func (n *NotExpr) MarshalJSON() ([]byte, error) {
	type notExprAlias NotExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*notExprAlias
	}{"NotExpr", (*notExprAlias)(n)})
}

func (n *ParenExpr) MarshalJSON() ([]byte, error) {
	type parenExprAlias ParenExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*parenExprAlias
	}{"ParenExpr", (*parenExprAlias)(n)})
}

func (n *LogicalExpr) MarshalJSON() ([]byte, error) {
	type logicalExprAlias LogicalExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*logicalExprAlias
	}{"LogicalExpr", (*logicalExprAlias)(n)})
}

func (n *DatetimeExpr) MarshalJSON() ([]byte, error) {
	type datetimeExprAlias DatetimeExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*datetimeExprAlias
	}{"DatetimeExpr", (*datetimeExprAlias)(n)})
}

func (n *IsExpr) MarshalJSON() ([]byte, error) {
	type isExprAlias IsExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*isExprAlias
	}{"IsExpr", (*isExprAlias)(n)})
}

func (n *SafeEqExpr) MarshalJSON() ([]byte, error) {
	type safeEqExprAlias SafeEqExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*safeEqExprAlias
	}{"SafeEqExpr", (*safeEqExprAlias)(n)})
}

func (n *CompareExpr) MarshalJSON() ([]byte, error) {
	type compareExprAlias CompareExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*compareExprAlias
	}{"CompareExpr", (*compareExprAlias)(n)})
}

func (n *QuantifiedCompareExpr) MarshalJSON() ([]byte, error) {
	type quantifiedCompareExprAlias QuantifiedCompareExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*quantifiedCompareExprAlias
	}{"QuantifiedCompareExpr", (*quantifiedCompareExprAlias)(n)})
}

func (n *BetweenExpr) MarshalJSON() ([]byte, error) {
	type betweenExprAlias BetweenExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*betweenExprAlias
	}{"BetweenExpr", (*betweenExprAlias)(n)})
}

func (n *LikeExpr) MarshalJSON() ([]byte, error) {
	type likeExprAlias LikeExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*likeExprAlias
	}{"LikeExpr", (*likeExprAlias)(n)})
}

func (n *PriorExpr) MarshalJSON() ([]byte, error) {
	type priorExprAlias PriorExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*priorExprAlias
	}{"PriorExpr", (*priorExprAlias)(n)})
}

func (n *BinaryExpr) MarshalJSON() ([]byte, error) {
	type binaryExprAlias BinaryExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*binaryExprAlias
	}{"BinaryExpr", (*binaryExprAlias)(n)})
}

func (n *Literal) MarshalJSON() ([]byte, error) {
	type literalAlias Literal
	return json.Marshal(&struct {
		Type string `json:"type"`
		*literalAlias
	}{"Literal", (*literalAlias)(n)})
}

func (n *ParameterMarker) MarshalJSON() ([]byte, error) {
	type parameterMarkerAlias ParameterMarker
	return json.Marshal(&struct {
		Type string `json:"type"`
		*parameterMarkerAlias
	}{"ParameterMarker", (*parameterMarkerAlias)(n)})
}

func (n *ColumnRef) MarshalJSON() ([]byte, error) {
	type columnRefAlias ColumnRef
	return json.Marshal(&struct {
		Type string `json:"type"`
		*columnRefAlias
	}{"ColumnRef", (*columnRefAlias)(n)})
}

func (n *UnaryExpr) MarshalJSON() ([]byte, error) {
	type unaryExprAlias UnaryExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*unaryExprAlias
	}{"UnaryExpr", (*unaryExprAlias)(n)})
}

func (n *RowExpr) MarshalJSON() ([]byte, error) {
	type rowExprAlias RowExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*rowExprAlias
	}{"RowExpr", (*rowExprAlias)(n)})
}

func (n *Subquery) MarshalJSON() ([]byte, error) {
	type subqueryAlias Subquery
	return json.Marshal(&struct {
		Type string `json:"type"`
		*subqueryAlias
	}{"Subquery", (*subqueryAlias)(n)})
}

func (n *SubqueryExpr) MarshalJSON() ([]byte, error) {
	type subqueryExprAlias SubqueryExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*subqueryExprAlias
	}{"SubqueryExpr", (*subqueryExprAlias)(n)})
}

func (n *EscapedExpr) MarshalJSON() ([]byte, error) {
	type escapedExprAlias EscapedExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*escapedExprAlias
	}{"EscapedExpr", (*escapedExprAlias)(n)})
}

func (n *ConcatExpr) MarshalJSON() ([]byte, error) {
	type concatExprAlias ConcatExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*concatExprAlias
	}{"ConcatExpr", (*concatExprAlias)(n)})
}

func (n *FunctionCall) MarshalJSON() ([]byte, error) {
	type functionCallAlias FunctionCall
	return json.Marshal(&struct {
		Type string `json:"type"`
		*functionCallAlias
	}{"FunctionCall", (*functionCallAlias)(n)})
}

func (n *CastExpr) MarshalJSON() ([]byte, error) {
	type castExprAlias CastExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*castExprAlias
	}{"CastExpr", (*castExprAlias)(n)})
}

func (n *CharFunc) MarshalJSON() ([]byte, error) {
	type charFuncAlias CharFunc
	return json.Marshal(&struct {
		Type string `json:"type"`
		*charFuncAlias
	}{"CharFunc", (*charFuncAlias)(n)})
}

func (n *CaseExpr) MarshalJSON() ([]byte, error) {
	type caseExprAlias CaseExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*caseExprAlias
	}{"CaseExpr", (*caseExprAlias)(n)})
}

func (n *WhenClause) MarshalJSON() ([]byte, error) {
	type whenClauseAlias WhenClause
	return json.Marshal(&struct {
		Type string `json:"type"`
		*whenClauseAlias
	}{"WhenClause", (*whenClauseAlias)(n)})
}

func (n *TreatExpr) MarshalJSON() ([]byte, error) {
	type treatExprAlias TreatExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*treatExprAlias
	}{"TreatExpr", (*treatExprAlias)(n)})
}

func (n *IntervalExpr) MarshalJSON() ([]byte, error) {
	type intervalExprAlias IntervalExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*intervalExprAlias
	}{"IntervalExpr", (*intervalExprAlias)(n)})
}

func (n *ObjectAccessExpr) MarshalJSON() ([]byte, error) {
	type objectAccessExprAlias ObjectAccessExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*objectAccessExprAlias
	}{"ObjectAccessExpr", (*objectAccessExprAlias)(n)})
}

func (n *ConstructorExpr) MarshalJSON() ([]byte, error) {
	type constructorExprAlias ConstructorExpr
	return json.Marshal(&struct {
		Type string `json:"type"`
		*constructorExprAlias
	}{"ConstructorExpr", (*constructorExprAlias)(n)})
}

func (n *DataType) MarshalJSON() ([]byte, error) {
	type dataTypeAlias DataType
	return json.Marshal(&struct {
		Type string `json:"type"`
		*dataTypeAlias
	}{"DataType", (*dataTypeAlias)(n)})
}
