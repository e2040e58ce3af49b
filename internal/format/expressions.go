package format

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/oraexpr/ast"
)

// Expression formats an expression.
func Expression(sb *strings.Builder, expr ast.Expr) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	// Logical tier
	case *ast.LogicalExpr:
		Expression(sb, e.Left)
		sb.WriteString(" ")
		sb.WriteString(e.Op)
		sb.WriteString(" ")
		Expression(sb, e.Right)
	case *ast.NotExpr:
		sb.WriteString("NOT ")
		Expression(sb, e.Expr)
	case *ast.ParenExpr:
		sb.WriteString("(")
		Expression(sb, e.Expr)
		sb.WriteString(")")
	case *ast.DatetimeExpr:
		Expression(sb, e.Expr)
		if e.Local {
			sb.WriteString(" AT LOCAL")
		} else {
			sb.WriteString(" AT TIME ZONE ")
			Expression(sb, e.Zone)
		}

	// Boolean primaries
	case *ast.IsExpr:
		Expression(sb, e.Expr)
		sb.WriteString(" IS ")
		if e.Not {
			sb.WriteString("NOT ")
		}
		sb.WriteString(e.Value)
	case *ast.SafeEqExpr:
		formatInfix(sb, e.Left, "<=>", e.Right)
	case *ast.CompareExpr:
		formatInfix(sb, e.Left, e.Op, e.Right)
	case *ast.QuantifiedCompareExpr:
		Expression(sb, e.Left)
		fmt.Fprintf(sb, " %s %s ", e.Op, e.Quantifier)
		formatSubquery(sb, e.Query)

	// Predicates
	case *ast.InExpr:
		formatInExpr(sb, e)
	case *ast.BetweenExpr:
		Expression(sb, e.Expr)
		writeNot(sb, e.Not)
		sb.WriteString(" BETWEEN ")
		Expression(sb, e.Low)
		sb.WriteString(" AND ")
		Expression(sb, e.High)
	case *ast.LikeExpr:
		Expression(sb, e.Expr)
		writeNot(sb, e.Not)
		sb.WriteString(" LIKE ")
		Expression(sb, e.Pattern)
		if e.Escape != nil {
			sb.WriteString(" ESCAPE ")
			Expression(sb, e.Escape)
		}
	case *ast.PriorExpr:
		sb.WriteString("PRIOR ")
		Expression(sb, e.Expr)

	// Bit expressions
	case *ast.BinaryExpr:
		formatInfix(sb, e.Left, e.Op, e.Right)

	// Simple expressions
	case *ast.Literal:
		formatLiteral(sb, e)
	case *ast.ParameterMarker:
		sb.WriteString(e.Name)
	case *ast.ColumnRef:
		sb.WriteString(e.Column.String())
	case *ast.UnaryExpr:
		formatUnaryExpr(sb, e)
	case *ast.RowExpr:
		if e.Row {
			sb.WriteString("ROW")
		}
		sb.WriteString("(")
		formatExprList(sb, e.Items)
		sb.WriteString(")")
	case *ast.SubqueryExpr:
		if e.Exists {
			sb.WriteString("EXISTS ")
		}
		formatSubquery(sb, e.Query)
	case *ast.EscapedExpr:
		sb.WriteString("{")
		sb.WriteString(e.Ident.String())
		sb.WriteString(" ")
		Expression(sb, e.Expr)
		sb.WriteString("}")
	case *ast.ConcatExpr:
		formatInfix(sb, e.Left, "||", e.Right)

	// Functions
	case *ast.FunctionCall:
		formatFunctionCall(sb, e)
	case *ast.CastExpr:
		sb.WriteString("CAST(")
		Expression(sb, e.Expr)
		sb.WriteString(" AS ")
		DataType(sb, e.Type)
		sb.WriteString(")")
	case *ast.CharFunc:
		sb.WriteString("CHAR(")
		formatExprList(sb, e.Args)
		if e.Using != nil {
			sb.WriteString(" USING ")
			sb.WriteString(e.Using.String())
		}
		sb.WriteString(")")
	case *ast.CaseExpr:
		formatCaseExpr(sb, e)

	// Dialect extensions
	case *ast.TreatExpr:
		sb.WriteString("TREAT(")
		Expression(sb, e.Expr)
		sb.WriteString(" AS ")
		if e.Ref {
			sb.WriteString("REF ")
		}
		DataType(sb, e.Type)
		sb.WriteString(")")
	case *ast.IntervalExpr:
		sb.WriteString("(")
		formatInfix(sb, e.Left, "-", e.Right)
		sb.WriteString(")")
		formatIntervalUnit(sb, e)
	case *ast.ObjectAccessExpr:
		formatObjectAccess(sb, e)
	case *ast.ConstructorExpr:
		sb.WriteString("NEW ")
		DataType(sb, e.Type)
		sb.WriteString("(")
		formatExprList(sb, e.Args)
		sb.WriteString(")")

	default:
		fmt.Fprintf(sb, "%v", expr)
	}
}

func formatInfix(sb *strings.Builder, left ast.Expr, op string, right ast.Expr) {
	Expression(sb, left)
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" ")
	Expression(sb, right)
}

func writeNot(sb *strings.Builder, not bool) {
	if not {
		sb.WriteString(" NOT")
	}
}

func formatExprList(sb *strings.Builder, exprs []ast.Expr) {
	for i, e := range exprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, e)
	}
}

func formatSubquery(sb *strings.Builder, q *ast.Subquery) {
	sb.WriteString("(")
	if q != nil {
		sb.WriteString(q.Text)
	}
	sb.WriteString(")")
}

func formatInExpr(sb *strings.Builder, e *ast.InExpr) {
	Expression(sb, e.Expr)
	writeNot(sb, e.Not)
	sb.WriteString(" IN ")
	if e.Query != nil {
		formatSubquery(sb, e.Query)
		return
	}
	sb.WriteString("(")
	formatExprList(sb, e.List)
	sb.WriteString(")")
	if e.And != nil {
		sb.WriteString(" AND ")
		Expression(sb, e.And)
	}
}

// formatLiteral formats a literal value.
func formatLiteral(sb *strings.Builder, lit *ast.Literal) {
	switch lit.Kind {
	case ast.LiteralString:
		if lit.National {
			sb.WriteString("N")
		}
		writeQuoted(sb, lit.Value)
	case ast.LiteralDateTime:
		if lit.EscapeIdent != "" {
			sb.WriteString("{")
			sb.WriteString(lit.EscapeIdent)
			sb.WriteString(" ")
			writeQuoted(sb, lit.Value)
			sb.WriteString("}")
			return
		}
		sb.WriteString(lit.TypeKeyword)
		sb.WriteString(" ")
		writeQuoted(sb, lit.Value)
	default:
		sb.WriteString(lit.Value)
	}
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteString("'")
	sb.WriteString(strings.ReplaceAll(s, "'", "''"))
	sb.WriteString("'")
}

// formatUnaryExpr formats a prefix operator. A space separates sign
// operators from an operand that itself starts with a sign, so that - -1
// does not read back as a comment.
func formatUnaryExpr(sb *strings.Builder, e *ast.UnaryExpr) {
	operand := Format(e.Operand)
	sb.WriteString(e.Op)
	switch {
	case e.Op == "BINARY":
		sb.WriteString(" ")
	case (e.Op == "-" || e.Op == "+") && (strings.HasPrefix(operand, "-") || strings.HasPrefix(operand, "+")):
		sb.WriteString(" ")
	}
	sb.WriteString(operand)
}

func formatFunctionCall(sb *strings.Builder, fn *ast.FunctionCall) {
	sb.WriteString(fn.Name.String())
	sb.WriteString("(")
	if fn.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if fn.Star {
		sb.WriteString("*")
	} else {
		formatExprList(sb, fn.Args)
	}
	sb.WriteString(")")
}

func formatCaseExpr(sb *strings.Builder, e *ast.CaseExpr) {
	sb.WriteString("CASE")
	if e.Operand != nil {
		sb.WriteString(" ")
		Expression(sb, e.Operand)
	}
	for _, w := range e.Whens {
		sb.WriteString(" ")
		formatWhenClause(sb, w)
	}
	if e.Else != nil {
		sb.WriteString(" ELSE ")
		Expression(sb, e.Else)
	}
	if e.HasEnd {
		sb.WriteString(" END")
	}
}

func formatWhenClause(sb *strings.Builder, w *ast.WhenClause) {
	sb.WriteString("WHEN ")
	Expression(sb, w.Condition)
	sb.WriteString(" THEN ")
	Expression(sb, w.Result)
}

func formatIntervalUnit(sb *strings.Builder, e *ast.IntervalExpr) {
	if e.Unit == ast.YearToMonth {
		sb.WriteString(" YEAR")
		formatPrecision(sb, e.LeadingPrecision)
		sb.WriteString(" TO MONTH")
		return
	}
	sb.WriteString(" DAY")
	formatPrecision(sb, e.LeadingPrecision)
	sb.WriteString(" TO SECOND")
	formatPrecision(sb, e.FractionPrecision)
}

// formatObjectAccess writes the base in parentheses unless it is a TREAT
// expression, which can take attributes directly.
func formatObjectAccess(sb *strings.Builder, e *ast.ObjectAccessExpr) {
	if _, ok := e.Base.(*ast.TreatExpr); ok {
		Expression(sb, e.Base)
	} else {
		sb.WriteString("(")
		Expression(sb, e.Base)
		sb.WriteString(")")
	}
	for _, attr := range e.Attributes {
		sb.WriteString(".")
		sb.WriteString(attr.String())
	}
	if e.Call != nil {
		sb.WriteString(".")
		formatFunctionCall(sb, e.Call)
	}
}
