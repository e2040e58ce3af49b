// Package explain renders Oracle SQL expression ASTs as indented trees.
package explain

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/internal/format"
)

// Explain returns the tree dump of a node. Each line names a node and its
// operator, followed by the number of children when it has any. Children
// are indented one space deeper than their parent.
func Explain(node ast.Node) string {
	var sb strings.Builder
	Node(&sb, node, 0)
	return sb.String()
}

// Node writes the tree dump of node at the given depth.
func Node(sb *strings.Builder, node ast.Node, depth int) {
	indent := strings.Repeat(" ", depth)

	switch n := node.(type) {
	case nil:
		fmt.Fprintf(sb, "%sNil\n", indent)

	// Names and types
	case *ast.Identifier:
		fmt.Fprintf(sb, "%sIdentifier %s\n", indent, n.String())
	case *ast.QualifiedName:
		fmt.Fprintf(sb, "%sQualifiedName %s\n", indent, n.String())
	case *ast.DataType:
		fmt.Fprintf(sb, "%sDataType %s\n", indent, format.Format(n))
	case *ast.Subquery:
		fmt.Fprintf(sb, "%sSubquery %s\n", indent, n.Text)
	case *ast.WhenClause:
		line(sb, indent, "WhenClause", "", 2)
		Node(sb, n.Condition, depth+1)
		Node(sb, n.Result, depth+1)

	// Logical tier
	case *ast.LogicalExpr:
		line(sb, indent, "LogicalExpr", n.Op, 2)
		Node(sb, n.Left, depth+1)
		Node(sb, n.Right, depth+1)
	case *ast.NotExpr:
		line(sb, indent, "NotExpr", "", 1)
		Node(sb, n.Expr, depth+1)
	case *ast.ParenExpr:
		line(sb, indent, "ParenExpr", "", 1)
		Node(sb, n.Expr, depth+1)
	case *ast.DatetimeExpr:
		explainDatetimeExpr(sb, n, indent, depth)

	// Boolean primaries
	case *ast.IsExpr:
		explainIsExpr(sb, n, indent, depth)
	case *ast.SafeEqExpr:
		line(sb, indent, "SafeEqExpr", "<=>", 2)
		Node(sb, n.Left, depth+1)
		Node(sb, n.Right, depth+1)
	case *ast.CompareExpr:
		line(sb, indent, "CompareExpr", n.Op, 2)
		Node(sb, n.Left, depth+1)
		Node(sb, n.Right, depth+1)
	case *ast.QuantifiedCompareExpr:
		line(sb, indent, "QuantifiedCompareExpr", n.Op+" "+n.Quantifier, 2)
		Node(sb, n.Left, depth+1)
		Node(sb, n.Query, depth+1)

	// Predicates
	case *ast.InExpr:
		explainInExpr(sb, n, indent, depth)
	case *ast.BetweenExpr:
		line(sb, indent, "BetweenExpr", negated(n.Not, ""), 3)
		Node(sb, n.Expr, depth+1)
		Node(sb, n.Low, depth+1)
		Node(sb, n.High, depth+1)
	case *ast.LikeExpr:
		explainLikeExpr(sb, n, indent, depth)
	case *ast.PriorExpr:
		line(sb, indent, "PriorExpr", "", 1)
		Node(sb, n.Expr, depth+1)

	// Bit expressions
	case *ast.BinaryExpr:
		line(sb, indent, "BinaryExpr", n.Op, 2)
		Node(sb, n.Left, depth+1)
		Node(sb, n.Right, depth+1)

	// Simple expressions
	case *ast.Literal:
		fmt.Fprintf(sb, "%sLiteral %s %s\n", indent, n.Kind, format.Format(n))
	case *ast.ParameterMarker:
		fmt.Fprintf(sb, "%sParameterMarker %s\n", indent, n.Name)
	case *ast.ColumnRef:
		fmt.Fprintf(sb, "%sColumnRef %s\n", indent, n.Column.String())
	case *ast.UnaryExpr:
		line(sb, indent, "UnaryExpr", n.Op, 1)
		Node(sb, n.Operand, depth+1)
	case *ast.RowExpr:
		detail := ""
		if n.Row {
			detail = "ROW"
		}
		line(sb, indent, "RowExpr", detail, len(n.Items))
		exprList(sb, n.Items, depth+1)
	case *ast.SubqueryExpr:
		detail := ""
		if n.Exists {
			detail = "EXISTS"
		}
		line(sb, indent, "SubqueryExpr", detail, 1)
		Node(sb, n.Query, depth+1)
	case *ast.EscapedExpr:
		line(sb, indent, "EscapedExpr", n.Ident.String(), 1)
		Node(sb, n.Expr, depth+1)
	case *ast.ConcatExpr:
		line(sb, indent, "ConcatExpr", "||", 2)
		Node(sb, n.Left, depth+1)
		Node(sb, n.Right, depth+1)

	// Functions
	case *ast.FunctionCall:
		explainFunctionCall(sb, n, indent, depth)
	case *ast.CastExpr:
		line(sb, indent, "CastExpr", "", 2)
		Node(sb, n.Expr, depth+1)
		Node(sb, n.Type, depth+1)
	case *ast.CharFunc:
		explainCharFunc(sb, n, indent, depth)
	case *ast.CaseExpr:
		explainCaseExpr(sb, n, indent, depth)

	// Dialect extensions
	case *ast.TreatExpr:
		detail := ""
		if n.Ref {
			detail = "REF"
		}
		line(sb, indent, "TreatExpr", detail, 2)
		Node(sb, n.Expr, depth+1)
		Node(sb, n.Type, depth+1)
	case *ast.IntervalExpr:
		explainIntervalExpr(sb, n, indent, depth)
	case *ast.ObjectAccessExpr:
		explainObjectAccess(sb, n, indent, depth)
	case *ast.ConstructorExpr:
		line(sb, indent, "ConstructorExpr", format.Format(n.Type), len(n.Args))
		exprList(sb, n.Args, depth+1)

	default:
		fmt.Fprintf(sb, "%s%T\n", indent, n)
	}
}

// line writes a node header. Detail is omitted when empty and the child
// count when zero.
func line(sb *strings.Builder, indent, name, detail string, children int) {
	sb.WriteString(indent)
	sb.WriteString(name)
	if detail != "" {
		sb.WriteString(" ")
		sb.WriteString(detail)
	}
	if children > 0 {
		fmt.Fprintf(sb, " (children %d)", children)
	}
	sb.WriteString("\n")
}

func negated(not bool, detail string) string {
	if !not {
		return detail
	}
	if detail == "" {
		return "NOT"
	}
	return "NOT " + detail
}

func exprList(sb *strings.Builder, exprs []ast.Expr, depth int) {
	for _, e := range exprs {
		Node(sb, e, depth)
	}
}
