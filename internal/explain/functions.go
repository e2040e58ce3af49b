package explain

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/oraexpr/ast"
)

func explainFunctionCall(sb *strings.Builder, n *ast.FunctionCall, indent string, depth int) {
	name := "FunctionCall"
	if n.Aggregate {
		name = "AggregateFunction"
	}
	detail := n.Name.String()
	if n.Distinct {
		detail += " DISTINCT"
	}
	if n.Star {
		detail += " *"
	}
	line(sb, indent, name, detail, len(n.Args))
	exprList(sb, n.Args, depth+1)
}

func explainCharFunc(sb *strings.Builder, n *ast.CharFunc, indent string, depth int) {
	detail := ""
	if n.Using != nil {
		detail = "USING " + n.Using.String()
	}
	line(sb, indent, "CharFunc", detail, len(n.Args))
	exprList(sb, n.Args, depth+1)
}

// explainCaseExpr writes the operand, each WHEN branch and the ELSE result.
func explainCaseExpr(sb *strings.Builder, n *ast.CaseExpr, indent string, depth int) {
	children := len(n.Whens)
	if n.Operand != nil {
		children++
	}
	if n.Else != nil {
		children++
	}
	detail := string(n.Form)
	if n.HasEnd {
		detail += " END"
	}
	line(sb, indent, "CaseExpr", detail, children)

	if n.Operand != nil {
		Node(sb, n.Operand, depth+1)
	}
	for _, w := range n.Whens {
		Node(sb, w, depth+1)
	}
	if n.Else != nil {
		line(sb, indent+" ", "ElseClause", "", 1)
		Node(sb, n.Else, depth+2)
	}
}

func explainIntervalExpr(sb *strings.Builder, n *ast.IntervalExpr, indent string, depth int) {
	var detail strings.Builder
	if n.Unit == ast.YearToMonth {
		detail.WriteString("YEAR")
		writePrecision(&detail, n.LeadingPrecision)
		detail.WriteString(" TO MONTH")
	} else {
		detail.WriteString("DAY")
		writePrecision(&detail, n.LeadingPrecision)
		detail.WriteString(" TO SECOND")
		writePrecision(&detail, n.FractionPrecision)
	}
	line(sb, indent, "IntervalExpr", detail.String(), 2)
	Node(sb, n.Left, depth+1)
	Node(sb, n.Right, depth+1)
}

func writePrecision(sb *strings.Builder, n *int) {
	if n != nil {
		fmt.Fprintf(sb, "(%d)", *n)
	}
}

// explainObjectAccess writes the attribute path as the node detail, with the
// base and any trailing method call as children.
func explainObjectAccess(sb *strings.Builder, n *ast.ObjectAccessExpr, indent string, depth int) {
	var path strings.Builder
	for _, attr := range n.Attributes {
		path.WriteString(".")
		path.WriteString(attr.String())
	}
	children := 1
	if n.Call != nil {
		children = 2
	}
	line(sb, indent, "ObjectAccessExpr", path.String(), children)
	Node(sb, n.Base, depth+1)
	if n.Call != nil {
		Node(sb, n.Call, depth+1)
	}
}
