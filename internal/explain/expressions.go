package explain

import (
	"strings"

	"github.com/sqlc-dev/oraexpr/ast"
)

func explainDatetimeExpr(sb *strings.Builder, n *ast.DatetimeExpr, indent string, depth int) {
	if n.Local {
		line(sb, indent, "DatetimeExpr", "AT LOCAL", 1)
		Node(sb, n.Expr, depth+1)
		return
	}
	line(sb, indent, "DatetimeExpr", "AT TIME ZONE", 2)
	Node(sb, n.Expr, depth+1)
	Node(sb, n.Zone, depth+1)
}

func explainIsExpr(sb *strings.Builder, n *ast.IsExpr, indent string, depth int) {
	detail := "IS " + n.Value
	if n.Not {
		detail = "IS NOT " + n.Value
	}
	line(sb, indent, "IsExpr", detail, 1)
	Node(sb, n.Expr, depth+1)
}

// explainInExpr writes the tested expression, then the subquery or the list,
// then the continuation of an IN list followed by AND.
func explainInExpr(sb *strings.Builder, n *ast.InExpr, indent string, depth int) {
	kind := n.Kind()
	children := 2
	if kind == ast.InListAnd {
		children = 3
	}
	line(sb, indent, "InExpr", negated(n.Not, string(kind)), children)
	Node(sb, n.Expr, depth+1)

	if kind == ast.InSubquery {
		Node(sb, n.Query, depth+1)
		return
	}
	line(sb, strings.Repeat(" ", depth+1), "ExpressionList", "", len(n.List))
	exprList(sb, n.List, depth+2)
	if kind == ast.InListAnd {
		Node(sb, n.And, depth+1)
	}
}

func explainLikeExpr(sb *strings.Builder, n *ast.LikeExpr, indent string, depth int) {
	children := 2
	if n.Escape != nil {
		children = 3
	}
	line(sb, indent, "LikeExpr", negated(n.Not, ""), children)
	Node(sb, n.Expr, depth+1)
	Node(sb, n.Pattern, depth+1)
	if n.Escape != nil {
		Node(sb, n.Escape, depth+1)
	}
}
