// Package format renders Oracle SQL expression ASTs back to SQL text.
package format

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/oraexpr/ast"
)

// Format returns the SQL text of a node. Keywords are written in upper case
// and binary operators are surrounded by single spaces. Parsing the result
// yields a tree with the same shape as node.
func Format(node ast.Node) string {
	var sb strings.Builder
	Node(&sb, node)
	return sb.String()
}

// Node formats any node: an expression, a data type, a name or a subquery.
func Node(sb *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case nil:
	case *ast.DataType:
		DataType(sb, n)
	case *ast.Identifier:
		sb.WriteString(n.String())
	case *ast.QualifiedName:
		sb.WriteString(n.String())
	case *ast.Subquery:
		formatSubquery(sb, n)
	case *ast.WhenClause:
		formatWhenClause(sb, n)
	case ast.Expr:
		Expression(sb, n)
	}
}

// DataType formats a data type.
func DataType(sb *strings.Builder, dt *ast.DataType) {
	if dt == nil {
		return
	}
	if dt.National {
		sb.WriteString("NATIONAL ")
	}
	if dt.Owner != nil {
		sb.WriteString(dt.Owner.String())
		sb.WriteString(".")
	}
	sb.WriteString(dt.Name)
	if dt.Varying {
		sb.WriteString(" VARYING")
	}

	switch {
	case dt.Length != nil:
		formatLength(sb, dt.Length)
	case dt.CopyColumn != nil:
		sb.WriteString("(")
		sb.WriteString(dt.CopyColumn.String())
		if dt.CopyClosed {
			sb.WriteString(")")
		}
	}

	if s := dt.Suffix; s != nil {
		switch s.Kind {
		case ast.WithTimeZone:
			sb.WriteString(" WITH ")
			if s.Local {
				sb.WriteString("LOCAL ")
			}
			sb.WriteString("TIME ZONE")
		default:
			sb.WriteString(" ")
			sb.WriteString(string(s.Kind))
			formatPrecision(sb, s.Precision)
		}
	}
}

func formatLength(sb *strings.Builder, l *ast.DataTypeLength) {
	sb.WriteString("(")
	if l.Any {
		sb.WriteString("*")
	} else if l.Precision != nil {
		sb.WriteString(strconv.Itoa(*l.Precision))
	}
	if l.Scale != nil {
		sb.WriteString(",")
		sb.WriteString(strconv.Itoa(*l.Scale))
	}
	if l.Unit != "" {
		sb.WriteString(" ")
		sb.WriteString(l.Unit)
	}
	sb.WriteString(")")
}

func formatPrecision(sb *strings.Builder, n *int) {
	if n == nil {
		return
	}
	sb.WriteString("(")
	sb.WriteString(strconv.Itoa(*n))
	sb.WriteString(")")
}
