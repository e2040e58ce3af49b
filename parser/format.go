package parser

import (
	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/internal/format"
)

// Format returns the SQL text of a node. Parsing the text again yields a
// tree of the same shape.
func Format(node ast.Node) string {
	return format.Format(node)
}
