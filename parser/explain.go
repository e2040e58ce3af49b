package parser

import (
	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/internal/explain"
)

// Explain returns an indented dump of a node's tree, one node per line.
func Explain(node ast.Node) string {
	return explain.Explain(node)
}
