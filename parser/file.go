package parser

import (
	"context"
	"os"
	"strings"

	"github.com/pingcap/errors"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/lexer"
	"github.com/sqlc-dev/oraexpr/token"
)

// ParseString parses a complete expression from a string.
func ParseString(ctx context.Context, s string, opts ...Option) (ast.Expr, error) {
	return ParseExpression(ctx, strings.NewReader(s), opts...)
}

// ParseFile parses every semicolon-separated expression in the named file.
// See ParseBatch for the meaning of limit.
func ParseFile(ctx context.Context, path string, limit int, opts ...Option) ([]ast.Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return ParseBatch(ctx, Split(string(data)), limit, opts...)
}

// Split divides src at semicolons that are outside parentheses, string
// literals, quoted identifiers and comments. Pieces holding nothing but
// whitespace and comments are dropped.
func Split(src string) []string {
	var parts []string
	start, depth := 0, 0
	hasTokens := false

	add := func(end int) {
		if hasTokens {
			parts = append(parts, strings.TrimSpace(src[start:end]))
		}
		hasTokens = false
	}

	for _, item := range lexer.Tokenize(strings.NewReader(src)) {
		switch item.Token {
		case token.COMMENT, token.WHITESPACE:
			continue
		case token.EOF:
			add(len(src))
			return parts
		case token.SEMICOLON:
			if depth == 0 {
				add(item.Pos.Offset)
				start = item.Pos.Offset + 1
				continue
			}
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth > 0 {
				depth--
			}
		}
		hasTokens = true
	}
	add(len(src))
	return parts
}
