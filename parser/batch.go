package parser

import (
	"context"
	"strings"

	"github.com/pingcap/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/internal/normalize"
)

const snippetLen = 40

// ParseBatch parses every input as a complete expression. At most limit
// inputs are parsed at a time; a limit below one means no limit. Results are
// returned in input order. The first failure cancels the inputs that have
// not started and is returned annotated with the index of its input and a
// one-line excerpt of it.
func ParseBatch(ctx context.Context, inputs []string, limit int, opts ...Option) ([]ast.Expr, error) {
	results := make([]ast.Expr, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, input := range inputs {
		g.Go(func() error {
			expr, err := ParseExpression(gctx, strings.NewReader(input), opts...)
			if err != nil {
				return errors.Annotatef(err, "input %d %q", i, snippet(input))
			}
			results[i] = expr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// snippet renders input on one line without comments, cut to snippetLen
// characters.
func snippet(input string) string {
	s := []rune(normalize.Whitespace(normalize.StripComments(input)))
	if len(s) > snippetLen {
		return string(s[:snippetLen]) + "..."
	}
	return string(s)
}
