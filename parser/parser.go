// Package parser implements a recursive descent parser for the expression
// and predicate grammar of Oracle SQL.
package parser

import (
	"context"
	"io"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/lexer"
	"github.com/sqlc-dev/oraexpr/token"
)

// DefaultMaxDepth is the nesting limit used when no WithMaxDepth option is given.
const DefaultMaxDepth = 1000

// Parser parses Oracle SQL expressions from a token source. A Parser is not
// safe for concurrent use; create one per input.
type Parser struct {
	ts       TokenSource
	logger   *zap.Logger
	subquery SubqueryParser
	maxDepth int
	depth    int
	peak     int // deepest depth reached, see parseCase
	cases    map[int]caseMemo
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug output about backtracking.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithMaxDepth sets the nesting limit. Values below one disable the limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithSubqueryParser installs a parser for the tokens inside subqueries.
func WithSubqueryParser(sp SubqueryParser) Option {
	return func(p *Parser) {
		p.subquery = sp
	}
}

// New creates a new Parser from an io.Reader.
func New(r io.Reader, opts ...Option) *Parser {
	return NewFromSource(Lex(r), opts...)
}

// NewFromSource creates a new Parser over an existing token source.
func NewFromSource(ts TokenSource, opts ...Option) *Parser {
	p := &Parser{
		ts:       ts,
		logger:   zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Offset returns the position of the next unconsumed token in the source.
func (p *Parser) Offset() int {
	return p.ts.Mark()
}

// AtEOF reports whether every token has been consumed.
func (p *Parser) AtEOF() bool {
	return p.peekIs(token.EOF)
}

func (p *Parser) peek() lexer.Item {
	return p.ts.PeekN(0)
}

func (p *Parser) peekN(n int) lexer.Item {
	return p.ts.PeekN(n)
}

func (p *Parser) next() lexer.Item {
	return p.ts.Next()
}

func (p *Parser) peekIs(t token.Token) bool {
	return p.ts.PeekN(0).Token == t
}

func (p *Parser) peekNIs(n int, t token.Token) bool {
	return p.ts.PeekN(n).Token == t
}

func (p *Parser) mark() int {
	return p.ts.Mark()
}

func (p *Parser) restore(m int) {
	p.ts.Restore(m)
}

// accept consumes the next token if it has type t.
func (p *Parser) accept(t token.Token) bool {
	if p.peekIs(t) {
		p.next()
		return true
	}
	return false
}

// expect consumes the next token, which must have type t.
func (p *Parser) expect(t token.Token) (lexer.Item, error) {
	item := p.peek()
	if item.Token != t {
		return item, unexpected(item, t.String())
	}
	return p.next(), nil
}

// enter increments the nesting depth and fails once it passes the limit.
// Every successful enter must be paired with leave.
func (p *Parser) enter() error {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return &SyntaxError{
			Kind:  NestingTooDeep,
			Pos:   p.peek().Pos,
			Found: describe(p.peek()),
			Limit: p.maxDepth,
		}
	}
	p.depth++
	if p.depth > p.peak {
		p.peak = p.depth
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// ParseExpression parses an expression starting at the current token.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	expr, err := p.parseExpr()
	return expr, errors.Trace(err)
}

// ParseDataType parses a data type starting at the current token.
func (p *Parser) ParseDataType() (*ast.DataType, error) {
	dt, err := p.parseDataType()
	return dt, errors.Trace(err)
}

// ParseFunctionCall parses an aggregation, CAST, CHAR or regular function call.
func (p *Parser) ParseFunctionCall() (ast.Function, error) {
	fn, err := p.parseFunctionCall()
	return fn, errors.Trace(err)
}

// ParseCaseExpression parses a CASE expression in its general form, where
// the closing END is optional.
func (p *Parser) ParseCaseExpression() (*ast.CaseExpr, error) {
	expr, err := p.parseCaseBody(ast.CaseGeneral)
	return expr, errors.Trace(err)
}

// ParseLiteral parses a single literal.
func (p *Parser) ParseLiteral() (*ast.Literal, error) {
	lit, err := p.parseLiteral()
	return lit, errors.Trace(err)
}

// ParseQualifiedName parses a name with an optional owner prefix.
func (p *Parser) ParseQualifiedName() (*ast.QualifiedName, error) {
	name, err := p.parseQualifiedName()
	return name, errors.Trace(err)
}

// ParseExpression parses a complete expression from the input.
func ParseExpression(ctx context.Context, r io.Reader, opts ...Option) (ast.Expr, error) {
	return parseAll(ctx, r, opts, (*Parser).parseExpr)
}

// ParseDataType parses a complete data type from the input.
func ParseDataType(ctx context.Context, r io.Reader, opts ...Option) (*ast.DataType, error) {
	return parseAll(ctx, r, opts, (*Parser).parseDataType)
}

// ParseFunctionCall parses a complete function call from the input.
func ParseFunctionCall(ctx context.Context, r io.Reader, opts ...Option) (ast.Function, error) {
	return parseAll(ctx, r, opts, (*Parser).parseFunctionCall)
}

// ParseCaseExpression parses a complete CASE expression from the input.
func ParseCaseExpression(ctx context.Context, r io.Reader, opts ...Option) (*ast.CaseExpr, error) {
	return parseAll(ctx, r, opts, func(p *Parser) (*ast.CaseExpr, error) {
		return p.parseCaseBody(ast.CaseGeneral)
	})
}

// ParseLiteral parses a complete literal from the input.
func ParseLiteral(ctx context.Context, r io.Reader, opts ...Option) (*ast.Literal, error) {
	return parseAll(ctx, r, opts, (*Parser).parseLiteral)
}

// ParseQualifiedName parses a complete qualified name from the input.
func ParseQualifiedName(ctx context.Context, r io.Reader, opts ...Option) (*ast.QualifiedName, error) {
	return parseAll(ctx, r, opts, (*Parser).parseQualifiedName)
}

// parseAll runs fn over the whole input and fails if tokens remain.
func parseAll[T any](ctx context.Context, r io.Reader, opts []Option, fn func(*Parser) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, errors.Trace(err)
	}

	p := New(r, opts...)
	node, err := fn(p)
	if err != nil {
		return zero, errors.Trace(err)
	}
	if !p.AtEOF() {
		return zero, errors.Trace(unexpected(p.peek(), token.EOF.String()))
	}
	return node, nil
}
