package parser

import (
	"strings"

	"github.com/pingcap/errors"

	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/lexer"
	"github.com/sqlc-dev/oraexpr/token"
)

// SubqueryParser parses the tokens between the parentheses of a subquery.
// Parsers used with ParseBatch must be safe for concurrent use.
type SubqueryParser interface {
	ParseSubquery(tokens []lexer.Item) (ast.Node, error)
}

// SubqueryParserFunc adapts a function to the SubqueryParser interface.
type SubqueryParserFunc func(tokens []lexer.Item) (ast.Node, error)

// ParseSubquery calls f(tokens).
func (f SubqueryParserFunc) ParseSubquery(tokens []lexer.Item) (ast.Node, error) {
	return f(tokens)
}

// subqueryAhead reports whether the next tokens open a subquery.
func (p *Parser) subqueryAhead() bool {
	return p.peekIs(token.LPAREN) &&
		(p.peekNIs(1, token.SELECT) || p.peekNIs(1, token.WITH))
}

// parseSubquery consumes a parenthesized query. The query itself is not
// parsed here: its tokens are kept as text and handed to the configured
// SubqueryParser, if any.
func (p *Parser) parseSubquery() (*ast.Subquery, error) {
	if !p.subqueryAhead() {
		return nil, unexpected(p.peek(), "subquery")
	}
	lparen := p.next()

	var items []lexer.Item
	depth := 0
loop:
	for {
		item := p.peek()
		switch item.Token {
		case token.EOF, token.ILLEGAL:
			return nil, unexpected(item, token.RPAREN.String())
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth == 0 {
				p.next()
				break loop
			}
			depth--
		}
		items = append(items, p.next())
	}

	query := &ast.Subquery{Position: lparen.Pos, Text: joinTokens(items)}
	if p.subquery != nil {
		stmt, err := p.subquery.ParseSubquery(items)
		if err != nil {
			return nil, errors.Annotatef(err, "subquery at line %d, column %d", lparen.Pos.Line, lparen.Pos.Column)
		}
		query.Stmt = stmt
	}
	return query, nil
}

// joinTokens renders tokens as SQL text with single spaces between them,
// except around parentheses, dots and commas. A parenthesis directly after
// a name is taken as a call and kept tight.
func joinTokens(items []lexer.Item) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 && spaceBetween(items[i-1].Token, item.Token) {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.Text())
	}
	return sb.String()
}

func spaceBetween(prev, cur token.Token) bool {
	switch prev {
	case token.LPAREN, token.DOT:
		return false
	}
	switch cur {
	case token.RPAREN, token.COMMA, token.DOT:
		return false
	case token.LPAREN:
		return !prev.IsIdentifier()
	}
	return true
}
