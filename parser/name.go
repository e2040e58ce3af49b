package parser

import (
	"github.com/sqlc-dev/oraexpr/ast"
	"github.com/sqlc-dev/oraexpr/token"
)

// parseIdentifier accepts a plain or quoted identifier, or any unreserved
// keyword used as a name.
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	item := p.peek()
	if !item.Token.IsIdentifier() {
		return nil, unexpected(item, "identifier")
	}
	p.next()
	return &ast.Identifier{
		Position: item.Pos,
		Name:     item.Value,
		Quoted:   item.Quoted,
	}, nil
}

// parseQualifiedName parses [owner .] name. A second dot is an error: names
// carry at most one owner segment.
func (p *Parser) parseQualifiedName() (*ast.QualifiedName, error) {
	first, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	name := &ast.QualifiedName{Position: first.Position, Name: first}

	if !p.peekIs(token.DOT) {
		return name, nil
	}
	p.next()

	second, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	name.Owner, name.Name = first, second

	if p.peekIs(token.DOT) {
		return nil, unexpected(p.peek())
	}
	return name, nil
}
