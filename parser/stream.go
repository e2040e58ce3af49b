package parser

import (
	"io"

	"github.com/sqlc-dev/oraexpr/lexer"
	"github.com/sqlc-dev/oraexpr/token"
)

// TokenSource supplies tokens to the parser. Implementations must support
// arbitrary lookahead and rewinding to any mark taken earlier in the same
// parse, since the predicate and CASE alternatives are decided by trying
// them in order.
type TokenSource interface {
	// PeekN returns the n-th token ahead without consuming it.
	// PeekN(0) is the next token. Past the end it returns EOF.
	PeekN(n int) lexer.Item
	// Next consumes and returns the next token.
	Next() lexer.Item
	// Mark returns the current position.
	Mark() int
	// Restore rewinds to a position returned by Mark.
	Restore(mark int)
}

// Stream is a TokenSource over a slice of tokens. Comments and whitespace
// are dropped on construction.
type Stream struct {
	items []lexer.Item
	pos   int
	eof   lexer.Item
}

// NewStream creates a Stream over items. A trailing EOF item is optional.
func NewStream(items []lexer.Item) *Stream {
	s := &Stream{items: make([]lexer.Item, 0, len(items))}
	for _, item := range items {
		switch item.Token {
		case token.COMMENT, token.WHITESPACE:
			continue
		case token.EOF:
			s.eof = item
			return s
		}
		s.items = append(s.items, item)
	}
	s.eof = lexer.Item{Token: token.EOF}
	if n := len(s.items); n > 0 {
		s.eof.Pos = s.items[n-1].Pos
	}
	return s
}

// Lex tokenizes r and returns a Stream over the result.
func Lex(r io.Reader) *Stream {
	return NewStream(lexer.Tokenize(r))
}

// PeekN returns the n-th token ahead (0-indexed: PeekN(0) is the next token).
func (s *Stream) PeekN(n int) lexer.Item {
	if s.pos+n < len(s.items) {
		return s.items[s.pos+n]
	}
	return s.eof
}

// Next consumes and returns the next token.
func (s *Stream) Next() lexer.Item {
	item := s.PeekN(0)
	if s.pos < len(s.items) {
		s.pos++
	}
	return item
}

// Mark returns a position marker that can be passed to Restore.
func (s *Stream) Mark() int {
	return s.pos
}

// Restore resets the stream to a previously saved mark.
func (s *Stream) Restore(mark int) {
	s.pos = mark
}

// Remaining returns the tokens that have not been consumed, excluding EOF.
func (s *Stream) Remaining() []lexer.Item {
	return s.items[s.pos:]
}
