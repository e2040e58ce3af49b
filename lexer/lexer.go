// Package lexer implements a lexer for Oracle SQL expressions.
package lexer

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sqlc-dev/oraexpr/token"
)

// Lexer tokenizes Oracle SQL input.
type Lexer struct {
	reader *bufio.Reader
	ch     rune           // current character
	pos    token.Position // position of ch
	next   token.Position // position of the character after ch
	eof    bool
}

// Item represents a lexical token with its value and position.
type Item struct {
	Token  token.Token
	Value  string
	Pos    token.Position
	Quoted bool // true if this identifier was double-quoted
}

// Text returns the item as it would appear in SQL source.
func (i Item) Text() string {
	switch i.Token {
	case token.STRING:
		return "'" + strings.ReplaceAll(i.Value, "'", "''") + "'"
	case token.NSTRING:
		return "N'" + strings.ReplaceAll(i.Value, "'", "''") + "'"
	case token.IDENT:
		if i.Quoted {
			return `"` + strings.ReplaceAll(i.Value, `"`, `""`) + `"`
		}
		return i.Value
	case token.EOF:
		return "EOF"
	}
	if i.Value == "" {
		return i.Token.String()
	}
	return i.Value
}

// New creates a new Lexer from an io.Reader.
func New(r io.Reader) *Lexer {
	l := &Lexer{
		reader: bufio.NewReader(r),
		next:   token.Position{Offset: 0, Line: 1, Column: 1},
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.eof {
		l.ch = 0
		return
	}

	r, size, err := l.reader.ReadRune()
	if err != nil {
		l.ch = 0
		l.eof = true
		l.pos = l.next
		return
	}

	l.pos = l.next
	l.ch = r
	l.next.Offset += size
	if r == '\n' {
		l.next.Line++
		l.next.Column = 1
	} else {
		l.next.Column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.eof {
		return 0
	}
	bytes, err := l.reader.Peek(utf8.UTFMax)
	if len(bytes) == 0 && err != nil {
		return 0
	}
	r, _ := utf8.DecodeRune(bytes)
	return r
}

func (l *Lexer) skipWhitespace() {
	// Skip whitespace and BOM (byte order mark U+FEFF)
	for !l.eof && (unicode.IsSpace(l.ch) || l.ch == '\uFEFF') {
		l.readChar()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Item {
	l.skipWhitespace()

	pos := l.pos

	if l.eof {
		return Item{Token: token.EOF, Value: "", Pos: pos}
	}

	// Handle comments
	if l.ch == '-' && l.peekChar() == '-' {
		return l.readLineComment()
	}
	if l.ch == '/' && l.peekChar() == '*' {
		return l.readBlockComment()
	}

	switch l.ch {
	case '+':
		l.readChar()
		return Item{Token: token.PLUS, Value: "+", Pos: pos}
	case '-':
		l.readChar()
		return Item{Token: token.MINUS, Value: "-", Pos: pos}
	case '*':
		l.readChar()
		return Item{Token: token.ASTERISK, Value: "*", Pos: pos}
	case '/':
		l.readChar()
		return Item{Token: token.SLASH, Value: "/", Pos: pos}
	case '%':
		l.readChar()
		return Item{Token: token.PERCENT, Value: "%", Pos: pos}
	case '=':
		l.readChar()
		return Item{Token: token.EQ, Value: "=", Pos: pos}
	case '^':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Item{Token: token.NEQ, Value: "^=", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.CARET, Value: "^", Pos: pos}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Item{Token: token.NEQ, Value: "!=", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.BANG, Value: "!", Pos: pos}
	case '~':
		l.readChar()
		return Item{Token: token.TILDE, Value: "~", Pos: pos}
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			l.readChar()
			// Check for <=>
			if l.ch == '>' {
				l.readChar()
				return Item{Token: token.NULL_SAFE_EQ, Value: "<=>", Pos: pos}
			}
			return Item{Token: token.LTE, Value: "<=", Pos: pos}
		case '>':
			l.readChar()
			l.readChar()
			return Item{Token: token.NEQ, Value: "<>", Pos: pos}
		case '<':
			l.readChar()
			l.readChar()
			return Item{Token: token.SHL, Value: "<<", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.LT, Value: "<", Pos: pos}
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			l.readChar()
			return Item{Token: token.GTE, Value: ">=", Pos: pos}
		case '>':
			l.readChar()
			l.readChar()
			return Item{Token: token.SHR, Value: ">>", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.GT, Value: ">", Pos: pos}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return Item{Token: token.CONCAT, Value: "||", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.PIPE, Value: "|", Pos: pos}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return Item{Token: token.AND_AND, Value: "&&", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.AMPERSAND, Value: "&", Pos: pos}
	case ':':
		if isIdentStart(l.peekChar()) || unicode.IsDigit(l.peekChar()) {
			return l.readBindVariable()
		}
		l.readChar()
		return Item{Token: token.COLON, Value: ":", Pos: pos}
	case '(':
		l.readChar()
		return Item{Token: token.LPAREN, Value: "(", Pos: pos}
	case ')':
		l.readChar()
		return Item{Token: token.RPAREN, Value: ")", Pos: pos}
	case '{':
		l.readChar()
		return Item{Token: token.LBRACE, Value: "{", Pos: pos}
	case '}':
		l.readChar()
		return Item{Token: token.RBRACE, Value: "}", Pos: pos}
	case ',':
		l.readChar()
		return Item{Token: token.COMMA, Value: ",", Pos: pos}
	case '.':
		if unicode.IsDigit(l.peekChar()) {
			return l.readNumber()
		}
		l.readChar()
		return Item{Token: token.DOT, Value: ".", Pos: pos}
	case ';':
		l.readChar()
		return Item{Token: token.SEMICOLON, Value: ";", Pos: pos}
	case '?':
		l.readChar()
		return Item{Token: token.QUESTION, Value: "?", Pos: pos}
	case '\'':
		return l.readString(token.STRING, pos)
	case '"':
		return l.readQuotedIdentifier()
	default:
		if unicode.IsDigit(l.ch) {
			if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
				return l.readPrefixedNumber(token.HEX, isHexDigit)
			}
			if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
				return l.readPrefixedNumber(token.BIT, isBitDigit)
			}
			return l.readNumber()
		}
		if l.peekChar() == '\'' {
			switch l.ch {
			case 'n', 'N':
				l.readChar()
				return l.readString(token.NSTRING, pos)
			case 'x', 'X':
				return l.readQuotedBits(token.HEX, isHexDigit)
			case 'b', 'B':
				return l.readQuotedBits(token.BIT, isBitDigit)
			}
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		ch := l.ch
		l.readChar()
		return Item{Token: token.ILLEGAL, Value: string(ch), Pos: pos}
	}
}

func (l *Lexer) readLineComment() Item {
	pos := l.pos
	var sb strings.Builder
	for !l.eof && l.ch != '\n' {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.COMMENT, Value: sb.String(), Pos: pos}
}

func (l *Lexer) readBlockComment() Item {
	pos := l.pos
	var sb strings.Builder
	// Skip /*
	sb.WriteRune(l.ch)
	l.readChar()
	sb.WriteRune(l.ch)
	l.readChar()

	for !l.eof {
		if l.ch == '*' && l.peekChar() == '/' {
			sb.WriteString("*/")
			l.readChar()
			l.readChar()
			return Item{Token: token.COMMENT, Value: sb.String(), Pos: pos}
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
}

// readString reads a single-quoted literal. Oracle has no backslash escapes:
// a quote inside the literal is written twice.
func (l *Lexer) readString(tok token.Token, pos token.Position) Item {
	var sb strings.Builder
	l.readChar() // skip opening quote

	for !l.eof {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				sb.WriteRune('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return Item{Token: tok, Value: sb.String(), Pos: pos}
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
}

// readQuotedBits reads X'..' and B'..' literals, keeping their source text.
func (l *Lexer) readQuotedBits(tok token.Token, valid func(rune) bool) Item {
	pos := l.pos
	var sb strings.Builder
	sb.WriteRune(unicode.ToUpper(l.ch))
	l.readChar() // prefix
	sb.WriteRune(l.ch)
	l.readChar() // opening quote

	for !l.eof && l.ch != '\'' {
		if !valid(l.ch) {
			return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if l.eof {
		return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
	}
	sb.WriteRune(l.ch)
	l.readChar() // closing quote
	return Item{Token: tok, Value: sb.String(), Pos: pos}
}

// readPrefixedNumber reads 0x.. and 0b.. literals, keeping their source text.
func (l *Lexer) readPrefixedNumber(tok token.Token, valid func(rune) bool) Item {
	pos := l.pos
	var sb strings.Builder
	sb.WriteRune(l.ch)
	l.readChar() // 0
	sb.WriteRune(l.ch)
	l.readChar() // x or b

	n := 0
	for !l.eof && valid(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
		n++
	}
	if n == 0 {
		return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
	}
	return Item{Token: tok, Value: sb.String(), Pos: pos}
}

func (l *Lexer) readQuotedIdentifier() Item {
	pos := l.pos
	var sb strings.Builder
	l.readChar() // skip opening quote

	for !l.eof {
		if l.ch == '"' {
			l.readChar()
			if l.ch == '"' && !l.eof {
				// Doubled quote - add single quote and continue
				sb.WriteRune('"')
				l.readChar()
				continue
			}
			return Item{Token: token.IDENT, Value: sb.String(), Pos: pos, Quoted: true}
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
}

func (l *Lexer) readBindVariable() Item {
	pos := l.pos
	var sb strings.Builder
	sb.WriteRune(l.ch)
	l.readChar() // skip :
	for !l.eof && isIdentChar(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.PARAM, Value: sb.String(), Pos: pos}
}

func (l *Lexer) readNumber() Item {
	pos := l.pos
	var sb strings.Builder

	for !l.eof && unicode.IsDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	// A dot followed by a dot is not a decimal point.
	if l.ch == '.' && l.peekChar() != '.' {
		sb.WriteRune(l.ch)
		l.readChar()
		for !l.eof && unicode.IsDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if unicode.IsDigit(next) || next == '+' || next == '-' {
			sb.WriteRune(l.ch)
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				sb.WriteRune(l.ch)
				l.readChar()
			}
			for !l.eof && unicode.IsDigit(l.ch) {
				sb.WriteRune(l.ch)
				l.readChar()
			}
		}
	}

	return Item{Token: token.NUMBER, Value: sb.String(), Pos: pos}
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBitDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

func (l *Lexer) readIdentifier() Item {
	pos := l.pos
	var sb strings.Builder

	for !l.eof && isIdentChar(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	ident := sb.String()
	tok := token.Lookup(strings.ToUpper(ident))
	return Item{Token: tok, Value: ident, Pos: pos}
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '$' || ch == '#'
}

// Tokenize returns all tokens from the input.
func Tokenize(r io.Reader) []Item {
	l := New(r)
	var items []Item
	for {
		item := l.NextToken()
		items = append(items, item)
		if item.Token == token.EOF {
			break
		}
	}
	return items
}
