// Package normalize provides SQL normalization functions for comparing
// semantically equivalent expressions that may differ in layout.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sqlc-dev/oraexpr/lexer"
	"github.com/sqlc-dev/oraexpr/token"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Whitespace collapses all whitespace sequences to a single space
// and trims leading/trailing whitespace.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// ForFormat normalizes SQL for format comparison. The text is re-tokenized,
// so comments and layout are dropped, keywords are upper-cased and && is
// spelled AND. Tokens are joined by single spaces except next to
// parentheses, commas and dots.
func ForFormat(s string) string {
	upper := cases.Upper(language.Und)

	var sb strings.Builder
	prev := token.ILLEGAL
	for _, item := range lexer.Tokenize(strings.NewReader(s)) {
		switch item.Token {
		case token.EOF:
			return sb.String()
		case token.COMMENT, token.WHITESPACE, token.SEMICOLON:
			continue
		}

		if prev != token.ILLEGAL && spaced(prev, item.Token) {
			sb.WriteByte(' ')
		}
		switch {
		case item.Token == token.AND_AND:
			sb.WriteString(token.AND.String())
		case item.Token.IsKeyword():
			sb.WriteString(upper.String(item.Value))
		default:
			sb.WriteString(item.Text())
		}
		prev = item.Token
	}
	return sb.String()
}

func spaced(prev, cur token.Token) bool {
	switch prev {
	case token.LPAREN, token.DOT:
		return false
	}
	switch cur {
	case token.LPAREN, token.RPAREN, token.COMMA, token.DOT:
		return false
	}
	return true
}

// StripComments removes SQL comments from a query string.
// It handles:
//   - Line comments: -- to end of line
//   - Block comments: /* ... */, which do not nest
//
// Quotes inside string literals and quoted identifiers are left alone.
func StripComments(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		// Line comment
		if i+1 < len(s) && s[i] == '-' && s[i+1] == '-' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		}

		// Block comment
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				break
			}
			i += end + 4
			continue
		}

		// String literal or quoted identifier
		if s[i] == '\'' || s[i] == '"' {
			quote := s[i]
			result.WriteByte(s[i])
			i++
			for i < len(s) {
				if s[i] == quote {
					result.WriteByte(s[i])
					i++
					// Doubled quote
					if i < len(s) && s[i] == quote {
						result.WriteByte(s[i])
						i++
						continue
					}
					break
				}
				result.WriteByte(s[i])
				i++
			}
			continue
		}

		result.WriteByte(s[i])
		i++
	}

	return result.String()
}
