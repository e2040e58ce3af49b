package parser

import (
	"fmt"
	"strings"

	"github.com/pingcap/errors"

	"github.com/sqlc-dev/oraexpr/lexer"
	"github.com/sqlc-dev/oraexpr/token"
)

// ErrorKind classifies a syntax error.
type ErrorKind int

const (
	// UnexpectedToken means a required terminal did not match.
	UnexpectedToken ErrorKind = iota
	// NoViableAlternative means none of the candidate productions at a
	// decision point matched.
	NoViableAlternative
	// MissingBranch means a CASE expression had no WHEN branch.
	MissingBranch
	// NestingTooDeep means the input nested deeper than the configured limit.
	NestingTooDeep
)

var kindNames = [...]string{
	UnexpectedToken:     "UnexpectedToken",
	NoViableAlternative: "NoViableAlternative",
	MissingBranch:       "MissingBranch",
	NestingTooDeep:      "NestingTooDeep",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Normalized error classes, one per kind. SyntaxError.Code reports the RFC
// code of its class; use AsSyntaxError to inspect the details.
var (
	ErrUnexpectedToken     = errors.Normalize("unexpected token", errors.RFCCodeText("oraexpr:parser:UnexpectedToken"))
	ErrNoViableAlternative = errors.Normalize("no viable alternative", errors.RFCCodeText("oraexpr:parser:NoViableAlternative"))
	ErrMissingBranch       = errors.Normalize("CASE expression has no WHEN branch", errors.RFCCodeText("oraexpr:parser:MissingBranch"))
	ErrNestingTooDeep      = errors.Normalize("expression nesting too deep", errors.RFCCodeText("oraexpr:parser:NestingTooDeep"))
)

// Class returns the normalized error class of the kind.
func (k ErrorKind) Class() *errors.Error {
	switch k {
	case NoViableAlternative:
		return ErrNoViableAlternative
	case MissingBranch:
		return ErrMissingBranch
	case NestingTooDeep:
		return ErrNestingTooDeep
	default:
		return ErrUnexpectedToken
	}
}

// SyntaxError describes why a parse failed and where.
type SyntaxError struct {
	Kind       ErrorKind
	Pos        token.Position
	Expected   []string // UnexpectedToken
	Found      string
	Candidates []string // NoViableAlternative
	Limit      int      // NestingTooDeep
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "line %d, column %d: ", e.Pos.Line, e.Pos.Column)
	switch e.Kind {
	case UnexpectedToken:
		if len(e.Expected) > 0 {
			fmt.Fprintf(&sb, "expected %s, got %s", strings.Join(e.Expected, " or "), e.Found)
		} else {
			fmt.Fprintf(&sb, "unexpected %s", e.Found)
		}
	case NoViableAlternative:
		fmt.Fprintf(&sb, "no viable alternative at %s", e.Found)
		if len(e.Candidates) > 0 {
			fmt.Fprintf(&sb, " (tried %s)", strings.Join(e.Candidates, ", "))
		}
	case MissingBranch:
		fmt.Fprintf(&sb, "CASE expression requires at least one WHEN branch, got %s", e.Found)
	case NestingTooDeep:
		fmt.Fprintf(&sb, "expression nesting exceeds %d levels", e.Limit)
	}
	return sb.String()
}

// Code returns the RFC error code of the error's class.
func (e *SyntaxError) Code() errors.RFCErrorCode {
	return e.Kind.Class().RFCCode()
}

// AsSyntaxError returns the SyntaxError at the root of err, if any.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	if err == nil {
		return nil, false
	}
	se, ok := errors.Cause(err).(*SyntaxError)
	return se, ok
}

func unexpected(item lexer.Item, expected ...string) *SyntaxError {
	return &SyntaxError{
		Kind:     UnexpectedToken,
		Pos:      item.Pos,
		Expected: expected,
		Found:    describe(item),
	}
}

func noViable(item lexer.Item, candidates ...string) *SyntaxError {
	return &SyntaxError{
		Kind:       NoViableAlternative,
		Pos:        item.Pos,
		Found:      describe(item),
		Candidates: candidates,
	}
}

func missingBranch(item lexer.Item) *SyntaxError {
	return &SyntaxError{
		Kind:  MissingBranch,
		Pos:   item.Pos,
		Found: describe(item),
	}
}

// isFatal reports whether err must not be recovered by backtracking.
func isFatal(err error) bool {
	se, ok := AsSyntaxError(err)
	if !ok {
		return false
	}
	return se.Kind == MissingBranch || se.Kind == NestingTooDeep
}

func describe(item lexer.Item) string {
	switch item.Token {
	case token.EOF:
		return "end of input"
	case token.ILLEGAL:
		return fmt.Sprintf("illegal input %q", item.Value)
	}
	return fmt.Sprintf("%q", item.Text())
}
