// Package token defines constants representing the lexical tokens of the
// Oracle SQL expression grammar.
package token

// Token represents a lexical token.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	WHITESPACE
	COMMENT

	// Literals
	IDENT   // identifiers
	NUMBER  // integer or decimal literals
	STRING  // 'text'
	NSTRING // N'text'
	HEX     // X'1F' or 0x1F
	BIT     // B'101' or 0b101
	PARAM   // bind variables like :name or :1

	// Operators
	PLUS         // +
	MINUS        // -
	ASTERISK     // *
	SLASH        // /
	PERCENT      // %
	CARET        // ^
	EQ           // =
	NEQ          // <>, != or ^=
	LT           // <
	GT           // >
	LTE          // <=
	GTE          // >=
	NULL_SAFE_EQ // <=>
	CONCAT       // ||
	PIPE         // |
	AMPERSAND    // &
	AND_AND      // &&
	SHL          // <<
	SHR          // >>
	TILDE        // ~
	BANG         // !

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	COLON     // :
	QUESTION  // ?

	// Keywords
	keyword_beg
	ALL
	AND
	ANY
	AS
	AT
	AVG
	BETWEEN
	BINARY
	BYTE
	CASE
	CAST
	CHAR
	CHARACTER
	COUNT
	DATE
	DAY
	DECIMAL
	DISTINCT
	DOUBLE
	ELSE
	END
	ESCAPE
	EXISTS
	FALSE
	FLOAT
	IF
	IN
	INTEGER
	INTERVAL
	IS
	LIKE
	LOCAL
	LOCALTIME
	LOCALTIMESTAMP
	LONG
	MAX
	MIN
	MONTH
	NATIONAL
	NEW
	NOT
	NULL
	NUMBER_KW
	OR
	PRECISION
	PRIOR
	RAW
	REF
	ROW
	SECOND
	SELECT
	SMALLINT
	SOME
	SUM
	THEN
	TIME
	TIMESTAMP
	TO
	TREAT
	TRUE
	UNKNOWN
	USING
	VARCHAR
	VARCHAR2
	VARYING
	WHEN
	WITH
	YEAR
	ZONE
	keyword_end
)

var tokens = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	WHITESPACE: "WHITESPACE",
	COMMENT:    "COMMENT",

	IDENT:   "IDENT",
	NUMBER:  "NUMBER_LITERAL",
	STRING:  "STRING",
	NSTRING: "NSTRING",
	HEX:     "HEX",
	BIT:     "BIT",
	PARAM:   "PARAM",

	PLUS:         "+",
	MINUS:        "-",
	ASTERISK:     "*",
	SLASH:        "/",
	PERCENT:      "%",
	CARET:        "^",
	EQ:           "=",
	NEQ:          "<>",
	LT:           "<",
	GT:           ">",
	LTE:          "<=",
	GTE:          ">=",
	NULL_SAFE_EQ: "<=>",
	CONCAT:       "||",
	PIPE:         "|",
	AMPERSAND:    "&",
	AND_AND:      "&&",
	SHL:          "<<",
	SHR:          ">>",
	TILDE:        "~",
	BANG:         "!",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	DOT:       ".",
	SEMICOLON: ";",
	COLON:     ":",
	QUESTION:  "?",

	ALL:            "ALL",
	AND:            "AND",
	ANY:            "ANY",
	AS:             "AS",
	AT:             "AT",
	AVG:            "AVG",
	BETWEEN:        "BETWEEN",
	BINARY:         "BINARY",
	BYTE:           "BYTE",
	CASE:           "CASE",
	CAST:           "CAST",
	CHAR:           "CHAR",
	CHARACTER:      "CHARACTER",
	COUNT:          "COUNT",
	DATE:           "DATE",
	DAY:            "DAY",
	DECIMAL:        "DECIMAL",
	DISTINCT:       "DISTINCT",
	DOUBLE:         "DOUBLE",
	ELSE:           "ELSE",
	END:            "END",
	ESCAPE:         "ESCAPE",
	EXISTS:         "EXISTS",
	FALSE:          "FALSE",
	FLOAT:          "FLOAT",
	IF:             "IF",
	IN:             "IN",
	INTEGER:        "INTEGER",
	INTERVAL:       "INTERVAL",
	IS:             "IS",
	LIKE:           "LIKE",
	LOCAL:          "LOCAL",
	LOCALTIME:      "LOCALTIME",
	LOCALTIMESTAMP: "LOCALTIMESTAMP",
	LONG:           "LONG",
	MAX:            "MAX",
	MIN:            "MIN",
	MONTH:          "MONTH",
	NATIONAL:       "NATIONAL",
	NEW:            "NEW",
	NOT:            "NOT",
	NULL:           "NULL",
	NUMBER_KW:      "NUMBER",
	OR:             "OR",
	PRECISION:      "PRECISION",
	PRIOR:          "PRIOR",
	RAW:            "RAW",
	REF:            "REF",
	ROW:            "ROW",
	SECOND:         "SECOND",
	SELECT:         "SELECT",
	SMALLINT:       "SMALLINT",
	SOME:           "SOME",
	SUM:            "SUM",
	THEN:           "THEN",
	TIME:           "TIME",
	TIMESTAMP:      "TIMESTAMP",
	TO:             "TO",
	TREAT:          "TREAT",
	TRUE:           "TRUE",
	UNKNOWN:        "UNKNOWN",
	USING:          "USING",
	VARCHAR:        "VARCHAR",
	VARCHAR2:       "VARCHAR2",
	VARYING:        "VARYING",
	WHEN:           "WHEN",
	WITH:           "WITH",
	YEAR:           "YEAR",
	ZONE:           "ZONE",
}

func (tok Token) String() string {
	if tok >= 0 && int(tok) < len(tokens) {
		return tokens[tok]
	}
	return ""
}

// Keywords maps keyword strings to their token types.
var Keywords map[string]Token

// reserved holds the keywords that can never be used as identifiers.
// Every other keyword is unreserved and doubles as an identifier.
var reserved = map[Token]bool{
	ALL:            true,
	AND:            true,
	ANY:            true,
	AS:             true,
	BETWEEN:        true,
	BINARY:         true,
	CASE:           true,
	CAST:           true,
	CHAR:           true,
	DATE:           true,
	DECIMAL:        true,
	DISTINCT:       true,
	ELSE:           true,
	END:            true,
	EXISTS:         true,
	FALSE:          true,
	FLOAT:          true,
	IF:             true,
	IN:             true,
	INTEGER:        true,
	INTERVAL:       true,
	IS:             true,
	LIKE:           true,
	LOCALTIME:      true,
	LOCALTIMESTAMP: true,
	LONG:           true,
	NOT:            true,
	NULL:           true,
	NUMBER_KW:      true,
	OR:             true,
	PRIOR:          true,
	RAW:            true,
	ROW:            true,
	SELECT:         true,
	SMALLINT:       true,
	THEN:           true,
	TO:             true,
	TRUE:           true,
	VARCHAR:        true,
	VARCHAR2:       true,
	WHEN:           true,
	WITH:           true,
}

func init() {
	Keywords = make(map[string]Token)
	for i := keyword_beg + 1; i < keyword_end; i++ {
		Keywords[tokens[i]] = i
	}
}

// Lookup returns the token type for an identifier string.
// If the string is a keyword, it returns the keyword token.
// Otherwise, it returns IDENT.
func Lookup(ident string) Token {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return tok > keyword_beg && tok < keyword_end
}

// IsReserved reports whether the token is a keyword that cannot be used as
// an identifier.
func (tok Token) IsReserved() bool {
	return reserved[tok]
}

// IsUnreserved reports whether the token is a keyword that may also be used
// as an identifier.
func (tok Token) IsUnreserved() bool {
	return tok.IsKeyword() && !reserved[tok]
}

// IsIdentifier reports whether the token can name a column, owner or
// function: a plain identifier or an unreserved keyword.
func (tok Token) IsIdentifier() bool {
	return tok == IDENT || tok.IsUnreserved()
}

// Position represents a source position.
type Position struct {
	Offset int // byte offset
	Line   int // line number (1-based)
	Column int // column number (1-based)
}
