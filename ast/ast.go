// Package ast defines the abstract syntax tree for Oracle SQL expressions.
//
// Expression nodes are grouped into tiers that mirror operator binding
// strength. Each tier interface embeds the one above it, so any node of a
// lower tier may appear wherever a higher tier is expected:
//
//	Expr ⊃ BooleanPrimary ⊃ Predicate ⊃ BitExpr ⊃ SimpleExpr
//
// The marker methods are unexported, which keeps the set of variants closed
// to this package.
package ast

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sqlc-dev/oraexpr/token"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() token.Position
	End() token.Position
}

// Expr is a complete expression: logical combinations, NOT, parentheses,
// or any boolean primary.
type Expr interface {
	Node
	exprNode()
}

// BooleanPrimary is an IS test, a comparison, or any predicate.
type BooleanPrimary interface {
	Expr
	booleanPrimaryNode()
}

// Predicate is IN, BETWEEN, LIKE, PRIOR, or any bit expression.
type Predicate interface {
	BooleanPrimary
	predicateNode()
}

// BitExpr is an arithmetic or bitwise operation, or any simple expression.
type BitExpr interface {
	Predicate
	bitExprNode()
}

// SimpleExpr is an operand: a literal, column, function call, and so on.
type SimpleExpr interface {
	BitExpr
	simpleExprNode()
}

// Function is one of the function call forms.
type Function interface {
	SimpleExpr
	functionNode()
}

type exprTier struct{}

func (exprTier) exprNode() {}

type booleanPrimaryTier struct{ exprTier }

func (booleanPrimaryTier) booleanPrimaryNode() {}

type predicateTier struct{ booleanPrimaryTier }

func (predicateTier) predicateNode() {}

type bitExprTier struct{ predicateTier }

func (bitExprTier) bitExprNode() {}

type simpleExprTier struct{ bitExprTier }

func (simpleExprTier) simpleExprNode() {}

type functionTier struct{ simpleExprTier }

func (functionTier) functionNode() {}

// -----------------------------------------------------------------------------
// Names

// Identifier is a single name segment.
type Identifier struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
	Quoted   bool           `json:"quoted,omitempty"`
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) End() token.Position { return i.Position }

// Normalized returns the name as the database stores it: unquoted names are
// folded to upper case, quoted names are kept verbatim.
func (i *Identifier) Normalized() string {
	if i.Quoted {
		return i.Name
	}
	return cases.Upper(language.Und).String(i.Name)
}

// String returns the identifier as SQL source.
func (i *Identifier) String() string {
	if i.Quoted {
		return `"` + strings.ReplaceAll(i.Name, `"`, `""`) + `"`
	}
	return i.Name
}

// QualifiedName is a name with an optional owner, e.g. hr.employees.
type QualifiedName struct {
	Position token.Position `json:"-"`
	Owner    *Identifier    `json:"owner,omitempty"`
	Name     *Identifier    `json:"name"`
}

func (q *QualifiedName) Pos() token.Position { return q.Position }
func (q *QualifiedName) End() token.Position { return q.Name.End() }

// String returns the full name.
func (q *QualifiedName) String() string {
	if q.Owner == nil {
		return q.Name.String()
	}
	return q.Owner.String() + "." + q.Name.String()
}

// -----------------------------------------------------------------------------
// Logical tier

// NotExpr represents NOT expr.
type NotExpr struct {
	exprTier
	Position token.Position `json:"-"`
	Expr     Expr           `json:"expr"`
}

func (n *NotExpr) Pos() token.Position { return n.Position }
func (n *NotExpr) End() token.Position { return n.Expr.End() }

// ParenExpr represents a parenthesized expression at the logical tier.
type ParenExpr struct {
	exprTier
	Position token.Position `json:"-"`
	Expr     Expr           `json:"expr"`
}

func (p *ParenExpr) Pos() token.Position { return p.Position }
func (p *ParenExpr) End() token.Position { return p.Position }

// LogicalExpr represents expr AND expr or expr OR expr.
type LogicalExpr struct {
	exprTier
	Position token.Position `json:"-"`
	Left     Expr           `json:"left"`
	Op       string         `json:"op"` // "AND" or "OR"
	Right    Expr           `json:"right"`
}

func (l *LogicalExpr) Pos() token.Position { return l.Position }
func (l *LogicalExpr) End() token.Position { return l.Right.End() }

// DatetimeExpr represents expr AT LOCAL or expr AT TIME ZONE zone.
type DatetimeExpr struct {
	exprTier
	Position token.Position `json:"-"`
	Expr     Expr           `json:"expr"`
	Local    bool           `json:"local,omitempty"`
	Zone     SimpleExpr     `json:"zone,omitempty"`
}

func (d *DatetimeExpr) Pos() token.Position { return d.Position }
func (d *DatetimeExpr) End() token.Position { return d.Position }

// -----------------------------------------------------------------------------
// Boolean primary tier

// IsExpr represents expr IS [NOT] TRUE|FALSE|UNKNOWN|NULL.
type IsExpr struct {
	booleanPrimaryTier
	Position token.Position `json:"-"`
	Expr     BooleanPrimary `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	Value    string         `json:"value"`
}

func (i *IsExpr) Pos() token.Position { return i.Position }
func (i *IsExpr) End() token.Position { return i.Position }

// SafeEqExpr represents left <=> right.
type SafeEqExpr struct {
	booleanPrimaryTier
	Position token.Position `json:"-"`
	Left     BooleanPrimary `json:"left"`
	Right    Predicate      `json:"right"`
}

func (s *SafeEqExpr) Pos() token.Position { return s.Position }
func (s *SafeEqExpr) End() token.Position { return s.Right.End() }

// CompareExpr represents left op right for =, <>, <, <=, >, >=.
type CompareExpr struct {
	booleanPrimaryTier
	Position token.Position `json:"-"`
	Left     BooleanPrimary `json:"left"`
	Op       string         `json:"op"`
	Right    Predicate      `json:"right"`
}

func (c *CompareExpr) Pos() token.Position { return c.Position }
func (c *CompareExpr) End() token.Position { return c.Right.End() }

// QuantifiedCompareExpr represents left op ALL|ANY (subquery).
type QuantifiedCompareExpr struct {
	booleanPrimaryTier
	Position   token.Position `json:"-"`
	Left       BooleanPrimary `json:"left"`
	Op         string         `json:"op"`
	Quantifier string         `json:"quantifier"`
	Query      *Subquery      `json:"query"`
}

func (q *QuantifiedCompareExpr) Pos() token.Position { return q.Position }
func (q *QuantifiedCompareExpr) End() token.Position { return q.Query.End() }

// -----------------------------------------------------------------------------
// Predicate tier

// InKind identifies which IN form a predicate took.
type InKind string

const (
	InSubquery InKind = "InSubquery"
	InList     InKind = "InList"
	InListAnd  InKind = "InListAnd"
)

// InExpr represents expr [NOT] IN (subquery), expr [NOT] IN (list), and the
// continuation form expr [NOT] IN (list) AND predicate.
type InExpr struct {
	predicateTier
	Position token.Position `json:"-"`
	Expr     BitExpr        `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	Query    *Subquery      `json:"query,omitempty"`
	List     []Expr         `json:"list,omitempty"`
	And      BooleanPrimary `json:"and,omitempty"`
}

func (i *InExpr) Pos() token.Position { return i.Position }
func (i *InExpr) End() token.Position { return i.Position }

// Kind reports which IN form this is.
func (i *InExpr) Kind() InKind {
	switch {
	case i.Query != nil:
		return InSubquery
	case i.And != nil:
		return InListAnd
	default:
		return InList
	}
}

// BetweenExpr represents expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	predicateTier
	Position token.Position `json:"-"`
	Expr     BitExpr        `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	Low      BitExpr        `json:"low"`
	High     Predicate      `json:"high"`
}

func (b *BetweenExpr) Pos() token.Position { return b.Position }
func (b *BetweenExpr) End() token.Position { return b.High.End() }

// LikeExpr represents expr [NOT] LIKE pattern [ESCAPE escape].
type LikeExpr struct {
	predicateTier
	Position token.Position `json:"-"`
	Expr     BitExpr        `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	Pattern  SimpleExpr     `json:"pattern"`
	Escape   SimpleExpr     `json:"escape,omitempty"`
}

func (l *LikeExpr) Pos() token.Position { return l.Position }
func (l *LikeExpr) End() token.Position { return l.Position }

// PriorExpr represents PRIOR predicate in hierarchical query conditions.
type PriorExpr struct {
	predicateTier
	Position token.Position `json:"-"`
	Expr     Predicate      `json:"expr"`
}

func (p *PriorExpr) Pos() token.Position { return p.Position }
func (p *PriorExpr) End() token.Position { return p.Expr.End() }

// -----------------------------------------------------------------------------
// Bit expression tier

// BinaryExpr represents an arithmetic or bitwise operation.
type BinaryExpr struct {
	bitExprTier
	Position token.Position `json:"-"`
	Left     BitExpr        `json:"left"`
	Op       string         `json:"op"`
	Right    BitExpr        `json:"right"`
}

func (b *BinaryExpr) Pos() token.Position { return b.Position }
func (b *BinaryExpr) End() token.Position { return b.Right.End() }

// -----------------------------------------------------------------------------
// Simple expression tier

// LiteralKind identifies the kind of a literal.
type LiteralKind string

const (
	LiteralString   LiteralKind = "String"
	LiteralNumber   LiteralKind = "Number"
	LiteralDateTime LiteralKind = "DateTime"
	LiteralHex      LiteralKind = "Hex"
	LiteralBit      LiteralKind = "Bit"
	LiteralBoolean  LiteralKind = "Boolean"
	LiteralNull     LiteralKind = "Null"
)

// Literal represents a literal value. Value holds the unquoted text for
// strings and date-times, the source text for numbers, hex and bit values,
// and TRUE, FALSE or NULL for the keyword literals.
type Literal struct {
	simpleExprTier
	Position    token.Position `json:"-"`
	Kind        LiteralKind    `json:"kind"`
	Value       string         `json:"value"`
	National    bool           `json:"national,omitempty"`     // N'...'
	TypeKeyword string         `json:"type_keyword,omitempty"` // DATE, TIME or TIMESTAMP
	EscapeIdent string         `json:"escape_ident,omitempty"` // {ts '...'}
}

func (l *Literal) Pos() token.Position { return l.Position }
func (l *Literal) End() token.Position { return l.Position }

// Int returns the value of an integral number literal.
func (l *Literal) Int() (int64, error) {
	return strconv.ParseInt(l.Value, 10, 64)
}

// Float returns the value of a number literal.
func (l *Literal) Float() (float64, error) {
	return strconv.ParseFloat(l.Value, 64)
}

// Bool returns the value of a boolean literal.
func (l *Literal) Bool() bool {
	return l.Kind == LiteralBoolean && l.Value == "TRUE"
}

// ParameterMarker represents ? or a :name bind variable.
type ParameterMarker struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
}

func (p *ParameterMarker) Pos() token.Position { return p.Position }
func (p *ParameterMarker) End() token.Position { return p.Position }

// ColumnRef represents a column reference.
type ColumnRef struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Column   *QualifiedName `json:"column"`
}

func (c *ColumnRef) Pos() token.Position { return c.Position }
func (c *ColumnRef) End() token.Position { return c.Column.End() }

// UnaryExpr represents a prefix operator: +, -, ~, ! or BINARY.
type UnaryExpr struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Op       string         `json:"op"`
	Operand  SimpleExpr     `json:"operand"`
}

func (u *UnaryExpr) Pos() token.Position { return u.Position }
func (u *UnaryExpr) End() token.Position { return u.Operand.End() }

// RowExpr represents [ROW] (expr, ...).
type RowExpr struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Row      bool           `json:"row,omitempty"`
	Items    []Expr         `json:"items"`
}

func (r *RowExpr) Pos() token.Position { return r.Position }
func (r *RowExpr) End() token.Position { return r.Position }

// Subquery holds the tokens of a parenthesized query. The statement grammar
// lives outside this module; Stmt is set when a subquery parser is installed.
type Subquery struct {
	Position token.Position `json:"-"`
	Text     string         `json:"text"`
	Stmt     Node           `json:"stmt,omitempty"`
}

func (s *Subquery) Pos() token.Position { return s.Position }
func (s *Subquery) End() token.Position { return s.Position }

// SubqueryExpr represents [EXISTS] (subquery).
type SubqueryExpr struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Exists   bool           `json:"exists,omitempty"`
	Query    *Subquery      `json:"query"`
}

func (s *SubqueryExpr) Pos() token.Position { return s.Position }
func (s *SubqueryExpr) End() token.Position { return s.Query.End() }

// EscapedExpr represents the ODBC escape form {ident expr}.
type EscapedExpr struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Ident    *Identifier    `json:"ident"`
	Expr     Expr           `json:"expr"`
}

func (e *EscapedExpr) Pos() token.Position { return e.Position }
func (e *EscapedExpr) End() token.Position { return e.Position }

// ConcatExpr represents left || right.
type ConcatExpr struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Left     SimpleExpr     `json:"left"`
	Right    SimpleExpr     `json:"right"`
}

func (c *ConcatExpr) Pos() token.Position { return c.Position }
func (c *ConcatExpr) End() token.Position { return c.Right.End() }

// -----------------------------------------------------------------------------
// Functions

// FunctionCall represents an aggregation or regular function call.
type FunctionCall struct {
	functionTier
	Position  token.Position `json:"-"`
	Name      *Identifier    `json:"name"`
	Aggregate bool           `json:"aggregate,omitempty"`
	Distinct  bool           `json:"distinct,omitempty"`
	Star      bool           `json:"star,omitempty"` // f(*)
	Args      []Expr         `json:"args,omitempty"`
}

func (f *FunctionCall) Pos() token.Position { return f.Position }
func (f *FunctionCall) End() token.Position { return f.Position }

// CastExpr represents CAST(expr AS type).
type CastExpr struct {
	functionTier
	Position token.Position `json:"-"`
	Expr     Expr           `json:"expr"`
	Type     *DataType      `json:"data_type"`
}

func (c *CastExpr) Pos() token.Position { return c.Position }
func (c *CastExpr) End() token.Position { return c.Position }

// CharFunc represents CHAR(expr, ... [USING charset]).
type CharFunc struct {
	functionTier
	Position token.Position `json:"-"`
	Args     []Expr         `json:"args"`
	Using    *Identifier    `json:"using,omitempty"`
}

func (c *CharFunc) Pos() token.Position { return c.Position }
func (c *CharFunc) End() token.Position { return c.Position }

// -----------------------------------------------------------------------------
// CASE

// CaseForm records which grammar form produced a CASE expression.
type CaseForm string

const (
	// CaseGeneral is CASE [simpleExpr] WHEN expr THEN expr ... [ELSE expr] [END].
	CaseGeneral CaseForm = "General"
	// CaseObject is CASE [expr] WHEN expr THEN simpleExpr ... [ELSE expr] END.
	CaseObject CaseForm = "Object"
)

// CaseExpr represents a simple or searched CASE expression.
type CaseExpr struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Form     CaseForm       `json:"form"`
	Operand  Expr           `json:"operand,omitempty"`
	Whens    []*WhenClause  `json:"whens"`
	Else     Expr           `json:"else,omitempty"`
	HasEnd   bool           `json:"has_end,omitempty"`
}

func (c *CaseExpr) Pos() token.Position { return c.Position }
func (c *CaseExpr) End() token.Position { return c.Position }

// WhenClause represents a WHEN clause in a CASE expression.
type WhenClause struct {
	Position  token.Position `json:"-"`
	Condition Expr           `json:"condition"`
	Result    Expr           `json:"result"`
}

func (w *WhenClause) Pos() token.Position { return w.Position }
func (w *WhenClause) End() token.Position { return w.Result.End() }

// -----------------------------------------------------------------------------
// Oracle-specific expressions

// TreatExpr represents TREAT(expr AS [REF] type).
type TreatExpr struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Expr     Expr           `json:"expr"`
	Ref      bool           `json:"ref,omitempty"`
	Type     *DataType      `json:"data_type"`
}

func (t *TreatExpr) Pos() token.Position { return t.Position }
func (t *TreatExpr) End() token.Position { return t.Position }

// IntervalUnit is the unit pair of an interval expression.
type IntervalUnit string

const (
	DayToSecond IntervalUnit = "DAY TO SECOND"
	YearToMonth IntervalUnit = "YEAR TO MONTH"
)

// IntervalExpr represents (expr - expr) DAY [(n)] TO SECOND [(n)] and
// (expr - expr) YEAR [(n)] TO MONTH.
type IntervalExpr struct {
	simpleExprTier
	Position          token.Position `json:"-"`
	Left              BitExpr        `json:"left"`
	Right             BitExpr        `json:"right"`
	Unit              IntervalUnit   `json:"unit"`
	LeadingPrecision  *int           `json:"leading_precision,omitempty"`
	FractionPrecision *int           `json:"fraction_precision,omitempty"`
}

func (i *IntervalExpr) Pos() token.Position { return i.Position }
func (i *IntervalExpr) End() token.Position { return i.Position }

// ObjectAccessExpr represents (expr).attr.attr, (expr).method(args) and the
// same forms on a TREAT result.
type ObjectAccessExpr struct {
	simpleExprTier
	Position   token.Position `json:"-"`
	Base       SimpleExpr     `json:"base"`
	Attributes []*Identifier  `json:"attributes,omitempty"`
	Call       *FunctionCall  `json:"call,omitempty"`
}

func (o *ObjectAccessExpr) Pos() token.Position { return o.Position }
func (o *ObjectAccessExpr) End() token.Position { return o.Position }

// ConstructorExpr represents NEW type(args).
type ConstructorExpr struct {
	simpleExprTier
	Position token.Position `json:"-"`
	Type     *DataType      `json:"data_type"`
	Args     []Expr         `json:"args,omitempty"`
}

func (c *ConstructorExpr) Pos() token.Position { return c.Position }
func (c *ConstructorExpr) End() token.Position { return c.Position }
