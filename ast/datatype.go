package ast

import "github.com/sqlc-dev/oraexpr/token"

// DataType represents a type specification such as NUMBER(10,2),
// VARCHAR2(20 CHAR), NATIONAL CHARACTER VARYING(10) or
// TIMESTAMP(6) WITH LOCAL TIME ZONE.
type DataType struct {
	Position token.Position  `json:"-"`
	Owner    *Identifier     `json:"owner,omitempty"` // user-defined types only
	Name     string          `json:"name"`            // built-in names upper case, user-defined names as written
	National bool            `json:"national,omitempty"`
	Varying  bool            `json:"varying,omitempty"`
	Length   *DataTypeLength `json:"length,omitempty"`
	// CopyColumn is set for NAME(column) length copies. CopyClosed records
	// whether the closing parenthesis was present, which is optional.
	CopyColumn *QualifiedName  `json:"copy_column,omitempty"`
	CopyClosed bool            `json:"copy_closed,omitempty"`
	Suffix     *DatetimeSuffix `json:"suffix,omitempty"`
}

func (d *DataType) Pos() token.Position { return d.Position }
func (d *DataType) End() token.Position { return d.Position }

// DataTypeLength is the parenthesized length of a type.
type DataTypeLength struct {
	Precision *int   `json:"precision,omitempty"`
	Any       bool   `json:"any,omitempty"` // NUMBER(*)
	Scale     *int   `json:"scale,omitempty"`
	Unit      string `json:"unit,omitempty"` // CHAR or BYTE
}

// SuffixKind identifies a datetime type suffix.
type SuffixKind string

const (
	WithTimeZone SuffixKind = "WITH TIME ZONE"
	ToMonth      SuffixKind = "TO MONTH"
	ToSecond     SuffixKind = "TO SECOND"
)

// DatetimeSuffix is the trailing qualifier of TIMESTAMP and INTERVAL types.
type DatetimeSuffix struct {
	Kind      SuffixKind `json:"kind"`
	Local     bool       `json:"local,omitempty"`
	Precision *int       `json:"precision,omitempty"` // TO SECOND (n)
}
