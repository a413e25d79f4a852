package ast

import (
	"fmt"

	regexp "github.com/wasilibs/go-re2"
)

// Operand is a comparison operand: a literal or an element chain.
type Operand interface {
	fmt.Stringer
	operandNode()
}

// String is a double-quoted text literal.
type String struct {
	Value string
}

func (String) operandNode() {}

// Number is a numeric literal. The lexical int/float distinction is
// preserved: IsFloat selects which field carries the value.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

func (Number) operandNode() {}

// Bool is a true/false literal.
type Bool struct {
	Value bool
}

func (Bool) operandNode() {}

// Date is a date(YYYY-MM-DD) literal. Value holds the raw date text;
// no calendar validation is performed beyond lexical shape.
type Date struct {
	Value string
}

func (Date) operandNode() {}

// Regex is a /pattern/flags literal. Source is the pattern text between
// the slashes; Pattern is compiled once at parse time and never
// re-compiled during evaluation.
type Regex struct {
	Source  string
	Flags   string
	Pattern *regexp.Regexp
}

func (Regex) operandNode() {}

// AttrType selects what a terminal chain segment resolves to.
type AttrType int

const (
	// AttrNone resolves a named child node.
	AttrNone AttrType = iota
	// AttrAttribute resolves an attribute value by name.
	AttrAttribute
	// AttrStyle resolves a style value by name.
	AttrStyle
)

// Segment is one step of an element chain: a named child, an indexed
// collection access, or (terminal only) an attribute/style lookup.
type Segment struct {
	Name     string
	Index    int
	HasIndex bool
	Attr     AttrType
}

// ElementChain references a path of segments from the evaluation root.
// A chain always has at least one segment; only the terminal segment may
// carry an attribute/style lookup.
type ElementChain struct {
	Segments []Segment
}

func (ElementChain) operandNode() {}
