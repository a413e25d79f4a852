package ast

import (
	"strconv"
	"strings"
)

// The String methods render a node back to EQL surface syntax. The
// rendering is canonical: parsing the result yields a structurally equal
// tree, which the CLI and the parser round-trip tests rely on.

func (c Comparison) String() string {
	return c.Left.String() + " " + string(c.Op) + " " + c.Right.String()
}

func (l Logical) String() string {
	return l.Left.String() + " " + string(l.Op) + " " + l.Right.String()
}

func (s String) String() string {
	return `"` + s.Value + `"`
}

func (n Number) String() string {
	if !n.IsFloat {
		return strconv.FormatInt(n.Int, 10)
	}
	s := strconv.FormatFloat(n.Float, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (d Date) String() string {
	return "date(" + d.Value + ")"
}

func (r Regex) String() string {
	return "/" + r.Source + "/" + r.Flags
}

func (c ElementChain) String() string {
	parts := make([]string, len(c.Segments))
	for i, seg := range c.Segments {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}

func (s Segment) String() string {
	switch s.Attr {
	case AttrAttribute:
		return "attribute:" + s.Name
	case AttrStyle:
		return "style:" + s.Name
	}
	if s.HasIndex {
		return s.Name + "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name
}
