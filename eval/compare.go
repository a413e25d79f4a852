package eval

import (
	"strconv"

	"github.com/oleksiybondar/eqlgo/ast"
)

type kind int

const (
	kindAbsent kind = iota
	kindText
	kindString
	kindNumber
	kindBool
	kindDate
	kindRegex
)

func (k kind) name() string {
	switch k {
	case kindText:
		return "element"
	case kindString:
		return "string"
	case kindNumber:
		return "number"
	case kindBool:
		return "bool"
	case kindDate:
		return "date"
	case kindRegex:
		return "regex"
	default:
		return "absent"
	}
}

// value is a fully evaluated operand.
type value struct {
	kind kind
	text string     // kindText, kindString, kindDate
	num  ast.Number // kindNumber
	b    bool       // kindBool
	re   ast.Regex  // kindRegex
}

func mismatch(op ast.Op, l, r value) error {
	return &TypeMismatchError{Op: op, Left: l.kind.name(), Right: r.kind.name()}
}

func applyOp(op ast.Op, l, r value) (bool, error) {
	switch {
	case op == ast.OpMatch:
		return applyMatch(l, r)
	case op.Ordering():
		return applyOrdering(op, l, r)
	default:
		eq, ok, err := applyEqual(op, l, r)
		if err != nil {
			return false, err
		}
		if !ok {
			// Node text did not coerce to the literal's kind; the
			// comparison reports false for == and != alike.
			return false, nil
		}
		if op == ast.OpNe {
			return !eq, nil
		}
		return eq, nil
	}
}

// applyMatch implements ~=: an unanchored pattern search over the left
// operand's text, not a full-string match.
func applyMatch(l, r value) (bool, error) {
	if r.kind != kindRegex || (l.kind != kindText && l.kind != kindString) {
		return false, mismatch(ast.OpMatch, l, r)
	}
	return r.re.Pattern.MatchString(l.text), nil
}

// applyOrdering implements <, <=, >, >=: natural ordering over numeric
// or date operands.
func applyOrdering(op ast.Op, l, r value) (bool, error) {
	c, ok, err := orderedCompare(op, l, r)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	switch op {
	case ast.OpLt:
		return c < 0, nil
	case ast.OpLe:
		return c <= 0, nil
	case ast.OpGt:
		return c > 0, nil
	default:
		return c >= 0, nil
	}
}

// orderedCompare returns a three-way comparison. ok=false means a node
// value failed to coerce to the other operand's kind.
func orderedCompare(op ast.Op, l, r value) (int, bool, error) {
	switch {
	case l.kind == kindNumber && r.kind == kindNumber:
		return compareNumbers(l.num, r.num), true, nil

	case l.kind == kindDate && r.kind == kindDate:
		return compareStrings(l.text, r.text), true, nil

	case l.kind == kindNumber && r.kind == kindText:
		f, ok := parseFloat(r.text)
		if !ok {
			return 0, false, nil
		}
		return compareFloats(numberFloat(l.num), f), true, nil

	case l.kind == kindText && r.kind == kindNumber:
		f, ok := parseFloat(l.text)
		if !ok {
			return 0, false, nil
		}
		return compareFloats(f, numberFloat(r.num)), true, nil

	case l.kind == kindDate && r.kind == kindText:
		if !dateShaped(r.text) {
			return 0, false, nil
		}
		return compareStrings(l.text, r.text), true, nil

	case l.kind == kindText && r.kind == kindDate:
		if !dateShaped(l.text) {
			return 0, false, nil
		}
		return compareStrings(l.text, r.text), true, nil

	case l.kind == kindText && r.kind == kindText:
		lf, lok := parseFloat(l.text)
		rf, rok := parseFloat(r.text)
		if lok && rok {
			return compareFloats(lf, rf), true, nil
		}
		if dateShaped(l.text) && dateShaped(r.text) {
			return compareStrings(l.text, r.text), true, nil
		}
		return 0, false, nil

	default:
		return 0, false, mismatch(op, l, r)
	}
}

// applyEqual implements exact equality over comparable kinds. ok=false
// means a node value failed to coerce to the literal's kind.
func applyEqual(op ast.Op, l, r value) (eq, ok bool, err error) {
	// Normalize so that a node-resolved text, if any, sits on the left.
	if r.kind == kindText && l.kind != kindText {
		l, r = r, l
	}

	if l.kind == kindRegex || r.kind == kindRegex {
		return false, false, mismatch(op, l, r)
	}

	if l.kind == kindText {
		switch r.kind {
		case kindText:
			// Two node values compare numerically when both sides parse
			// as numbers, matching the ordering operators.
			if lf, lok := parseFloat(l.text); lok {
				if rf, rok := parseFloat(r.text); rok {
					return lf == rf, true, nil
				}
			}
			return l.text == r.text, true, nil
		case kindString:
			return l.text == r.text, true, nil
		case kindNumber:
			return textEqualsNumber(l.text, r.num)
		case kindBool:
			switch l.text {
			case "true":
				return r.b, true, nil
			case "false":
				return !r.b, true, nil
			}
			return false, false, nil
		case kindDate:
			if !dateShaped(l.text) {
				return false, false, nil
			}
			return l.text == r.text, true, nil
		}
	}

	if l.kind != r.kind {
		return false, false, mismatch(op, l, r)
	}
	switch l.kind {
	case kindString, kindDate:
		return l.text == r.text, true, nil
	case kindNumber:
		return compareNumbers(l.num, r.num) == 0, true, nil
	case kindBool:
		return l.b == r.b, true, nil
	}
	return false, false, mismatch(op, l, r)
}

// textEqualsNumber coerces node text to the literal's numeric kind:
// integer parse first for int literals, with a float fallback so that
// "18.0" still equals 18.
func textEqualsNumber(text string, n ast.Number) (eq, ok bool, err error) {
	if !n.IsFloat {
		if i, perr := strconv.ParseInt(text, 10, 64); perr == nil {
			return i == n.Int, true, nil
		}
	}
	f, fok := parseFloat(text)
	if !fok {
		return false, false, nil
	}
	return f == numberFloat(n), true, nil
}

func compareNumbers(l, r ast.Number) int {
	if !l.IsFloat && !r.IsFloat {
		switch {
		case l.Int < r.Int:
			return -1
		case l.Int > r.Int:
			return 1
		}
		return 0
	}
	return compareFloats(numberFloat(l), numberFloat(r))
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func numberFloat(n ast.Number) float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// dateShaped reports whether s has the lexical YYYY-MM-DD shape. No
// calendar validation is performed, matching the date literal itself.
func dateShaped(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
